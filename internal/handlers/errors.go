package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/social-sphere/backend/internal/apperrors"
	"github.com/social-sphere/backend/internal/models"
	"github.com/social-sphere/backend/internal/store"
)

// httpError maps repository errors onto HTTP status codes
func httpError(err error) *echo.HTTPError {
	switch {
	case apperrors.IsValidation(err):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case apperrors.IsNotFound(err):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, store.ErrPermissionDenied):
		// StoreError carries the user-facing rewording for these.
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}

// userClaims extracts the authenticated user's claims set by the auth middleware
func userClaims(c echo.Context) (*models.JwtCustomClaims, error) {
	claims, ok := c.Get("user").(*models.JwtCustomClaims)
	if !ok || claims == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Missing authentication context")
	}
	return claims, nil
}
