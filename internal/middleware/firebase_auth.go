package middleware

import (
	"fmt"
	"net/http"

	"firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"

	"github.com/social-sphere/backend/internal/models"
)

// FirebaseAuthMiddleware verifies Firebase ID tokens directly, for
// deployments where clients send the provider token on every request instead
// of exchanging it for a local JWT. It stores the same claims shape under
// "user" as JWTAuthMiddleware so handlers do not care which mode is active.
func FirebaseAuthMiddleware(authClient *auth.Client) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			idToken, err := bearerToken(c)
			if err != nil {
				return err
			}

			token, err := authClient.VerifyIDToken(c.Request().Context(), idToken)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, fmt.Sprintf("Invalid or expired ID token: %v", err))
			}

			email, _ := token.Claims["email"].(string)
			name, _ := token.Claims["name"].(string)
			c.Set("user", &models.JwtCustomClaims{UID: token.UID, Email: email, Name: name})
			return next(c)
		}
	}
}
