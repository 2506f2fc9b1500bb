package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/social-sphere/backend/internal/models"
	"github.com/social-sphere/backend/internal/repositories"
)

// ContactHandler handles contact form submissions
type ContactHandler struct {
	contactRepository repositories.ContactRepository
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(contactRepo repositories.ContactRepository) *ContactHandler {
	return &ContactHandler{contactRepository: contactRepo}
}

// RegisterContactRoutes registers contact-related routes. Submission is open
// to unauthenticated visitors.
func (h *ContactHandler) RegisterContactRoutes(g *echo.Group) {
	g.POST("/contact", h.SubmitMessage)
}

// SubmitMessage persists a contact message and returns its identifier
func (h *ContactHandler) SubmitMessage(c echo.Context) error {
	var req models.ContactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	id, err := h.contactRepository.SubmitMessage(c.Request().Context(), req.Name, req.Email, req.Message)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"id": id})
}
