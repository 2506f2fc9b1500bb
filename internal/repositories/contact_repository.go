package repositories

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/social-sphere/backend/internal/apperrors"
	"github.com/social-sphere/backend/internal/models"
	"github.com/social-sphere/backend/internal/store"
)

const contactsCollection = "contacts"

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ContactRepository defines the interface for contact message submission
type ContactRepository interface {
	SubmitMessage(ctx context.Context, name, email, message string) (string, error)
}

// StoreContactRepository implements ContactRepository over a document store
type StoreContactRepository struct {
	store store.Client
}

// NewStoreContactRepository creates a new StoreContactRepository
func NewStoreContactRepository(st store.Client) *StoreContactRepository {
	return &StoreContactRepository{store: st}
}

// SubmitMessage validates and persists a contact message with status "new",
// returning the new message's identifier. Messages are never read back or
// mutated by this service.
func (r *StoreContactRepository) SubmitMessage(ctx context.Context, name, email, message string) (string, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" || strings.TrimSpace(message) == "" {
		return "", apperrors.NewValidationError("contact", "all fields are required")
	}
	if !emailPattern.MatchString(email) {
		return "", apperrors.NewValidationError("email", "must be a valid email address")
	}

	data := map[string]interface{}{
		"name":      name,
		"email":     email,
		"message":   message,
		"status":    models.ContactStatusNew,
		"createdAt": store.ServerTimestamp,
	}

	id, err := r.store.Add(ctx, contactsCollection, data)
	if err != nil {
		if errors.Is(err, store.ErrPermissionDenied) {
			return "", apperrors.NewStoreErrorMessage("submit contact message",
				"Server configuration error. Please try again later.", err)
		}
		return "", apperrors.NewStoreError("submit contact message", err)
	}
	return id, nil
}
