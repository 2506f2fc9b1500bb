package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/social-sphere/backend/internal/apperrors"
	"github.com/social-sphere/backend/internal/models"
	"github.com/social-sphere/backend/internal/store"
)

const usersCollection = "users"

// UserRepository defines the interface for user profile operations
type UserRepository interface {
	SaveProfile(ctx context.Context, user *models.User) error
	GetByUID(ctx context.Context, uid string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	SearchUsers(ctx context.Context, query string) ([]models.User, error)
}

// StoreUserRepository implements UserRepository over a document store
type StoreUserRepository struct {
	store store.Client
}

// NewStoreUserRepository creates a new StoreUserRepository
func NewStoreUserRepository(st store.Client) *StoreUserRepository {
	return &StoreUserRepository{store: st}
}

// SaveProfile creates or replaces the profile document keyed by the user's UID
func (r *StoreUserRepository) SaveProfile(ctx context.Context, user *models.User) error {
	if user.UID == "" {
		return apperrors.NewValidationError("uid", "is required")
	}
	if user.Email == "" {
		return apperrors.NewValidationError("email", "is required")
	}

	data := map[string]interface{}{
		"email":     user.Email,
		"name":      user.Name,
		"updatedAt": store.ServerTimestamp,
	}
	if user.PasswordHash != "" {
		data["passwordHash"] = user.PasswordHash
	}
	if user.CreatedAt.IsZero() {
		data["createdAt"] = store.ServerTimestamp
	} else {
		data["createdAt"] = user.CreatedAt
	}

	if err := r.store.Set(ctx, usersCollection, user.UID, data); err != nil {
		return apperrors.NewStoreError("save user profile", err)
	}
	return nil
}

// GetByUID retrieves a user profile by UID
func (r *StoreUserRepository) GetByUID(ctx context.Context, uid string) (*models.User, error) {
	doc, err := r.store.Get(ctx, usersCollection, uid)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("user", uid)
		}
		return nil, apperrors.NewStoreError("get user", err)
	}
	return userFromDocument(doc), nil
}

// GetByEmail retrieves a user profile by email address
func (r *StoreUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	docs, err := r.store.Query(ctx, usersCollection, "email", email)
	if err != nil {
		return nil, apperrors.NewStoreError("get user by email", err)
	}
	if len(docs) == 0 {
		return nil, apperrors.NewNotFoundError("user", email)
	}
	return userFromDocument(docs[0]), nil
}

// SearchUsers returns users whose name or email contains the query,
// case-insensitive
func (r *StoreUserRepository) SearchUsers(ctx context.Context, query string) ([]models.User, error) {
	docs, err := r.store.List(ctx, usersCollection, "name", false)
	if err != nil {
		return nil, apperrors.NewStoreError("search users", err)
	}

	q := strings.ToLower(query)
	users := make([]models.User, 0)
	for _, doc := range docs {
		user := userFromDocument(doc)
		if q == "" ||
			strings.Contains(strings.ToLower(user.Name), q) ||
			strings.Contains(strings.ToLower(user.Email), q) {
			users = append(users, *user)
		}
	}
	return users, nil
}
