package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/social-sphere/backend/internal/apperrors"
	"github.com/social-sphere/backend/internal/models"
	"github.com/social-sphere/backend/internal/store"
)

func TestSaveProfile_RoundTrip(t *testing.T) {
	repo := NewStoreUserRepository(store.NewMemoryStore())
	ctx := context.Background()

	user := &models.User{UID: "uid-1", Email: "ada@example.com", Name: "Ada"}
	require.NoError(t, repo.SaveProfile(ctx, user))

	got, err := repo.GetByUID(ctx, "uid-1")
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", got.Email)
	assert.Equal(t, "Ada", got.Name)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestSaveProfile_Validation(t *testing.T) {
	repo := NewStoreUserRepository(store.NewMemoryStore())
	ctx := context.Background()

	err := repo.SaveProfile(ctx, &models.User{Email: "ada@example.com"})
	assert.True(t, apperrors.IsValidation(err))

	err = repo.SaveProfile(ctx, &models.User{UID: "uid-1"})
	assert.True(t, apperrors.IsValidation(err))
}

func TestGetByUID_NotFound(t *testing.T) {
	repo := NewStoreUserRepository(store.NewMemoryStore())

	_, err := repo.GetByUID(context.Background(), "ghost")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestGetByEmail(t *testing.T) {
	repo := NewStoreUserRepository(store.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, repo.SaveProfile(ctx, &models.User{UID: "uid-1", Email: "ada@example.com", Name: "Ada"}))

	got, err := repo.GetByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, "uid-1", got.UID)

	_, err = repo.GetByEmail(ctx, "nobody@example.com")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestSearchUsers(t *testing.T) {
	repo := NewStoreUserRepository(store.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, repo.SaveProfile(ctx, &models.User{UID: "uid-1", Email: "ada@example.com", Name: "Ada Lovelace"}))
	require.NoError(t, repo.SaveProfile(ctx, &models.User{UID: "uid-2", Email: "grace@example.com", Name: "Grace Hopper"}))

	byName, err := repo.SearchUsers(ctx, "lovelace")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "uid-1", byName[0].UID)

	byEmail, err := repo.SearchUsers(ctx, "GRACE@")
	require.NoError(t, err)
	require.Len(t, byEmail, 1)
	assert.Equal(t, "uid-2", byEmail[0].UID)

	all, err := repo.SearchUsers(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
