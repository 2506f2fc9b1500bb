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

func TestSubmitMessage_PersistsWithNewStatus(t *testing.T) {
	mem := store.NewMemoryStore()
	repo := NewStoreContactRepository(mem)
	ctx := context.Background()

	id, err := repo.SubmitMessage(ctx, "Ada", "a@b.co", "Hello there")
	require.NoError(t, err)
	require.NotEmpty(t, id)

	doc, err := mem.Get(ctx, "contacts", id)
	require.NoError(t, err)
	assert.Equal(t, models.ContactStatusNew, doc.Data["status"])
	assert.Equal(t, "Ada", doc.Data["name"])
	assert.NotNil(t, doc.Data["createdAt"])
}

func TestSubmitMessage_RejectsInvalidEmail(t *testing.T) {
	cs := &countingStore{Client: store.NewMemoryStore()}
	repo := NewStoreContactRepository(cs)
	ctx := context.Background()

	_, err := repo.SubmitMessage(ctx, "Ada", "not-an-email", "Hello")
	assert.True(t, apperrors.IsValidation(err))

	_, err = repo.SubmitMessage(ctx, "Ada", "a b@c.co", "Hello")
	assert.True(t, apperrors.IsValidation(err))

	assert.Equal(t, 0, cs.writes())
}

func TestSubmitMessage_RequiresAllFields(t *testing.T) {
	repo := NewStoreContactRepository(store.NewMemoryStore())
	ctx := context.Background()

	cases := []struct{ name, email, message string }{
		{"", "a@b.co", "hi"},
		{"Ada", "", "hi"},
		{"Ada", "a@b.co", ""},
		{"Ada", "a@b.co", "   "},
	}
	for _, tc := range cases {
		_, err := repo.SubmitMessage(ctx, tc.name, tc.email, tc.message)
		assert.True(t, apperrors.IsValidation(err))
	}
}

func TestSubmitMessage_PermissionDeniedReworded(t *testing.T) {
	repo := NewStoreContactRepository(&deniedStore{Client: store.NewMemoryStore()})

	_, err := repo.SubmitMessage(context.Background(), "Ada", "a@b.co", "Hello")
	require.Error(t, err)
	assert.True(t, apperrors.IsStore(err))
	assert.Contains(t, err.Error(), "Server configuration error")
}
