package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/social-sphere/backend/internal/models"
	"github.com/social-sphere/backend/internal/repositories"
	"github.com/social-sphere/backend/internal/store"
)

func TestGetFeed_FiltersByCategoryAndTerm(t *testing.T) {
	e := newEcho()
	repo := repositories.NewStorePostRepository(store.NewMemoryStore())
	h := NewFeedHandler(repo)

	ctx := context.Background()
	drafts := []models.PostDraft{
		{AuthorID: "u1", AuthorName: "Ada", Content: "Learning Go generics", Category: models.CategoryQuestion},
		{AuthorID: "u2", AuthorName: "Grace", Content: "Compiler side project", Category: models.CategoryProject},
		{AuthorID: "u3", AuthorName: "Linus", Content: "Kernel notes", Category: models.CategoryResource},
	}
	for _, d := range drafts {
		_, err := repo.CreatePost(ctx, d)
		require.NoError(t, err)
	}

	feed := func(query string) map[string]interface{} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/feed"+query, nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		require.NoError(t, h.GetFeed(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		return resp
	}

	all := feed("")
	assert.Equal(t, float64(3), all["total"])

	byCategory := feed("?category=Project")
	assert.Equal(t, float64(1), byCategory["total"])

	byTerm := feed("?q=kernel")
	assert.Equal(t, float64(1), byTerm["total"])

	none := feed("?category=Question&q=kernel")
	assert.Equal(t, float64(0), none["total"])
}

func TestGetFeed_AllCategory(t *testing.T) {
	e := newEcho()
	repo := repositories.NewStorePostRepository(store.NewMemoryStore())
	h := NewFeedHandler(repo)

	_, err := repo.CreatePost(context.Background(), models.PostDraft{
		AuthorID: "u1", AuthorName: "Ada", Content: "hello", Category: models.CategoryIdea,
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/feed?category=all", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	require.NoError(t, h.GetFeed(c))

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, float64(1), resp["total"])
}
