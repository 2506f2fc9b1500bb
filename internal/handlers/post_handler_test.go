package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/social-sphere/backend/internal/models"
	"github.com/social-sphere/backend/internal/repositories"
	"github.com/social-sphere/backend/internal/store"
	"github.com/social-sphere/backend/validators"
)

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validators.NewValidator()
	return e
}

func newJSONContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func testClaims(uid, name string) *models.JwtCustomClaims {
	return &models.JwtCustomClaims{UID: uid, Email: uid + "@example.com", Name: name}
}

func TestCreatePostHandler(t *testing.T) {
	e := newEcho()
	repo := repositories.NewStorePostRepository(store.NewMemoryStore())
	h := NewPostHandler(repo)

	body := `{"title":"Hello","content":"First post","category":"Idea","skills":["Go"]}`
	c, rec := newJSONContext(e, http.MethodPost, "/api/v1/posts", body)
	c.Set("user", testClaims("user-1", "Ada"))

	require.NoError(t, h.CreatePost(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var post models.Post
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &post))
	assert.NotEmpty(t, post.ID)
	assert.Equal(t, "user-1", post.AuthorID)
	assert.Equal(t, "Ada", post.AuthorName)
	assert.Empty(t, post.Likes)
	assert.Empty(t, post.Comments)
}

func TestCreatePostHandler_RejectsUnknownCategory(t *testing.T) {
	e := newEcho()
	h := NewPostHandler(repositories.NewStorePostRepository(store.NewMemoryStore()))

	body := `{"content":"First post","category":"Gossip"}`
	c, _ := newJSONContext(e, http.MethodPost, "/api/v1/posts", body)
	c.Set("user", testClaims("user-1", "Ada"))

	err := h.CreatePost(c)
	require.Error(t, err)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestGetPostHandler_NotFound(t *testing.T) {
	e := newEcho()
	h := NewPostHandler(repositories.NewStorePostRepository(store.NewMemoryStore()))

	c, _ := newJSONContext(e, http.MethodGet, "/api/v1/posts/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	err := h.GetPost(c)
	require.Error(t, err)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Code)
}

func TestDeletePostHandler_OnlyAuthor(t *testing.T) {
	e := newEcho()
	repo := repositories.NewStorePostRepository(store.NewMemoryStore())
	h := NewPostHandler(repo)

	post, err := repo.CreatePost(context.Background(), models.PostDraft{
		AuthorID: "user-1", AuthorName: "Ada", Content: "mine",
	})
	require.NoError(t, err)

	c, _ := newJSONContext(e, http.MethodDelete, "/api/v1/posts/"+post.ID, "")
	c.SetParamNames("id")
	c.SetParamValues(post.ID)
	c.Set("user", testClaims("user-2", "Mallory"))

	err = h.DeletePost(c)
	require.Error(t, err)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, he.Code)

	c, rec := newJSONContext(e, http.MethodDelete, "/api/v1/posts/"+post.ID, "")
	c.SetParamNames("id")
	c.SetParamValues(post.ID)
	c.Set("user", testClaims("user-1", "Ada"))

	require.NoError(t, h.DeletePost(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	_, err = repo.GetPost(context.Background(), post.ID)
	require.Error(t, err)
}
