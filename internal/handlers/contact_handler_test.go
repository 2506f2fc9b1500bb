package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/social-sphere/backend/internal/repositories"
	"github.com/social-sphere/backend/internal/store"
)

func TestSubmitContactHandler(t *testing.T) {
	e := newEcho()
	h := NewContactHandler(repositories.NewStoreContactRepository(store.NewMemoryStore()))

	body := `{"name":"Ada","email":"a@b.co","message":"Hello admins"}`
	c, rec := newJSONContext(e, http.MethodPost, "/api/v1/contact", body)

	require.NoError(t, h.SubmitMessage(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["id"])
}

func TestSubmitContactHandler_InvalidEmail(t *testing.T) {
	e := newEcho()
	h := NewContactHandler(repositories.NewStoreContactRepository(store.NewMemoryStore()))

	body := `{"name":"Ada","email":"not-an-email","message":"Hello"}`
	c, _ := newJSONContext(e, http.MethodPost, "/api/v1/contact", body)

	err := h.SubmitMessage(c)
	require.Error(t, err)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestSubmitContactHandler_MissingFields(t *testing.T) {
	e := newEcho()
	h := NewContactHandler(repositories.NewStoreContactRepository(store.NewMemoryStore()))

	body := `{"name":"","email":"a@b.co","message":"Hello"}`
	c, _ := newJSONContext(e, http.MethodPost, "/api/v1/contact", body)

	err := h.SubmitMessage(c)
	require.Error(t, err)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}
