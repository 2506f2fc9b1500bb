package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/social-sphere/backend/internal/models"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, expires time.Duration) string {
	t.Helper()
	claims := &models.JwtCustomClaims{
		UID:   "user-1",
		Email: "ada@example.com",
		Name:  "Ada",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expires)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func runMiddleware(t *testing.T, authHeader string) (echo.Context, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/posts", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	c := e.NewContext(req, httptest.NewRecorder())

	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	return c, JWTAuthMiddleware(testSecret)(next)(c)
}

func TestJWTAuthMiddleware_ValidToken(t *testing.T) {
	token := signToken(t, testSecret, time.Hour)

	c, err := runMiddleware(t, "Bearer "+token)
	require.NoError(t, err)

	claims, ok := c.Get("user").(*models.JwtCustomClaims)
	require.True(t, ok)
	assert.Equal(t, "user-1", claims.UID)
	assert.Equal(t, "Ada", claims.Name)
}

func TestJWTAuthMiddleware_MissingHeader(t *testing.T) {
	_, err := runMiddleware(t, "")
	require.Error(t, err)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, he.Code)
}

func TestJWTAuthMiddleware_MalformedHeader(t *testing.T) {
	_, err := runMiddleware(t, "Token abc")
	require.Error(t, err)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, he.Code)
}

func TestJWTAuthMiddleware_WrongSecret(t *testing.T) {
	token := signToken(t, "other-secret", time.Hour)

	_, err := runMiddleware(t, "Bearer "+token)
	require.Error(t, err)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, he.Code)
}

func TestJWTAuthMiddleware_ExpiredToken(t *testing.T) {
	token := signToken(t, testSecret, -time.Hour)

	_, err := runMiddleware(t, "Bearer "+token)
	require.Error(t, err)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, he.Code)
}
