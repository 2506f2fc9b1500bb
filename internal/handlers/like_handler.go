package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/social-sphere/backend/internal/repositories"
)

// LikeHandler handles HTTP requests related to likes
type LikeHandler struct {
	postRepository repositories.PostRepository
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(postRepo repositories.PostRepository) *LikeHandler {
	return &LikeHandler{postRepository: postRepo}
}

// RegisterLikeRoutes registers like-related routes
func (h *LikeHandler) RegisterLikeRoutes(g *echo.Group) {
	g.PUT("/posts/:post_id/like", h.ToggleLike)
}

// ToggleLike flips the authenticated user's membership in a post's likes set.
// The current state is read from the stored document rather than trusted from
// the client, so stale tabs converge instead of fighting over a flag.
func (h *LikeHandler) ToggleLike(c echo.Context) error {
	claims, err := userClaims(c)
	if err != nil {
		return err
	}
	postID := c.Param("post_id")

	post, err := h.postRepository.GetPost(c.Request().Context(), postID)
	if err != nil {
		return httpError(err)
	}
	currentlyLiked := post.LikedBy(claims.UID)

	if err := h.postRepository.ToggleLike(c.Request().Context(), postID, claims.UID, currentlyLiked); err != nil {
		return httpError(err)
	}

	updated, err := h.postRepository.GetPost(c.Request().Context(), postID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"post_id":     postID,
		"liked":       updated.LikedBy(claims.UID),
		"likes_count": len(updated.Likes),
	})
}
