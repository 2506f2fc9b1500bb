package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/social-sphere/backend/internal/repositories"
)

// FeedHandler handles the filtered post feed
type FeedHandler struct {
	postRepository repositories.PostRepository
}

// NewFeedHandler creates a new FeedHandler
func NewFeedHandler(postRepo repositories.PostRepository) *FeedHandler {
	return &FeedHandler{postRepository: postRepo}
}

// RegisterFeedRoutes registers feed-related routes
func (h *FeedHandler) RegisterFeedRoutes(g *echo.Group) {
	g.GET("/feed", h.GetFeed)
}

// GetFeed returns all posts narrowed by category and search term. Filtering
// happens over the full result set; the store is not queried per filter.
func (h *FeedHandler) GetFeed(c echo.Context) error {
	posts, err := h.postRepository.ListPosts(c.Request().Context())
	if err != nil {
		return httpError(err)
	}

	category := c.QueryParam("category")
	term := c.QueryParam("q")
	filtered := repositories.FilterPosts(posts, category, term)

	return c.JSON(http.StatusOK, echo.Map{
		"posts": filtered,
		"total": len(filtered),
	})
}
