package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/social-sphere/backend/internal/models"
	"github.com/social-sphere/backend/internal/repositories"
)

// PostHandler handles HTTP requests related to posts
type PostHandler struct {
	postRepository repositories.PostRepository
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postRepo repositories.PostRepository) *PostHandler {
	return &PostHandler{postRepository: postRepo}
}

// RegisterPostRoutes registers post-related routes
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.POST("/posts", h.CreatePost)
	g.GET("/posts", h.GetPosts)
	g.GET("/posts/:id", h.GetPost)
	g.DELETE("/posts/:id", h.DeletePost)
}

// CreatePost creates a new post authored by the authenticated user
func (h *PostHandler) CreatePost(c echo.Context) error {
	claims, err := userClaims(c)
	if err != nil {
		return err
	}

	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	draft := models.PostDraft{
		AuthorID:   claims.UID,
		AuthorName: claims.Name,
		Title:      req.Title,
		Content:    req.Content,
		Category:   req.Category,
		Skills:     req.Skills,
	}

	post, err := h.postRepository.CreatePost(c.Request().Context(), draft)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, post)
}

// GetPosts retrieves all posts, newest first
func (h *PostHandler) GetPosts(c echo.Context) error {
	posts, err := h.postRepository.ListPosts(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, posts)
}

// GetPost retrieves a post by ID including its embedded comments
func (h *PostHandler) GetPost(c echo.Context) error {
	post, err := h.postRepository.GetPost(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, post)
}

// DeletePost deletes a post; only the author may delete it
func (h *PostHandler) DeletePost(c echo.Context) error {
	claims, err := userClaims(c)
	if err != nil {
		return err
	}
	postID := c.Param("id")

	post, err := h.postRepository.GetPost(c.Request().Context(), postID)
	if err != nil {
		return httpError(err)
	}
	if post.AuthorID != claims.UID {
		return echo.NewHTTPError(http.StatusForbidden, "You are not authorized to delete this post")
	}

	if err := h.postRepository.DeletePost(c.Request().Context(), postID); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
