package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/social-sphere/backend/internal/models"
	"github.com/social-sphere/backend/internal/repositories"
)

// CommentHandler handles HTTP requests related to comments
type CommentHandler struct {
	postRepository repositories.PostRepository
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(postRepo repositories.PostRepository) *CommentHandler {
	return &CommentHandler{postRepository: postRepo}
}

// RegisterCommentRoutes registers comment-related routes
func (h *CommentHandler) RegisterCommentRoutes(g *echo.Group) {
	g.POST("/posts/:post_id/comments", h.CreateComment)
	g.GET("/posts/:post_id/comments", h.GetComments)
}

// CreateComment appends a comment to a post's comment sequence
func (h *CommentHandler) CreateComment(c echo.Context) error {
	claims, err := userClaims(c)
	if err != nil {
		return err
	}
	postID := c.Param("post_id")

	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	draft := models.CommentDraft{
		Content:    req.Content,
		AuthorID:   claims.UID,
		AuthorName: claims.Name,
	}

	comment, err := h.postRepository.AddComment(c.Request().Context(), postID, draft)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, comment)
}

// GetComments retrieves the comment sequence embedded in a post
func (h *CommentHandler) GetComments(c echo.Context) error {
	post, err := h.postRepository.GetPost(c.Request().Context(), c.Param("post_id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, post.Comments)
}
