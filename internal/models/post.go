package models

import "time"

// Post categories offered by the platform. The create path rejects anything
// outside this set; older documents written before the check may carry
// arbitrary values and are returned as stored.
const (
	CategoryIdea     = "Idea"
	CategoryProject  = "Project"
	CategorySkill    = "Skill"
	CategoryResource = "Resource"
	CategoryQuestion = "Question"
)

// Categories lists the valid post categories in display order
func Categories() []string {
	return []string{CategoryIdea, CategoryProject, CategorySkill, CategoryResource, CategoryQuestion}
}

// Post represents a community submission. Only the likes set, the comments
// sequence, and updatedAt change after creation.
type Post struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Category   string    `json:"category,omitempty"`
	Skills     []string  `json:"skills,omitempty"`
	AuthorID   string    `json:"authorId"`
	AuthorName string    `json:"authorName"`
	Likes      []string  `json:"likes"`
	Comments   []Comment `json:"comments"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// LikedBy reports whether the given user is in the post's likes set
func (p *Post) LikedBy(userID string) bool {
	for _, uid := range p.Likes {
		if uid == userID {
			return true
		}
	}
	return false
}

// Comment is a reply embedded in its parent post's comment sequence.
// Comments are append-only; removing the post removes them transitively.
type Comment struct {
	ID         string    `json:"id"`
	Content    string    `json:"content"`
	AuthorID   string    `json:"authorId"`
	AuthorName string    `json:"authorName"`
	CreatedAt  time.Time `json:"createdAt"`
}

// PostDraft carries the caller-supplied fields for creating a post
type PostDraft struct {
	AuthorID   string
	AuthorName string
	Title      string
	Content    string
	Category   string
	Skills     []string
}

// CommentDraft carries the caller-supplied fields for appending a comment
type CommentDraft struct {
	Content    string
	AuthorID   string
	AuthorName string
}

// CreatePostRequest defines the request body for creating a new post
type CreatePostRequest struct {
	Title    string   `json:"title" validate:"omitempty,max=200"`
	Content  string   `json:"content" validate:"required,min=1,max=5000"`
	Category string   `json:"category" validate:"omitempty,oneof=Idea Project Skill Resource Question"`
	Skills   []string `json:"skills" validate:"omitempty,dive,min=1,max=50"`
}

// CreateCommentRequest defines the request body for commenting on a post
type CreateCommentRequest struct {
	Content string `json:"content" validate:"required,min=1,max=1000"`
}
