package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/social-sphere/backend/internal/apperrors"
	"github.com/social-sphere/backend/internal/models"
	"github.com/social-sphere/backend/internal/store"
)

const postsCollection = "posts"

// PostRepository defines the interface for post data operations
type PostRepository interface {
	CreatePost(ctx context.Context, draft models.PostDraft) (*models.Post, error)
	ListPosts(ctx context.Context) ([]models.Post, error)
	GetPost(ctx context.Context, id string) (*models.Post, error)
	AddComment(ctx context.Context, postID string, draft models.CommentDraft) (*models.Comment, error)
	ToggleLike(ctx context.Context, postID, userID string, currentlyLiked bool) error
	DeletePost(ctx context.Context, id string) error
}

// StorePostRepository implements PostRepository over a document store
type StorePostRepository struct {
	store store.Client
}

// NewStorePostRepository creates a new StorePostRepository
func NewStorePostRepository(st store.Client) *StorePostRepository {
	return &StorePostRepository{store: st}
}

// CreatePost validates a draft, persists it with store-assigned timestamps,
// and re-reads the document so the caller gets exactly the persisted shape.
func (r *StorePostRepository) CreatePost(ctx context.Context, draft models.PostDraft) (*models.Post, error) {
	if draft.AuthorID == "" {
		return nil, apperrors.NewValidationError("authorId", "is required")
	}
	content := strings.TrimSpace(draft.Content)
	if content == "" {
		return nil, apperrors.NewValidationError("content", "is required")
	}
	if draft.Category != "" && !validCategory(draft.Category) {
		return nil, apperrors.NewValidationError("category", "must be one of "+strings.Join(models.Categories(), ", "))
	}

	data := map[string]interface{}{
		"authorId":   draft.AuthorID,
		"authorName": draft.AuthorName,
		"title":      draft.Title,
		"content":    content,
		"category":   draft.Category,
		"skills":     toInterfaceSlice(dedupeSkills(draft.Skills)),
		"likes":      []interface{}{},
		"comments":   []interface{}{},
		"createdAt":  store.ServerTimestamp,
		"updatedAt":  store.ServerTimestamp,
	}

	id, err := r.store.Add(ctx, postsCollection, data)
	if err != nil {
		if errors.Is(err, store.ErrPermissionDenied) {
			return nil, apperrors.NewStoreErrorMessage("create post",
				"You do not have permission to create posts. Please make sure you are logged in.", err)
		}
		return nil, apperrors.NewStoreError("create post", err)
	}

	doc, err := r.store.Get(ctx, postsCollection, id)
	if err != nil {
		return nil, apperrors.NewStoreError("read created post", err)
	}
	return postFromDocument(doc), nil
}

// ListPosts returns all posts ordered by creation time, newest first
func (r *StorePostRepository) ListPosts(ctx context.Context) ([]models.Post, error) {
	docs, err := r.store.List(ctx, postsCollection, "createdAt", true)
	if err != nil {
		return nil, apperrors.NewStoreError("list posts", err)
	}
	posts := make([]models.Post, 0, len(docs))
	for _, doc := range docs {
		posts = append(posts, *postFromDocument(doc))
	}
	return posts, nil
}

// GetPost retrieves a single post including its embedded comments
func (r *StorePostRepository) GetPost(ctx context.Context, id string) (*models.Post, error) {
	doc, err := r.store.Get(ctx, postsCollection, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("post", id)
		}
		return nil, apperrors.NewStoreError("get post", err)
	}
	return postFromDocument(doc), nil
}

// AddComment appends a comment to an existing post's comment sequence
func (r *StorePostRepository) AddComment(ctx context.Context, postID string, draft models.CommentDraft) (*models.Comment, error) {
	if postID == "" {
		return nil, apperrors.NewValidationError("postId", "is required")
	}
	if strings.TrimSpace(draft.Content) == "" || draft.AuthorID == "" || draft.AuthorName == "" {
		return nil, apperrors.NewValidationError("comment", "must include content, authorId, and authorName")
	}

	// Existence check before the write; the store's array append would
	// otherwise fail with a bare not-found from the update itself.
	if _, err := r.store.Get(ctx, postsCollection, postID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("post", postID)
		}
		return nil, apperrors.NewStoreError("get post", err)
	}

	comment := &models.Comment{
		ID:         uuid.NewString(),
		Content:    draft.Content,
		AuthorID:   draft.AuthorID,
		AuthorName: draft.AuthorName,
		CreatedAt:  time.Now().UTC(),
	}

	updates := []store.Update{
		{Path: "comments", Value: store.ArrayUnion(commentToMap(comment))},
		{Path: "updatedAt", Value: store.ServerTimestamp},
	}
	if err := r.store.Update(ctx, postsCollection, postID, updates); err != nil {
		if errors.Is(err, store.ErrPermissionDenied) {
			return nil, apperrors.NewStoreErrorMessage("add comment", "You must be logged in to comment.", err)
		}
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("post", postID)
		}
		return nil, apperrors.NewStoreError("add comment", err)
	}
	return comment, nil
}

// ToggleLike adds or removes the user from the post's likes set. Both
// directions are idempotent under the store's set semantics, so a stale
// currentlyLiked flag cannot corrupt the set.
func (r *StorePostRepository) ToggleLike(ctx context.Context, postID, userID string, currentlyLiked bool) error {
	if postID == "" {
		return apperrors.NewValidationError("postId", "is required")
	}
	if userID == "" {
		return apperrors.NewValidationError("userId", "is required")
	}

	var likesUpdate store.Update
	if currentlyLiked {
		likesUpdate = store.Update{Path: "likes", Value: store.ArrayRemove(userID)}
	} else {
		likesUpdate = store.Update{Path: "likes", Value: store.ArrayUnion(userID)}
	}
	updates := []store.Update{likesUpdate, {Path: "updatedAt", Value: store.ServerTimestamp}}

	if err := r.store.Update(ctx, postsCollection, postID, updates); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperrors.NewNotFoundError("post", postID)
		}
		return apperrors.NewStoreError("toggle like", err)
	}
	return nil
}

// DeletePost irreversibly removes a post and its embedded comments. Ownership
// is enforced by the caller, not here.
func (r *StorePostRepository) DeletePost(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.NewValidationError("postId", "is required")
	}
	if err := r.store.Delete(ctx, postsCollection, id); err != nil {
		return apperrors.NewStoreError("delete post", err)
	}
	return nil
}

func validCategory(category string) bool {
	for _, c := range models.Categories() {
		if c == category {
			return true
		}
	}
	return false
}

// dedupeSkills trims, drops empties, and de-duplicates preserving entry order
func dedupeSkills(skills []string) []string {
	seen := make(map[string]bool, len(skills))
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		s = strings.TrimSpace(s)
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
