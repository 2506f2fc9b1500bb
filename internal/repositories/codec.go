package repositories

import (
	"time"

	"github.com/social-sphere/backend/internal/models"
	"github.com/social-sphere/backend/internal/store"
)

// Converters between the store's raw document maps and the typed models.
// Document field names match what the store holds, so posts written by older
// clients of the same collections decode unchanged.

func postFromDocument(doc *store.Document) *models.Post {
	return &models.Post{
		ID:         doc.ID,
		Title:      docString(doc.Data, "title"),
		Content:    docString(doc.Data, "content"),
		Category:   docString(doc.Data, "category"),
		Skills:     docStringSlice(doc.Data, "skills"),
		AuthorID:   docString(doc.Data, "authorId"),
		AuthorName: docString(doc.Data, "authorName"),
		Likes:      docStringSlice(doc.Data, "likes"),
		Comments:   docComments(doc.Data, "comments"),
		CreatedAt:  docTime(doc.Data, "createdAt"),
		UpdatedAt:  docTime(doc.Data, "updatedAt"),
	}
}

func commentToMap(c *models.Comment) map[string]interface{} {
	return map[string]interface{}{
		"id":         c.ID,
		"content":    c.Content,
		"authorId":   c.AuthorID,
		"authorName": c.AuthorName,
		"createdAt":  c.CreatedAt,
	}
}

func commentFromMap(m map[string]interface{}) models.Comment {
	return models.Comment{
		ID:         docString(m, "id"),
		Content:    docString(m, "content"),
		AuthorID:   docString(m, "authorId"),
		AuthorName: docString(m, "authorName"),
		CreatedAt:  docTime(m, "createdAt"),
	}
}

func userFromDocument(doc *store.Document) *models.User {
	return &models.User{
		UID:          doc.ID,
		Email:        docString(doc.Data, "email"),
		Name:         docString(doc.Data, "name"),
		PasswordHash: docString(doc.Data, "passwordHash"),
		CreatedAt:    docTime(doc.Data, "createdAt"),
		UpdatedAt:    docTime(doc.Data, "updatedAt"),
	}
}

func docString(data map[string]interface{}, key string) string {
	if s, ok := data[key].(string); ok {
		return s
	}
	return ""
}

func docTime(data map[string]interface{}, key string) time.Time {
	if t, ok := data[key].(time.Time); ok {
		return t
	}
	return time.Time{}
}

func docStringSlice(data map[string]interface{}, key string) []string {
	raw, ok := data[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func docComments(data map[string]interface{}, key string) []models.Comment {
	raw, ok := data[key].([]interface{})
	if !ok {
		return []models.Comment{}
	}
	out := make([]models.Comment, 0, len(raw))
	for _, v := range raw {
		if m, ok := v.(map[string]interface{}); ok {
			out = append(out, commentFromMap(m))
		}
	}
	return out
}

func toInterfaceSlice(in []string) []interface{} {
	out := make([]interface{}, len(in))
	for i, s := range in {
		out[i] = s
	}
	return out
}
