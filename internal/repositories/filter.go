package repositories

import (
	"strings"

	"github.com/social-sphere/backend/internal/models"
)

// FilterPosts narrows a post list by category and search term. A post passes
// when the category matches (or "all"/empty is given) and the term, lowered,
// is a substring of its title, content, or author name.
func FilterPosts(posts []models.Post, category, term string) []models.Post {
	out := make([]models.Post, 0, len(posts))
	for _, p := range posts {
		if matchesCategory(&p, category) && matchesTerm(&p, term) {
			out = append(out, p)
		}
	}
	return out
}

func matchesCategory(p *models.Post, category string) bool {
	return category == "" || strings.EqualFold(category, "all") || p.Category == category
}

func matchesTerm(p *models.Post, term string) bool {
	if term == "" {
		return true
	}
	t := strings.ToLower(term)
	return strings.Contains(strings.ToLower(p.Title), t) ||
		strings.Contains(strings.ToLower(p.Content), t) ||
		strings.Contains(strings.ToLower(p.AuthorName), t)
}
