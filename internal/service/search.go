package service

import (
	"strings"

	"readnext/internal/adapter/store"
	"readnext/internal/domain"
)

// SearchService matches a query string against catalog titles.
type SearchService struct {
	catalog  *store.CatalogStore
	maxLimit int
}

// NewSearchService creates a search service. maxLimit is the server-side cap
// on result counts regardless of what the caller requests.
func NewSearchService(catalog *store.CatalogStore, maxLimit int) *SearchService {
	return &SearchService{catalog: catalog, maxLimit: maxLimit}
}

// Search returns books whose title contains the query, case-insensitively,
// in catalog order. A query that is empty after trimming yields an empty
// result, not an error. limit is clamped to the configured maximum.
func (s *SearchService) Search(query string, limit int) []domain.Book {
	if limit > s.maxLimit {
		limit = s.maxLimit
	}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" || limit < 1 {
		return []domain.Book{}
	}

	matches := []domain.Book{}
	for _, b := range s.catalog.All() {
		if strings.Contains(strings.ToLower(b.Title), q) {
			matches = append(matches, b)
			if len(matches) == limit {
				break
			}
		}
	}
	return matches
}
