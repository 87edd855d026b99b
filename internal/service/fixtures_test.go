package service

import (
	"testing"

	"readnext/internal/adapter/store"
	"readnext/internal/domain"
)

// fixtureStores builds a small aligned catalog/feature pair. Cluster 0 holds
// the fantasy titles with vectors chosen so that, seen from book 0, book 1 is
// identical (similarity 1) and books 2 and 3 are equidistant (a tie).
// Cluster 1 holds the two science fiction titles.
func fixtureStores(t *testing.T) (*store.CatalogStore, *store.FeatureStore) {
	t.Helper()

	catalog := store.NewCatalogStore([]domain.Book{
		{Index: 0, Title: "Harry Potter and the Philosopher's Stone", Author: "J.K. Rowling", Genres: []string{"Fantasy"}},
		{Index: 1, Title: "Harry Potter and the Chamber of Secrets", Author: "J.K. Rowling", Genres: []string{"Fantasy"}},
		{Index: 2, Title: "The Name of the Wind", Author: "Patrick Rothfuss", Genres: []string{"Fantasy"}},
		{Index: 3, Title: "A Wizard of Earthsea", Author: "Ursula K. Le Guin", Genres: []string{"Fantasy"}},
		{Index: 4, Title: "Dune", Author: "Frank Herbert", Genres: []string{"Science Fiction"}},
		{Index: 5, Title: "Foundation", Author: "Isaac Asimov", Genres: []string{"Science Fiction"}},
	})

	features, err := store.NewFeatureStore([][]float64{
		{1, 0, 0},
		{2, 0, 0},
		{1, 1, 0},
		{1, -1, 0},
		{0, 0, 1},
		{0, 0, 3},
	}, []int{0, 0, 0, 0, 1, 1})
	if err != nil {
		t.Fatalf("build feature store: %v", err)
	}

	return catalog, features
}
