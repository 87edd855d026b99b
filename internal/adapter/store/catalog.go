package store

import (
	"math/rand"

	"readnext/internal/domain"
	"readnext/internal/port"
)

// CatalogStore is the immutable in-memory book table. It is built once by
// LoadArtifact and never written afterwards, so it is safe to share across
// any number of concurrent requests without locking.
type CatalogStore struct {
	books []domain.Book
}

// NewCatalogStore builds a catalog from books already in index order.
func NewCatalogStore(books []domain.Book) *CatalogStore {
	return &CatalogStore{books: books}
}

// Len returns the number of books in the catalog.
func (c *CatalogStore) Len() int {
	return len(c.books)
}

// Get returns the book at the given index.
func (c *CatalogStore) Get(index int) (domain.Book, error) {
	if index < 0 || index >= len(c.books) {
		return domain.Book{}, port.ErrBookNotFound
	}
	return c.books[index], nil
}

// All returns the backing slice in catalog order. Callers must treat it as
// read-only.
func (c *CatalogStore) All() []domain.Book {
	return c.books
}

// Sample returns count distinct books drawn uniformly at random.
// count larger than the catalog returns the whole catalog in random order.
func (c *CatalogStore) Sample(count int, rng *rand.Rand) []domain.Book {
	if count > len(c.books) {
		count = len(c.books)
	}
	if count <= 0 {
		return []domain.Book{}
	}
	perm := rng.Perm(len(c.books))
	out := make([]domain.Book, count)
	for i := 0; i < count; i++ {
		out[i] = c.books[perm[i]]
	}
	return out
}
