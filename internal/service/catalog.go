package service

import (
	"math/rand"
	"sync"

	"readnext/internal/adapter/store"
	"readnext/internal/domain"
)

// CatalogService exposes direct catalog reads: lookup by index and random
// discovery sampling.
type CatalogService struct {
	catalog   *store.CatalogStore
	maxRandom int

	// rand.Rand is not safe for concurrent use.
	mu  sync.Mutex
	rng *rand.Rand
}

// NewCatalogService creates a catalog service. The RNG is injected so tests
// can seed it.
func NewCatalogService(catalog *store.CatalogStore, maxRandom int, rng *rand.Rand) *CatalogService {
	return &CatalogService{catalog: catalog, maxRandom: maxRandom, rng: rng}
}

// Get returns the book at index, or port.ErrBookNotFound when out of range.
func (s *CatalogService) Get(index int) (domain.Book, error) {
	return s.catalog.Get(index)
}

// Total returns the catalog size.
func (s *CatalogService) Total() int {
	return s.catalog.Len()
}

// Random returns count distinct books sampled uniformly, count clamped to
// the configured maximum and to the catalog size.
func (s *CatalogService) Random(count int) []domain.Book {
	if count > s.maxRandom {
		count = s.maxRandom
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog.Sample(count, s.rng)
}
