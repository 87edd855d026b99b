package service

import (
	"math"
	"sort"

	"readnext/internal/adapter/store"
	"readnext/internal/domain"
)

// RecommendService finds the books most similar to a source book by cosine
// distance over the precomputed feature matrix. Candidates are restricted to
// the source book's cluster; an artifact packed with a single cluster
// degenerates to whole-catalog KNN.
type RecommendService struct {
	catalog  *store.CatalogStore
	features *store.FeatureStore
	maxK     int
}

// NewRecommendService creates a recommend service. maxK caps top_k
// server-side.
func NewRecommendService(catalog *store.CatalogStore, features *store.FeatureStore, maxK int) *RecommendService {
	return &RecommendService{catalog: catalog, features: features, maxK: maxK}
}

type neighbor struct {
	index    int
	distance float64
}

// Recommend returns the source book and its topK nearest neighbors within
// the same cluster, ordered by descending similarity. The source book is
// never part of the result. Equal distances are broken by ascending index so
// the output is fully deterministic. A source book whose cluster has no
// other members yields an empty, valid result.
func (s *RecommendService) Recommend(bookIndex, topK int) (domain.Book, []domain.RecommendedBook, error) {
	source, err := s.catalog.Get(bookIndex)
	if err != nil {
		return domain.Book{}, nil, err
	}
	if topK > s.maxK {
		topK = s.maxK
	}
	if topK < 1 {
		return source, []domain.RecommendedBook{}, nil
	}

	cluster := s.features.Cluster(bookIndex)
	candidates := make([]neighbor, 0, s.features.Len())
	for i := 0; i < s.features.Len(); i++ {
		if i == bookIndex || s.features.Cluster(i) != cluster {
			continue
		}
		candidates = append(candidates, neighbor{index: i, distance: s.features.CosineDistance(bookIndex, i)})
	}

	sort.Slice(candidates, func(a, b int) bool {
		if candidates[a].distance != candidates[b].distance {
			return candidates[a].distance < candidates[b].distance
		}
		return candidates[a].index < candidates[b].index
	})
	if topK > len(candidates) {
		topK = len(candidates)
	}

	recs := make([]domain.RecommendedBook, 0, topK)
	for _, n := range candidates[:topK] {
		book, err := s.catalog.Get(n.index)
		if err != nil {
			return domain.Book{}, nil, err
		}
		recs = append(recs, domain.RecommendedBook{
			Book:            book,
			SimilarityScore: similarityScore(n.distance),
		})
	}
	return source, recs, nil
}

// similarityScore maps a cosine distance to a bounded score: 1 - distance,
// clamped to [0,1] (float error can push cosine a hair outside), rounded to
// 4 decimal places.
func similarityScore(distance float64) float64 {
	score := 1 - distance
	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}
	return math.Round(score*10000) / 10000
}
