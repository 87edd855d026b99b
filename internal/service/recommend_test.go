package service

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"readnext/internal/adapter/store"
	"readnext/internal/domain"
	"readnext/internal/port"
)

func TestRecommendRanking(t *testing.T) {
	catalog, features := fixtureStores(t)
	s := NewRecommendService(catalog, features, 20)

	source, recs, err := s.Recommend(0, 5)
	if err != nil {
		t.Fatalf("recommend: %v", err)
	}
	if source.Index != 0 {
		t.Errorf("source index: got %d, want 0", source.Index)
	}

	// Cluster 0 has three other members: book 1 is parallel to book 0,
	// books 2 and 3 tie at 45 degrees and fall back to index order.
	wantIndexes := []int{1, 2, 3}
	gotIndexes := make([]int, len(recs))
	for i, r := range recs {
		gotIndexes[i] = r.Index
	}
	if !reflect.DeepEqual(gotIndexes, wantIndexes) {
		t.Fatalf("recommendation order: got %v, want %v", gotIndexes, wantIndexes)
	}

	if recs[0].SimilarityScore != 1 {
		t.Errorf("score of parallel vector: got %v, want 1", recs[0].SimilarityScore)
	}
	want := math.Round(1/math.Sqrt2*10000) / 10000
	if recs[1].SimilarityScore != want || recs[2].SimilarityScore != want {
		t.Errorf("tied scores: got %v and %v, want %v", recs[1].SimilarityScore, recs[2].SimilarityScore, want)
	}
}

func TestRecommendNeverIncludesSource(t *testing.T) {
	catalog, features := fixtureStores(t)
	s := NewRecommendService(catalog, features, 20)

	for index := 0; index < catalog.Len(); index++ {
		_, recs, err := s.Recommend(index, 20)
		if err != nil {
			t.Fatalf("recommend %d: %v", index, err)
		}
		for _, r := range recs {
			if r.Index == index {
				t.Errorf("recommendations for %d include the source itself", index)
			}
		}
	}
}

func TestRecommendScoresNonIncreasing(t *testing.T) {
	catalog, features := fixtureStores(t)
	s := NewRecommendService(catalog, features, 20)

	for index := 0; index < catalog.Len(); index++ {
		_, recs, err := s.Recommend(index, 20)
		if err != nil {
			t.Fatalf("recommend %d: %v", index, err)
		}
		for i, r := range recs {
			if r.SimilarityScore < 0 || r.SimilarityScore > 1 {
				t.Errorf("score out of [0,1]: %v", r.SimilarityScore)
			}
			if i > 0 && r.SimilarityScore > recs[i-1].SimilarityScore {
				t.Errorf("scores increase at position %d for source %d", i, index)
			}
		}
	}
}

func TestRecommendDeterministic(t *testing.T) {
	catalog, features := fixtureStores(t)
	s := NewRecommendService(catalog, features, 20)

	_, first, err := s.Recommend(0, 5)
	if err != nil {
		t.Fatalf("recommend: %v", err)
	}
	_, second, err := s.Recommend(0, 5)
	if err != nil {
		t.Fatalf("recommend: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("identical calls produced different output")
	}
}

func TestRecommendOutOfRange(t *testing.T) {
	catalog, features := fixtureStores(t)
	s := NewRecommendService(catalog, features, 20)

	for _, index := range []int{-1, catalog.Len(), 9999} {
		if _, _, err := s.Recommend(index, 5); !errors.Is(err, port.ErrBookNotFound) {
			t.Errorf("index %d: expected ErrBookNotFound, got %v", index, err)
		}
	}
}

func TestRecommendClusterRestriction(t *testing.T) {
	catalog, features := fixtureStores(t)
	s := NewRecommendService(catalog, features, 20)

	_, recs, err := s.Recommend(4, 10)
	if err != nil {
		t.Fatalf("recommend: %v", err)
	}
	if len(recs) != 1 || recs[0].Index != 5 {
		t.Fatalf("cluster 1 recommendations: got %v, want only book 5", recs)
	}
	if recs[0].SimilarityScore != 1 {
		t.Errorf("score of parallel vector: got %v, want 1", recs[0].SimilarityScore)
	}
}

func TestRecommendTopKClamp(t *testing.T) {
	catalog, features := fixtureStores(t)
	s := NewRecommendService(catalog, features, 2)

	_, recs, err := s.Recommend(0, 50)
	if err != nil {
		t.Fatalf("recommend: %v", err)
	}
	if len(recs) != 2 {
		t.Errorf("clamped result count: got %d, want 2", len(recs))
	}
}

func TestRecommendLonelyCluster(t *testing.T) {
	catalog := store.NewCatalogStore([]domain.Book{
		{Index: 0, Title: "Solitude"},
		{Index: 1, Title: "Company"},
	})
	features, err := store.NewFeatureStore([][]float64{{1, 0}, {0, 1}}, []int{0, 1})
	if err != nil {
		t.Fatalf("build feature store: %v", err)
	}
	s := NewRecommendService(catalog, features, 20)

	_, recs, err := s.Recommend(0, 5)
	if err != nil {
		t.Fatalf("recommend: %v", err)
	}
	if len(recs) != 0 {
		t.Errorf("lonely cluster: got %d recommendations, want 0", len(recs))
	}
}

func TestRecommendZeroVector(t *testing.T) {
	catalog := store.NewCatalogStore([]domain.Book{
		{Index: 0, Title: "Blank"},
		{Index: 1, Title: "One"},
		{Index: 2, Title: "Two"},
	})
	features, err := store.NewFeatureStore([][]float64{{0, 0}, {1, 0}, {0, 1}}, []int{0, 0, 0})
	if err != nil {
		t.Fatalf("build feature store: %v", err)
	}
	s := NewRecommendService(catalog, features, 20)

	_, recs, err := s.Recommend(0, 5)
	if err != nil {
		t.Fatalf("recommend: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("result count: got %d, want 2", len(recs))
	}
	// Distance to a zero-magnitude vector is defined as 1, so everything
	// scores 0 and order falls back to ascending index.
	if recs[0].Index != 1 || recs[1].Index != 2 {
		t.Errorf("order: got %d,%d want 1,2", recs[0].Index, recs[1].Index)
	}
	for _, r := range recs {
		if r.SimilarityScore != 0 {
			t.Errorf("score against zero vector: got %v, want 0", r.SimilarityScore)
		}
	}
}
