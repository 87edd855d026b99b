package store

import (
	"fmt"
	"log/slog"
	"math"
)

// FeatureStore is the immutable in-memory feature matrix, index-aligned 1:1
// with the CatalogStore. L2 norms are precomputed at load so a cosine
// distance costs one dot product per pair.
type FeatureStore struct {
	vecs     [][]float64
	norms    []float64
	clusters []int
	dim      int
}

// NewFeatureStore builds a feature store from row-ordered vectors and their
// cluster labels, precomputing L2 norms. All vectors must share one non-zero
// dimension.
func NewFeatureStore(vectors [][]float64, clusters []int) (*FeatureStore, error) {
	if len(vectors) == 0 {
		return nil, fmt.Errorf("empty feature matrix")
	}
	if len(vectors) != len(clusters) {
		return nil, fmt.Errorf("vectors and clusters length mismatch: %d vs %d", len(vectors), len(clusters))
	}
	dim := len(vectors[0])
	if dim == 0 {
		return nil, fmt.Errorf("zero-dimension feature vectors")
	}
	norms := make([]float64, len(vectors))
	for i, vec := range vectors {
		if len(vec) != dim {
			return nil, fmt.Errorf("vector %d has dimension %d, want %d", i, len(vec), dim)
		}
		norms[i] = vectorNorm(vec)
		if norms[i] == 0 {
			slog.Warn("zero-magnitude feature vector", "index", i)
		}
	}
	return &FeatureStore{vecs: vectors, norms: norms, clusters: clusters, dim: dim}, nil
}

// Len returns the number of feature vectors.
func (f *FeatureStore) Len() int {
	return len(f.vecs)
}

// Dim returns the vector dimension.
func (f *FeatureStore) Dim() int {
	return f.dim
}

// Cluster returns the cluster label of the given row.
func (f *FeatureStore) Cluster(index int) int {
	return f.clusters[index]
}

// CosineDistance returns 1 - cosine similarity between rows i and j.
// A zero-magnitude vector is treated as having similarity 0 with everything,
// i.e. distance 1.
func (f *FeatureStore) CosineDistance(i, j int) float64 {
	if f.norms[i] == 0 || f.norms[j] == 0 {
		return 1
	}
	var dot float64
	a, b := f.vecs[i], f.vecs[j]
	for k := range a {
		dot += a[k] * b[k]
	}
	return 1 - dot/(f.norms[i]*f.norms[j])
}

func vectorNorm(v []float64) float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}
