// Package store loads the model artifact produced by the offline pipeline
// and exposes it as two immutable in-memory stores: the book catalog and the
// index-aligned feature matrix. Everything here is read-once; after
// LoadArtifact returns there is no writer, so no synchronization exists on
// the request path.
package store

import (
	"database/sql"
	"fmt"
	"log/slog"

	json "github.com/goccy/go-json"
	_ "github.com/mattn/go-sqlite3"

	"readnext/internal/domain"
	"readnext/internal/port"
)

// LoadArtifact opens the SQLite artifact at path read-only and builds the
// catalog and feature stores. Any inconsistency (count mismatch, gap in the
// index sequence, ragged vector dimensions) fails the load; the caller is
// expected to treat that as fatal rather than serve a partial store.
func LoadArtifact(path string) (*CatalogStore, *FeatureStore, error) {
	db, err := sql.Open("sqlite3", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, nil, fmt.Errorf("open artifact: %w", err)
	}
	defer db.Close()

	catalog, err := loadCatalog(db)
	if err != nil {
		return nil, nil, fmt.Errorf("load catalog: %w", err)
	}
	features, err := loadFeatures(db)
	if err != nil {
		return nil, nil, fmt.Errorf("load features: %w", err)
	}

	if len(catalog.books) != len(features.vecs) {
		return nil, nil, fmt.Errorf("%w: %d books vs %d vectors",
			port.ErrArtifactMismatch, len(catalog.books), len(features.vecs))
	}

	slog.Info("artifact loaded",
		"path", path,
		"books", catalog.Len(),
		"dimension", features.Dim(),
	)
	return catalog, features, nil
}

func loadCatalog(db *sql.DB) (*CatalogStore, error) {
	rows, err := db.Query(`SELECT idx, title, author, description, genres FROM books ORDER BY idx`)
	if err != nil {
		return nil, fmt.Errorf("query books: %w", err)
	}
	defer rows.Close()

	var books []domain.Book
	for rows.Next() {
		var (
			b          domain.Book
			genresJSON string
		)
		if err := rows.Scan(&b.Index, &b.Title, &b.Author, &b.Description, &genresJSON); err != nil {
			return nil, fmt.Errorf("scan book: %w", err)
		}
		if b.Index != len(books) {
			return nil, fmt.Errorf("%w: book index %d at row %d", port.ErrArtifactCorrupt, b.Index, len(books))
		}
		if genresJSON != "" {
			if err := json.Unmarshal([]byte(genresJSON), &b.Genres); err != nil {
				return nil, fmt.Errorf("%w: genres of book %d: %v", port.ErrArtifactCorrupt, b.Index, err)
			}
		}
		if b.Genres == nil {
			b.Genres = []string{}
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate books: %w", err)
	}
	if len(books) == 0 {
		return nil, fmt.Errorf("%w: empty books table", port.ErrArtifactCorrupt)
	}
	return NewCatalogStore(books), nil
}

func loadFeatures(db *sql.DB) (*FeatureStore, error) {
	rows, err := db.Query(`SELECT idx, cluster, vector FROM features ORDER BY idx`)
	if err != nil {
		return nil, fmt.Errorf("query features: %w", err)
	}
	defer rows.Close()

	var (
		vecs     [][]float64
		clusters []int
	)
	for rows.Next() {
		var (
			idx     int
			cluster int
			blob    []byte
		)
		if err := rows.Scan(&idx, &cluster, &blob); err != nil {
			return nil, fmt.Errorf("scan feature: %w", err)
		}
		if idx != len(vecs) {
			return nil, fmt.Errorf("%w: feature index %d at row %d", port.ErrArtifactCorrupt, idx, len(vecs))
		}
		vec, err := DecodeVector(blob)
		if err != nil {
			return nil, fmt.Errorf("%w: vector of book %d: %v", port.ErrArtifactCorrupt, idx, err)
		}
		vecs = append(vecs, vec)
		clusters = append(clusters, cluster)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate features: %w", err)
	}

	features, err := NewFeatureStore(vecs, clusters)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", port.ErrArtifactCorrupt, err)
	}
	return features, nil
}
