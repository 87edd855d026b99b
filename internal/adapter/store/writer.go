package store

import (
	"database/sql"
	"fmt"

	json "github.com/goccy/go-json"

	"readnext/internal/domain"
)

// WriteArtifact creates the SQLite artifact at path from parallel slices of
// books, feature vectors and cluster labels. Only the offline packer calls
// this; the server never writes an artifact.
func WriteArtifact(path string, books []domain.Book, vectors [][]float64, clusters []int) error {
	if len(books) != len(vectors) || len(books) != len(clusters) {
		return fmt.Errorf("row count mismatch: %d books, %d vectors, %d clusters",
			len(books), len(vectors), len(clusters))
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return fmt.Errorf("create artifact: %w", err)
	}
	defer db.Close()

	const schema = `
		CREATE TABLE books (
			idx         INTEGER PRIMARY KEY,
			title       TEXT NOT NULL,
			author      TEXT NOT NULL,
			description TEXT NOT NULL,
			genres      TEXT NOT NULL
		);
		CREATE TABLE features (
			idx     INTEGER PRIMARY KEY,
			cluster INTEGER NOT NULL,
			vector  BLOB NOT NULL
		);`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	bookStmt, err := tx.Prepare(`INSERT INTO books (idx, title, author, description, genres) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare books insert: %w", err)
	}
	defer bookStmt.Close()

	featStmt, err := tx.Prepare(`INSERT INTO features (idx, cluster, vector) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare features insert: %w", err)
	}
	defer featStmt.Close()

	for i, b := range books {
		genres := b.Genres
		if genres == nil {
			genres = []string{}
		}
		genresJSON, err := json.Marshal(genres)
		if err != nil {
			return fmt.Errorf("encode genres of book %d: %w", i, err)
		}
		if _, err := bookStmt.Exec(i, b.Title, b.Author, b.Description, string(genresJSON)); err != nil {
			return fmt.Errorf("insert book %d: %w", i, err)
		}
		if _, err := featStmt.Exec(i, clusters[i], EncodeVector(vectors[i])); err != nil {
			return fmt.Errorf("insert feature %d: %w", i, err)
		}
	}

	return tx.Commit()
}
