// Command artifact packs the outputs of the offline training pipeline into
// the SQLite artifact consumed by the server. Training itself (TF-IDF,
// scaling, clustering) happens elsewhere; this tool only converts its
// exported files.
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"readnext/internal/adapter/store"
	"readnext/internal/domain"
)

func main() {
	var (
		booksPath      string
		embeddingsPath string
		clustersPath   string
		outPath        string
	)

	rootCmd := &cobra.Command{
		Use:   "artifact",
		Short: "Build and inspect ReadNext model artifacts",
	}

	packCmd := &cobra.Command{
		Use:   "pack",
		Short: "Pack book metadata and embeddings into a model artifact",
		RunE: func(cmd *cobra.Command, args []string) error {
			return pack(booksPath, embeddingsPath, clustersPath, outPath)
		},
	}

	packCmd.Flags().StringVar(&booksPath, "books", "", "Book metadata JSON file")
	packCmd.Flags().StringVar(&embeddingsPath, "embeddings", "", "Embedding matrix CSV file (one row per book)")
	packCmd.Flags().StringVar(&clustersPath, "clusters", "", "Cluster labels file, one integer per line (optional)")
	packCmd.Flags().StringVar(&outPath, "out", "readnext.db", "Output artifact path")
	_ = packCmd.MarkFlagRequired("books")
	_ = packCmd.MarkFlagRequired("embeddings")

	inspectCmd := &cobra.Command{
		Use:   "inspect <artifact>",
		Short: "Load an artifact and print its shape",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, features, err := store.LoadArtifact(args[0])
			if err != nil {
				return err
			}
			fmt.Printf("books: %d\ndimension: %d\n", catalog.Len(), features.Dim())
			return nil
		},
	}

	rootCmd.AddCommand(packCmd, inspectCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func pack(booksPath, embeddingsPath, clustersPath, outPath string) error {
	books, err := readBooks(booksPath)
	if err != nil {
		return fmt.Errorf("read books: %w", err)
	}
	vectors, err := readEmbeddings(embeddingsPath)
	if err != nil {
		return fmt.Errorf("read embeddings: %w", err)
	}

	clusters := make([]int, len(books))
	if clustersPath != "" {
		clusters, err = readClusters(clustersPath)
		if err != nil {
			return fmt.Errorf("read clusters: %w", err)
		}
	}

	if len(vectors) != len(books) || len(clusters) != len(books) {
		return fmt.Errorf("row count mismatch: %d books, %d embeddings, %d cluster labels",
			len(books), len(vectors), len(clusters))
	}

	if err := store.WriteArtifact(outPath, books, vectors, clusters); err != nil {
		return fmt.Errorf("write artifact: %w", err)
	}

	// Verify through the server's own loader so a bad pack never ships.
	catalog, features, err := store.LoadArtifact(outPath)
	if err != nil {
		return fmt.Errorf("verify artifact: %w", err)
	}

	fmt.Printf("Packed %d books (dimension %d) into %s\n", catalog.Len(), features.Dim(), outPath)
	return nil
}

func readBooks(path string) ([]domain.Book, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var books []domain.Book
	if err := json.Unmarshal(data, &books); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	for i := range books {
		books[i].Index = i
	}
	return books, nil
}

func readEmbeddings(path string) ([][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	vectors := make([][]float64, len(records))
	for i, record := range records {
		vec := make([]float64, len(record))
		for j, field := range record {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d column %d of %s: %w", i, j, path, err)
			}
			vec[j] = v
		}
		vectors[i] = vec
	}
	return vectors, nil
}

func readClusters(path string) ([]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	clusters := make([]int, len(records))
	for i, record := range records {
		if len(record) != 1 {
			return nil, fmt.Errorf("row %d of %s: expected a single label", i, path)
		}
		label, err := strconv.Atoi(record[0])
		if err != nil {
			return nil, fmt.Errorf("row %d of %s: %w", i, path, err)
		}
		clusters[i] = label
	}
	return clusters, nil
}
