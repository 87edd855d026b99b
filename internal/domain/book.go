package domain

// Book is one row of the catalog. Index is assigned by position in the
// artifact at load time and doubles as the row position in the feature
// matrix; it never changes for the lifetime of the process.
type Book struct {
	Index       int      `json:"index"`
	Title       string   `json:"title"`
	Author      string   `json:"author"`
	Description string   `json:"description"`
	Genres      []string `json:"genres"`
}

// RecommendedBook is a Book with the similarity score attached.
// Score is in [0,1], higher is more similar.
type RecommendedBook struct {
	Book
	SimilarityScore float64 `json:"similarity_score"`
}
