package domain

// SearchResponse is the body of GET /books/search.
type SearchResponse struct {
	Query string `json:"query"`
	Count int    `json:"count"`
	Books []Book `json:"books"`
}

// RecommendationRequest is the body of POST /recommend. BookIndex is a
// pointer so a missing field can be told apart from index 0.
type RecommendationRequest struct {
	BookIndex *int `json:"book_index"`
	TopK      int  `json:"top_k"`
}

// RecommendationResponse is the body of POST /recommend.
type RecommendationResponse struct {
	SourceBook      Book              `json:"source_book"`
	Recommendations []RecommendedBook `json:"recommendations"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status     string `json:"status"`
	TotalBooks int    `json:"total_books"`
	Version    string `json:"version"`
}
