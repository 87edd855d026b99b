package handler

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v3"

	"readnext/internal/domain"
	"readnext/internal/port"
	"readnext/internal/service"
)

// RecommendHandler handles the similar-books endpoint.
type RecommendHandler struct {
	recommend *service.RecommendService
	defaultK  int
}

// NewRecommendHandler creates a new recommend handler.
func NewRecommendHandler(recommend *service.RecommendService, defaultK int) *RecommendHandler {
	return &RecommendHandler{recommend: recommend, defaultK: defaultK}
}

// Register sets up the recommend route.
func (h *RecommendHandler) Register(router fiber.Router) {
	router.Post("/recommend", h.Recommend)
}

// Recommend returns the books most similar to the requested source book.
// An out-of-range book_index is a 404, never a silent empty list.
func (h *RecommendHandler) Recommend(c fiber.Ctx) error {
	var body domain.RecommendationRequest
	if err := c.Bind().JSON(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if body.BookIndex == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "book_index is required"})
	}
	if body.TopK < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "top_k must be positive"})
	}

	topK := body.TopK
	if topK == 0 {
		topK = h.defaultK
	}

	source, recs, err := h.recommend.Recommend(*body.BookIndex, topK)
	if errors.Is(err, port.ErrBookNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": fmt.Sprintf("book index %d not found", *body.BookIndex),
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(domain.RecommendationResponse{
		SourceBook:      source,
		Recommendations: recs,
	})
}
