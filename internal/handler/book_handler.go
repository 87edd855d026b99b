package handler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v3"

	"readnext/internal/domain"
	"readnext/internal/port"
	"readnext/internal/service"
)

// BookHandler handles catalog read endpoints: search, lookup and random
// discovery.
type BookHandler struct {
	search        *service.SearchService
	catalog       *service.CatalogService
	defaultLimit  int
	defaultRandom int
}

// NewBookHandler creates a new book handler.
func NewBookHandler(search *service.SearchService, catalog *service.CatalogService, defaultLimit, defaultRandom int) *BookHandler {
	return &BookHandler{
		search:        search,
		catalog:       catalog,
		defaultLimit:  defaultLimit,
		defaultRandom: defaultRandom,
	}
}

// Register sets up book routes. The fixed routes go first so "search" and
// "random" are never parsed as an index.
func (h *BookHandler) Register(router fiber.Router) {
	books := router.Group("/books")
	books.Get("/search", h.Search)
	books.Get("/random", h.Random)
	books.Get("/:index", h.Get)
}

// Search performs a case-insensitive title search.
func (h *BookHandler) Search(c fiber.Ctx) error {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "query parameter q is required"})
	}

	limit, err := queryInt(c, "limit", h.defaultLimit)
	if err != nil || limit < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "limit must be a positive integer"})
	}

	books := h.search.Search(q, limit)
	return c.JSON(domain.SearchResponse{
		Query: q,
		Count: len(books),
		Books: books,
	})
}

// Get returns a single book by its catalog index.
func (h *BookHandler) Get(c fiber.Ctx) error {
	index, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "index must be an integer"})
	}

	book, err := h.catalog.Get(index)
	if errors.Is(err, port.ErrBookNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": fmt.Sprintf("book index %d out of range, valid range: 0-%d", index, h.catalog.Total()-1),
		})
	}
	return c.JSON(book)
}

// Random returns a random selection of books for discovery.
func (h *BookHandler) Random(c fiber.Ctx) error {
	count, err := queryInt(c, "count", h.defaultRandom)
	if err != nil || count < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "count must be a positive integer"})
	}
	return c.JSON(h.catalog.Random(count))
}

// queryInt reads an integer query parameter, falling back to def when the
// parameter is absent.
func queryInt(c fiber.Ctx, key string, def int) (int, error) {
	v := c.Query(key)
	if v == "" {
		return def, nil
	}
	return strconv.Atoi(v)
}
