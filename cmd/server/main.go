package main

import (
	"log/slog"
	"math/rand"
	"os"
	"time"

	json "github.com/goccy/go-json"
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/static"
	"github.com/joho/godotenv"

	"readnext/internal/adapter/store"
	"readnext/internal/domain"
	"readnext/internal/handler"
	"readnext/internal/service"
	"readnext/pkg/config"
)

const version = "1.0.0"

func main() {
	// ── Load .env file ───────────────────────────────────────────────────
	_ = godotenv.Load() // silently ignore if .env doesn't exist

	// ── Configuration ────────────────────────────────────────────────────
	cfg := config.Load()

	slog.Info("🚀 Starting ReadNext API",
		"port", cfg.Port,
		"artifact", cfg.ArtifactPath,
	)

	// ── Model artifact ───────────────────────────────────────────────────
	// The stores are immutable after this point; a failed or partial load
	// must never reach the serving loop.
	catalogStore, featureStore, err := store.LoadArtifact(cfg.ArtifactPath)
	if err != nil {
		slog.Error("failed to load artifact", "path", cfg.ArtifactPath, "error", err)
		os.Exit(1)
	}

	// ── Services ─────────────────────────────────────────────────────────
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	searchService := service.NewSearchService(catalogStore, cfg.SearchMaxLimit)
	recommendService := service.NewRecommendService(catalogStore, featureStore, cfg.RecommendMaxK)
	catalogService := service.NewCatalogService(catalogStore, cfg.RandomMaxCount, rng)

	// ── Fiber App ────────────────────────────────────────────────────────
	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: []string{cfg.FrontendURL},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
	}))

	// ── Routes ───────────────────────────────────────────────────────────
	api := app.Group("/api/v1")

	api.Get("/health", func(c fiber.Ctx) error {
		return c.JSON(domain.HealthResponse{
			Status:     "healthy",
			TotalBooks: catalogService.Total(),
			Version:    version,
		})
	})

	bookHandler := handler.NewBookHandler(searchService, catalogService, cfg.SearchDefaultLimit, cfg.RandomDefaultCount)
	bookHandler.Register(api)

	recommendHandler := handler.NewRecommendHandler(recommendService, cfg.RecommendDefaultK)
	recommendHandler.Register(api)

	// ── Web Client ───────────────────────────────────────────────────────
	if cfg.ServeStatic {
		app.Use("/", static.New(cfg.StaticDir))
	}

	// ── Start ────────────────────────────────────────────────────────────
	slog.Info("🌐 Fiber listening", "port", cfg.Port, "books", catalogService.Total())
	if err := app.Listen(":" + cfg.Port); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
