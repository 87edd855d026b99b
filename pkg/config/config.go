package config

import (
	"os"
	"strconv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Server
	Port    string
	AppName string

	// Artifact
	ArtifactPath string

	// Result-count bounds, all server-side clamps
	SearchDefaultLimit int
	SearchMaxLimit     int
	RecommendDefaultK  int
	RecommendMaxK      int
	RandomDefaultCount int
	RandomMaxCount     int

	// Frontend
	FrontendURL string
	ServeStatic bool
	StaticDir   string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Port:    envOrDefault("PORT", "8000"),
		AppName: envOrDefault("APP_NAME", "ReadNext API"),

		ArtifactPath: envOrDefault("ARTIFACT_PATH", "./data/readnext.db"),

		SearchDefaultLimit: envOrDefaultInt("SEARCH_DEFAULT_LIMIT", 10),
		SearchMaxLimit:     envOrDefaultInt("SEARCH_MAX_LIMIT", 50),
		RecommendDefaultK:  envOrDefaultInt("RECOMMEND_DEFAULT_K", 5),
		RecommendMaxK:      envOrDefaultInt("RECOMMEND_MAX_K", 20),
		RandomDefaultCount: envOrDefaultInt("RANDOM_DEFAULT_COUNT", 10),
		RandomMaxCount:     envOrDefaultInt("RANDOM_MAX_COUNT", 50),

		FrontendURL: envOrDefault("FRONTEND_URL", "http://localhost:3000"),
		ServeStatic: envOrDefaultBool("SERVE_STATIC", true),
		StaticDir:   envOrDefault("STATIC_DIR", "./web"),
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envOrDefaultInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return fallback
}

func envOrDefaultBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return fallback
}
