package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port string

	// SerpAPI key for the Google Maps places search
	SerpAPIKey string

	// Hunter.io domain-search credential. Empty means enrichment runs in mock mode.
	HunterAPIKey string
	// Optional: custom Hunter API base URL (leave empty for default)
	HunterAPIURL string

	// Supabase persistence
	SupabaseURL string
	SupabaseKey string

	// Shared secret required on worker endpoints
	WorkerSecret string

	// Firecrawl website scraping (optional, used for content generation context)
	FirecrawlAPIKey string
	FirecrawlAPIURL string

	// Content generation LLM
	ContentBackend string // gemini, vertexai or openrouter
	GoogleAPIKey   string
	GeminiModel    string
	GCPProject     string
	GCPLocation    string
	UseVertexAI    bool

	OpenRouterAPIKey string
	OpenRouterModel  string
}

// Load reads configuration from the environment, honoring a local .env file if present
func Load() *Config {
	if err := godotenv.Load(); err == nil {
		log.Printf("[Config] Loaded environment from .env file")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	backend := os.Getenv("CONTENT_BACKEND")
	if backend == "" {
		backend = "gemini"
	}

	return &Config{
		Port:             port,
		SerpAPIKey:       os.Getenv("SERPAPI_KEY"),
		HunterAPIKey:     os.Getenv("HUNTER_API_KEY"),
		HunterAPIURL:     os.Getenv("HUNTER_API_URL"), // Optional
		SupabaseURL:      os.Getenv("SUPABASE_URL"),
		SupabaseKey:      getEnvWithFallback("SUPABASE_SECRET_KEY", "SUPABASE_KEY"),
		WorkerSecret:     os.Getenv("WORKER_SECRET"),
		FirecrawlAPIKey:  os.Getenv("FIRECRAWL_API_KEY"),
		FirecrawlAPIURL:  os.Getenv("FIRECRAWL_API_URL"), // Optional
		ContentBackend:   backend,
		GoogleAPIKey:     os.Getenv("GOOGLE_API_KEY"),
		GeminiModel:      os.Getenv("GEMINI_MODEL"),
		GCPProject:       os.Getenv("GOOGLE_CLOUD_PROJECT"),
		GCPLocation:      os.Getenv("GOOGLE_CLOUD_LOCATION"),
		UseVertexAI:      os.Getenv("GOOGLE_GENAI_USE_VERTEXAI") == "true",
		OpenRouterAPIKey: os.Getenv("OPENROUTER_API_KEY"),
		OpenRouterModel:  os.Getenv("OPENROUTER_MODEL"),
	}
}

// getEnvWithFallback returns the primary env var if set, otherwise the fallback
func getEnvWithFallback(primary, fallback string) string {
	if val := os.Getenv(primary); val != "" {
		return val
	}
	return os.Getenv(fallback)
}
