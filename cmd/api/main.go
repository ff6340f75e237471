package main

import (
	"context"
	"log"

	"mapleads/leadgen-worker/internal/api"
	"mapleads/leadgen-worker/internal/config"
	"mapleads/leadgen-worker/internal/handlers"
	"mapleads/leadgen-worker/internal/model/provider"
	"mapleads/leadgen-worker/internal/services"

	_ "mapleads/leadgen-worker/docs" // Swagger generated docs
)

// @title MapLeads Worker API
// @version 1.0
// @description Lead generation worker for Canadian local businesses. Scrapes Google Maps results, scores and stores leads, enriches them with contact emails and generates campaign content drafts.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey WorkerAuth
// @in header
// @name Authorization
// @description Shared worker secret, prefixed with "Bearer "

// @schemes http https
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Validate required configuration
	if cfg.SerpAPIKey == "" {
		log.Fatal("SERPAPI_KEY environment variable is required")
	}
	if cfg.SupabaseURL == "" || cfg.SupabaseKey == "" {
		log.Fatal("SUPABASE_URL and SUPABASE_SECRET_KEY environment variables are required")
	}
	if cfg.WorkerSecret == "" {
		log.Fatal("WORKER_SECRET environment variable is required")
	}

	// Initialize handlers
	placesHandler := handlers.NewPlacesHandler(cfg.SerpAPIKey)

	supabaseHandler, err := handlers.NewSupabaseHandler(cfg.SupabaseURL, cfg.SupabaseKey)
	if err != nil {
		log.Fatalf("Failed to initialize SupabaseHandler: %v", err)
	}
	log.Printf("SupabaseHandler initialized - database access enabled")

	// Initialize HunterHandler if API key is configured; without it the
	// enricher runs in mock mode and synthesizes plausible emails.
	var emailFinder services.EmailFinder
	if cfg.HunterAPIKey != "" {
		hunterHandler, err := handlers.NewHunterHandler(cfg.HunterAPIKey, cfg.HunterAPIURL)
		if err != nil {
			log.Printf("Warning: Failed to initialize HunterHandler: %v", err)
			log.Printf("Continuing with mock email enrichment")
		} else {
			emailFinder = hunterHandler
			log.Printf("HunterHandler initialized - email enrichment enabled")
		}
	} else {
		log.Printf("HUNTER_API_KEY not set - using mock email enrichment")
	}

	// Initialize FirecrawlHandler if API key is configured
	var websiteScraper services.WebsiteScraper
	if cfg.FirecrawlAPIKey != "" {
		firecrawlHandler, err := handlers.NewFirecrawlHandler(cfg.FirecrawlAPIKey, cfg.FirecrawlAPIURL)
		if err != nil {
			log.Printf("Warning: Failed to initialize FirecrawlHandler: %v", err)
			log.Printf("Continuing without website scraping functionality")
		} else {
			websiteScraper = firecrawlHandler
			log.Printf("FirecrawlHandler initialized - website scraping enabled")
		}
	} else {
		log.Printf("FIRECRAWL_API_KEY not set - website scraping disabled")
	}

	// Initialize the content model if a backend is configured
	var contentModel services.ContentModel
	if cfg.GoogleAPIKey != "" || cfg.UseVertexAI || cfg.OpenRouterAPIKey != "" {
		llm, err := provider.NewModel(context.Background(), provider.Config{
			Backend:          provider.Backend(cfg.ContentBackend),
			Model:            modelForBackend(cfg),
			GoogleAPIKey:     cfg.GoogleAPIKey,
			GCPProject:       cfg.GCPProject,
			GCPLocation:      cfg.GCPLocation,
			OpenRouterAPIKey: cfg.OpenRouterAPIKey,
		})
		if err != nil {
			log.Printf("Warning: Failed to initialize content model: %v", err)
			log.Printf("Continuing without content generation")
		} else {
			generatorHandler, err := handlers.NewContentGeneratorHandler(llm)
			if err != nil {
				log.Printf("Warning: Failed to initialize ContentGeneratorHandler: %v", err)
				log.Printf("Continuing without content generation")
			} else {
				contentModel = generatorHandler
				log.Printf("ContentGeneratorHandler initialized - content generation enabled (backend: %s)",
					cfg.ContentBackend)
			}
		}
	} else {
		log.Printf("No model backend configured - content generation disabled")
	}

	// Initialize services
	leadScraper := services.NewLeadScraper(supabaseHandler, placesHandler, nil)
	leadEnricher := services.NewLeadEnricher(supabaseHandler, emailFinder)

	var contentGenerator *services.ContentGenerator
	if contentModel != nil {
		contentGenerator = services.NewContentGenerator(supabaseHandler, contentModel, websiteScraper)
	}

	// Setup router
	svcs := api.Services{
		Scraper:  leadScraper,
		Enricher: leadEnricher,
	}
	if contentGenerator != nil {
		svcs.Content = contentGenerator
	}
	router := api.NewRouter(cfg.WorkerSecret, svcs)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	log.Printf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// modelForBackend picks the configured model name for the active backend.
func modelForBackend(cfg *config.Config) string {
	if provider.Backend(cfg.ContentBackend) == provider.BackendOpenRouter {
		return cfg.OpenRouterModel
	}
	return cfg.GeminiModel
}
