package api

import (
	"log"
	"net/http"

	"mapleads/leadgen-worker/internal/api/controllers"
	"mapleads/leadgen-worker/internal/dto"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Services holds the application services exposed over HTTP. Content may be
// nil when no model backend is configured.
type Services struct {
	Scraper  controllers.LeadScrapeService
	Enricher controllers.LeadEnrichService
	Content  controllers.ContentService
}

// NewRouter creates and configures a new Gin router
func NewRouter(workerSecret string, svcs Services) *gin.Engine {
	router := gin.Default() // Includes Logger and Recovery middleware

	// Initialize controllers
	scraperController := controllers.NewScraperController(svcs.Scraper)
	leadsController := controllers.NewLeadsController(svcs.Enricher)
	contentController := controllers.NewContentController(svcs.Content)

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes, guarded by the shared worker secret
	v1 := router.Group("/api/v1")
	v1.Use(workerAuth(workerSecret))
	{
		v1.POST("/scrape", scraperController.Scrape)
		v1.POST("/leads/:id/enrich", leadsController.Enrich)
		v1.POST("/leads/:id/rescore", leadsController.Rescore)
		v1.POST("/content/generate", contentController.Generate)
		v1.POST("/content/generate-campaign", contentController.GenerateCampaign)
	}

	return router
}

// workerAuth validates the Authorization header against the shared worker
// secret. Callers are trusted backends, so a static bearer token is enough.
func workerAuth(secret string) gin.HandlerFunc {
	expectedAuth := "Bearer " + secret

	return func(c *gin.Context) {
		if c.GetHeader("Authorization") != expectedAuth {
			log.Printf("[Router] Unauthorized request to %s: invalid Authorization header", c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Unauthorized: invalid worker secret",
			})
			return
		}
		c.Next()
	}
}
