package controllers

import (
	"net/http"

	"mapleads/leadgen-worker/internal/dto"
	"mapleads/leadgen-worker/internal/services"

	"github.com/gin-gonic/gin"
)

// LeadScrapeService runs lead acquisition for a campaign
type LeadScrapeService interface {
	ScrapeLeads(params services.ScrapeLeadsParams) dto.ScrapeLeadsResult
}

// ScraperController handles lead acquisition HTTP requests
type ScraperController struct {
	scraper LeadScrapeService
}

// NewScraperController creates a new ScraperController instance
func NewScraperController(scraper LeadScrapeService) *ScraperController {
	return &ScraperController{
		scraper: scraper,
	}
}

// Scrape godoc
// @Summary      Scrape leads for a campaign
// @Description  Searches the places directory for businesses matching the query and location, scores them and persists them as campaign leads
// @Tags         leads
// @Accept       json
// @Produce      json
// @Security     WorkerAuth
// @Param        request body dto.ScrapeLeadsRequest true "Acquisition parameters"
// @Success      200 {object} dto.ScrapeLeadsResult "Run outcome (success may be false)"
// @Failure      400 {object} dto.ErrorResponse "Bad request - validation error"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Router       /scrape [post]
func (ctrl *ScraperController) Scrape(c *gin.Context) {
	var req dto.ScrapeLeadsRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: err.Error(),
		})
		return
	}

	result := ctrl.scraper.ScrapeLeads(services.ScrapeLeadsParams{
		Query:      req.Query,
		Location:   req.Location,
		MaxResults: req.MaxResults,
		CampaignID: req.CampaignID,
		UserID:     req.UserID,
	})

	// Orchestration failures are reported in the body, not as HTTP errors:
	// the run completed, it just did not produce leads.
	c.JSON(http.StatusOK, result)
}
