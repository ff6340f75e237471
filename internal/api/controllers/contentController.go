package controllers

import (
	"context"
	"net/http"

	"mapleads/leadgen-worker/internal/dto"
	"mapleads/leadgen-worker/internal/services"

	"github.com/gin-gonic/gin"
)

// ContentService generates campaign content drafts
type ContentService interface {
	GenerateForLead(ctx context.Context, params services.GenerateContentParams) dto.GenerateContentResult
	GenerateForCampaign(ctx context.Context, campaignID, userID int64) dto.GenerateContentResult
}

// ContentController handles content generation HTTP requests.
// The generator may be nil when no model backend is configured; content
// routes then return 503 instead of failing at startup.
type ContentController struct {
	generator ContentService
}

// NewContentController creates a new ContentController instance
func NewContentController(generator ContentService) *ContentController {
	return &ContentController{
		generator: generator,
	}
}

// Generate godoc
// @Summary      Generate content for a lead
// @Description  Generates a personalized content draft for a single lead and stores it for review
// @Tags         content
// @Accept       json
// @Produce      json
// @Security     WorkerAuth
// @Param        request body dto.GenerateContentRequest true "Generation parameters"
// @Success      200 {object} dto.GenerateContentResult "Generation outcome (success may be false)"
// @Failure      400 {object} dto.ErrorResponse "Bad request - validation error"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      503 {object} dto.ErrorResponse "Content generation not configured"
// @Router       /content/generate [post]
func (ctrl *ContentController) Generate(c *gin.Context) {
	if !ctrl.available(c) {
		return
	}

	var req dto.GenerateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: err.Error(),
		})
		return
	}

	result := ctrl.generator.GenerateForLead(c.Request.Context(), services.GenerateContentParams{
		LeadID:     req.LeadID,
		CampaignID: req.CampaignID,
		UserID:     req.UserID,
	})

	c.JSON(http.StatusOK, result)
}

// GenerateCampaign godoc
// @Summary      Generate content for a whole campaign
// @Description  Generates content drafts for every lead in the campaign, skipping leads that fail
// @Tags         content
// @Accept       json
// @Produce      json
// @Security     WorkerAuth
// @Param        request body dto.GenerateCampaignContentRequest true "Generation parameters"
// @Success      200 {object} dto.GenerateContentResult "Generation outcome (success may be false)"
// @Failure      400 {object} dto.ErrorResponse "Bad request - validation error"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      503 {object} dto.ErrorResponse "Content generation not configured"
// @Router       /content/generate-campaign [post]
func (ctrl *ContentController) GenerateCampaign(c *gin.Context) {
	if !ctrl.available(c) {
		return
	}

	var req dto.GenerateCampaignContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: err.Error(),
		})
		return
	}

	result := ctrl.generator.GenerateForCampaign(c.Request.Context(), req.CampaignID, req.UserID)

	c.JSON(http.StatusOK, result)
}

func (ctrl *ContentController) available(c *gin.Context) bool {
	if ctrl.generator == nil {
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{
			Error: "Content generation is not configured",
		})
		return false
	}
	return true
}
