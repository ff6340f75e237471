package controllers

import (
	"context"
	"net/http"
	"strconv"

	"mapleads/leadgen-worker/internal/dto"

	"github.com/gin-gonic/gin"
)

// LeadEnrichService enriches and rescores individual leads
type LeadEnrichService interface {
	EnrichLead(ctx context.Context, leadID int64) dto.EnrichLeadResult
	RescoreLead(leadID int64) dto.RescoreLeadResult
}

// LeadsController handles per-lead HTTP requests
type LeadsController struct {
	enricher LeadEnrichService
}

// NewLeadsController creates a new LeadsController instance
func NewLeadsController(enricher LeadEnrichService) *LeadsController {
	return &LeadsController{
		enricher: enricher,
	}
}

// Enrich godoc
// @Summary      Enrich a lead with a contact email
// @Description  Looks up an email for the lead's website domain (or synthesizes a mock email when no provider is configured) and marks the lead enriched
// @Tags         leads
// @Produce      json
// @Security     WorkerAuth
// @Param        id path int true "Lead ID"
// @Success      200 {object} dto.EnrichLeadResult "Enrichment outcome (success may be false)"
// @Failure      400 {object} dto.ErrorResponse "Invalid lead ID"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      404 {object} dto.ErrorResponse "Lead not found"
// @Router       /leads/{id}/enrich [post]
func (ctrl *LeadsController) Enrich(c *gin.Context) {
	leadID, ok := parseLeadID(c)
	if !ok {
		return
	}

	result := ctrl.enricher.EnrichLead(c.Request.Context(), leadID)
	if !result.Success && result.Error == "Lead not found" {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: result.Error,
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

// Rescore godoc
// @Summary      Recompute a lead's score
// @Description  Recomputes the lead score from the lead's current fields, picking up data added since acquisition (email, phone)
// @Tags         leads
// @Produce      json
// @Security     WorkerAuth
// @Param        id path int true "Lead ID"
// @Success      200 {object} dto.RescoreLeadResult "Rescore outcome (success may be false)"
// @Failure      400 {object} dto.ErrorResponse "Invalid lead ID"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      404 {object} dto.ErrorResponse "Lead not found"
// @Router       /leads/{id}/rescore [post]
func (ctrl *LeadsController) Rescore(c *gin.Context) {
	leadID, ok := parseLeadID(c)
	if !ok {
		return
	}

	result := ctrl.enricher.RescoreLead(leadID)
	if !result.Success && result.Error == "Lead not found" {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: result.Error,
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

// parseLeadID reads the :id path parameter. On failure it writes the 400
// response itself and returns ok=false.
func parseLeadID(c *gin.Context) (int64, bool) {
	leadID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid lead ID",
		})
		return 0, false
	}
	return leadID, true
}
