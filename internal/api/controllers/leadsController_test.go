package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"mapleads/leadgen-worker/internal/dto"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEnrichService struct {
	enrichResult   dto.EnrichLeadResult
	rescoreResult  dto.RescoreLeadResult
	enrichedLeadID int64
}

func (f *fakeEnrichService) EnrichLead(ctx context.Context, leadID int64) dto.EnrichLeadResult {
	f.enrichedLeadID = leadID
	return f.enrichResult
}

func (f *fakeEnrichService) RescoreLead(leadID int64) dto.RescoreLeadResult {
	return f.rescoreResult
}

func newLeadsTestRouter(svc *fakeEnrichService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	ctrl := NewLeadsController(svc)
	router.POST("/leads/:id/enrich", ctrl.Enrich)
	router.POST("/leads/:id/rescore", ctrl.Rescore)
	return router
}

func TestLeadsController_Enrich_Success(t *testing.T) {
	svc := &fakeEnrichService{enrichResult: dto.EnrichLeadResult{Success: true}}
	router := newLeadsTestRouter(svc)

	req, err := http.NewRequest(http.MethodPost, "/leads/42/enrich", nil)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(42), svc.enrichedLeadID)

	var response dto.EnrichLeadResult
	err = json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)
	assert.True(t, response.Success)
}

func TestLeadsController_Enrich_LeadNotFound(t *testing.T) {
	svc := &fakeEnrichService{enrichResult: dto.EnrichLeadResult{Success: false, Error: "Lead not found"}}
	router := newLeadsTestRouter(svc)

	req, err := http.NewRequest(http.MethodPost, "/leads/999/enrich", nil)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var response dto.ErrorResponse
	err = json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)
	assert.Equal(t, "Lead not found", response.Error)
}

func TestLeadsController_Enrich_OrchestrationFailureIs200(t *testing.T) {
	// Failures like "No website available" are run outcomes, not HTTP errors
	svc := &fakeEnrichService{enrichResult: dto.EnrichLeadResult{Success: false, Error: "No website available"}}
	router := newLeadsTestRouter(svc)

	req, err := http.NewRequest(http.MethodPost, "/leads/42/enrich", nil)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response dto.EnrichLeadResult
	err = json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)
	assert.False(t, response.Success)
	assert.Equal(t, "No website available", response.Error)
}

func TestLeadsController_Enrich_InvalidID(t *testing.T) {
	svc := &fakeEnrichService{}
	router := newLeadsTestRouter(svc)

	req, err := http.NewRequest(http.MethodPost, "/leads/not-a-number/enrich", nil)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, int64(0), svc.enrichedLeadID, "Service should not be called for invalid IDs")
}

func TestLeadsController_Rescore_Success(t *testing.T) {
	svc := &fakeEnrichService{rescoreResult: dto.RescoreLeadResult{Success: true, LeadScore: 85}}
	router := newLeadsTestRouter(svc)

	req, err := http.NewRequest(http.MethodPost, "/leads/42/rescore", nil)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response dto.RescoreLeadResult
	err = json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)
	assert.True(t, response.Success)
	assert.Equal(t, 85, response.LeadScore)
}

func TestLeadsController_Rescore_LeadNotFound(t *testing.T) {
	svc := &fakeEnrichService{rescoreResult: dto.RescoreLeadResult{Success: false, Error: "Lead not found"}}
	router := newLeadsTestRouter(svc)

	req, err := http.NewRequest(http.MethodPost, "/leads/999/rescore", nil)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
