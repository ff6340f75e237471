package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mapleads/leadgen-worker/internal/dto"
	"mapleads/leadgen-worker/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeScrapeService struct {
	result dto.ScrapeLeadsResult
	params services.ScrapeLeadsParams
	called bool
}

func (f *fakeScrapeService) ScrapeLeads(params services.ScrapeLeadsParams) dto.ScrapeLeadsResult {
	f.called = true
	f.params = params
	return f.result
}

func newScraperTestRouter(svc *fakeScrapeService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/scrape", NewScraperController(svc).Scrape)
	return router
}

func TestScraperController_Scrape_PassesParams(t *testing.T) {
	svc := &fakeScrapeService{result: dto.ScrapeLeadsResult{Success: true, LeadsCount: 5}}
	router := newScraperTestRouter(svc)

	body := `{"query": "restaurant", "location": "Québec", "max_results": 20, "campaign_id": 12, "user_id": 7}`
	req, err := http.NewRequest(http.MethodPost, "/scrape", strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.True(t, svc.called)
	assert.Equal(t, "restaurant", svc.params.Query)
	assert.Equal(t, "Québec", svc.params.Location)
	assert.Equal(t, 20, svc.params.MaxResults)
	assert.Equal(t, int64(12), svc.params.CampaignID)
	assert.Equal(t, int64(7), svc.params.UserID)

	var response dto.ScrapeLeadsResult
	err = json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)
	assert.Equal(t, 5, response.LeadsCount)
}

func TestScraperController_Scrape_MissingRequiredFields(t *testing.T) {
	testCases := []struct {
		name string
		body string
	}{
		{"missing query", `{"location": "Montréal", "campaign_id": 12, "user_id": 7}`},
		{"missing location", `{"query": "plombier", "campaign_id": 12, "user_id": 7}`},
		{"missing campaign_id", `{"query": "plombier", "location": "Montréal", "user_id": 7}`},
		{"empty body", `{}`},
		{"malformed json", `{"query": `},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &fakeScrapeService{}
			router := newScraperTestRouter(svc)

			req, err := http.NewRequest(http.MethodPost, "/scrape", strings.NewReader(tc.body))
			require.NoError(t, err)
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.False(t, svc.called, "Service should not be called on validation failure")
		})
	}
}

func TestScraperController_Scrape_FailureReportedInBody(t *testing.T) {
	svc := &fakeScrapeService{result: dto.ScrapeLeadsResult{Success: false, Error: "Search failed: quota exceeded"}}
	router := newScraperTestRouter(svc)

	body := `{"query": "plombier", "location": "Montréal", "campaign_id": 12, "user_id": 7}`
	req, err := http.NewRequest(http.MethodPost, "/scrape", strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response dto.ScrapeLeadsResult
	err = json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)
	assert.False(t, response.Success)
	assert.Contains(t, response.Error, "quota exceeded")
}
