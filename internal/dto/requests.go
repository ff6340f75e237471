package dto

// ScrapeLeadsRequest is the request body for POST /scrape
// @Description Parameters for a lead acquisition run tied to a campaign
type ScrapeLeadsRequest struct {
	// Business type / search query, e.g. "plombier"
	Query string `json:"query" binding:"required" example:"plombier"`
	// Location appended to the query, e.g. "Montréal"
	Location string `json:"location" binding:"required" example:"Montréal"`
	// Maximum number of leads to persist (default: 50)
	MaxResults int `json:"max_results" example:"50"`
	// Campaign the leads belong to
	CampaignID int64 `json:"campaign_id" binding:"required" example:"12"`
	// Owning user
	UserID int64 `json:"user_id" binding:"required" example:"7"`
}

// ScrapeLeadsResult is the outcome of a lead acquisition run
// @Description Result of a scrape run; success with leads_count=0 means the search returned nothing
type ScrapeLeadsResult struct {
	Success    bool   `json:"success"`
	LeadsCount int    `json:"leads_count"`
	Error      string `json:"error,omitempty"`
}

// EnrichLeadResult is the outcome of an enrichment attempt
// @Description Result of enriching a single lead
type EnrichLeadResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// RescoreLeadResult is the outcome of recomputing a lead score
type RescoreLeadResult struct {
	Success   bool   `json:"success"`
	LeadScore int    `json:"lead_score,omitempty"`
	Error     string `json:"error,omitempty"`
}

// GenerateContentRequest is the request body for POST /content/generate
type GenerateContentRequest struct {
	LeadID     int64 `json:"lead_id" binding:"required" example:"101"`
	CampaignID int64 `json:"campaign_id" binding:"required" example:"12"`
	UserID     int64 `json:"user_id" binding:"required" example:"7"`
}

// GenerateCampaignContentRequest is the request body for POST /content/generate-campaign
type GenerateCampaignContentRequest struct {
	CampaignID int64 `json:"campaign_id" binding:"required" example:"12"`
	UserID     int64 `json:"user_id" binding:"required" example:"7"`
}

// GenerateContentResult is the outcome of a content generation run
type GenerateContentResult struct {
	Success bool `json:"success"`
	// Number of content drafts created (1 for single-lead generation)
	ContentsCount int    `json:"contents_count"`
	Error         string `json:"error,omitempty"`
}

// ErrorResponse represents an error response
// @Description Error response returned when a request fails
type ErrorResponse struct {
	// Error message describing what went wrong
	Error string `json:"error" example:"Key: 'ScrapeLeadsRequest.Query' Error:Field validation for 'Query' failed on the 'required' tag"`
}
