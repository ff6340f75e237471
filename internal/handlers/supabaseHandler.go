package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"strconv"

	"mapleads/leadgen-worker/internal/dto"

	"github.com/supabase-community/supabase-go"
)

// SupabaseHandler handles database operations using Supabase
type SupabaseHandler struct {
	client *supabase.Client
}

// NewSupabaseHandler creates a new SupabaseHandler instance
// url is the Supabase project URL (e.g., "https://xxx.supabase.co")
// key is the Supabase anon or service role key
func NewSupabaseHandler(url, key string) (*SupabaseHandler, error) {
	if url == "" {
		return nil, fmt.Errorf("supabase URL is required")
	}
	if key == "" {
		return nil, fmt.Errorf("supabase key is required")
	}

	log.Printf("[SupabaseHandler] Initializing with URL: %s", url)

	client, err := supabase.NewClient(url, key, &supabase.ClientOptions{})
	if err != nil {
		log.Printf("[SupabaseHandler] Failed to create client: %v", err)
		return nil, fmt.Errorf("failed to create supabase client: %w", err)
	}

	return &SupabaseHandler{
		client: client,
	}, nil
}

// GetClient returns the underlying Supabase client for advanced operations
func (h *SupabaseHandler) GetClient() *supabase.Client {
	return h.client
}

// CreateLeadsBatch inserts all leads in a single call and returns the number inserted
func (h *SupabaseHandler) CreateLeadsBatch(leads []dto.Lead) (int, error) {
	if len(leads) == 0 {
		return 0, nil
	}

	log.Printf("[SupabaseHandler] CreateLeadsBatch: %d leads", len(leads))

	rows := make([]map[string]interface{}, 0, len(leads))
	for i := range leads {
		rows = append(rows, leadInsertRow(&leads[i]))
	}

	data, _, err := h.client.From("leads").Insert(rows, false, "", "representation", "").Execute()
	if err != nil {
		log.Printf("[SupabaseHandler] Failed to insert leads: %v", err)
		return 0, fmt.Errorf("failed to insert leads: %w", err)
	}

	var inserted []map[string]interface{}
	if err := json.Unmarshal(data, &inserted); err != nil {
		log.Printf("[SupabaseHandler] Failed to parse insert response: %v", err)
		return 0, fmt.Errorf("failed to parse insert response: %w", err)
	}

	log.Printf("[SupabaseHandler] Inserted %d leads", len(inserted))
	return len(inserted), nil
}

// leadInsertRow builds the insert payload for a lead, omitting empty optionals
func leadInsertRow(lead *dto.Lead) map[string]interface{} {
	row := map[string]interface{}{
		"campaign_id":   lead.CampaignID,
		"user_id":       lead.UserID,
		"business_name": lead.BusinessName,
		"lead_score":    lead.LeadScore,
		"enriched":      lead.Enriched,
	}

	if lead.BusinessType != "" {
		row["business_type"] = lead.BusinessType
	}
	if lead.Address != "" {
		row["address"] = lead.Address
	}
	if lead.City != "" {
		row["city"] = lead.City
	}
	if lead.Province != "" {
		row["province"] = lead.Province
	}
	if lead.PostalCode != "" {
		row["postal_code"] = lead.PostalCode
	}
	if lead.Phone != "" {
		row["phone"] = lead.Phone
	}
	if lead.Email != nil {
		row["email"] = *lead.Email
	}
	if lead.Website != "" {
		row["website"] = lead.Website
	}
	if lead.GoogleMapsURL != "" {
		row["google_maps_url"] = lead.GoogleMapsURL
	}
	if lead.GoogleRating != "" {
		row["google_rating"] = lead.GoogleRating
	}
	if lead.GoogleReviews > 0 {
		row["google_reviews"] = lead.GoogleReviews
	}

	return row
}

// GetLeadByID retrieves a single lead, returning nil when it does not exist
func (h *SupabaseHandler) GetLeadByID(id int64) (*dto.Lead, error) {
	data, _, err := h.client.From("leads").Select("*", "exact", false).
		Eq("id", strconv.FormatInt(id, 10)).Execute()
	if err != nil {
		log.Printf("[SupabaseHandler] Failed to get lead %d: %v", id, err)
		return nil, fmt.Errorf("failed to get lead: %w", err)
	}

	var leads []dto.Lead
	if err := json.Unmarshal(data, &leads); err != nil {
		return nil, fmt.Errorf("failed to parse lead response: %w", err)
	}
	if len(leads) == 0 {
		return nil, nil
	}
	return &leads[0], nil
}

// GetLeadsByCampaignID retrieves all leads belonging to a campaign
func (h *SupabaseHandler) GetLeadsByCampaignID(campaignID int64) ([]dto.Lead, error) {
	data, _, err := h.client.From("leads").Select("*", "exact", false).
		Eq("campaign_id", strconv.FormatInt(campaignID, 10)).Execute()
	if err != nil {
		log.Printf("[SupabaseHandler] Failed to list leads for campaign %d: %v", campaignID, err)
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}

	var leads []dto.Lead
	if err := json.Unmarshal(data, &leads); err != nil {
		return nil, fmt.Errorf("failed to parse leads response: %w", err)
	}
	return leads, nil
}

// MarkLeadEnriched flips enriched=true, optionally sets the email and clears
// the enrichment error. The update is guarded by enriched=false so concurrent
// enrichment calls cannot double-apply: the return value reports whether this
// call performed the transition.
func (h *SupabaseHandler) MarkLeadEnriched(id int64, email *string) (bool, error) {
	update := map[string]interface{}{
		"enriched":         true,
		"enrichment_error": nil,
	}
	if email != nil {
		update["email"] = *email
	}
	return h.updateLeadIfNotEnriched(id, update)
}

// MarkLeadEnrichedWithError flips enriched=true with a terminal error message,
// preventing automatic retries of structurally hopeless leads
func (h *SupabaseHandler) MarkLeadEnrichedWithError(id int64, message string) (bool, error) {
	update := map[string]interface{}{
		"enriched":         true,
		"enrichment_error": message,
	}
	return h.updateLeadIfNotEnriched(id, update)
}

// updateLeadIfNotEnriched applies a patch conditioned on enriched=false
func (h *SupabaseHandler) updateLeadIfNotEnriched(id int64, update map[string]interface{}) (bool, error) {
	data, _, err := h.client.From("leads").Update(update, "representation", "").
		Eq("id", strconv.FormatInt(id, 10)).
		Eq("enriched", "false").
		Execute()
	if err != nil {
		log.Printf("[SupabaseHandler] Failed to update lead %d: %v", id, err)
		return false, fmt.Errorf("failed to update lead: %w", err)
	}

	var updated []map[string]interface{}
	if err := json.Unmarshal(data, &updated); err != nil {
		return false, fmt.Errorf("failed to parse update response: %w", err)
	}

	if len(updated) == 0 {
		log.Printf("[SupabaseHandler] Lead %d was already enriched, update skipped", id)
		return false, nil
	}
	return true, nil
}

// SetLeadEnrichmentError persists a retry-eligible enrichment failure without
// touching the enriched flag
func (h *SupabaseHandler) SetLeadEnrichmentError(id int64, message string) error {
	update := map[string]interface{}{
		"enrichment_error": message,
	}

	_, _, err := h.client.From("leads").Update(update, "", "").
		Eq("id", strconv.FormatInt(id, 10)).Execute()
	if err != nil {
		log.Printf("[SupabaseHandler] Failed to set enrichment error for lead %d: %v", id, err)
		return fmt.Errorf("failed to set enrichment error: %w", err)
	}
	return nil
}

// UpdateLeadScore stores a recomputed lead score
func (h *SupabaseHandler) UpdateLeadScore(id int64, score int) error {
	update := map[string]interface{}{
		"lead_score": score,
	}

	_, _, err := h.client.From("leads").Update(update, "", "").
		Eq("id", strconv.FormatInt(id, 10)).Execute()
	if err != nil {
		log.Printf("[SupabaseHandler] Failed to update score for lead %d: %v", id, err)
		return fmt.Errorf("failed to update lead score: %w", err)
	}
	return nil
}

// UpdateCampaignStats adds leadsAdded to the campaign's aggregate lead count.
// The increment runs through the increment_campaign_leads RPC so concurrent
// scrape runs do not lose updates.
func (h *SupabaseHandler) UpdateCampaignStats(campaignID int64, leadsAdded int) error {
	log.Printf("[SupabaseHandler] UpdateCampaignStats: campaign=%d, added=%d", campaignID, leadsAdded)

	params := map[string]interface{}{
		"p_campaign_id": campaignID,
		"p_leads_added": leadsAdded,
	}
	resp := h.client.Rpc("increment_campaign_leads", "", params)
	if resp == "" {
		// postgrest-go reports RPC failures through an empty response
		return fmt.Errorf("failed to update campaign stats for campaign %d", campaignID)
	}
	return nil
}

// CreateNotification inserts a notification row
func (h *SupabaseHandler) CreateNotification(n dto.Notification) error {
	log.Printf("[SupabaseHandler] CreateNotification: type=%s, user=%d", n.Type, n.UserID)

	insertData := map[string]interface{}{
		"user_id": n.UserID,
		"type":    n.Type,
		"title":   n.Title,
		"message": n.Message,
	}
	if n.CampaignID != 0 {
		insertData["campaign_id"] = n.CampaignID
	}

	_, _, err := h.client.From("notifications").Insert(insertData, false, "", "", "").Execute()
	if err != nil {
		log.Printf("[SupabaseHandler] Failed to insert notification: %v", err)
		return fmt.Errorf("failed to insert notification: %w", err)
	}
	return nil
}

// InsertContent inserts a generated content row and returns its ID
func (h *SupabaseHandler) InsertContent(c dto.Content) (int64, error) {
	log.Printf("[SupabaseHandler] InsertContent: lead=%d, campaign=%d", c.LeadID, c.CampaignID)

	insertData := map[string]interface{}{
		"campaign_id": c.CampaignID,
		"user_id":     c.UserID,
		"lead_id":     c.LeadID,
		"title":       c.Title,
		"body":        c.Body,
		"status":      c.Status,
	}
	if len(c.Hashtags) > 0 {
		insertData["hashtags"] = c.Hashtags
	}

	data, _, err := h.client.From("contents").Insert(insertData, false, "", "representation", "").Execute()
	if err != nil {
		log.Printf("[SupabaseHandler] Failed to insert content: %v", err)
		return 0, fmt.Errorf("failed to insert content: %w", err)
	}

	var inserted []dto.Content
	if err := json.Unmarshal(data, &inserted); err != nil {
		return 0, fmt.Errorf("failed to parse insert response: %w", err)
	}
	if len(inserted) == 0 {
		return 0, fmt.Errorf("no content was inserted")
	}
	return inserted[0].ID, nil
}

// UpdateContentStatus moves a content draft through its review lifecycle
func (h *SupabaseHandler) UpdateContentStatus(id int64, status string) error {
	update := map[string]interface{}{
		"status": status,
	}

	_, _, err := h.client.From("contents").Update(update, "", "").
		Eq("id", strconv.FormatInt(id, 10)).Execute()
	if err != nil {
		log.Printf("[SupabaseHandler] Failed to update content %d status: %v", id, err)
		return fmt.Errorf("failed to update content status: %w", err)
	}
	return nil
}
