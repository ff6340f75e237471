package services

import (
	"context"
	"fmt"
	"log"

	"mapleads/leadgen-worker/internal/dto"
)

// ContentStore is the persistence surface content generation depends on
type ContentStore interface {
	GetLeadByID(id int64) (*dto.Lead, error)
	GetLeadsByCampaignID(campaignID int64) ([]dto.Lead, error)
	InsertContent(c dto.Content) (int64, error)
	CreateNotification(n dto.Notification) error
}

// ContentModel generates a marketing content draft for a lead
type ContentModel interface {
	GenerateForLead(ctx context.Context, lead *dto.Lead, websiteContext string) *dto.GeneratedContent
}

// WebsiteScraper fetches the markdown content of a lead's homepage
type WebsiteScraper interface {
	ScrapeHomepage(websiteURL string) (string, error)
}

// GenerateContentParams are the inputs for single-lead content generation
type GenerateContentParams struct {
	LeadID     int64
	CampaignID int64
	UserID     int64
}

// ContentGenerator produces campaign content drafts for leads. The scraper
// is optional; when configured, the lead's homepage is scraped and fed to
// the model for better personalization.
type ContentGenerator struct {
	store   ContentStore
	model   ContentModel
	scraper WebsiteScraper
}

// NewContentGenerator creates a new ContentGenerator instance
func NewContentGenerator(store ContentStore, model ContentModel, scraper WebsiteScraper) *ContentGenerator {
	return &ContentGenerator{
		store:   store,
		model:   model,
		scraper: scraper,
	}
}

// GenerateForLead generates one content draft for a lead and persists it
// with status pending for later review
func (g *ContentGenerator) GenerateForLead(ctx context.Context, params GenerateContentParams) dto.GenerateContentResult {
	lead, err := g.store.GetLeadByID(params.LeadID)
	if err != nil {
		return dto.GenerateContentResult{Success: false, Error: fmt.Sprintf("failed to load lead: %v", err)}
	}
	if lead == nil {
		return dto.GenerateContentResult{Success: false, Error: "Lead not found"}
	}

	draft := g.generateDraft(ctx, lead)
	if !draft.Success {
		return dto.GenerateContentResult{Success: false, Error: draft.Error}
	}

	content := dto.Content{
		CampaignID: params.CampaignID,
		UserID:     params.UserID,
		LeadID:     lead.ID,
		Title:      draft.Title,
		Body:       draft.Body,
		Hashtags:   draft.Hashtags,
		Status:     dto.ContentStatusPending,
	}
	if _, err := g.store.InsertContent(content); err != nil {
		log.Printf("[ContentGenerator] Failed to insert content for lead %d: %v", lead.ID, err)
		return dto.GenerateContentResult{Success: false, Error: fmt.Sprintf("failed to save content: %v", err)}
	}

	if err := g.store.CreateNotification(dto.Notification{
		UserID:     params.UserID,
		Type:       dto.NotificationContentReady,
		Title:      "Contenu généré",
		Message:    fmt.Sprintf("Un nouveau contenu a été généré pour %s.", lead.BusinessName),
		CampaignID: params.CampaignID,
	}); err != nil {
		log.Printf("[ContentGenerator] Warning: failed to create notification: %v", err)
	}

	return dto.GenerateContentResult{Success: true, ContentsCount: 1}
}

// GenerateForCampaign generates a draft for every lead of a campaign.
// Per-lead failures are logged and skipped; the run only fails when the
// campaign's leads cannot be listed at all.
func (g *ContentGenerator) GenerateForCampaign(ctx context.Context, campaignID, userID int64) dto.GenerateContentResult {
	leads, err := g.store.GetLeadsByCampaignID(campaignID)
	if err != nil {
		return dto.GenerateContentResult{Success: false, Error: fmt.Sprintf("failed to list leads: %v", err)}
	}
	if len(leads) == 0 {
		return dto.GenerateContentResult{Success: true, ContentsCount: 0}
	}

	log.Printf("[ContentGenerator] Generating content for %d leads (campaign %d)", len(leads), campaignID)

	generated := 0
	for i := range leads {
		lead := &leads[i]
		draft := g.generateDraft(ctx, lead)
		if !draft.Success {
			log.Printf("[ContentGenerator] Skipping lead %d: %s", lead.ID, draft.Error)
			continue
		}

		content := dto.Content{
			CampaignID: campaignID,
			UserID:     userID,
			LeadID:     lead.ID,
			Title:      draft.Title,
			Body:       draft.Body,
			Hashtags:   draft.Hashtags,
			Status:     dto.ContentStatusPending,
		}
		if _, err := g.store.InsertContent(content); err != nil {
			log.Printf("[ContentGenerator] Failed to insert content for lead %d: %v", lead.ID, err)
			continue
		}
		generated++
	}

	if generated > 0 {
		if err := g.store.CreateNotification(dto.Notification{
			UserID:     userID,
			Type:       dto.NotificationContentReady,
			Title:      "Contenus générés",
			Message:    fmt.Sprintf("%d contenus ont été générés pour votre campagne.", generated),
			CampaignID: campaignID,
		}); err != nil {
			log.Printf("[ContentGenerator] Warning: failed to create notification: %v", err)
		}
	}

	return dto.GenerateContentResult{Success: true, ContentsCount: generated}
}

// generateDraft optionally scrapes the lead website for context, then asks
// the model for a draft
func (g *ContentGenerator) generateDraft(ctx context.Context, lead *dto.Lead) *dto.GeneratedContent {
	websiteContext := ""
	if g.scraper != nil && lead.Website != "" {
		markdown, err := g.scraper.ScrapeHomepage(lead.Website)
		if err != nil {
			log.Printf("[ContentGenerator] Warning: scrape failed for %s: %v (continuing without context)", lead.Website, err)
		} else {
			websiteContext = markdown
		}
	}

	return g.model.GenerateForLead(ctx, lead, websiteContext)
}
