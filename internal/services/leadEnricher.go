package services

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"mapleads/leadgen-worker/internal/dto"
)

const (
	// DefaultMockDelay simulates provider latency in mock mode
	DefaultMockDelay = 800 * time.Millisecond

	// Terminal enrichment errors: these mark the lead enriched so it is not retried
	errNoWebsite      = "No website available"
	errInvalidWebsite = "Invalid website URL"
)

// EmailFinder searches a domain for contact email candidates
type EmailFinder interface {
	DomainSearch(ctx context.Context, domain string) ([]dto.EmailCandidate, error)
}

// LeadEnricher attempts to attach a business email to persisted leads.
// The finder is injected at construction; a nil finder means no provider
// credential is configured and enrichment degrades to mock mode.
type LeadEnricher struct {
	store     LeadStore
	finder    EmailFinder
	mockDelay time.Duration
}

// NewLeadEnricher creates a new LeadEnricher instance
func NewLeadEnricher(store LeadStore, finder EmailFinder) *LeadEnricher {
	return &LeadEnricher{
		store:     store,
		finder:    finder,
		mockDelay: DefaultMockDelay,
	}
}

// SetMockDelay customizes the simulated delay used in mock mode
func (e *LeadEnricher) SetMockDelay(d time.Duration) {
	e.mockDelay = d
}

// EnrichLead attempts to discover an email for a single lead. Idempotent:
// an already-enriched lead returns success with no provider call. Provider
// failures persist the error and leave the lead retry-eligible; structurally
// hopeless leads (no website, unparseable website) are marked enriched with
// a terminal error so they are not retried.
func (e *LeadEnricher) EnrichLead(ctx context.Context, leadID int64) dto.EnrichLeadResult {
	lead, err := e.store.GetLeadByID(leadID)
	if err != nil {
		log.Printf("[LeadEnrichment] Failed to load lead %d: %v", leadID, err)
		return dto.EnrichLeadResult{Success: false, Error: fmt.Sprintf("failed to load lead: %v", err)}
	}
	if lead == nil {
		return dto.EnrichLeadResult{Success: false, Error: "Lead not found"}
	}

	// Already enriched: save credits and time
	if lead.Enriched {
		return dto.EnrichLeadResult{Success: true}
	}

	// No credential configured: mock mode for demo/dev stability
	if e.finder == nil {
		return e.enrichMock(lead)
	}

	if lead.Website == "" {
		log.Printf("[LeadEnrichment] No website for lead %d, skipping provider lookup", lead.ID)
		// Mark as enriched anyway to prevent a retry loop, but with no new data
		if _, err := e.store.MarkLeadEnrichedWithError(lead.ID, errNoWebsite); err != nil {
			log.Printf("[LeadEnrichment] Failed to persist terminal state for lead %d: %v", lead.ID, err)
		}
		return dto.EnrichLeadResult{Success: false, Error: errNoWebsite}
	}

	domain, ok := normalizeDomain(lead.Website)
	if !ok {
		log.Printf("[LeadEnrichment] Invalid website URL for lead %d: %s", lead.ID, lead.Website)
		if _, err := e.store.MarkLeadEnrichedWithError(lead.ID, errInvalidWebsite); err != nil {
			log.Printf("[LeadEnrichment] Failed to persist terminal state for lead %d: %v", lead.ID, err)
		}
		return dto.EnrichLeadResult{Success: false, Error: errInvalidWebsite}
	}

	log.Printf("[LeadEnrichment] Searching emails for domain: %s", domain)

	candidates, err := e.finder.DomainSearch(ctx, domain)
	if err != nil {
		return e.failEnrichment(lead.ID, err.Error())
	}

	// First candidate is the provider's best guess
	var email *string
	if len(candidates) > 0 && candidates[0].Value != "" {
		email = &candidates[0].Value
	} else if lead.Email != nil {
		// Never overwrite a known email with nothing
		email = lead.Email
	}

	if _, err := e.store.MarkLeadEnriched(lead.ID, email); err != nil {
		return e.failEnrichment(lead.ID, fmt.Sprintf("failed to update lead: %v", err))
	}

	return dto.EnrichLeadResult{Success: true}
}

// enrichMock synthesizes a plausible email when none exists and marks the
// lead enriched. Always succeeds.
func (e *LeadEnricher) enrichMock(lead *dto.Lead) dto.EnrichLeadResult {
	log.Printf("[LeadEnrichment] No provider credential configured, using mock enrichment for lead %d", lead.ID)

	// Simulate network delay
	if e.mockDelay > 0 {
		time.Sleep(e.mockDelay)
	}

	email := lead.Email
	if email == nil && lead.BusinessName != "" {
		mock := fmt.Sprintf("contact@%s.com", sanitizeBusinessName(lead.BusinessName))
		email = &mock
	}

	if _, err := e.store.MarkLeadEnriched(lead.ID, email); err != nil {
		log.Printf("[LeadEnrichment] Failed to persist mock enrichment for lead %d: %v", lead.ID, err)
	}

	return dto.EnrichLeadResult{Success: true}
}

// failEnrichment persists a retry-eligible error: the enriched flag stays
// false so a later attempt can try again
func (e *LeadEnricher) failEnrichment(leadID int64, message string) dto.EnrichLeadResult {
	log.Printf("[LeadEnrichment] Error enriching lead %d: %s", leadID, message)
	if err := e.store.SetLeadEnrichmentError(leadID, message); err != nil {
		log.Printf("[LeadEnrichment] Failed to persist enrichment error for lead %d: %v", leadID, err)
	}
	return dto.EnrichLeadResult{Success: false, Error: message}
}

// RescoreLead recomputes the lead score from the lead's current persisted
// fields, including any email attached by enrichment, and stores the result.
// Scores are not refreshed automatically; the caller decides when.
func (e *LeadEnricher) RescoreLead(leadID int64) dto.RescoreLeadResult {
	lead, err := e.store.GetLeadByID(leadID)
	if err != nil {
		return dto.RescoreLeadResult{Success: false, Error: fmt.Sprintf("failed to load lead: %v", err)}
	}
	if lead == nil {
		return dto.RescoreLeadResult{Success: false, Error: "Lead not found"}
	}

	rating, _ := strconv.ParseFloat(lead.GoogleRating, 64)
	place := dto.PlaceResult{
		Name:             lead.BusinessName,
		FormattedAddress: lead.Address,
		Phone:            lead.Phone,
		Website:          lead.Website,
		Rating:           rating,
		Reviews:          lead.GoogleReviews,
	}
	hints := EnrichmentHints{Phone: lead.Phone}
	if lead.Email != nil {
		hints.Email = *lead.Email
	}

	score := CalculateLeadScore(place, hints)
	if err := e.store.UpdateLeadScore(lead.ID, score); err != nil {
		return dto.RescoreLeadResult{Success: false, Error: fmt.Sprintf("failed to update score: %v", err)}
	}

	log.Printf("[LeadEnrichment] Rescored lead %d: %d -> %d", lead.ID, lead.LeadScore, score)
	return dto.RescoreLeadResult{Success: true, LeadScore: score}
}

var nonAlphanumericRe = regexp.MustCompile(`[^a-zA-Z0-9]`)

// sanitizeBusinessName strips non-alphanumeric characters and lowercases,
// producing the domain label of a synthesized contact email
func sanitizeBusinessName(name string) string {
	return strings.ToLower(nonAlphanumericRe.ReplaceAllString(name, ""))
}

// normalizeDomain reduces a website value to a bare hostname, prepending a
// scheme when absent. Returns false when the value cannot be parsed.
func normalizeDomain(website string) (string, bool) {
	raw := website
	if !strings.HasPrefix(raw, "http") {
		raw = "https://" + raw
	}
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Hostname() == "" {
		return "", false
	}
	return parsed.Hostname(), true
}
