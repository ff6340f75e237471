package services

import (
	"fmt"
	"log"
	"strconv"

	"mapleads/leadgen-worker/internal/dto"

	"github.com/nyaruka/phonenumbers"
)

const (
	// DefaultMaxResults is the lead cap applied when the request does not specify one
	DefaultMaxResults = 50
	// PhoneRegion is the default region used when normalizing lead phone numbers
	PhoneRegion = "CA"
)

// PlacesSearcher performs a text search against the places directory
type PlacesSearcher interface {
	TextSearch(query string) ([]dto.PlaceResult, error)
}

// LeadStore is the persistence surface the lead pipeline depends on
type LeadStore interface {
	CreateLeadsBatch(leads []dto.Lead) (int, error)
	GetLeadByID(id int64) (*dto.Lead, error)
	GetLeadsByCampaignID(campaignID int64) ([]dto.Lead, error)
	// MarkLeadEnriched flips enriched=true, sets the email when non-nil and
	// clears enrichment_error. Guarded by enriched=false: returns false when
	// another caller already enriched the lead.
	MarkLeadEnriched(id int64, email *string) (bool, error)
	// MarkLeadEnrichedWithError flips enriched=true with a terminal error
	// message, preventing further automatic retries. Same guard as above.
	MarkLeadEnrichedWithError(id int64, message string) (bool, error)
	// SetLeadEnrichmentError persists a retry-eligible failure without
	// touching the enriched flag.
	SetLeadEnrichmentError(id int64, message string) error
	UpdateLeadScore(id int64, score int) error
	// UpdateCampaignStats adds the given number of leads to the campaign's
	// aggregate count (additive, not a recount).
	UpdateCampaignStats(campaignID int64, leadsAdded int) error
	CreateNotification(n dto.Notification) error
}

// ScrapeLeadsParams are the inputs for a single acquisition run
type ScrapeLeadsParams struct {
	Query      string
	Location   string
	MaxResults int
	CampaignID int64
	UserID     int64
}

// LeadScraper turns a (query, location, campaign) triple into persisted leads
type LeadScraper struct {
	store    LeadStore
	searcher PlacesSearcher
	parser   AddressParser
}

// NewLeadScraper creates a new LeadScraper instance
func NewLeadScraper(store LeadStore, searcher PlacesSearcher, parser AddressParser) *LeadScraper {
	if parser == nil {
		parser = NewCanadianAddressParser()
	}
	return &LeadScraper{
		store:    store,
		searcher: searcher,
		parser:   parser,
	}
}

// ScrapeLeads runs the acquisition pipeline end-to-end: search, normalize,
// score, batch-persist, update campaign stats and notify the user.
//
// Stats update and the success notification are best-effort: once the batch
// insert succeeded the run is reported as a success even if a later side
// effect fails.
func (s *LeadScraper) ScrapeLeads(params ScrapeLeadsParams) dto.ScrapeLeadsResult {
	maxResults := params.MaxResults
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	searchQuery := fmt.Sprintf("%s in %s", params.Query, params.Location)
	log.Printf("[LeadScraper] Starting scrape: %q", searchQuery)

	places, err := s.searcher.TextSearch(searchQuery)
	if err != nil {
		log.Printf("[LeadScraper] Search failed: %v", err)
		return s.failScrape(params, fmt.Sprintf("places search failed: %v", err))
	}

	// Empty result is not an error
	if len(places) == 0 {
		log.Printf("[LeadScraper] No results found")
		return dto.ScrapeLeadsResult{Success: true, LeadsCount: 0}
	}

	if len(places) > maxResults {
		places = places[:maxResults]
	}
	log.Printf("[LeadScraper] Found %d places", len(places))

	leads := make([]dto.Lead, 0, len(places))
	for _, place := range places {
		leads = append(leads, s.buildLead(params, place))
	}

	if _, err := s.store.CreateLeadsBatch(leads); err != nil {
		log.Printf("[LeadScraper] Batch insert failed: %v", err)
		return s.failScrape(params, fmt.Sprintf("failed to insert leads: %v", err))
	}
	log.Printf("[LeadScraper] Inserted %d leads", len(leads))

	// Best-effort side effects: the leads are persisted either way
	if err := s.store.UpdateCampaignStats(params.CampaignID, len(leads)); err != nil {
		log.Printf("[LeadScraper] Warning: failed to update campaign stats: %v", err)
	}

	if err := s.store.CreateNotification(dto.Notification{
		UserID:     params.UserID,
		Type:       dto.NotificationLeadsReady,
		Title:      "Leads prêts",
		Message:    fmt.Sprintf("%d nouveaux leads ont été générés pour votre campagne.", len(leads)),
		CampaignID: params.CampaignID,
	}); err != nil {
		log.Printf("[LeadScraper] Warning: failed to create notification: %v", err)
	}

	return dto.ScrapeLeadsResult{Success: true, LeadsCount: len(leads)}
}

// buildLead converts a place result into a lead row. The score uses only
// acquisition-time data; enrichment hints are not available yet.
func (s *LeadScraper) buildLead(params ScrapeLeadsParams, place dto.PlaceResult) dto.Lead {
	components := s.parser.Parse(place.FormattedAddress)

	hints := EnrichmentHints{Phone: place.Phone}
	leadScore := CalculateLeadScore(place, hints)

	mapsURL := place.MapsURL
	if mapsURL == "" {
		mapsURL = fmt.Sprintf("https://www.google.com/maps/place/?q=place_id:%s", place.PlaceID)
	}

	rating := ""
	if place.Rating > 0 {
		rating = strconv.FormatFloat(place.Rating, 'f', -1, 64)
	}

	return dto.Lead{
		CampaignID:    params.CampaignID,
		UserID:        params.UserID,
		BusinessName:  place.Name,
		BusinessType:  params.Query, // the search query is the business type
		Address:       place.FormattedAddress,
		City:          components.City,
		Province:      components.Province,
		PostalCode:    components.PostalCode,
		Phone:         normalizePhone(place.Phone),
		Website:       place.Website,
		GoogleMapsURL: mapsURL,
		GoogleRating:  rating,
		GoogleReviews: place.Reviews,
		LeadScore:     leadScore,
		Enriched:      false, // enrichment happens in a separate step
	}
}

// normalizePhone formats a phone number to E.164, keeping the raw value
// when it cannot be parsed
func normalizePhone(raw string) string {
	if raw == "" {
		return ""
	}
	num, err := phonenumbers.Parse(raw, PhoneRegion)
	if err != nil || !phonenumbers.IsValidNumber(num) {
		return raw
	}
	return phonenumbers.Format(num, phonenumbers.E164)
}

// failScrape emits a best-effort failure notification and builds the error result
func (s *LeadScraper) failScrape(params ScrapeLeadsParams, message string) dto.ScrapeLeadsResult {
	if err := s.store.CreateNotification(dto.Notification{
		UserID:     params.UserID,
		Type:       dto.NotificationSystemError,
		Title:      "Erreur de génération de leads",
		Message:    fmt.Sprintf("Une erreur s'est produite lors de la génération des leads: %s", message),
		CampaignID: params.CampaignID,
	}); err != nil {
		log.Printf("[LeadScraper] Warning: failed to create error notification: %v", err)
	}

	return dto.ScrapeLeadsResult{Success: false, LeadsCount: 0, Error: message}
}
