package dto

import (
	"time"
)

// PlaceResult represents a single business returned by the places search provider
// @Description A business discovered via Google Maps text search
type PlaceResult struct {
	// Business name
	Name string `json:"name" example:"Boulangerie Au Pain Doré"`
	// Formatted address as returned by the provider
	FormattedAddress string `json:"formatted_address,omitempty" example:"123 Rue Saint-Denis, Montréal, QC H2X 1Y4, Canada"`
	// Phone number if listed
	Phone string `json:"phone,omitempty" example:"+1 514-555-0199"`
	// Website if listed
	Website string `json:"website,omitempty" example:"https://aupaindore.ca"`
	// Google rating (0-5)
	Rating float64 `json:"rating,omitempty" example:"4.6"`
	// Number of user ratings
	Reviews int `json:"reviews,omitempty" example:"212"`
	// Provider-assigned place identifier
	PlaceID string `json:"place_id" example:"ChIJd8BlQ2BZwokRAFUEcm_qrcA"`
	// Canonical Google Maps URL
	MapsURL string `json:"maps_url,omitempty"`
	// Category tags assigned by the provider
	Types []string `json:"types,omitempty" example:"bakery,food"`
}

// Lead represents a lead row in the leads table
type Lead struct {
	ID              int64      `json:"id,omitempty"`
	CampaignID      int64      `json:"campaign_id"`
	UserID          int64      `json:"user_id"`
	BusinessName    string     `json:"business_name"`
	BusinessType    string     `json:"business_type,omitempty"` // the search query that produced the lead
	Address         string     `json:"address,omitempty"`
	City            string     `json:"city,omitempty"`
	Province        string     `json:"province,omitempty"`
	PostalCode      string     `json:"postal_code,omitempty"`
	Phone           string     `json:"phone,omitempty"`
	Email           *string    `json:"email,omitempty"`
	Website         string     `json:"website,omitempty"`
	GoogleMapsURL   string     `json:"google_maps_url,omitempty"`
	GoogleRating    string     `json:"google_rating,omitempty"`
	GoogleReviews   int        `json:"google_reviews,omitempty"`
	LeadScore       int        `json:"lead_score"`
	Enriched        bool       `json:"enriched"`
	EnrichmentError *string    `json:"enrichment_error,omitempty"`
	CreatedAt       *time.Time `json:"created_at,omitempty"`
}

// EmailCandidate is a single email returned by the domain-search provider
type EmailCandidate struct {
	Value      string  `json:"value"`
	Type       string  `json:"type,omitempty"`
	Confidence float64 `json:"confidence,omitempty"`
}

// Notification represents a notification row created as a pipeline side effect
type Notification struct {
	ID         int64  `json:"id,omitempty"`
	UserID     int64  `json:"user_id"`
	Type       string `json:"type"` // leads_ready, system_error, content_ready
	Title      string `json:"title"`
	Message    string `json:"message"`
	CampaignID int64  `json:"campaign_id,omitempty"`
}

// Notification types used by the pipeline
const (
	NotificationLeadsReady   = "leads_ready"
	NotificationSystemError  = "system_error"
	NotificationContentReady = "content_ready"
)
