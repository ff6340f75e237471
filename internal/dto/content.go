package dto

import "time"

// Content statuses
const (
	ContentStatusPending  = "pending"
	ContentStatusApproved = "approved"
	ContentStatusRejected = "rejected"
)

// Content represents a generated content row in the contents table
type Content struct {
	ID         int64      `json:"id,omitempty"`
	CampaignID int64      `json:"campaign_id"`
	UserID     int64      `json:"user_id"`
	LeadID     int64      `json:"lead_id"`
	Title      string     `json:"title"`
	Body       string     `json:"body"`
	Hashtags   []string   `json:"hashtags,omitempty"`
	Status     string     `json:"status"` // pending, approved, rejected
	CreatedAt  *time.Time `json:"created_at,omitempty"`
}

// GeneratedContent is the draft produced by the content generator before persistence
type GeneratedContent struct {
	// Post title / hook line
	Title string `json:"title"`
	// Post body text
	Body string `json:"body"`
	// Suggested hashtags (without the # prefix)
	Hashtags []string `json:"hashtags,omitempty"`
	// Success indicates whether generation succeeded
	Success bool `json:"success"`
	// Error contains the failure message when generation failed
	Error string `json:"error,omitempty"`
}
