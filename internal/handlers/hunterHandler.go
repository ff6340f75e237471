package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"mapleads/leadgen-worker/internal/dto"
)

const (
	// DefaultHunterAPIURL is the Hunter.io API base URL
	DefaultHunterAPIURL = "https://api.hunter.io"
	// DefaultHunterTimeout bounds a single domain-search call
	DefaultHunterTimeout = 15 * time.Second
	// DomainSearchLimit bounds the candidate list we request; the first
	// candidate is the provider's best guess
	DomainSearchLimit = 1
)

// hunterDomainSearchResponse mirrors the shape of the Hunter.io
// /v2/domain-search payload we depend on
type hunterDomainSearchResponse struct {
	Data *struct {
		Domain  string  `json:"domain"`
		Pattern *string `json:"pattern"`
		Emails  []struct {
			Value      string  `json:"value"`
			Type       string  `json:"type"`
			Confidence float64 `json:"confidence"`
		} `json:"emails"`
	} `json:"data"`
}

// HunterHandler searches business domains for contact emails using Hunter.io
type HunterHandler struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewHunterHandler creates a new HunterHandler instance
// apiKey is required, apiURL can be empty to use the default Hunter API
func NewHunterHandler(apiKey string, apiURL string) (*HunterHandler, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("hunter API key is required")
	}
	if apiURL == "" {
		apiURL = DefaultHunterAPIURL
	}

	log.Printf("[HunterHandler] Initializing with base URL: %s", apiURL)

	return &HunterHandler{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(apiURL, "/"),
		client:  &http.Client{Timeout: DefaultHunterTimeout},
	}, nil
}

// DomainSearch returns the ranked email candidates Hunter knows for a domain.
// Credential and rate-limit failures carry distinct messages so operators can
// tell "misconfigured" apart from "exhausted".
func (h *HunterHandler) DomainSearch(ctx context.Context, domain string) ([]dto.EmailCandidate, error) {
	if domain == "" {
		return nil, fmt.Errorf("domain is required")
	}

	requestURL := fmt.Sprintf("%s/v2/domain-search?domain=%s&api_key=%s&limit=%d",
		h.baseURL, url.QueryEscape(domain), url.QueryEscape(h.apiKey), DomainSearchLimit)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build domain-search request: %w", err)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("domain-search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		switch resp.StatusCode {
		case http.StatusUnauthorized:
			return nil, fmt.Errorf("Hunter.io API key invalid")
		case http.StatusTooManyRequests:
			return nil, fmt.Errorf("Hunter.io rate limit exceeded")
		default:
			return nil, fmt.Errorf("Hunter API error: %s", resp.Status)
		}
	}

	var payload hunterDomainSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		log.Printf("[HunterHandler] Failed to decode response: %v", err)
		return nil, fmt.Errorf("invalid API response format")
	}
	if payload.Data == nil {
		log.Printf("[HunterHandler] Response missing data object")
		return nil, fmt.Errorf("invalid API response format")
	}

	candidates := make([]dto.EmailCandidate, 0, len(payload.Data.Emails))
	for _, e := range payload.Data.Emails {
		// An email entry without a plausible value is a shape violation
		if e.Value == "" || !strings.Contains(e.Value, "@") {
			return nil, fmt.Errorf("invalid API response format")
		}
		candidates = append(candidates, dto.EmailCandidate{
			Value:      e.Value,
			Type:       e.Type,
			Confidence: e.Confidence,
		})
	}

	log.Printf("[HunterHandler] Domain search for %s returned %d candidates", domain, len(candidates))
	return candidates, nil
}
