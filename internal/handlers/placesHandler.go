package handlers

import (
	"fmt"
	"log"

	"mapleads/leadgen-worker/internal/dto"

	g "github.com/serpapi/google-search-results-golang"
)

// SearchLanguage is the locale hint sent with every places search
const SearchLanguage = "fr"

// PlacesHandler performs business text searches against the Google Maps
// engine via SerpAPI
type PlacesHandler struct {
	apiKey string
}

// NewPlacesHandler creates a new PlacesHandler instance
func NewPlacesHandler(apiKey string) *PlacesHandler {
	return &PlacesHandler{
		apiKey: apiKey,
	}
}

// TextSearch runs a single text search and returns the raw place results.
// One round trip, no pagination: callers cap the result count themselves.
func (h *PlacesHandler) TextSearch(query string) ([]dto.PlaceResult, error) {
	parameters := map[string]string{
		"engine": "google_maps",
		"type":   "search",
		"q":      query,
		"hl":     SearchLanguage,
	}

	log.Printf("[PlacesHandler] Text search: %q", query)

	search := g.NewGoogleSearch(parameters, h.apiKey)
	resp, err := search.GetJSON()
	if err != nil {
		return nil, fmt.Errorf("places search failed: %w", err)
	}

	results := parseLocalResults(resp)
	log.Printf("[PlacesHandler] Search returned %d places", len(results))
	return results, nil
}

// parseLocalResults extracts place results from the SerpAPI response map
func parseLocalResults(resp map[string]interface{}) []dto.PlaceResult {
	var results []dto.PlaceResult

	localResults, ok := resp["local_results"].([]interface{})
	if !ok {
		return results
	}

	for _, item := range localResults {
		itemMap, ok := item.(map[string]interface{})
		if !ok {
			continue
		}

		place := dto.PlaceResult{
			Name:             getString(itemMap, "title"),
			FormattedAddress: getString(itemMap, "address"),
			Phone:            getString(itemMap, "phone"),
			Website:          getString(itemMap, "website"),
			Rating:           getFloat(itemMap, "rating"),
			Reviews:          getInt(itemMap, "reviews"),
			PlaceID:          getString(itemMap, "place_id"),
		}

		// Canonical maps link when the provider exposes one
		if links, ok := itemMap["links"].(map[string]interface{}); ok {
			place.MapsURL = getString(links, "maps")
		}

		// Category tags: either a list or a single type string
		if types, ok := itemMap["types"].([]interface{}); ok {
			for _, t := range types {
				if s, ok := t.(string); ok {
					place.Types = append(place.Types, s)
				}
			}
		} else if t := getString(itemMap, "type"); t != "" {
			place.Types = []string{t}
		}

		// Results without a name are unusable downstream
		if place.Name == "" {
			continue
		}

		results = append(results, place)
	}

	return results
}

// Helper functions to safely extract values from map[string]interface{}
func getString(m map[string]interface{}, key string) string {
	if val, ok := m[key].(string); ok {
		return val
	}
	return ""
}

func getInt(m map[string]interface{}, key string) int {
	if val, ok := m[key].(float64); ok {
		return int(val)
	}
	return 0
}

func getFloat(m map[string]interface{}, key string) float64 {
	if val, ok := m[key].(float64); ok {
		return val
	}
	return 0
}
