package services

import (
	"math"

	"mapleads/leadgen-worker/internal/dto"
)

// EnrichmentHints carries contact data known outside the place result itself.
// At acquisition time these are usually empty since enrichment runs later.
type EnrichmentHints struct {
	Email string
	Phone string
}

// CalculateLeadScore derives a 0-100 quality score for a prospect from the
// available place data. Pure and deterministic: same inputs always produce
// the same score, so it can be re-run after enrichment to refresh a lead.
//
// Point budget:
//   - 10 for having a business name at all
//   - 20 for an address
//   - 15 for a phone (place result or hints, no double count)
//   - 15 for an email (hints only)
//   - 15 for a website
//   - up to 10 for rating (rating * 2, capped)
//   - up to 15 for review volume (reviews / 10, capped)
func CalculateLeadScore(place dto.PlaceResult, hints EnrichmentHints) int {
	score := 0.0

	// Base score for having a business name
	score += 10

	if place.FormattedAddress != "" {
		score += 20
	}

	if place.Phone != "" || hints.Phone != "" {
		score += 15
	}
	if hints.Email != "" {
		score += 15
	}

	if place.Website != "" {
		score += 15
	}

	if place.Rating > 0 {
		score += math.Min(10, place.Rating*2)
	}
	if place.Reviews > 0 {
		score += math.Min(15, float64(place.Reviews)/10)
	}

	final := int(math.Round(score))
	if final > 100 {
		final = 100
	}
	if final < 0 {
		final = 0
	}
	return final
}
