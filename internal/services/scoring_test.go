package services

import (
	"testing"

	"mapleads/leadgen-worker/internal/dto"

	"github.com/stretchr/testify/assert"
)

func TestCalculateLeadScore(t *testing.T) {
	testCases := []struct {
		name     string
		place    dto.PlaceResult
		hints    EnrichmentHints
		expected int
	}{
		{
			name:     "name only",
			place:    dto.PlaceResult{Name: "Plomberie Tremblay"},
			expected: 10,
		},
		{
			name: "complete place without email",
			place: dto.PlaceResult{
				Name:             "Plomberie Tremblay",
				FormattedAddress: "123 Rue Principale, Montréal, QC H2X 1Y4",
				Phone:            "+1 514-555-0101",
				Website:          "https://plomberietremblay.ca",
				Rating:           5.0,
				Reviews:          150,
			},
			expected: 85,
		},
		{
			name: "complete place with email hint",
			place: dto.PlaceResult{
				Name:             "Plomberie Tremblay",
				FormattedAddress: "123 Rue Principale, Montréal, QC H2X 1Y4",
				Phone:            "+1 514-555-0101",
				Website:          "https://plomberietremblay.ca",
				Rating:           5.0,
				Reviews:          150,
			},
			hints:    EnrichmentHints{Email: "contact@plomberietremblay.ca"},
			expected: 100,
		},
		{
			name: "rating contributes rating times two",
			place: dto.PlaceResult{
				Name:   "Café du Coin",
				Rating: 3.5,
			},
			expected: 17, // 10 + 7
		},
		{
			name: "rating capped at ten points",
			place: dto.PlaceResult{
				Name:   "Café du Coin",
				Rating: 6.2, // out-of-range provider data
			},
			expected: 20, // 10 + 10
		},
		{
			name: "review volume scales by tens",
			place: dto.PlaceResult{
				Name:    "Café du Coin",
				Reviews: 37,
			},
			expected: 14, // 10 + 3.7, rounded
		},
		{
			name: "review points capped at fifteen",
			place: dto.PlaceResult{
				Name:    "Café du Coin",
				Reviews: 4000,
			},
			expected: 25, // 10 + 15
		},
		{
			name: "phone from hints counts",
			place: dto.PlaceResult{
				Name: "Café du Coin",
			},
			hints:    EnrichmentHints{Phone: "+15145550101"},
			expected: 25, // 10 + 15
		},
		{
			name: "phone not double counted",
			place: dto.PlaceResult{
				Name:  "Café du Coin",
				Phone: "+1 514-555-0101",
			},
			hints:    EnrichmentHints{Phone: "+15145550101"},
			expected: 25, // 10 + 15, once
		},
		{
			name: "zero rating and zero reviews contribute nothing",
			place: dto.PlaceResult{
				Name:    "Café du Coin",
				Rating:  0,
				Reviews: 0,
			},
			expected: 10,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, CalculateLeadScore(tc.place, tc.hints))
		})
	}
}

func TestCalculateLeadScore_Deterministic(t *testing.T) {
	place := dto.PlaceResult{
		Name:             "Plomberie Tremblay",
		FormattedAddress: "123 Rue Principale, Montréal, QC H2X 1Y4",
		Website:          "https://plomberietremblay.ca",
		Rating:           4.2,
		Reviews:          88,
	}
	hints := EnrichmentHints{Email: "contact@plomberietremblay.ca"}

	first := CalculateLeadScore(place, hints)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, CalculateLeadScore(place, hints))
	}
}

func TestCalculateLeadScore_NeverExceedsBounds(t *testing.T) {
	place := dto.PlaceResult{
		Name:             "Plomberie Tremblay",
		FormattedAddress: "123 Rue Principale, Montréal, QC H2X 1Y4",
		Phone:            "+1 514-555-0101",
		Website:          "https://plomberietremblay.ca",
		Rating:           9.9,
		Reviews:          1000000,
	}
	hints := EnrichmentHints{Email: "a@b.ca", Phone: "+15145550101"}

	score := CalculateLeadScore(place, hints)
	assert.LessOrEqual(t, score, 100)
	assert.GreaterOrEqual(t, score, 0)
}
