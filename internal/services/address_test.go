package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanadianAddressParser_Parse(t *testing.T) {
	parser := NewCanadianAddressParser()

	testCases := []struct {
		name     string
		address  string
		expected AddressComponents
	}{
		{
			name:    "full address with province and postal code",
			address: "123 Main St, Montreal, QC H2X 1Y4",
			expected: AddressComponents{
				City:       "123 Main St",
				Province:   "QC",
				PostalCode: "H2X 1Y4",
			},
		},
		{
			name:    "postal code without space",
			address: "456 Rue Saint-Denis, Québec, QC G1R4S9",
			expected: AddressComponents{
				City:       "456 Rue Saint-Denis",
				Province:   "QC",
				PostalCode: "G1R4S9",
			},
		},
		{
			name:    "province only in last segment",
			address: "Toronto, ON",
			expected: AddressComponents{
				City:     "Toronto",
				Province: "ON",
			},
		},
		{
			name:    "single segment without province",
			address: "Vancouver",
			expected: AddressComponents{
				City: "Vancouver",
			},
		},
		{
			name:     "empty address yields zero value",
			address:  "",
			expected: AddressComponents{},
		},
		{
			name:    "province in middle segment is ignored",
			address: "123 Main St, QC City Hall, Canada",
			expected: AddressComponents{
				City: "123 Main St",
			},
		},
		{
			name:    "all province codes recognized",
			address: "Somewhere, NL A1B 2C3",
			expected: AddressComponents{
				City:       "Somewhere",
				Province:   "NL",
				PostalCode: "A1B 2C3",
			},
		},
		{
			name:    "segments are trimmed",
			address: "  Halifax  ,   NS B3H 4R2  ",
			expected: AddressComponents{
				City:       "Halifax",
				Province:   "NS",
				PostalCode: "B3H 4R2",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, parser.Parse(tc.address))
		})
	}
}

func TestCanadianAddressParser_NoFalsePostalMatch(t *testing.T) {
	parser := NewCanadianAddressParser()

	// Lowercase or malformed codes must not match
	result := parser.Parse("123 Main St, Montreal, qc h2x 1y4")
	assert.Empty(t, result.Province)
	assert.Empty(t, result.PostalCode)
}
