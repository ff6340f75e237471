package services

import (
	"regexp"
	"strings"
)

// AddressComponents holds the pieces extracted from a formatted address.
// Missing components are left empty, never defaulted.
type AddressComponents struct {
	City       string
	Province   string
	PostalCode string
}

// AddressParser extracts location components from a provider-formatted
// address string. Implementations are best-effort over unstructured text;
// alternate locales can be plugged in without touching the orchestration.
type AddressParser interface {
	Parse(formattedAddress string) AddressComponents
}

var (
	provinceRe = regexp.MustCompile(`\b(QC|ON|BC|AB|MB|SK|NS|NB|PE|NL)\b`)
	postalRe   = regexp.MustCompile(`\b([A-Z]\d[A-Z]\s?\d[A-Z]\d)\b`)
)

// CanadianAddressParser parses Canadian-style formatted addresses: comma
// separated segments with a two-letter province code and a postal code in
// the last segment. Lossy by design, there is no gazetteer validation.
type CanadianAddressParser struct{}

// NewCanadianAddressParser creates a new CanadianAddressParser
func NewCanadianAddressParser() *CanadianAddressParser {
	return &CanadianAddressParser{}
}

// Parse extracts city, province and postal code from a formatted address.
// Total function: never fails, empty input yields the zero value.
func (p *CanadianAddressParser) Parse(formattedAddress string) AddressComponents {
	var result AddressComponents
	if formattedAddress == "" {
		return result
	}

	parts := strings.Split(formattedAddress, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	// First segment is taken as the city (heuristic)
	if len(parts) > 0 {
		result.City = parts[0]
	}

	lastPart := parts[len(parts)-1]
	if lastPart != "" {
		if m := provinceRe.FindStringSubmatch(lastPart); m != nil {
			result.Province = m[1]
		}
		if m := postalRe.FindStringSubmatch(lastPart); m != nil {
			result.PostalCode = m[1]
		}
	}

	return result
}
