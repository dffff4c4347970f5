package scoring

import (
	"strings"

	"github.com/prospekt/leadrank/core"
	"github.com/prospekt/leadrank/extract"
)

// Region match tiers. Exact city evidence is worth the most, pure
// free-text containment nearly as much, heuristic aliases progressively
// less. A record with no evidence keeps a small floor rather than zero so
// other criteria can still surface it.
const (
	regionCityExact    = 1.0
	regionAddressMatch = 0.95
	regionTextMatch    = 0.92
	regionCityAlias    = 0.88
	regionCountryField = 0.85
	regionDialingCode  = 0.75
	regionStateAlias   = 0.65
	regionFuzzyPrefix  = 0.3
	regionNoMatch      = 0.05
	regionNeutral      = 0.5
)

// scoreRegion computes the region sub-score for one record.
//
// Tiers are evaluated in precedence order. Free-text containment sits
// above the structured country/state field match.
// TODO: that looks like a tier inversion (0.92 free text vs 0.85 country
// field); confirm against live ranking data before reordering.
func scoreRegion(record *core.EmbeddedRecord, region string) float64 {
	region = strings.ToLower(strings.TrimSpace(region))
	if region == "" {
		// Region not part of the criteria: neutral for every candidate.
		return regionNeutral
	}

	city := strings.ToLower(extract.FirstField(record, extract.RegionAliases))
	if city != "" && strings.Contains(city, region) {
		return regionCityExact
	}

	for _, address := range extract.AllFields(record, extract.AddressAliases) {
		if strings.Contains(strings.ToLower(address), region) {
			return regionAddressMatch
		}
	}

	// The text tier scans the flattened content only; scanning field values
	// here would shadow the structured country tier below entirely.
	if strings.Contains(strings.ToLower(record.Content), region) {
		return regionTextMatch
	}

	flattened := flattenRecord(record)

	for _, alias := range cityAliases[region] {
		if strings.Contains(city, alias) || strings.Contains(flattened, alias) {
			return regionCityAlias
		}
	}

	country := strings.ToLower(extract.FirstField(record, extract.CountryAliases))
	if country != "" && (strings.Contains(country, region) || strings.Contains(region, country)) {
		return regionCountryField
	}

	phone := extract.FirstField(record, extract.PhoneAliases)
	for _, code := range dialingCodes[region] {
		if strings.Contains(phone, code) || strings.Contains(flattened, code) {
			return regionDialingCode
		}
	}

	for _, state := range stateAliases[region] {
		if strings.Contains(flattened, state) {
			return regionStateAlias
		}
	}

	if fuzzyRegionMatch(region, city, country) {
		return regionFuzzyPrefix
	}

	return regionNoMatch
}

// fuzzyRegionMatch catches prefixes and rough abbreviations: "maha" for
// maharashtra, "blr" won't match but "bang" will match bangalore.
func fuzzyRegionMatch(region string, fields ...string) bool {
	if len(region) < 3 {
		return false
	}
	prefix := region[:3]
	for _, field := range fields {
		if field == "" {
			continue
		}
		if strings.HasPrefix(field, prefix) || strings.HasPrefix(region, field) {
			return true
		}
	}
	return false
}

// flattenRecord lowercases the record's content and every field value into
// one searchable string.
func flattenRecord(record *core.EmbeddedRecord) string {
	var b strings.Builder
	b.WriteString(record.Content)
	for _, value := range record.Fields {
		b.WriteByte(' ')
		b.WriteString(value)
	}
	return strings.ToLower(b.String())
}
