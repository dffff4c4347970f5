package scoring

import (
	"strings"
	"time"

	"github.com/prospekt/leadrank/core"
	"github.com/prospekt/leadrank/extract"
)

// Completeness weights: how much each verified contact channel is worth.
const (
	completenessEmail   = 0.30
	completenessPhone   = 0.25
	completenessCompany = 0.20
	completenessWebsite = 0.15
	completenessAddress = 0.10
)

// scoreCompleteness sums the satisfied attribute weights. Every attribute
// is validated, not just present: an unparseable email adds nothing.
func scoreCompleteness(record *core.EmbeddedRecord) float64 {
	var score float64

	if anyValid(extract.AllFields(record, extract.EmailAliases), extract.IsValidEmail) {
		score += completenessEmail
	}
	if anyValid(extract.AllFields(record, extract.PhoneAliases), extract.IsValidPhone) {
		score += completenessPhone
	}
	if company := extract.FirstField(record, extract.CompanyAliases); nonTrivialName(company) {
		score += completenessCompany
	}
	if anyValid(extract.AllFields(record, extract.WebsiteAliases), extract.IsValidWebsite) {
		score += completenessWebsite
	}
	if extract.FirstField(record, extract.AddressAliases) != "" {
		score += completenessAddress
	}

	return score
}

// scoreActivity reads company-size vocabulary from size/tier fields and
// the record text. Premium markers set a floor rather than a tier of
// their own.
func scoreActivity(record *core.EmbeddedRecord) float64 {
	text := strings.ToLower(strings.Join(extract.AllFields(record, extract.SizeAliases), " "))
	if text == "" {
		text = flattenRecord(record)
	}

	score := 0.5
	switch {
	case containsAny(text, activityLargeTerms):
		score = 1.0
	case containsAny(text, activityMediumTerms):
		score = 0.7
	}
	if containsAny(text, activityPremiumTerms) && score < 0.8 {
		score = 0.8
	}
	return score
}

// Export-readiness: a base plus capped contributions per matched term.
const (
	exportBase       = 0.3
	exportPerTerm    = 0.2
	exportTermsCap   = 0.6
	businessPerTerm  = 0.2
	businessTermsCap = 0.4
)

func scoreExport(record *core.EmbeddedRecord) float64 {
	flattened := flattenRecord(record)

	exportBoost := exportPerTerm * float64(countMatches(flattened, exportTerms))
	if exportBoost > exportTermsCap {
		exportBoost = exportTermsCap
	}

	businessBoost := businessPerTerm * float64(countMatches(flattened, businessTypeTerms))
	if businessBoost > businessTermsCap {
		businessBoost = businessTermsCap
	}

	return clamp01(exportBase + exportBoost + businessBoost)
}

// scoreEngagement reads engagement-level vocabulary from engagement fields,
// falling back to the record text.
func scoreEngagement(record *core.EmbeddedRecord) float64 {
	text := strings.ToLower(strings.Join(extract.AllFields(record, extract.EngagementAliases), " "))
	if text == "" {
		text = flattenRecord(record)
	}

	// Low tier first: "inactive" contains "active", so checking the high
	// tier first would never let the low tier fire.
	switch {
	case containsAny(text, engagementLowTerms):
		return 0.2
	case containsAny(text, engagementHighTerms):
		return 1.0
	case containsAny(text, engagementMidTerms):
		return 0.6
	default:
		return 0.5
	}
}

// Freshness contributions.
const (
	freshnessBase          = 0.5
	freshnessQualityMarker = 0.3
	freshnessRichnessCap   = 0.2
	freshnessPerField      = 0.02
	freshnessRecencyCap    = 0.3
)

// scoreFreshness estimates data quality: quality markers in the text,
// field-count richness, and recency of the creation timestamp.
func scoreFreshness(record *core.EmbeddedRecord, now time.Time) float64 {
	score := freshnessBase

	if containsAny(flattenRecord(record), qualityMarkers) {
		score += freshnessQualityMarker
	}

	richness := freshnessPerField * float64(len(record.Fields))
	if richness > freshnessRichnessCap {
		richness = freshnessRichnessCap
	}
	score += richness

	if !record.CreatedAt.IsZero() {
		age := now.Sub(record.CreatedAt)
		switch {
		case age <= 30*24*time.Hour:
			score += freshnessRecencyCap
		case age <= 90*24*time.Hour:
			score += 0.2
		case age <= 365*24*time.Hour:
			score += 0.1
		}
	}

	return clamp01(score)
}

func anyValid(values []string, valid func(string) bool) bool {
	for _, value := range values {
		if valid(value) {
			return true
		}
	}
	return false
}

// nonTrivialName rejects placeholder company names.
func nonTrivialName(name string) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "", "-", "na", "n/a", "none", "unknown", "null":
		return false
	}
	return len(name) >= 2
}

func containsAny(text string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}

func countMatches(text string, terms []string) int {
	count := 0
	for _, term := range terms {
		if strings.Contains(text, term) {
			count++
		}
	}
	return count
}
