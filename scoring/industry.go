package scoring

import (
	"strings"

	"github.com/prospekt/leadrank/core"
	"github.com/prospekt/leadrank/extract"
)

// Industry contribution caps. Contributions accumulate and the total is
// clamped to [0,1].
const (
	industryFieldMatch = 0.8
	industryTextMatch  = 0.6
	industryKeywordCap = 0.5
	industryRelatedCap = 0.4
	industrySynonymCap = 0.3
)

// scoreIndustry sums the industry evidence for one record: a direct field
// match, literal text containment, and the matched fraction of the
// caller's keywords and of the curated related-term and fuzzy-synonym
// vocabularies.
func scoreIndustry(record *core.EmbeddedRecord, industry string, keywords []string) float64 {
	industry = strings.ToLower(strings.TrimSpace(industry))
	if industry == "" {
		return 0
	}

	flattened := flattenRecord(record)
	var score float64

	field := strings.ToLower(extract.FirstField(record, extract.IndustryAliases))
	if field != "" && (strings.Contains(field, industry) || strings.Contains(industry, field)) {
		score += industryFieldMatch
	}

	if strings.Contains(flattened, industry) {
		score += industryTextMatch
	}

	score += industryKeywordCap * matchedFraction(flattened, lowerAll(keywords))
	score += industryRelatedCap * matchedFraction(flattened, industryRelatedTerms[industry])
	score += industrySynonymCap * matchedFraction(flattened, industryFuzzySynonyms[industry])

	return clamp01(score)
}

// matchedFraction returns the fraction of terms contained in the text.
func matchedFraction(text string, terms []string) float64 {
	if len(terms) == 0 {
		return 0
	}
	matched := 0
	for _, term := range terms {
		if term != "" && strings.Contains(text, term) {
			matched++
		}
	}
	return float64(matched) / float64(len(terms))
}

func lowerAll(terms []string) []string {
	if len(terms) == 0 {
		return nil
	}
	lowered := make([]string, len(terms))
	for i, term := range terms {
		lowered[i] = strings.ToLower(strings.TrimSpace(term))
	}
	return lowered
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
