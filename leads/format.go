// Copyright 2025 Prospekt Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package leads

import (
	"math"

	"github.com/prospekt/leadrank/core"
	"github.com/prospekt/leadrank/extract"
	"github.com/prospekt/leadrank/scoring"
)

// Priority tiers.
const (
	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"

	highPriorityThreshold   = 75.0
	mediumPriorityThreshold = 50.0
)

// Priority maps a final score to its priority tier.
func Priority(finalScore float64) string {
	switch {
	case finalScore >= highPriorityThreshold:
		return PriorityHigh
	case finalScore >= mediumPriorityThreshold:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// FormatLead converts a scored candidate into the externally visible
// lead shape. Contact fields are the first validated value found among
// the field aliases; invalid values are left empty rather than passed
// through.
func FormatLead(candidate *core.ScoredCandidate) *core.Lead {
	record := candidate.Record

	return &core.Lead{
		CompanyName:    extract.FirstField(record, extract.CompanyAliases),
		Region:         extract.FirstField(record, extract.RegionAliases),
		Industry:       extract.FirstField(record, extract.IndustryAliases),
		Email:          firstValid(record, extract.EmailAliases, extract.IsValidEmail),
		Phone:          firstValid(record, extract.PhoneAliases, extract.IsValidPhone),
		Website:        firstValid(record, extract.WebsiteAliases, extract.IsValidWebsite),
		ContactPerson:  extract.FirstField(record, extract.ContactAliases),
		FinalScore:     int(math.Round(candidate.FinalScore)),
		Priority:       Priority(candidate.FinalScore),
		ScoreBreakdown: scoring.Breakdown(candidate.Sub),
		Fields:         record.Fields,
	}
}

func firstValid(record *core.EmbeddedRecord, aliases []string, valid func(string) bool) string {
	for _, value := range extract.AllFields(record, aliases) {
		if valid(value) {
			return value
		}
	}
	return ""
}
