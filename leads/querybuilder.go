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
	"strings"

	"github.com/prospekt/leadrank/core"
)

// maxQueryKeywords caps how many criteria keywords participate in query
// strings.
const maxQueryKeywords = 2

// BuildQueries produces the ordered, de-duplicated list of query strings
// for the given criteria. Region-led variants come first because region
// carries the highest scoring weight; later duplicates of an earlier
// query are dropped.
func BuildQueries(criteria *core.SearchCriteria) []string {
	product := strings.TrimSpace(criteria.Product)
	industry := strings.TrimSpace(criteria.Industry)
	region := strings.TrimSpace(criteria.Region)
	keywords := joinKeywords(criteria.Keywords)

	var candidates []string
	if region != "" {
		candidates = append(candidates,
			join(region, product, industry, keywords),
			join(region, product),
			join(region, industry),
			region,
			join(region, keywords),
		)
	}
	candidates = append(candidates,
		join(product, industry),
		join(product, keywords),
		product,
	)

	seen := make(map[string]bool, len(candidates))
	queries := make([]string, 0, len(candidates))
	for _, q := range candidates {
		if q == "" || seen[q] {
			continue
		}
		seen[q] = true
		queries = append(queries, q)
	}
	return queries
}

func joinKeywords(keywords []string) string {
	trimmed := make([]string, 0, maxQueryKeywords)
	for _, kw := range keywords {
		kw = strings.TrimSpace(kw)
		if kw == "" {
			continue
		}
		trimmed = append(trimmed, kw)
		if len(trimmed) == maxQueryKeywords {
			break
		}
	}
	return strings.Join(trimmed, " ")
}

func join(parts ...string) string {
	nonEmpty := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, " ")
}
