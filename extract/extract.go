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


package extract

import (
	"sort"
	"strings"

	"github.com/prospekt/leadrank/core"
)

// Field resolves a canonical attribute from a schema-less record.
//
// Resolution order:
//  1. exact key match
//  2. exact match on the lowercased key
//  3. first key (in sorted order, for determinism) whose lowercased form
//     contains the canonical name as a substring
//
// A miss yields the empty string, never an error.
func Field(record *core.EmbeddedRecord, name string) string {
	if record == nil || len(record.Fields) == 0 || name == "" {
		return ""
	}

	if value, ok := record.Fields[name]; ok {
		return value
	}

	lowered := strings.ToLower(name)

	keys := make([]string, 0, len(record.Fields))
	for key := range record.Fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if strings.ToLower(key) == lowered {
			return record.Fields[key]
		}
	}

	for _, key := range keys {
		if strings.Contains(strings.ToLower(key), lowered) {
			return record.Fields[key]
		}
	}

	return ""
}

// AllFields resolves every alias in order and returns the non-empty trimmed
// values, de-duplicated preserving first occurrence. Use this when a record
// may carry the same attribute under several plausible column names.
func AllFields(record *core.EmbeddedRecord, aliases []string) []string {
	var values []string
	seen := make(map[string]bool)

	for _, alias := range aliases {
		value := strings.TrimSpace(Field(record, alias))
		if value == "" || seen[value] {
			continue
		}
		seen[value] = true
		values = append(values, value)
	}

	return values
}

// FirstField resolves aliases in order and returns the first non-empty
// trimmed value.
func FirstField(record *core.EmbeddedRecord, aliases []string) string {
	for _, alias := range aliases {
		if value := strings.TrimSpace(Field(record, alias)); value != "" {
			return value
		}
	}
	return ""
}
