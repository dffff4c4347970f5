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


package core

import (
	"fmt"
	"strings"
)

// ValidateCriteria validates SearchCriteria according to domain rules.
//
// Validation rules:
//   - Product must not be empty or whitespace
//   - Industry must not be empty or whitespace
//   - Limit must not be negative (0 means "use the default")
//   - MinScore must be within [0,100]
//
// NOT validated:
//   - Region and Keywords (both optional)
func ValidateCriteria(criteria *SearchCriteria) error {
	if criteria == nil {
		return fmt.Errorf("%w: criteria is nil", ErrInvalidCriteria)
	}

	if strings.TrimSpace(criteria.Product) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidCriteria, ErrMissingProduct)
	}

	if strings.TrimSpace(criteria.Industry) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidCriteria, ErrMissingIndustry)
	}

	if criteria.Limit < 0 {
		return fmt.Errorf("%w: %w", ErrInvalidCriteria, ErrInvalidLimit)
	}

	if criteria.MinScore < 0 || criteria.MinScore > 100 {
		return fmt.Errorf("%w: %w", ErrInvalidCriteria, ErrInvalidMinScore)
	}

	return nil
}

// ValidateRecord validates an EmbeddedRecord according to domain rules.
//
// Validation rules:
//   - Content must not be empty
//
// NOT validated (populated by ingestion processors):
//   - Vector (can be empty until the embedding step runs)
//   - ID (0 is valid from database sequences)
func ValidateRecord(record *EmbeddedRecord) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidRecord)
	}

	if record.Content == "" {
		return fmt.Errorf("%w: %w", ErrInvalidRecord, ErrEmptyContent)
	}

	return nil
}
