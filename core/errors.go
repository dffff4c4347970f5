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

import "errors"

// Domain validation errors
var (
	// ErrInvalidCriteria indicates SearchCriteria failed validation.
	ErrInvalidCriteria = errors.New("invalid search criteria")

	// ErrMissingProduct indicates the Product field is empty.
	ErrMissingProduct = errors.New("product is required")

	// ErrMissingIndustry indicates the Industry field is empty.
	ErrMissingIndustry = errors.New("industry is required")

	// ErrInvalidLimit indicates a negative result limit.
	ErrInvalidLimit = errors.New("limit cannot be negative")

	// ErrInvalidMinScore indicates a minimum score outside [0,100].
	ErrInvalidMinScore = errors.New("minimum score must be between 0 and 100")

	// ErrInvalidRecord indicates an EmbeddedRecord failed validation.
	ErrInvalidRecord = errors.New("invalid embedded record")

	// ErrEmptyContent indicates the Content field is empty.
	ErrEmptyContent = errors.New("content cannot be empty")

	// ErrUnconvertibleVector indicates a stored vector representation that
	// cannot be recovered into an ordered numeric sequence.
	ErrUnconvertibleVector = errors.New("unconvertible vector representation")
)
