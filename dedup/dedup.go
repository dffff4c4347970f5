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


package dedup

import (
	"log/slog"

	"github.com/prospekt/leadrank/core"
)

// Deduper collapses candidate lists into unique entities.
type Deduper struct {
	logger *slog.Logger
}

// Option configures a Deduper.
type Option func(*Deduper) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(d *Deduper) error {
		if logger == nil {
			logger = slog.Default()
		}
		d.logger = logger
		return nil
	}
}

// New creates a Deduper.
func New(opts ...Option) (*Deduper, error) {
	d := &Deduper{logger: slog.Default()}
	for _, opt := range opts {
		if err := opt(d); err != nil {
			return nil, err
		}
	}
	d.logger = d.logger.With("component", "dedup")
	return d, nil
}

// Deduplicate collapses candidates that share any identity fingerprint,
// then runs a backstop pass grouping the survivors by normalized company
// name (contact identity when the company is unknown).
//
// First-seen wins throughout: the input order decides which duplicate
// survives, so the operation is idempotent for a fixed input order.
// Score-aware replacement happens later, in post-scoring resolution.
//
// When fingerprint strategies disagree (a shared email under differing
// company spellings, say), the conflict is resolved first-seen and logged;
// no cross-fingerprint reconciliation is attempted.
func (d *Deduper) Deduplicate(candidates []*core.ScoredCandidate) []*core.ScoredCandidate {
	if len(candidates) <= 1 {
		return candidates
	}

	seen := make(map[string]*core.ScoredCandidate)
	unique := make([]*core.ScoredCandidate, 0, len(candidates))

	for _, candidate := range candidates {
		if candidate == nil || candidate.Record == nil {
			continue
		}

		if len(candidate.Fingerprints) == 0 {
			candidate.Fingerprints = Fingerprints(candidate.Record)
		}

		first := d.firstMatch(seen, candidate)
		if first != nil {
			d.logConflict(first, candidate)
			continue
		}

		for _, fingerprint := range candidate.Fingerprints {
			seen[fingerprint] = candidate
		}
		unique = append(unique, candidate)
	}

	return d.backstop(unique)
}

// firstMatch returns the previously seen candidate sharing any fingerprint.
func (d *Deduper) firstMatch(seen map[string]*core.ScoredCandidate, candidate *core.ScoredCandidate) *core.ScoredCandidate {
	for _, fingerprint := range candidate.Fingerprints {
		if first, ok := seen[fingerprint]; ok {
			return first
		}
	}
	return nil
}

// backstop regroups by company identity and keeps the first of each group.
// Catches spelling variants the fingerprint pass missed, e.g. records with
// the same company but disjoint contact details.
func (d *Deduper) backstop(candidates []*core.ScoredCandidate) []*core.ScoredCandidate {
	groups := make(map[string]bool, len(candidates))
	unique := make([]*core.ScoredCandidate, 0, len(candidates))

	for _, candidate := range candidates {
		key := GroupKey(candidate.Record)
		if groups[key] {
			d.logger.Debug("backstop pass collapsed candidate",
				"group", key, "record", candidate.Record.Id)
			continue
		}
		groups[key] = true
		unique = append(unique, candidate)
	}

	return unique
}

func (d *Deduper) logConflict(first, duplicate *core.ScoredCandidate) {
	firstKey := GroupKey(first.Record)
	dupKey := GroupKey(duplicate.Record)
	if firstKey != dupKey {
		d.logger.Debug("fingerprint match across differing identities, keeping first-seen",
			"kept", firstKey, "dropped", dupKey, "record", duplicate.Record.Id)
		return
	}
	d.logger.Debug("dropped duplicate candidate",
		"group", firstKey, "record", duplicate.Record.Id)
}
