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
	"context"
	"log/slog"

	"github.com/prospekt/leadrank/core"
	"github.com/prospekt/leadrank/dedup"
	"github.com/prospekt/leadrank/scoring"
	"github.com/prospekt/leadrank/search"
)

const (
	defaultLimit = 10

	// candidateMultiplier widens the per-query search limit so scoring
	// and dedup see more candidates than the final lead limit.
	candidateMultiplier = 5

	fallbackWarning = "no leads met the minimum score; returning best available candidates"
)

// Service runs the lead discovery pipeline: query building, batch
// embedding and search, deduplication, scoring, identity resolution and
// formatting.
type Service struct {
	searcher *search.Searcher
	deduper  *dedup.Deduper
	engine   *scoring.Engine
	logger   *slog.Logger
}

// Option configures a Service.
type Option func(*Service) error

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) error {
		s.logger = logger.With("component", "leads")
		return nil
	}
}

// WithDeduper overrides the deduplication engine.
func WithDeduper(deduper *dedup.Deduper) Option {
	return func(s *Service) error {
		s.deduper = deduper
		return nil
	}
}

// WithEngine overrides the scoring engine.
func WithEngine(engine *scoring.Engine) Option {
	return func(s *Service) error {
		s.engine = engine
		return nil
	}
}

// NewService creates a lead discovery service around the given searcher.
func NewService(searcher *search.Searcher, opts ...Option) (*Service, error) {
	if searcher == nil {
		return nil, ErrSearcherRequired
	}

	s := &Service{
		searcher: searcher,
		logger:   slog.Default().With("component", "leads"),
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	if s.deduper == nil {
		deduper, err := dedup.New(dedup.WithLogger(s.logger))
		if err != nil {
			return nil, err
		}
		s.deduper = deduper
	}
	if s.engine == nil {
		engine, err := scoring.NewEngine(scoring.WithLogger(s.logger))
		if err != nil {
			return nil, err
		}
		s.engine = engine
	}
	return s, nil
}

// FindLeads runs the full pipeline for the given criteria and returns
// qualified leads sorted by final score. When no candidate reaches
// MinScore but candidates exist, the result carries a warning and the
// best available candidates instead of an empty list.
func (s *Service) FindLeads(ctx context.Context, criteria *core.SearchCriteria) (*core.LeadSearchResult, error) {
	if err := core.ValidateCriteria(criteria); err != nil {
		return nil, err
	}

	limit := criteria.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	queries := BuildQueries(criteria)
	s.logger.Debug("running lead search", "queries", len(queries), "limit", limit)

	batch, err := s.searcher.BatchSearch(ctx, queries, "", limit*candidateMultiplier, 0)
	if err != nil {
		return nil, err
	}

	candidates := mergeMatches(batch)
	totalMatches := len(candidates)
	if totalMatches == 0 {
		s.logger.Info("no candidates matched", "queries", len(queries))
		return &core.LeadSearchResult{}, nil
	}

	candidates = s.deduper.Deduplicate(candidates)
	s.engine.ScoreAll(candidates, criteria)
	resolved := resolveIdentities(candidates)

	qualified := make([]*core.ScoredCandidate, 0, len(resolved))
	for _, candidate := range resolved {
		if candidate.FinalScore >= criteria.MinScore {
			qualified = append(qualified, candidate)
		}
	}

	result := &core.LeadSearchResult{
		TotalMatches:   totalMatches,
		QualifiedCount: len(qualified),
	}

	selected := qualified
	if len(qualified) == 0 {
		s.logger.Info("no qualified leads, returning fallback list",
			"candidates", len(resolved), "min_score", criteria.MinScore)
		result.Warning = fallbackWarning
		selected = resolved
	}
	if len(selected) > limit {
		selected = selected[:limit]
	}

	result.Leads = make([]*core.Lead, len(selected))
	for i, candidate := range selected {
		result.Leads[i] = FormatLead(candidate)
	}
	return result, nil
}

// SearchSimilar returns the raw similarity matches for a free-text
// query, optionally restricted to one source document.
func (s *Service) SearchSimilar(ctx context.Context, query, sourceFilter string, topK int) ([]core.SimilarityMatch, error) {
	if topK <= 0 {
		topK = defaultLimit
	}
	return s.searcher.Search(ctx, query, sourceFilter, topK, 0)
}

// mergeMatches flattens per-query result lists into one candidate set,
// keeping the highest similarity seen for each record.
func mergeMatches(batch [][]core.SimilarityMatch) []*core.ScoredCandidate {
	best := make(map[core.ID]*core.ScoredCandidate)
	order := make([]core.ID, 0)

	for _, matches := range batch {
		for _, match := range matches {
			candidate, ok := best[match.Record.Id]
			if !ok {
				best[match.Record.Id] = &core.ScoredCandidate{
					Record:     match.Record,
					Similarity: match.Score,
				}
				order = append(order, match.Record.Id)
				continue
			}
			if match.Score > candidate.Similarity {
				candidate.Similarity = match.Score
			}
		}
	}

	merged := make([]*core.ScoredCandidate, 0, len(order))
	for _, id := range order {
		merged = append(merged, best[id])
	}
	return merged
}
