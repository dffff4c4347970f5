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


package scoring

import (
	"log/slog"
	"time"

	"github.com/prospekt/leadrank/core"
)

// Criterion weights. They sum to 1.0; the final score is the weighted sum
// of the sub-scores scaled to [0,100].
const (
	WeightRegion       = 0.40
	WeightIndustry     = 0.25
	WeightCompleteness = 0.20
	WeightActivity     = 0.08
	WeightExport       = 0.05
	WeightEngagement   = 0.01
	WeightFreshness    = 0.01
)

// fallbackFinalScore is assigned when scoring one candidate panics; the
// candidate stays in the batch at the bottom of the ranking instead of
// aborting the request.
const fallbackFinalScore = 10.0

// Engine computes the seven-criterion relevance score for candidates.
type Engine struct {
	logger *slog.Logger
	now    func() time.Time
}

// Option configures an Engine.
type Option func(*Engine) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) error {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
		return nil
	}
}

// WithClock overrides the time source used for freshness scoring.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) error {
		if now == nil {
			now = time.Now
		}
		e.now = now
		return nil
	}
}

// NewEngine creates a scoring engine.
func NewEngine(opts ...Option) (*Engine, error) {
	e := &Engine{
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}
	e.logger = e.logger.With("component", "scoring")
	return e, nil
}

// Score fills in the candidate's sub-scores and final score for the given
// criteria. Sub-scores are returned alongside the total so callers can
// audit how a lead earned its rank.
func (e *Engine) Score(candidate *core.ScoredCandidate, criteria *core.SearchCriteria) {
	record := candidate.Record

	candidate.Sub = core.SubScores{
		Region:       scoreRegion(record, criteria.Region),
		Industry:     scoreIndustry(record, criteria.Industry, criteria.Keywords),
		Completeness: scoreCompleteness(record),
		Activity:     scoreActivity(record),
		Export:       scoreExport(record),
		Engagement:   scoreEngagement(record),
		Freshness:    scoreFreshness(record, e.now()),
	}
	candidate.FinalScore = Final(candidate.Sub)
}

// ScoreAll scores every candidate in place. A panic while scoring one
// candidate is captured: that candidate gets the fallback floor score and
// the batch continues. No single bad record may abort a request.
func (e *Engine) ScoreAll(candidates []*core.ScoredCandidate, criteria *core.SearchCriteria) {
	for _, candidate := range candidates {
		if candidate == nil || candidate.Record == nil {
			continue
		}
		e.scoreSafely(candidate, criteria)
	}
}

func (e *Engine) scoreSafely(candidate *core.ScoredCandidate, criteria *core.SearchCriteria) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Warn("scoring anomaly, assigning fallback score",
				"record", candidate.Record.Id, "panic", r)
			candidate.Sub = core.SubScores{}
			candidate.FinalScore = fallbackFinalScore
		}
	}()
	e.Score(candidate, criteria)
}

// Final computes the weighted 0-100 total from sub-scores.
func Final(sub core.SubScores) float64 {
	total := 100 * (sub.Region*WeightRegion +
		sub.Industry*WeightIndustry +
		sub.Completeness*WeightCompleteness +
		sub.Activity*WeightActivity +
		sub.Export*WeightExport +
		sub.Engagement*WeightEngagement +
		sub.Freshness*WeightFreshness)
	if total < 0 {
		return 0
	}
	if total > 100 {
		return 100
	}
	return total
}

// Breakdown returns the per-criterion point contribution to the final
// score, keyed by criterion name.
func Breakdown(sub core.SubScores) map[string]float64 {
	return map[string]float64{
		"region":       100 * sub.Region * WeightRegion,
		"industry":     100 * sub.Industry * WeightIndustry,
		"completeness": 100 * sub.Completeness * WeightCompleteness,
		"activity":     100 * sub.Activity * WeightActivity,
		"export":       100 * sub.Export * WeightExport,
		"engagement":   100 * sub.Engagement * WeightEngagement,
		"freshness":    100 * sub.Freshness * WeightFreshness,
	}
}
