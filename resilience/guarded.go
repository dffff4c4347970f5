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

package resilience

import (
	"context"

	"github.com/prospekt/leadrank/ai"
)

// GuardedEmbedder wraps an ai.Embedder with a rate limiter and a circuit
// breaker. Calls rejected by either guard never reach the provider and do
// not count as breaker failures.
type GuardedEmbedder struct {
	inner   ai.Embedder
	breaker *CircuitBreaker
	limiter *RateLimiter
}

var _ ai.Embedder = (*GuardedEmbedder)(nil)

// NewGuardedEmbedder wraps inner with the given guards. Either guard may
// be nil, in which case that check is skipped.
func NewGuardedEmbedder(inner ai.Embedder, breaker *CircuitBreaker, limiter *RateLimiter) (*GuardedEmbedder, error) {
	if inner == nil {
		return nil, ErrEmbedderRequired
	}
	return &GuardedEmbedder{
		inner:   inner,
		breaker: breaker,
		limiter: limiter,
	}, nil
}

// EmbedText embeds a single text through the guards.
func (g *GuardedEmbedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	if err := g.allow(); err != nil {
		return nil, err
	}

	vector, err := g.inner.EmbedText(ctx, text)
	g.record(err)
	return vector, err
}

// EmbedTexts embeds a batch of texts through the guards. The whole batch
// consumes a single rate-limit slot, matching one provider request.
func (g *GuardedEmbedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	if err := g.allow(); err != nil {
		return nil, err
	}

	vectors, err := g.inner.EmbedTexts(ctx, texts)
	g.record(err)
	return vectors, err
}

func (g *GuardedEmbedder) allow() error {
	if g.limiter != nil {
		if err := g.limiter.Allow(); err != nil {
			return err
		}
	}
	if g.breaker != nil {
		return g.breaker.Allow()
	}
	return nil
}

func (g *GuardedEmbedder) record(err error) {
	if g.breaker != nil {
		g.breaker.Record(err)
	}
}
