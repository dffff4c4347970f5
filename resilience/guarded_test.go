package resilience

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prospekt/leadrank/ai/mock"
)

func TestGuardedEmbedderRequiresInner(t *testing.T) {
	_, err := NewGuardedEmbedder(nil, nil, nil)
	assert.ErrorIs(t, err, ErrEmbedderRequired)
}

func TestGuardedEmbedderPassesThrough(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	guarded, err := NewGuardedEmbedder(embedder, nil, nil)
	require.NoError(t, err)

	vector, err := guarded.EmbedText(context.Background(), "hello")
	require.NoError(t, err)
	assert.Len(t, vector, 384)

	vectors, err := guarded.EmbedTexts(context.Background(), []string{"a", "b"})
	require.NoError(t, err)
	assert.Len(t, vectors, 2)
	assert.Equal(t, 2, embedder.CallCount())
}

func TestGuardedEmbedderRateLimits(t *testing.T) {
	clock := &fakeClock{current: time.Now()}
	limiter := newTestLimiter(t, clock, 1, time.Minute)

	embedder := mock.NewMockEmbedder()
	guarded, err := NewGuardedEmbedder(embedder, nil, limiter)
	require.NoError(t, err)

	_, err = guarded.EmbedText(context.Background(), "first")
	require.NoError(t, err)

	_, err = guarded.EmbedText(context.Background(), "second")
	assert.ErrorIs(t, err, ErrRateLimited)
	assert.Equal(t, 1, embedder.CallCount(), "rejected call must not reach the provider")
}

func TestGuardedEmbedderTripsBreaker(t *testing.T) {
	clock := &fakeClock{current: time.Now()}
	breaker := newTestBreaker(t, clock, WithFailureThreshold(2))

	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(context.Context, string) ([]float32, error) {
		return nil, errProvider
	}

	guarded, err := NewGuardedEmbedder(embedder, breaker, nil)
	require.NoError(t, err)

	ctx := context.Background()
	_, err = guarded.EmbedText(ctx, "a")
	require.ErrorIs(t, err, errProvider)
	_, err = guarded.EmbedText(ctx, "b")
	require.ErrorIs(t, err, errProvider)

	// Breaker is open now; provider is no longer called.
	_, err = guarded.EmbedText(ctx, "c")
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.Equal(t, 2, embedder.CallCount())
}

func TestGuardedEmbedderRecoversViaProbe(t *testing.T) {
	clock := &fakeClock{current: time.Now()}
	breaker := newTestBreaker(t, clock, WithFailureThreshold(1))

	embedder := mock.NewMockEmbedder()
	failing := true
	embedder.EmbedTextFunc = func(_ context.Context, text string) ([]float32, error) {
		if failing {
			return nil, errProvider
		}
		return mock.DeterministicVector(text, 8), nil
	}

	guarded, err := NewGuardedEmbedder(embedder, breaker, nil)
	require.NoError(t, err)

	ctx := context.Background()
	_, err = guarded.EmbedText(ctx, "trip")
	require.ErrorIs(t, err, errProvider)
	require.Equal(t, StateOpen, breaker.State())

	failing = false
	clock.advance(11 * time.Second)

	vector, err := guarded.EmbedText(ctx, "probe")
	require.NoError(t, err)
	assert.Len(t, vector, 8)
	assert.Equal(t, StateClosed, breaker.State())
}
