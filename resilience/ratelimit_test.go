package resilience

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLimiter(t *testing.T, clock *fakeClock, limit int, window time.Duration) *RateLimiter {
	t.Helper()

	rl, err := NewRateLimiter(
		WithLimit(limit),
		WithWindow(window),
		WithLimiterClock(clock.now),
	)
	require.NoError(t, err)
	return rl
}

func TestLimiterAllowsUpToLimit(t *testing.T) {
	clock := &fakeClock{current: time.Now()}
	rl := newTestLimiter(t, clock, 3, time.Minute)

	for i := 0; i < 3; i++ {
		assert.NoError(t, rl.Allow())
	}
	assert.ErrorIs(t, rl.Allow(), ErrRateLimited)
}

func TestLimiterResetsAfterWindow(t *testing.T) {
	clock := &fakeClock{current: time.Now()}
	rl := newTestLimiter(t, clock, 2, time.Minute)

	require.NoError(t, rl.Allow())
	require.NoError(t, rl.Allow())
	require.ErrorIs(t, rl.Allow(), ErrRateLimited)

	clock.advance(61 * time.Second)

	assert.NoError(t, rl.Allow())
	assert.NoError(t, rl.Allow())
	assert.ErrorIs(t, rl.Allow(), ErrRateLimited)
}

func TestLimiterRemaining(t *testing.T) {
	clock := &fakeClock{current: time.Now()}
	rl := newTestLimiter(t, clock, 2, time.Minute)

	assert.Equal(t, 2, rl.Remaining())
	require.NoError(t, rl.Allow())
	assert.Equal(t, 1, rl.Remaining())
	require.NoError(t, rl.Allow())
	assert.Equal(t, 0, rl.Remaining())

	// Denied calls do not push Remaining negative.
	require.Error(t, rl.Allow())
	assert.Equal(t, 0, rl.Remaining())
}
