package resilience

import (
	"sync/atomic"
	"time"
)

const (
	defaultRateLimit  = 60
	defaultRateWindow = time.Minute
)

// RateLimiter is a fixed-window rate limiter built on atomic counters.
// The window resets lazily on the first call after it expires.
type RateLimiter struct {
	limit            int64
	window           time.Duration
	count            atomic.Int64
	windowStartNanos atomic.Int64
	now              func() time.Time
}

// LimiterOption configures a RateLimiter.
type LimiterOption func(*RateLimiter) error

// WithLimit sets the number of calls allowed per window.
func WithLimit(n int) LimiterOption {
	return func(rl *RateLimiter) error {
		if n > 0 {
			rl.limit = int64(n)
		}
		return nil
	}
}

// WithWindow sets the window duration.
func WithWindow(d time.Duration) LimiterOption {
	return func(rl *RateLimiter) error {
		if d > 0 {
			rl.window = d
		}
		return nil
	}
}

// WithLimiterClock overrides the time source. For tests.
func WithLimiterClock(now func() time.Time) LimiterOption {
	return func(rl *RateLimiter) error {
		rl.now = now
		return nil
	}
}

// NewRateLimiter creates a rate limiter with a fresh window.
func NewRateLimiter(opts ...LimiterOption) (*RateLimiter, error) {
	rl := &RateLimiter{
		limit:  defaultRateLimit,
		window: defaultRateWindow,
		now:    time.Now,
	}
	for _, opt := range opts {
		if err := opt(rl); err != nil {
			return nil, err
		}
	}
	rl.windowStartNanos.Store(rl.now().UnixNano())
	return rl, nil
}

// Allow consumes one slot from the current window, returning
// ErrRateLimited when the window budget is spent.
func (rl *RateLimiter) Allow() error {
	nowNanos := rl.now().UnixNano()
	start := rl.windowStartNanos.Load()

	if nowNanos-start >= rl.window.Nanoseconds() {
		// First caller past the boundary resets the window; losers of the
		// race just count against the fresh window.
		if rl.windowStartNanos.CompareAndSwap(start, nowNanos) {
			rl.count.Store(0)
		}
	}

	if rl.count.Add(1) > rl.limit {
		return ErrRateLimited
	}
	return nil
}

// Remaining returns the number of calls left in the current window.
func (rl *RateLimiter) Remaining() int {
	left := rl.limit - rl.count.Load()
	if left < 0 {
		return 0
	}
	return int(left)
}
