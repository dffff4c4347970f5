package resilience

import "errors"

var (
	// ErrCircuitOpen is returned when the circuit breaker is open and
	// calls are being rejected without reaching the provider.
	ErrCircuitOpen = errors.New("circuit breaker is open")

	// ErrRateLimited is returned when the rate limiter has exhausted its
	// budget for the current window.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrEmbedderRequired is returned when a guarded embedder is
	// constructed without an inner embedder.
	ErrEmbedderRequired = errors.New("inner embedder is required")
)
