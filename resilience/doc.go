// Package resilience guards calls to external providers.
//
// It provides a lock-free circuit breaker, a fixed-window rate limiter,
// and GuardedEmbedder, which composes both in front of an ai.Embedder.
// All counters use atomic operations so guards can be shared across
// concurrent requests without locking.
package resilience
