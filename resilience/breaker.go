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
	"log/slog"
	"sync/atomic"
	"time"
)

// BreakerState is the circuit breaker state.
type BreakerState int32

const (
	// StateClosed passes calls through and counts failures.
	StateClosed BreakerState = iota
	// StateOpen rejects all calls until the cooldown elapses.
	StateOpen
	// StateHalfOpen lets a single probe call through; its outcome decides
	// whether the breaker closes again or reopens.
	StateHalfOpen
)

func (s BreakerState) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

const (
	defaultFailureThreshold = 5
	defaultCooldown         = 30 * time.Second
)

// CircuitBreaker is a lock-free circuit breaker. Consecutive failures
// open it; after a cooldown a single probe is admitted, and its outcome
// either closes the breaker or restarts the cooldown.
type CircuitBreaker struct {
	state            atomic.Int32
	failures         atomic.Int64
	openedAtNanos    atomic.Int64
	probeInFlight    atomic.Bool
	failureThreshold int64
	cooldown         time.Duration
	logger           *slog.Logger
	now              func() time.Time
}

// BreakerOption configures a CircuitBreaker.
type BreakerOption func(*CircuitBreaker) error

// WithFailureThreshold sets the number of consecutive failures that open
// the breaker.
func WithFailureThreshold(n int) BreakerOption {
	return func(cb *CircuitBreaker) error {
		if n > 0 {
			cb.failureThreshold = int64(n)
		}
		return nil
	}
}

// WithCooldown sets how long the breaker stays open before admitting a
// probe call.
func WithCooldown(d time.Duration) BreakerOption {
	return func(cb *CircuitBreaker) error {
		if d > 0 {
			cb.cooldown = d
		}
		return nil
	}
}

// WithBreakerLogger sets the logger for state transitions.
func WithBreakerLogger(logger *slog.Logger) BreakerOption {
	return func(cb *CircuitBreaker) error {
		cb.logger = logger.With("component", "circuit-breaker")
		return nil
	}
}

// WithBreakerClock overrides the time source. For tests.
func WithBreakerClock(now func() time.Time) BreakerOption {
	return func(cb *CircuitBreaker) error {
		cb.now = now
		return nil
	}
}

// NewCircuitBreaker creates a breaker in the closed state.
func NewCircuitBreaker(opts ...BreakerOption) (*CircuitBreaker, error) {
	cb := &CircuitBreaker{
		failureThreshold: defaultFailureThreshold,
		cooldown:         defaultCooldown,
		logger:           slog.Default().With("component", "circuit-breaker"),
		now:              time.Now,
	}
	for _, opt := range opts {
		if err := opt(cb); err != nil {
			return nil, err
		}
	}
	return cb, nil
}

// State returns the current breaker state.
func (cb *CircuitBreaker) State() BreakerState {
	return BreakerState(cb.state.Load())
}

// Allow reports whether a call may proceed. In the open state it returns
// ErrCircuitOpen until the cooldown elapses; then exactly one caller wins
// the transition to half-open and is admitted as the probe.
func (cb *CircuitBreaker) Allow() error {
	switch cb.State() {
	case StateClosed:
		return nil
	case StateHalfOpen:
		if cb.probeInFlight.CompareAndSwap(false, true) {
			return nil
		}
		return ErrCircuitOpen
	case StateOpen:
		openedAt := time.Unix(0, cb.openedAtNanos.Load())
		if cb.now().Sub(openedAt) < cb.cooldown {
			return ErrCircuitOpen
		}
		if cb.state.CompareAndSwap(int32(StateOpen), int32(StateHalfOpen)) {
			cb.probeInFlight.Store(true)
			cb.logger.Info("circuit breaker half-open, admitting probe")
			return nil
		}
		// Another caller raced the transition; only its probe goes through.
		return ErrCircuitOpen
	default:
		return nil
	}
}

// Record reports a call outcome to the breaker. Pass nil for success.
func (cb *CircuitBreaker) Record(err error) {
	if err == nil {
		cb.recordSuccess()
		return
	}
	cb.recordFailure()
}

func (cb *CircuitBreaker) recordSuccess() {
	switch cb.State() {
	case StateHalfOpen:
		cb.state.Store(int32(StateClosed))
		cb.failures.Store(0)
		cb.probeInFlight.Store(false)
		cb.logger.Info("circuit breaker closed after successful probe")
	default:
		cb.failures.Store(0)
	}
}

func (cb *CircuitBreaker) recordFailure() {
	switch cb.State() {
	case StateHalfOpen:
		cb.open()
		cb.probeInFlight.Store(false)
	case StateClosed:
		if cb.failures.Add(1) >= cb.failureThreshold {
			cb.open()
		}
	}
}

func (cb *CircuitBreaker) open() {
	cb.openedAtNanos.Store(cb.now().UnixNano())
	cb.state.Store(int32(StateOpen))
	cb.logger.Warn("circuit breaker opened",
		"failures", cb.failures.Load(), "cooldown", cb.cooldown)
}
