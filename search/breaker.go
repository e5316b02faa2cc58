package search

import "time"

// BreakerState is the circuit breaker's position.
type BreakerState string

const (
	BreakerClosed   BreakerState = "closed"
	BreakerOpen     BreakerState = "open"
	BreakerHalfOpen BreakerState = "half-open"
)

// CircuitBreaker halts all feed traffic after a run of failures and
// probes recovery after a cooling period. Transitions are lazy: the open
// state moves to half-open only when Check observes that the recovery
// window has elapsed, so there is no background timer.
//
// Not safe for concurrent use; the Controller serializes access.
type CircuitBreaker struct {
	state       BreakerState
	failures    int
	lastFailure time.Time
	threshold   int
	recovery    time.Duration
}

// NewCircuitBreaker returns a closed breaker that opens after threshold
// consecutive recorded failures and probes recovery after the recovery
// duration.
func NewCircuitBreaker(threshold int, recovery time.Duration) *CircuitBreaker {
	return &CircuitBreaker{
		state:     BreakerClosed,
		threshold: threshold,
		recovery:  recovery,
	}
}

// Check reports whether requests should be skipped. While open, it
// returns the time remaining until recovery; once the window has
// elapsed it transitions to half-open and allows a probe through.
func (b *CircuitBreaker) Check(now time.Time) (skip bool, remaining time.Duration) {
	if b.state != BreakerOpen {
		return false, 0
	}
	since := now.Sub(b.lastFailure)
	if since < b.recovery {
		return true, b.recovery - since
	}
	b.state = BreakerHalfOpen
	return false, 0
}

// RecordFailure bumps the failure counter and opens the breaker at the
// threshold.
func (b *CircuitBreaker) RecordFailure(now time.Time) {
	b.failures++
	b.lastFailure = now
	if b.failures >= b.threshold {
		b.state = BreakerOpen
	}
}

// RecordSuccess closes a half-open breaker and zeroes its counter.
// A success while closed is a no-op; the counter only resets through
// recovery so that interleaved successes cannot mask a failing feed.
func (b *CircuitBreaker) RecordSuccess() {
	if b.state == BreakerHalfOpen {
		b.state = BreakerClosed
		b.failures = 0
	}
}

// State returns the current position without side effects.
func (b *CircuitBreaker) State() BreakerState { return b.state }

// Reset restores the breaker to its initial closed state.
func (b *CircuitBreaker) Reset() {
	b.state = BreakerClosed
	b.failures = 0
	b.lastFailure = time.Time{}
}
