package search

import (
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"
)

// Controller defaults.
const (
	DefaultBaseDelay        = 2 * time.Second
	DefaultMaxDelay         = 120 * time.Second
	DefaultJitterRange      = 0.5
	DefaultBreakerThreshold = 5
	DefaultBreakerRecovery  = 5 * time.Minute

	minDelay       = 500 * time.Millisecond
	historyCap     = 100
	maxBlock       = 5 * time.Minute
	blockPerFail   = 30 * time.Second
	successShrink  = 0.8
	patternBoost   = 2.0
	businessFactor = 1.5
	eveningFactor  = 2.0
)

type keyState struct {
	consecutiveFailures int
	lastFailure         time.Time
	lastSuccess         time.Time
	totalRequests       int
	successfulRequests  int
	currentDelay        time.Duration
	blockedUntil        time.Time
}

type requestRecord struct {
	at           time.Time
	key          string
	success      bool
	class        ErrorClass
	responseTime time.Duration
}

// KeyStats is a per-key snapshot exposed by Statistics.
type KeyStats struct {
	Requests            int
	SuccessRate         float64
	ConsecutiveFailures int
	CurrentDelay        time.Duration
	Blocked             bool
}

// Stats is an aggregate snapshot of controller state.
type Stats struct {
	TotalRequests      int
	SuccessfulRequests int
	SuccessRate        float64
	BreakerState       BreakerState
	PerKey             map[string]KeyStats
}

// Controller adapts request pacing per language/region key. Delays grow
// exponentially with consecutive failures, scaled by error severity,
// time of day and the recent failure pattern, and shrink again on
// success. Severe failures additionally block the key outright for a
// bounded period, and a shared circuit breaker halts everything when
// failures pile up across keys.
//
// All methods are safe for concurrent use.
type Controller struct {
	mu      sync.Mutex
	base    time.Duration
	max     time.Duration
	jitter  float64
	states  map[string]*keyState
	history []requestRecord
	breaker *CircuitBreaker
	rnd     *rand.Rand
	now     func() time.Time
}

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithBaseDelay sets the delay used after a first failure.
func WithBaseDelay(d time.Duration) ControllerOption {
	return func(c *Controller) { c.base = d }
}

// WithMaxDelay caps the exponential backoff.
func WithMaxDelay(d time.Duration) ControllerOption {
	return func(c *Controller) { c.max = d }
}

// WithBreaker replaces the default circuit breaker.
func WithBreaker(b *CircuitBreaker) ControllerOption {
	return func(c *Controller) { c.breaker = b }
}

// WithClock replaces the time source, for tests.
func WithClock(now func() time.Time) ControllerOption {
	return func(c *Controller) { c.now = now }
}

// WithRand replaces the jitter source, for tests.
func WithRand(rnd *rand.Rand) ControllerOption {
	return func(c *Controller) { c.rnd = rnd }
}

// NewController returns a Controller with production defaults.
func NewController(opts ...ControllerOption) *Controller {
	c := &Controller{
		base:    DefaultBaseDelay,
		max:     DefaultMaxDelay,
		jitter:  DefaultJitterRange,
		states:  make(map[string]*keyState),
		breaker: NewCircuitBreaker(DefaultBreakerThreshold, DefaultBreakerRecovery),
		rnd:     rand.New(rand.NewSource(time.Now().UnixNano())),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Key builds the controller key for a language/region pair.
func Key(lang, region string) string {
	return lang + "_" + region
}

func (c *Controller) state(key string) *keyState {
	s, ok := c.states[key]
	if !ok {
		s = &keyState{currentDelay: c.base}
		c.states[key] = s
	}
	return s
}

func classMultiplier(class ErrorClass) float64 {
	switch class {
	case ClassRateLimit:
		return 5.0
	case ClassConnection:
		return 4.0
	case ClassSSL:
		return 3.0
	case ClassTimeout:
		return 2.5
	default:
		return 2.0
	}
}

// DelayBeforeRetry computes the pause to take before retrying the key
// after a failure classified as class. The result is stored as the
// key's current delay.
func (c *Controller) DelayBeforeRetry(key string, class ErrorClass) time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.state(key)

	var delay float64
	if s.consecutiveFailures == 0 {
		delay = c.base.Seconds()
	} else {
		delay = c.base.Seconds() * math.Pow(classMultiplier(class), float64(s.consecutiveFailures))
		if delay > c.max.Seconds() {
			delay = c.max.Seconds()
		}
	}

	// Feeds throttle harder when human traffic peaks.
	switch hour := c.now().Hour(); {
	case hour >= 9 && hour <= 17:
		delay *= businessFactor
	case hour >= 20 && hour <= 23:
		delay *= eveningFactor
	}

	jitter := (c.rnd.Float64()*2 - 1) * c.jitter
	delay += delay * jitter
	if delay < minDelay.Seconds() {
		delay = minDelay.Seconds()
	}

	if n := len(c.history); n >= 5 {
		failures := 0
		for _, rec := range c.history[n-5:] {
			if !rec.success {
				failures++
			}
		}
		if failures >= 3 {
			delay *= patternBoost
		}
	}

	d := time.Duration(delay * float64(time.Second))
	s.currentDelay = d
	return d
}

// ShouldSkip reports whether requests for the key should be skipped
// entirely, with a human-readable reason. An open breaker whose
// recovery window has elapsed transitions to half-open here.
func (c *Controller) ShouldSkip(key string) (bool, string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if skip, remaining := c.breaker.Check(now); skip {
		return true, fmt.Sprintf("circuit breaker open for %.0fs", remaining.Seconds())
	}

	s := c.state(key)
	if !s.blockedUntil.IsZero() && now.Before(s.blockedUntil) {
		return true, fmt.Sprintf("rate limited for %.0fs", s.blockedUntil.Sub(now).Seconds())
	}
	return false, ""
}

// RecordResult feeds a request outcome back into the controller.
// Success resets the key's failure streak and shrinks its delay toward
// the base; failure grows the streak, feeds the breaker, and for severe
// classes blocks the key for up to five minutes.
func (c *Controller) RecordResult(key string, success bool, class ErrorClass, responseTime time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	s := c.state(key)
	s.totalRequests++

	c.history = append(c.history, requestRecord{
		at:           now,
		key:          key,
		success:      success,
		class:        class,
		responseTime: responseTime,
	})
	if len(c.history) > historyCap {
		c.history = c.history[len(c.history)-historyCap:]
	}

	if success {
		s.successfulRequests++
		s.consecutiveFailures = 0
		s.lastSuccess = now
		s.blockedUntil = time.Time{}
		if shrunk := time.Duration(float64(s.currentDelay) * successShrink); shrunk > c.base {
			s.currentDelay = shrunk
		} else {
			s.currentDelay = c.base
		}
		c.breaker.RecordSuccess()
		return
	}

	s.consecutiveFailures++
	s.lastFailure = now
	c.breaker.RecordFailure(now)

	switch class {
	case ClassRateLimit, ClassSSL, ClassConnection:
		block := time.Duration(s.consecutiveFailures) * blockPerFail
		if block > maxBlock {
			block = maxBlock
		}
		s.blockedUntil = now.Add(block)
	}
}

// InflateDelay multiplies the key's current delay, used when a rate
// limit response demands a harder immediate slowdown than the next
// backoff computation would give.
func (c *Controller) InflateDelay(key string, factor float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.state(key)
	s.currentDelay = time.Duration(float64(s.currentDelay) * factor)
}

// ConsecutiveFailures returns the key's current failure streak.
func (c *Controller) ConsecutiveFailures(key string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state(key).consecutiveFailures
}

// AdaptiveDelay computes the pause between unrelated requests (queries,
// newspaper fetches) from the global failure pattern and time of day.
func (c *Controller) AdaptiveDelay() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	delay := 1.0
	if n := len(c.history); n >= 10 {
		failures := 0
		for _, rec := range c.history[n-10:] {
			if !rec.success {
				failures++
			}
		}
		rate := float64(failures) / 10
		if rate > 0.5 {
			delay *= 3.0
		} else if rate > 0.3 {
			delay *= 2.0
		}
	}

	hour := c.now().Hour()
	if (hour >= 8 && hour <= 10) || (hour >= 17 && hour <= 19) {
		delay *= 1.5
	}
	return time.Duration(delay * float64(time.Second))
}

// Statistics returns an aggregate snapshot across all keys.
func (c *Controller) Statistics() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	stats := Stats{
		BreakerState: c.breaker.State(),
		PerKey:       make(map[string]KeyStats),
	}
	now := c.now()
	for key, s := range c.states {
		stats.TotalRequests += s.totalRequests
		stats.SuccessfulRequests += s.successfulRequests
		if s.totalRequests == 0 {
			continue
		}
		stats.PerKey[key] = KeyStats{
			Requests:            s.totalRequests,
			SuccessRate:         float64(s.successfulRequests) / float64(s.totalRequests) * 100,
			ConsecutiveFailures: s.consecutiveFailures,
			CurrentDelay:        s.currentDelay,
			Blocked:             !s.blockedUntil.IsZero() && now.Before(s.blockedUntil),
		}
	}
	if stats.TotalRequests > 0 {
		stats.SuccessRate = float64(stats.SuccessfulRequests) / float64(stats.TotalRequests) * 100
	}
	return stats
}

// Reset clears the state for one key.
func (c *Controller) Reset(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.states, key)
}

// ResetAll clears all key states, the request history and the breaker.
func (c *Controller) ResetAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.states = make(map[string]*keyState)
	c.history = nil
	c.breaker.Reset()
}
