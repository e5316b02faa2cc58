package search

import (
	"context"
	"log/slog"
	"math/rand"
	"time"

	monsoon "github.com/AIDMI-DataHub/monsoon-news-extraction"
)

// DefaultMaxRetries is the attempt budget per query.
const DefaultMaxRetries = 4

// Executor runs queries through a SearchClient with the full adaptive
// treatment: skip checks, query optimization, classified backoff,
// probabilistic identity rotation, and fingerprint banning for queries
// that keep failing. A query that cannot be satisfied yields nil, never
// an error; one dead query must not kill a region run.
type Executor struct {
	controller *Controller
	optimizer  *Optimizer
	maxRetries int
	rnd        *rand.Rand
	sleep      func(context.Context, time.Duration) error
	logger     *slog.Logger
}

// ExecutorOption configures an Executor.
type ExecutorOption func(*Executor)

// WithMaxRetries sets the attempt budget per query.
func WithMaxRetries(n int) ExecutorOption {
	return func(e *Executor) { e.maxRetries = n }
}

// WithExecutorRand replaces the rotation/pause randomness, for tests.
func WithExecutorRand(rnd *rand.Rand) ExecutorOption {
	return func(e *Executor) { e.rnd = rnd }
}

// WithSleep replaces the pause function, for tests.
func WithSleep(sleep func(context.Context, time.Duration) error) ExecutorOption {
	return func(e *Executor) { e.sleep = sleep }
}

// WithLogger sets the executor's logger.
func WithLogger(logger *slog.Logger) ExecutorOption {
	return func(e *Executor) { e.logger = logger }
}

// NewExecutor wires an Executor to its controller and optimizer.
func NewExecutor(controller *Controller, optimizer *Optimizer, opts ...ExecutorOption) *Executor {
	e := &Executor{
		controller: controller,
		optimizer:  optimizer,
		maxRetries: DefaultMaxRetries,
		rnd:        rand.New(rand.NewSource(time.Now().UnixNano())),
		sleep:      sleepCtx,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Search runs one query for a language/region pair. Returns nil when the
// key is blocked, the query is banned, the context is canceled, or every
// attempt fails.
func (e *Executor) Search(ctx context.Context, client monsoon.SearchClient, query, when, lang, region string) *monsoon.SearchResults {
	key := Key(lang, region)

	if skip, reason := e.controller.ShouldSkip(key); skip {
		e.logger.Warn("skipping query", "key", key, "reason", reason)
		return nil
	}

	optimized, ok := e.optimizer.Optimize(query, lang)
	if !ok {
		e.logger.Warn("query banned", "query", truncate(query, 50), "lang", lang)
		return nil
	}
	if optimized != query {
		e.logger.Info("query simplified", "query", truncate(optimized, 80))
	}

	start := time.Now()
	var lastClass ErrorClass

	for attempt := 0; attempt < e.maxRetries; attempt++ {
		if attempt > 0 {
			delay := e.controller.DelayBeforeRetry(key, lastClass)
			e.logger.Info("backing off",
				"key", key, "attempt", attempt+1, "delay", delay)
			if err := e.sleep(ctx, delay); err != nil {
				return nil
			}
		}

		if e.rnd.Float64() < 0.3 {
			client.RotateIdentity()
		}

		results, err := client.Search(ctx, optimized, when)
		if err == nil {
			e.controller.RecordResult(key, true, "", time.Since(start))
			e.logger.Info("search ok",
				"key", key, "entries", len(results.Entries), "took", time.Since(start))
			return results
		}
		if ctx.Err() != nil {
			return nil
		}

		lastClass = Classify(err)
		e.controller.RecordResult(key, false, lastClass, time.Since(start))
		e.logger.Warn("search attempt failed",
			"key", key, "attempt", attempt+1, "class", lastClass, "err", err)

		if IsFatal(err) {
			e.logger.Error("fatal search error, not retrying", "key", key, "err", err)
			break
		}

		switch lastClass {
		case ClassRateLimit:
			e.controller.InflateDelay(key, 3.0)
		case ClassSSL:
			if err := e.sleep(ctx, e.randomPause(10, 20)); err != nil {
				return nil
			}
		case ClassConnection:
			if err := e.sleep(ctx, e.randomPause(5, 15)); err != nil {
				return nil
			}
		}
	}

	if e.controller.ConsecutiveFailures(key) >= 3 {
		e.optimizer.Ban(optimized, lang)
		e.logger.Warn("banning query pattern", "query", truncate(optimized, 50), "lang", lang)
	}
	return nil
}

func (e *Executor) randomPause(minSec, maxSec float64) time.Duration {
	sec := minSec + e.rnd.Float64()*(maxSec-minSec)
	return time.Duration(sec * float64(time.Second))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
