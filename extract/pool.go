package extract

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	monsoon "github.com/AIDMI-DataHub/monsoon-news-extraction"
)

// Pool defaults. Batches are kept small and separated by a cooldown so
// a run never looks like a scrape burst to any single publisher.
const (
	DefaultBatchSize    = 5
	DefaultConcurrency  = 3
	DefaultBatchPause   = 3 * time.Second
	DefaultPerURLBudget = 60 * time.Second
)

// Pool runs the extraction chain over collected result rows with
// bounded parallelism.
type Pool struct {
	chain       *Chain
	limiter     monsoon.DomainLimiter
	batchSize   int
	concurrency int
	batchPause  time.Duration
	urlBudget   time.Duration
	disaster    string
	logger      *slog.Logger
}

// DefaultDisasterType labels extracted articles when no override is set.
const DefaultDisasterType = "monsoon_flood"

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithBatchSize sets how many rows are processed per batch.
func WithBatchSize(n int) PoolOption {
	return func(p *Pool) { p.batchSize = n }
}

// WithConcurrency sets the number of parallel extraction workers.
func WithConcurrency(n int) PoolOption {
	return func(p *Pool) { p.concurrency = n }
}

// WithBatchPause sets the cooldown between batches.
func WithBatchPause(d time.Duration) PoolOption {
	return func(p *Pool) { p.batchPause = d }
}

// WithPerURLBudget sets the deadline for a single row's extraction.
func WithPerURLBudget(d time.Duration) PoolOption {
	return func(p *Pool) { p.urlBudget = d }
}

// WithDisasterType sets the disaster label written to articles.
func WithDisasterType(s string) PoolOption {
	return func(p *Pool) { p.disaster = s }
}

// WithPoolLogger sets the pool's logger.
func WithPoolLogger(logger *slog.Logger) PoolOption {
	return func(p *Pool) { p.logger = logger }
}

// NewPool creates a Pool over the chain. The limiter may be nil, in
// which case no per-domain politeness wait is applied.
func NewPool(chain *Chain, limiter monsoon.DomainLimiter, opts ...PoolOption) *Pool {
	p := &Pool{
		chain:       chain,
		limiter:     limiter,
		batchSize:   DefaultBatchSize,
		concurrency: DefaultConcurrency,
		batchPause:  DefaultBatchPause,
		urlBudget:   DefaultPerURLBudget,
		disaster:    DefaultDisasterType,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ExtractAll runs the chain over every row and returns the successful
// articles in row order. Rows whose extraction fails are skipped. The
// error is non-nil only when the context is canceled mid-run.
func (p *Pool) ExtractAll(ctx context.Context, rows []*monsoon.ResultRow) ([]*monsoon.Article, error) {
	results := make([]*monsoon.Article, len(rows))

	for start := 0; start < len(rows); start += p.batchSize {
		end := start + p.batchSize
		if end > len(rows) {
			end = len(rows)
		}

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(p.concurrency)
		for i := start; i < end; i++ {
			i := i
			g.Go(func() error {
				results[i] = p.extractRow(gctx, rows[i])
				return gctx.Err()
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}

		p.logger.Info("batch extracted", "done", end, "total", len(rows))

		// Cooldown between batches, skipped after the last one.
		if end < len(rows) {
			select {
			case <-time.After(p.batchPause):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}

	var articles []*monsoon.Article
	for _, a := range results {
		if a != nil {
			articles = append(articles, a)
		}
	}
	return articles, nil
}

// extractRow runs the chain for one row under the per-URL budget and
// builds the Article. Returns nil when extraction fails.
func (p *Pool) extractRow(ctx context.Context, row *monsoon.ResultRow) *monsoon.Article {
	ctx, cancel := context.WithTimeout(ctx, p.urlBudget)
	defer cancel()

	if p.limiter != nil {
		if err := p.limiter.Wait(ctx, row.Link); err != nil {
			return nil
		}
	}

	got := p.chain.Run(ctx, row.Link)
	if got == nil {
		return nil
	}

	title := got.Title
	if title == "" {
		title = row.Title
	}
	normalized := monsoon.NormalizeURL(got.FinalURL)

	return &monsoon.Article{
		ID:            monsoon.ArticleID(normalized, title),
		Title:         title,
		OriginalURL:   row.Link,
		FinalURL:      got.FinalURL,
		NormalizedURL: normalized,
		Text:          got.Text,
		Language:      got.Language,
		Quality:       got.Quality,
		Region:        row.Region,
		DisasterType:  p.disaster,
		Source:        row.Source,
		Summary:       row.Summary,
		TermQueried:   row.Term,
		ExtractedAt:   time.Now().UTC(),
	}
}
