// Package extract runs the multi-strategy article extraction stage: a
// fallback chain of fetch-and-parse strategies, a bounded worker pool
// that processes collected rows in batches, and the pipeline that turns
// rows into deduplicated, quality-tiered articles.
package extract

import (
	"context"
	"log/slog"
	"strings"

	monsoon "github.com/AIDMI-DataHub/monsoon-news-extraction"
)

// Strategy is one fetch-and-parse approach in the fallback chain. Each
// strategy pairs a fetcher with an ordered list of extractors tried
// against the fetched HTML.
type Strategy struct {
	Name       string
	Fetcher    monsoon.Fetcher
	Extractors []monsoon.Extractor
}

// Extraction is a successful chain result.
type Extraction struct {
	FinalURL string
	Title    string
	Text     string
	Language string
	Quality  monsoon.Quality
	Strategy string
}

// Chain tries strategies in order until one produces acceptable article
// text. Acceptance requires more than monsoon.MinArticleLength
// characters of text and a non-empty title; anything less from one
// strategy falls through to the next.
type Chain struct {
	strategies []Strategy
	thresholds monsoon.QualityThresholds
	logger     *slog.Logger
}

// ChainOption configures a Chain.
type ChainOption func(*Chain)

// WithThresholds overrides the quality assessment cutoffs.
func WithThresholds(t monsoon.QualityThresholds) ChainOption {
	return func(c *Chain) { c.thresholds = t }
}

// WithChainLogger sets the chain's logger.
func WithChainLogger(logger *slog.Logger) ChainOption {
	return func(c *Chain) { c.logger = logger }
}

// NewChain creates a Chain over the given strategies, tried in order.
func NewChain(strategies []Strategy, opts ...ChainOption) *Chain {
	c := &Chain{
		strategies: strategies,
		thresholds: monsoon.DefaultQualityThresholds(),
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run extracts the article at url. The first strategy producing
// acceptable text short-circuits the chain. Returns nil when every
// strategy fails; extraction failures are expected for paywalled and
// heavily scripted pages, so they are logged as warnings rather than
// surfaced as errors that would kill a batch.
func (c *Chain) Run(ctx context.Context, url string) *Extraction {
	for _, s := range c.strategies {
		if err := ctx.Err(); err != nil {
			return nil
		}

		res, err := s.Fetcher.Fetch(ctx, url)
		if err != nil {
			c.logger.Debug("fetch failed", "strategy", s.Name, "url", url, "err", err)
			continue
		}

		for _, ext := range s.Extractors {
			got, err := ext.Extract(res.HTML)
			if err != nil {
				continue
			}
			title := strings.TrimSpace(got.Title)
			text := strings.TrimSpace(got.Text)
			if len(text) <= monsoon.MinArticleLength || title == "" {
				continue
			}

			return &Extraction{
				FinalURL: res.FinalURL,
				Title:    title,
				Text:     text,
				Language: monsoon.DetectLanguage(text),
				Quality:  monsoon.AssessQuality(text, c.thresholds),
				Strategy: s.Name,
			}
		}
	}

	c.logger.Warn("all extraction strategies failed", "url", url)
	return nil
}

// Close releases every strategy's fetcher. Errors are collected but the
// first one wins; later fetchers are still closed.
func (c *Chain) Close() error {
	var first error
	for _, s := range c.strategies {
		if s.Fetcher == nil {
			continue
		}
		if err := s.Fetcher.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
