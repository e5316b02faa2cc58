// Package slog provides logging decorators around the harvester's
// service interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	monsoon "github.com/AIDMI-DataHub/monsoon-news-extraction"
)

// Ensure LoggingFetcher implements monsoon.Fetcher.
var _ monsoon.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with timing and outcome logging. It
// works for any of the fetch strategies.
type LoggingFetcher struct {
	next   monsoon.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next monsoon.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the operation.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (res *monsoon.FetchResult, err error) {
	defer func(begin time.Time) {
		bytes := 0
		finalURL := ""
		if res != nil {
			bytes = len(res.HTML)
			finalURL = res.FinalURL
		}
		f.logger.Info("fetch",
			"url", url,
			"final_url", finalURL,
			"bytes", bytes,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
