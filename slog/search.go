package slog

import (
	"context"
	"log/slog"
	"time"

	monsoon "github.com/AIDMI-DataHub/monsoon-news-extraction"
)

// Ensure LoggingSearchClient implements monsoon.SearchClient.
var _ monsoon.SearchClient = (*LoggingSearchClient)(nil)

// LoggingSearchClient wraps a SearchClient with timing and outcome
// logging.
type LoggingSearchClient struct {
	next   monsoon.SearchClient
	logger *slog.Logger
}

// NewLoggingSearchClient creates a new LoggingSearchClient.
func NewLoggingSearchClient(next monsoon.SearchClient, logger *slog.Logger) *LoggingSearchClient {
	return &LoggingSearchClient{next: next, logger: logger}
}

// Search delegates to the wrapped client and logs the operation.
func (c *LoggingSearchClient) Search(ctx context.Context, query, when string) (results *monsoon.SearchResults, err error) {
	defer func(begin time.Time) {
		entries := 0
		if results != nil {
			entries = len(results.Entries)
		}
		c.logger.Info("search",
			"query", query,
			"when", when,
			"entries", entries,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Search(ctx, query, when)
}

// RotateIdentity delegates to the wrapped client and logs the rotation.
func (c *LoggingSearchClient) RotateIdentity() {
	c.logger.Debug("rotating search identity")
	c.next.RotateIdentity()
}

// Close delegates to the wrapped client.
func (c *LoggingSearchClient) Close() error {
	return c.next.Close()
}
