package slog_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	monsoon "github.com/AIDMI-DataHub/monsoon-news-extraction"
	"github.com/AIDMI-DataHub/monsoon-news-extraction/mock"
	monslog "github.com/AIDMI-DataHub/monsoon-news-extraction/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("logs fetch with bytes and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (*monsoon.FetchResult, error) {
				return &monsoon.FetchResult{
					FinalURL: "https://news.example.com/flood-story",
					HTML:     "<html>content</html>",
				}, nil
			},
		}

		fetcher := monslog.NewLoggingFetcher(inner, logger)
		res, err := fetcher.Fetch(context.Background(), "https://news.example.com/flood")

		require.NoError(t, err)
		assert.Equal(t, "<html>content</html>", res.HTML)
		output := buf.String()
		assert.Contains(t, output, "fetch")
		assert.Contains(t, output, "url=https://news.example.com/flood")
		assert.Contains(t, output, "final_url=https://news.example.com/flood-story")
		assert.Contains(t, output, "bytes=20")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (*monsoon.FetchResult, error) {
				return nil, errors.New("network error")
			},
		}

		fetcher := monslog.NewLoggingFetcher(inner, logger)
		_, err := fetcher.Fetch(context.Background(), "https://news.example.com/flood")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "network error")
		assert.Contains(t, output, "bytes=0")
	})

	t.Run("close delegates to wrapped fetcher", func(t *testing.T) {
		t.Parallel()

		closed := false
		inner := &mock.Fetcher{
			CloseFn: func() error {
				closed = true
				return nil
			},
		}

		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		fetcher := monslog.NewLoggingFetcher(inner, logger)
		require.NoError(t, fetcher.Close())
		assert.True(t, closed)
	})
}
