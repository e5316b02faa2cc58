package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	monsoon "github.com/AIDMI-DataHub/monsoon-news-extraction"
	"github.com/AIDMI-DataHub/monsoon-news-extraction/mock"
	monslog "github.com/AIDMI-DataHub/monsoon-news-extraction/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingSearchClient_Search(t *testing.T) {
	t.Parallel()

	t.Run("logs query and entry count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.SearchClient{
			SearchFn: func(ctx context.Context, query, when string) (*monsoon.SearchResults, error) {
				return &monsoon.SearchResults{
					Entries: []monsoon.SearchEntry{
						{Title: "Flood warning issued"},
						{Title: "Rivers above danger mark"},
					},
				}, nil
			},
		}

		client := monslog.NewLoggingSearchClient(inner, logger)
		results, err := client.Search(context.Background(), `"flood" kerala`, "1d")

		require.NoError(t, err)
		require.Len(t, results.Entries, 2)
		output := buf.String()
		assert.Contains(t, output, "search")
		assert.Contains(t, output, "entries=2")
		assert.Contains(t, output, "when=1d")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs rate limit error", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.SearchClient{
			SearchFn: func(ctx context.Context, query, when string) (*monsoon.SearchResults, error) {
				return nil, monsoon.Errorf(monsoon.ERATELIMIT, "feed returned 429")
			},
		}

		client := monslog.NewLoggingSearchClient(inner, logger)
		_, err := client.Search(context.Background(), `"flood" kerala`, "1d")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "429")
		assert.Contains(t, output, "entries=0")
	})

	t.Run("rotate identity delegates and logs", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		rotated := false
		inner := &mock.SearchClient{
			RotateIdentityFn: func() { rotated = true },
		}

		client := monslog.NewLoggingSearchClient(inner, logger)
		client.RotateIdentity()

		assert.True(t, rotated)
		assert.Contains(t, buf.String(), "rotating search identity")
	})
}
