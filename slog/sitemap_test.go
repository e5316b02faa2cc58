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

func TestLoggingSitemapService_DiscoverURLs(t *testing.T) {
	t.Parallel()

	t.Run("logs discovery with count and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.SitemapService{
			DiscoverURLsFn: func(ctx context.Context, baseURL string, filter *monsoon.URLFilter) ([]string, error) {
				return []string{
					"https://news.example.com/2026/07/15/flood-alert",
					"https://news.example.com/2026/07/15/relief-camps",
				}, nil
			},
		}

		svc := monslog.NewLoggingSitemapService(inner, logger)
		urls, err := svc.DiscoverURLs(context.Background(), "https://news.example.com", nil)

		require.NoError(t, err)
		require.Len(t, urls, 2)
		output := buf.String()
		assert.Contains(t, output, "sitemap discovery")
		assert.Contains(t, output, "count=2")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.SitemapService{
			DiscoverURLsFn: func(ctx context.Context, baseURL string, filter *monsoon.URLFilter) ([]string, error) {
				return nil, monsoon.Errorf(monsoon.EUNAVAILABLE, "no sitemap found")
			},
		}

		svc := monslog.NewLoggingSitemapService(inner, logger)
		_, err := svc.DiscoverURLs(context.Background(), "https://news.example.com", nil)

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "no sitemap found")
		assert.Contains(t, output, "count=0")
	})
}
