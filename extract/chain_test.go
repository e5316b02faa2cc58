package extract_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	monsoon "github.com/AIDMI-DataHub/monsoon-news-extraction"
	"github.com/AIDMI-DataHub/monsoon-news-extraction/extract"
	"github.com/AIDMI-DataHub/monsoon-news-extraction/mock"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// acceptableText is comfortably over the minimum article length.
var acceptableText = strings.Repeat("Heavy overnight rain flooded several low lying neighbourhoods. ", 8)

func okFetcher(finalURL string) *mock.Fetcher {
	return &mock.Fetcher{
		FetchFn: func(ctx context.Context, url string) (*monsoon.FetchResult, error) {
			return &monsoon.FetchResult{FinalURL: finalURL, HTML: "<html>page</html>"}, nil
		},
	}
}

func okExtractor(title, text string) *mock.Extractor {
	return &mock.Extractor{
		ExtractFn: func(html string) (*monsoon.ExtractResult, error) {
			return &monsoon.ExtractResult{Title: title, Text: text}, nil
		},
	}
}

func TestChain_Run(t *testing.T) {
	t.Parallel()

	t.Run("first strategy succeeds and short-circuits", func(t *testing.T) {
		t.Parallel()

		secondCalls := 0
		chain := extract.NewChain([]extract.Strategy{
			{
				Name:       "browser",
				Fetcher:    okFetcher("https://pub.example.com/story"),
				Extractors: []monsoon.Extractor{okExtractor("Flood hits delta", acceptableText)},
			},
			{
				Name: "http",
				Fetcher: &mock.Fetcher{FetchFn: func(ctx context.Context, url string) (*monsoon.FetchResult, error) {
					secondCalls++
					return nil, errors.New("should not be called")
				}},
			},
		}, extract.WithChainLogger(quietLogger()))

		got := chain.Run(context.Background(), "https://news.google.com/rss/articles/abc")

		require.NotNil(t, got)
		assert.Equal(t, "browser", got.Strategy)
		assert.Equal(t, "https://pub.example.com/story", got.FinalURL)
		assert.Equal(t, "Flood hits delta", got.Title)
		assert.Equal(t, "en", got.Language)
		assert.NotEmpty(t, got.Quality)
		assert.Zero(t, secondCalls)
	})

	t.Run("falls through on fetch error", func(t *testing.T) {
		t.Parallel()

		chain := extract.NewChain([]extract.Strategy{
			{
				Name: "browser",
				Fetcher: &mock.Fetcher{FetchFn: func(ctx context.Context, url string) (*monsoon.FetchResult, error) {
					return nil, errors.New("browser crashed")
				}},
			},
			{
				Name:       "http",
				Fetcher:    okFetcher("https://pub.example.com/story"),
				Extractors: []monsoon.Extractor{okExtractor("Flood hits delta", acceptableText)},
			},
		}, extract.WithChainLogger(quietLogger()))

		got := chain.Run(context.Background(), "https://example.com/a")

		require.NotNil(t, got)
		assert.Equal(t, "http", got.Strategy)
	})

	t.Run("falls through when text too short", func(t *testing.T) {
		t.Parallel()

		chain := extract.NewChain([]extract.Strategy{
			{
				Name:       "browser",
				Fetcher:    okFetcher("https://pub.example.com/story"),
				Extractors: []monsoon.Extractor{okExtractor("Short story", "not enough text")},
			},
			{
				Name:       "http",
				Fetcher:    okFetcher("https://pub.example.com/story"),
				Extractors: []monsoon.Extractor{okExtractor("Full story", acceptableText)},
			},
		}, extract.WithChainLogger(quietLogger()))

		got := chain.Run(context.Background(), "https://example.com/a")

		require.NotNil(t, got)
		assert.Equal(t, "http", got.Strategy)
	})

	t.Run("falls through when title missing", func(t *testing.T) {
		t.Parallel()

		chain := extract.NewChain([]extract.Strategy{
			{
				Name:       "browser",
				Fetcher:    okFetcher("https://pub.example.com/story"),
				Extractors: []monsoon.Extractor{okExtractor("", acceptableText)},
			},
			{
				Name:       "http",
				Fetcher:    okFetcher("https://pub.example.com/story"),
				Extractors: []monsoon.Extractor{okExtractor("Full story", acceptableText)},
			},
		}, extract.WithChainLogger(quietLogger()))

		got := chain.Run(context.Background(), "https://example.com/a")

		require.NotNil(t, got)
		assert.Equal(t, "http", got.Strategy)
	})

	t.Run("tries extractors within a strategy in order", func(t *testing.T) {
		t.Parallel()

		chain := extract.NewChain([]extract.Strategy{
			{
				Name:    "http",
				Fetcher: okFetcher("https://pub.example.com/story"),
				Extractors: []monsoon.Extractor{
					&mock.Extractor{ExtractFn: func(html string) (*monsoon.ExtractResult, error) {
						return nil, errors.New("parse failed")
					}},
					okExtractor("Second parser wins", acceptableText),
				},
			},
		}, extract.WithChainLogger(quietLogger()))

		got := chain.Run(context.Background(), "https://example.com/a")

		require.NotNil(t, got)
		assert.Equal(t, "Second parser wins", got.Title)
	})

	t.Run("returns nil when every strategy fails", func(t *testing.T) {
		t.Parallel()

		chain := extract.NewChain([]extract.Strategy{
			{
				Name: "browser",
				Fetcher: &mock.Fetcher{FetchFn: func(ctx context.Context, url string) (*monsoon.FetchResult, error) {
					return nil, errors.New("down")
				}},
			},
		}, extract.WithChainLogger(quietLogger()))

		assert.Nil(t, chain.Run(context.Background(), "https://example.com/a"))
	})

	t.Run("detects article language from extracted text", func(t *testing.T) {
		t.Parallel()

		hindi := strings.Repeat("मुंबई में भारी बारिश से कई इलाकों में पानी भर गया है। ", 10)
		chain := extract.NewChain([]extract.Strategy{
			{
				Name:       "http",
				Fetcher:    okFetcher("https://pub.example.com/story"),
				Extractors: []monsoon.Extractor{okExtractor("भारी बारिश", hindi)},
			},
		}, extract.WithChainLogger(quietLogger()))

		got := chain.Run(context.Background(), "https://example.com/a")

		require.NotNil(t, got)
		assert.Equal(t, "hi", got.Language)
	})

	t.Run("canceled context stops the chain", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		calls := 0
		chain := extract.NewChain([]extract.Strategy{
			{
				Name: "browser",
				Fetcher: &mock.Fetcher{FetchFn: func(ctx context.Context, url string) (*monsoon.FetchResult, error) {
					calls++
					return nil, ctx.Err()
				}},
			},
		}, extract.WithChainLogger(quietLogger()))

		assert.Nil(t, chain.Run(ctx, "https://example.com/a"))
		assert.Zero(t, calls)
	})
}

func TestChain_Close(t *testing.T) {
	t.Parallel()

	closed := make(map[string]bool)
	chain := extract.NewChain([]extract.Strategy{
		{Name: "a", Fetcher: &mock.Fetcher{CloseFn: func() error { closed["a"] = true; return errors.New("a failed") }}},
		{Name: "b", Fetcher: &mock.Fetcher{CloseFn: func() error { closed["b"] = true; return nil }}},
	}, extract.WithChainLogger(quietLogger()))

	err := chain.Close()

	require.Error(t, err)
	assert.True(t, closed["a"])
	assert.True(t, closed["b"], "later fetchers still closed after an error")
}
