package extract_test

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	monsoon "github.com/AIDMI-DataHub/monsoon-news-extraction"
	"github.com/AIDMI-DataHub/monsoon-news-extraction/extract"
	"github.com/AIDMI-DataHub/monsoon-news-extraction/mock"
)

func testRow(i int) *monsoon.ResultRow {
	return &monsoon.ResultRow{
		Title:    fmt.Sprintf("Story %d", i),
		Link:     fmt.Sprintf("https://example.com/story-%d", i),
		Source:   "Example News",
		Term:     "flood",
		Language: "en",
		Region:   "kerala",
	}
}

func successChain() *extract.Chain {
	return extract.NewChain([]extract.Strategy{{
		Name: "http",
		Fetcher: &mock.Fetcher{FetchFn: func(ctx context.Context, url string) (*monsoon.FetchResult, error) {
			return &monsoon.FetchResult{FinalURL: url + "?landed", HTML: "<html>x</html>"}, nil
		}},
		Extractors: []monsoon.Extractor{okExtractor("Extracted headline", acceptableText)},
	}}, extract.WithChainLogger(quietLogger()))
}

func TestPool_ExtractAll(t *testing.T) {
	t.Parallel()

	t.Run("builds articles from rows", func(t *testing.T) {
		t.Parallel()

		pool := extract.NewPool(successChain(), nil,
			extract.WithBatchPause(0),
			extract.WithPoolLogger(quietLogger()),
		)

		rows := []*monsoon.ResultRow{testRow(1), testRow(2)}
		articles, err := pool.ExtractAll(context.Background(), rows)

		require.NoError(t, err)
		require.Len(t, articles, 2)

		a := articles[0]
		assert.Equal(t, "Extracted headline", a.Title)
		assert.Equal(t, rows[0].Link, a.OriginalURL)
		assert.Equal(t, rows[0].Link+"?landed", a.FinalURL)
		assert.Equal(t, "kerala", a.Region)
		assert.Equal(t, "flood", a.TermQueried)
		assert.Equal(t, extract.DefaultDisasterType, a.DisasterType)
		assert.Equal(t, monsoon.ArticleID(a.NormalizedURL, a.Title), a.ID)
		assert.False(t, a.ExtractedAt.IsZero())
	})

	t.Run("skips rows whose extraction fails", func(t *testing.T) {
		t.Parallel()

		chain := extract.NewChain([]extract.Strategy{{
			Name: "http",
			Fetcher: &mock.Fetcher{FetchFn: func(ctx context.Context, url string) (*monsoon.FetchResult, error) {
				if url == "https://example.com/story-2" {
					return nil, errors.New("blocked")
				}
				return &monsoon.FetchResult{FinalURL: url, HTML: "<html>x</html>"}, nil
			}},
			Extractors: []monsoon.Extractor{okExtractor("Headline", acceptableText)},
		}}, extract.WithChainLogger(quietLogger()))

		pool := extract.NewPool(chain, nil,
			extract.WithBatchPause(0),
			extract.WithPoolLogger(quietLogger()),
		)

		articles, err := pool.ExtractAll(context.Background(), []*monsoon.ResultRow{testRow(1), testRow(2), testRow(3)})

		require.NoError(t, err)
		require.Len(t, articles, 2)
		assert.Equal(t, "https://example.com/story-1", articles[0].OriginalURL)
		assert.Equal(t, "https://example.com/story-3", articles[1].OriginalURL)
	})

	t.Run("waits on the domain limiter before fetching", func(t *testing.T) {
		t.Parallel()

		var waited atomic.Int32
		limiter := &mock.DomainLimiter{WaitFn: func(ctx context.Context, url string) error {
			waited.Add(1)
			return nil
		}}

		pool := extract.NewPool(successChain(), limiter,
			extract.WithBatchPause(0),
			extract.WithPoolLogger(quietLogger()),
		)

		_, err := pool.ExtractAll(context.Background(), []*monsoon.ResultRow{testRow(1), testRow(2)})

		require.NoError(t, err)
		assert.Equal(t, int32(2), waited.Load())
	})

	t.Run("limiter refusal skips the row", func(t *testing.T) {
		t.Parallel()

		limiter := &mock.DomainLimiter{WaitFn: func(ctx context.Context, url string) error {
			return errors.New("politeness window closed")
		}}

		pool := extract.NewPool(successChain(), limiter,
			extract.WithBatchPause(0),
			extract.WithPoolLogger(quietLogger()),
		)

		articles, err := pool.ExtractAll(context.Background(), []*monsoon.ResultRow{testRow(1)})

		require.NoError(t, err)
		assert.Empty(t, articles)
	})

	t.Run("caps in-flight extractions at the concurrency limit", func(t *testing.T) {
		t.Parallel()

		var inFlight, peak atomic.Int32
		chain := extract.NewChain([]extract.Strategy{{
			Name: "http",
			Fetcher: &mock.Fetcher{FetchFn: func(ctx context.Context, url string) (*monsoon.FetchResult, error) {
				n := inFlight.Add(1)
				for {
					p := peak.Load()
					if n <= p || peak.CompareAndSwap(p, n) {
						break
					}
				}
				time.Sleep(20 * time.Millisecond)
				inFlight.Add(-1)
				return &monsoon.FetchResult{FinalURL: url, HTML: "<html>x</html>"}, nil
			}},
			Extractors: []monsoon.Extractor{okExtractor("Headline", acceptableText)},
		}}, extract.WithChainLogger(quietLogger()))

		pool := extract.NewPool(chain, nil,
			extract.WithBatchSize(8),
			extract.WithConcurrency(2),
			extract.WithBatchPause(0),
			extract.WithPoolLogger(quietLogger()),
		)

		rows := make([]*monsoon.ResultRow, 8)
		for i := range rows {
			rows[i] = testRow(i)
		}

		articles, err := pool.ExtractAll(context.Background(), rows)

		require.NoError(t, err)
		assert.Len(t, articles, 8)
		assert.LessOrEqual(t, peak.Load(), int32(2))
	})

	t.Run("canceled context aborts the run", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		pool := extract.NewPool(successChain(), nil,
			extract.WithBatchPause(0),
			extract.WithPoolLogger(quietLogger()),
		)

		_, err := pool.ExtractAll(ctx, []*monsoon.ResultRow{testRow(1)})

		require.Error(t, err)
	})

	t.Run("no rows yields no articles", func(t *testing.T) {
		t.Parallel()

		pool := extract.NewPool(successChain(), nil, extract.WithPoolLogger(quietLogger()))

		articles, err := pool.ExtractAll(context.Background(), nil)

		require.NoError(t, err)
		assert.Empty(t, articles)
	})
}
