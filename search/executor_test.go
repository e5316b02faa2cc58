package search_test

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	monsoon "github.com/AIDMI-DataHub/monsoon-news-extraction"
	"github.com/AIDMI-DataHub/monsoon-news-extraction/mock"
	"github.com/AIDMI-DataHub/monsoon-news-extraction/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestExecutor(c *search.Controller, o *search.Optimizer) *search.Executor {
	return search.NewExecutor(c, o,
		search.WithExecutorRand(rand.New(rand.NewSource(1))),
		search.WithSleep(func(ctx context.Context, d time.Duration) error { return ctx.Err() }),
	)
}

func TestExecutorSearch(t *testing.T) {
	t.Parallel()

	t.Run("returns results on first success", func(t *testing.T) {
		t.Parallel()

		ctrl := newTestController()
		exec := newTestExecutor(ctrl, search.NewOptimizer())

		client := &mock.SearchClient{
			SearchFn: func(ctx context.Context, query, when string) (*monsoon.SearchResults, error) {
				assert.Equal(t, `"flood" kerala`, query)
				assert.Equal(t, "7d", when)
				return &monsoon.SearchResults{
					Query:   query,
					Entries: []monsoon.SearchEntry{{Title: "Flood in Kerala", Link: "https://example.com/a"}},
				}, nil
			},
		}

		got := exec.Search(context.Background(), client, `"flood" kerala`, "7d", "ml", "kerala")
		require.NotNil(t, got)
		assert.Len(t, got.Entries, 1)
		assert.Equal(t, 0, ctrl.ConsecutiveFailures(search.Key("ml", "kerala")))
	})

	t.Run("retries transient failures then succeeds", func(t *testing.T) {
		t.Parallel()

		ctrl := newTestController()
		exec := newTestExecutor(ctrl, search.NewOptimizer())

		calls := 0
		client := &mock.SearchClient{
			SearchFn: func(ctx context.Context, query, when string) (*monsoon.SearchResults, error) {
				calls++
				if calls < 3 {
					return nil, errors.New("read timed out")
				}
				return &monsoon.SearchResults{Query: query}, nil
			},
		}

		got := exec.Search(context.Background(), client, "monsoon goa", "7d", "en", "goa")
		require.NotNil(t, got)
		assert.Equal(t, 3, calls)
	})

	t.Run("gives up after max retries and returns nil", func(t *testing.T) {
		t.Parallel()

		ctrl := newTestController()
		exec := newTestExecutor(ctrl, search.NewOptimizer())

		calls := 0
		client := &mock.SearchClient{
			SearchFn: func(ctx context.Context, query, when string) (*monsoon.SearchResults, error) {
				calls++
				return nil, errors.New("read timed out")
			},
		}

		got := exec.Search(context.Background(), client, "monsoon assam", "7d", "en", "assam")
		assert.Nil(t, got)
		assert.Equal(t, search.DefaultMaxRetries, calls)
	})

	t.Run("fatal errors abort without retrying", func(t *testing.T) {
		t.Parallel()

		ctrl := newTestController()
		exec := newTestExecutor(ctrl, search.NewOptimizer())

		calls := 0
		client := &mock.SearchClient{
			SearchFn: func(ctx context.Context, query, when string) (*monsoon.SearchResults, error) {
				calls++
				return nil, errors.New("403 forbidden")
			},
		}

		got := exec.Search(context.Background(), client, "monsoon delhi", "7d", "hi", "delhi")
		assert.Nil(t, got)
		assert.Equal(t, 1, calls)
	})

	t.Run("bans the query after exhausting retries with a failure streak", func(t *testing.T) {
		t.Parallel()

		ctrl := newTestController()
		opt := search.NewOptimizer()
		exec := newTestExecutor(ctrl, opt)

		client := &mock.SearchClient{
			SearchFn: func(ctx context.Context, query, when string) (*monsoon.SearchResults, error) {
				return nil, errors.New("read timed out")
			},
		}

		exec.Search(context.Background(), client, "monsoon odisha", "7d", "or", "odisha")
		assert.True(t, opt.IsBanned("monsoon odisha", "or"))

		// The banned query is rejected up front on the next run.
		calls := 0
		client.SearchFn = func(ctx context.Context, query, when string) (*monsoon.SearchResults, error) {
			calls++
			return &monsoon.SearchResults{}, nil
		}
		got := exec.Search(context.Background(), client, "monsoon odisha", "7d", "or", "odisha")
		assert.Nil(t, got)
		assert.Equal(t, 0, calls)
	})

	t.Run("skips immediately when the key is blocked", func(t *testing.T) {
		t.Parallel()

		ctrl := newTestController()
		exec := newTestExecutor(ctrl, search.NewOptimizer())

		key := search.Key("bn", "tripura")
		ctrl.RecordResult(key, false, search.ClassConnection, time.Second)

		calls := 0
		client := &mock.SearchClient{
			SearchFn: func(ctx context.Context, query, when string) (*monsoon.SearchResults, error) {
				calls++
				return &monsoon.SearchResults{}, nil
			},
		}

		got := exec.Search(context.Background(), client, "monsoon tripura", "7d", "bn", "tripura")
		assert.Nil(t, got)
		assert.Equal(t, 0, calls)
	})

	t.Run("canceled context stops the retry loop", func(t *testing.T) {
		t.Parallel()

		ctrl := newTestController()
		exec := newTestExecutor(ctrl, search.NewOptimizer())

		ctx, cancel := context.WithCancel(context.Background())
		calls := 0
		client := &mock.SearchClient{
			SearchFn: func(ctx context.Context, query, when string) (*monsoon.SearchResults, error) {
				calls++
				cancel()
				return nil, errors.New("read timed out")
			},
		}

		got := exec.Search(ctx, client, "monsoon sikkim", "7d", "ne", "sikkim")
		assert.Nil(t, got)
		assert.Equal(t, 1, calls)
	})
}
