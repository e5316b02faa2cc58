package mock

import (
	"context"

	monsoon "github.com/AIDMI-DataHub/monsoon-news-extraction"
)

var _ monsoon.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of monsoon.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*monsoon.FetchResult, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*monsoon.FetchResult, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}
