package mock

import (
	"context"

	monsoon "github.com/AIDMI-DataHub/monsoon-news-extraction"
)

var _ monsoon.SearchClient = (*SearchClient)(nil)

// SearchClient is a mock implementation of monsoon.SearchClient.
type SearchClient struct {
	SearchFn         func(ctx context.Context, query, when string) (*monsoon.SearchResults, error)
	RotateIdentityFn func()
	CloseFn          func() error
}

func (c *SearchClient) Search(ctx context.Context, query, when string) (*monsoon.SearchResults, error) {
	return c.SearchFn(ctx, query, when)
}

func (c *SearchClient) RotateIdentity() {
	if c.RotateIdentityFn != nil {
		c.RotateIdentityFn()
	}
}

func (c *SearchClient) Close() error {
	if c.CloseFn == nil {
		return nil
	}
	return c.CloseFn()
}
