package mock

import (
	"context"

	monsoon "github.com/AIDMI-DataHub/monsoon-news-extraction"
)

var _ monsoon.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of monsoon.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, baseURL string, filter *monsoon.URLFilter) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *monsoon.URLFilter) ([]string, error) {
	return s.DiscoverURLsFn(ctx, baseURL, filter)
}
