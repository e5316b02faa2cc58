package mock

import (
	"context"

	monsoon "github.com/AIDMI-DataHub/monsoon-news-extraction"
)

var _ monsoon.ArticleService = (*ArticleService)(nil)

// ArticleService is a mock implementation of monsoon.ArticleService.
type ArticleService struct {
	CreateArticleFn          func(ctx context.Context, article *monsoon.Article) error
	FindArticlesFn           func(ctx context.Context, filter monsoon.ArticleFilter) ([]*monsoon.Article, error)
	DeleteArticlesByRegionFn func(ctx context.Context, region string) error
}

func (s *ArticleService) CreateArticle(ctx context.Context, article *monsoon.Article) error {
	return s.CreateArticleFn(ctx, article)
}

func (s *ArticleService) FindArticles(ctx context.Context, filter monsoon.ArticleFilter) ([]*monsoon.Article, error) {
	return s.FindArticlesFn(ctx, filter)
}

func (s *ArticleService) DeleteArticlesByRegion(ctx context.Context, region string) error {
	return s.DeleteArticlesByRegionFn(ctx, region)
}

var _ monsoon.ResultService = (*ResultService)(nil)

// ResultService is a mock implementation of monsoon.ResultService.
type ResultService struct {
	CreateResultFn  func(ctx context.Context, row *monsoon.ResultRow) error
	FindResultsFn   func(ctx context.Context, filter monsoon.ResultFilter) ([]*monsoon.ResultRow, error)
	DeleteResultsFn func(ctx context.Context, filter monsoon.ResultFilter) error
}

func (s *ResultService) CreateResult(ctx context.Context, row *monsoon.ResultRow) error {
	return s.CreateResultFn(ctx, row)
}

func (s *ResultService) FindResults(ctx context.Context, filter monsoon.ResultFilter) ([]*monsoon.ResultRow, error) {
	return s.FindResultsFn(ctx, filter)
}

func (s *ResultService) DeleteResults(ctx context.Context, filter monsoon.ResultFilter) error {
	return s.DeleteResultsFn(ctx, filter)
}

var _ monsoon.SeenFilter = (*SeenFilter)(nil)

// SeenFilter is a mock implementation of monsoon.SeenFilter.
type SeenFilter struct {
	SeenFn func(url string) bool
	AddFn  func(url string)
}

func (f *SeenFilter) Seen(url string) bool { return f.SeenFn(url) }
func (f *SeenFilter) Add(url string)       { f.AddFn(url) }

var _ monsoon.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of monsoon.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, url string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, url string) error {
	if l.WaitFn == nil {
		return nil
	}
	return l.WaitFn(ctx, url)
}
