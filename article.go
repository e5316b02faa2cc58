package monsoon

import (
	"context"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
)

// MinArticleLength is the minimum extracted-text length for an article to
// be accepted by any extraction strategy.
const MinArticleLength = 200

// Article represents a single extracted news article. Articles are created
// once per successful extraction and never mutated afterwards; the
// deduplication engine only selects between duplicates.
type Article struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	OriginalURL   string    `json:"original_url"`
	FinalURL      string    `json:"final_url"`
	NormalizedURL string    `json:"normalized_url"`
	Text          string    `json:"article_text"`
	Language      string    `json:"article_language"`
	Quality       Quality   `json:"extraction_quality"`
	Region        string    `json:"state"`
	DisasterType  string    `json:"disaster_type"`
	Source        string    `json:"source,omitempty"`
	Summary       string    `json:"summary,omitempty"`
	TermQueried   string    `json:"term_queried,omitempty"`
	ExtractedAt   time.Time `json:"extraction_timestamp"`
}

// Validate returns an error if the article contains invalid fields.
func (a *Article) Validate() error {
	if a.FinalURL == "" {
		return Errorf(EINVALID, "article final URL required")
	}
	if a.Text == "" {
		return Errorf(EINVALID, "article text required")
	}
	return nil
}

// ArticleID derives the content fingerprint for an article from its
// normalized URL and title. The same page extracted twice yields the same
// ID regardless of extraction strategy.
func ArticleID(normalizedURL, title string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(normalizedURL+title))
}

// ArticleService manages persisted articles.
type ArticleService interface {
	// CreateArticle persists a new article.
	CreateArticle(ctx context.Context, article *Article) error

	// FindArticles retrieves articles matching the filter.
	FindArticles(ctx context.Context, filter ArticleFilter) ([]*Article, error)

	// DeleteArticlesByRegion removes all articles for a region.
	DeleteArticlesByRegion(ctx context.Context, region string) error
}

// ArticleFilter represents a filter for FindArticles.
type ArticleFilter struct {
	ID       *string
	Region   *string
	Language *string
	Quality  *Quality

	Offset int
	Limit  int
}

// ResultRow is one search result accumulated during the collection stage,
// before article extraction. Rows mirror the per-region result tables the
// collector persists.
type ResultRow struct {
	Title       string    `json:"title"`
	Link        string    `json:"link"`
	Published   time.Time `json:"published"`
	Source      string    `json:"source"`
	Summary     string    `json:"summary"`
	Term        string    `json:"term"`
	Language    string    `json:"language_queried"`
	Region      string    `json:"region"`
	CollectedAt time.Time `json:"collected_at"`
}

// Validate returns an error if the row is unusable.
func (r *ResultRow) Validate() error {
	if r.Link == "" {
		return Errorf(EINVALID, "result row link required")
	}
	if r.Region == "" {
		return Errorf(EINVALID, "result row region required")
	}
	return nil
}

// ResultService manages persisted search result rows.
type ResultService interface {
	// CreateResult persists a collected search result row.
	CreateResult(ctx context.Context, row *ResultRow) error

	// FindResults retrieves rows matching the filter.
	FindResults(ctx context.Context, filter ResultFilter) ([]*ResultRow, error)

	// DeleteResults removes rows matching the filter. Used to clear a
	// date range before re-collection to avoid duplication.
	DeleteResults(ctx context.Context, filter ResultFilter) error
}

// ResultFilter represents a filter for FindResults and DeleteResults.
type ResultFilter struct {
	Region *string
	Since  *time.Time
	Until  *time.Time

	Offset int
	Limit  int
}
