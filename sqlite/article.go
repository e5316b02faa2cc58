package sqlite

import (
	"context"
	"strings"
	"time"

	monsoon "github.com/AIDMI-DataHub/monsoon-news-extraction"
)

// Compile-time interface verification.
var _ monsoon.ArticleService = (*ArticleService)(nil)

// ArticleService implements monsoon.ArticleService using SQLite.
type ArticleService struct {
	db *DB
}

// NewArticleService creates a new ArticleService.
func NewArticleService(db *DB) *ArticleService {
	return &ArticleService{db: db}
}

// CreateArticle persists an extracted article. The article ID is derived
// from the normalized URL and title when not set, so re-extracting the
// same page replaces the earlier copy instead of duplicating it.
func (s *ArticleService) CreateArticle(ctx context.Context, article *monsoon.Article) error {
	if err := article.Validate(); err != nil {
		return err
	}

	if article.ID == "" {
		article.ID = monsoon.ArticleID(article.NormalizedURL, article.Title)
	}
	if article.ExtractedAt.IsZero() {
		article.ExtractedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO articles (
			id, title, original_url, final_url, normalized_url, text,
			language, quality, region, disaster_type, source, summary,
			term_queried, extracted_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, article.ID, article.Title, article.OriginalURL, article.FinalURL,
		article.NormalizedURL, article.Text, article.Language, string(article.Quality),
		article.Region, article.DisasterType, article.Source, article.Summary,
		article.TermQueried, article.ExtractedAt.Format(time.RFC3339))

	return err
}

// FindArticles retrieves articles matching the filter, newest first.
func (s *ArticleService) FindArticles(ctx context.Context, filter monsoon.ArticleFilter) ([]*monsoon.Article, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`SELECT id, title, original_url, final_url, normalized_url, text,
		language, quality, region, disaster_type, source, summary, term_queried, extracted_at
		FROM articles WHERE 1=1`)

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Region != nil {
		query.WriteString(" AND region = ?")
		args = append(args, *filter.Region)
	}
	if filter.Language != nil {
		query.WriteString(" AND language = ?")
		args = append(args, *filter.Language)
	}
	if filter.Quality != nil {
		query.WriteString(" AND quality = ?")
		args = append(args, string(*filter.Quality))
	}

	query.WriteString(" ORDER BY extracted_at DESC, id")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*monsoon.Article
	for rows.Next() {
		var article monsoon.Article
		var quality, extractedAt string

		if err := rows.Scan(&article.ID, &article.Title, &article.OriginalURL,
			&article.FinalURL, &article.NormalizedURL, &article.Text,
			&article.Language, &quality, &article.Region, &article.DisasterType,
			&article.Source, &article.Summary, &article.TermQueried, &extractedAt); err != nil {
			return nil, err
		}

		article.Quality = monsoon.Quality(quality)
		if article.ExtractedAt, err = parseRFC3339(extractedAt, "extracted_at"); err != nil {
			return nil, err
		}

		out = append(out, &article)
	}

	return out, rows.Err()
}

// DeleteArticlesByRegion removes all articles for a region. The extraction
// pipeline calls this before saving a fresh run so that reruns replace the
// region's output wholesale.
func (s *ArticleService) DeleteArticlesByRegion(ctx context.Context, region string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM articles WHERE region = ?", region)
	return err
}
