package sqlite

import (
	"context"
	"strings"
	"time"

	monsoon "github.com/AIDMI-DataHub/monsoon-news-extraction"
)

// Compile-time interface verification.
var _ monsoon.ResultService = (*ResultService)(nil)

// ResultService implements monsoon.ResultService using SQLite.
type ResultService struct {
	db *DB
}

// NewResultService creates a new ResultService.
func NewResultService(db *DB) *ResultService {
	return &ResultService{db: db}
}

// CreateResult persists a collected search result row.
func (s *ResultService) CreateResult(ctx context.Context, row *monsoon.ResultRow) error {
	if err := row.Validate(); err != nil {
		return err
	}

	if row.CollectedAt.IsZero() {
		row.CollectedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO results (title, link, published, source, summary, term, language, region, collected_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, row.Title, row.Link, row.Published.UTC().Format(time.RFC3339), row.Source, row.Summary,
		row.Term, row.Language, row.Region, row.CollectedAt.Format(time.RFC3339))

	return err
}

// FindResults retrieves rows matching the filter, newest first. The
// Since/Until window applies to the published date, since extraction
// works day by day over publication dates.
func (s *ResultService) FindResults(ctx context.Context, filter monsoon.ResultFilter) ([]*monsoon.ResultRow, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT title, link, published, source, summary, term, language, region, collected_at FROM results WHERE 1=1")
	appendResultFilter(&query, &args, filter)
	query.WriteString(" ORDER BY published DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*monsoon.ResultRow
	for rows.Next() {
		var row monsoon.ResultRow
		var published, collectedAt string

		if err := rows.Scan(&row.Title, &row.Link, &published, &row.Source, &row.Summary,
			&row.Term, &row.Language, &row.Region, &collectedAt); err != nil {
			return nil, err
		}

		if row.Published, err = parseRFC3339(published, "published"); err != nil {
			return nil, err
		}
		if row.CollectedAt, err = parseRFC3339(collectedAt, "collected_at"); err != nil {
			return nil, err
		}

		out = append(out, &row)
	}

	return out, rows.Err()
}

// DeleteResults removes rows matching the filter. Used to clear a date
// range before re-collection to avoid duplication.
func (s *ResultService) DeleteResults(ctx context.Context, filter monsoon.ResultFilter) error {
	var query strings.Builder
	var args []any

	query.WriteString("DELETE FROM results WHERE 1=1")
	appendResultFilter(&query, &args, filter)

	_, err := s.db.ExecContext(ctx, query.String(), args...)
	return err
}

// appendResultFilter appends the shared WHERE clauses for result rows.
func appendResultFilter(query *strings.Builder, args *[]any, filter monsoon.ResultFilter) {
	if filter.Region != nil {
		query.WriteString(" AND region = ?")
		*args = append(*args, *filter.Region)
	}
	if filter.Since != nil {
		query.WriteString(" AND published >= ?")
		*args = append(*args, filter.Since.UTC().Format(time.RFC3339))
	}
	if filter.Until != nil {
		query.WriteString(" AND published < ?")
		*args = append(*args, filter.Until.UTC().Format(time.RFC3339))
	}
}
