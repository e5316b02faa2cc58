package extract

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	monsoon "github.com/AIDMI-DataHub/monsoon-news-extraction"
	"github.com/AIDMI-DataHub/monsoon-news-extraction/dedup"
)

// Stats summarizes one pipeline run for a region.
type Stats struct {
	Region    string
	Rows      int
	Extracted int
	Deduped   int
	Saved     int
	Quality   map[monsoon.Quality]int
}

// Pipeline turns collected search result rows into persisted articles:
// extract each row through the fallback chain, deduplicate, store.
type Pipeline struct {
	Results  monsoon.ResultService
	Articles monsoon.ArticleService
	Pool     *Pool
	Dedup    *dedup.Engine
	Logger   *slog.Logger
}

// Run processes every row collected for the region in [since, until).
// Previously extracted articles for the region are replaced so reruns
// do not accumulate duplicates.
func (p *Pipeline) Run(ctx context.Context, region string, since, until time.Time) (*Stats, error) {
	logger := p.Logger
	if logger == nil {
		logger = slog.Default()
	}

	rows, err := p.Results.FindResults(ctx, monsoon.ResultFilter{
		Region: &region,
		Since:  &since,
		Until:  &until,
	})
	if err != nil {
		return nil, fmt.Errorf("finding result rows: %w", err)
	}

	stats := &Stats{
		Region:  region,
		Rows:    len(rows),
		Quality: make(map[monsoon.Quality]int),
	}
	if len(rows) == 0 {
		return stats, nil
	}

	logger.Info("extraction started", "region", region, "rows", len(rows))

	articles, err := p.Pool.ExtractAll(ctx, rows)
	if err != nil {
		return nil, err
	}
	stats.Extracted = len(articles)

	articles, dstats := p.Dedup.Dedup(articles)
	stats.Deduped = dstats.Input - dstats.Output

	if err := p.Articles.DeleteArticlesByRegion(ctx, region); err != nil {
		return nil, fmt.Errorf("clearing region articles: %w", err)
	}
	for _, a := range articles {
		if err := a.Validate(); err != nil {
			continue
		}
		if err := p.Articles.CreateArticle(ctx, a); err != nil {
			return nil, fmt.Errorf("saving article %s: %w", a.ID, err)
		}
		stats.Saved++
		stats.Quality[a.Quality]++
	}

	logger.Info("extraction finished",
		"region", region,
		"rows", stats.Rows,
		"extracted", stats.Extracted,
		"duplicates_removed", stats.Deduped,
		"saved", stats.Saved,
		"high", stats.Quality[monsoon.QualityHigh],
		"medium", stats.Quality[monsoon.QualityMedium],
		"low", stats.Quality[monsoon.QualityLow],
	)
	return stats, nil
}
