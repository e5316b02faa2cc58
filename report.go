package monsoon

import (
	"context"
	"time"
)

// ReportStats summarizes a finished extraction run. It is written
// alongside the article files so a run can be audited without reloading
// the articles themselves.
type ReportStats struct {
	ExtractionDate    string         `json:"extraction_date"`
	TotalArticles     int            `json:"total_articles"`
	LanguageStats     map[string]int `json:"language_stats"`
	QualityBreakdown  map[string]int `json:"quality_breakdown"`
	RegionBreakdown   map[string]int `json:"region_breakdown"`
	DisasterBreakdown map[string]int `json:"disaster_breakdown"`
	ExtractedAt       time.Time      `json:"extraction_timestamp"`
}

// NewReportStats builds run statistics from a finished article set.
func NewReportStats(articles []*Article, now time.Time) ReportStats {
	stats := ReportStats{
		ExtractionDate:    now.Format("2006-01-02"),
		TotalArticles:     len(articles),
		LanguageStats:     map[string]int{},
		QualityBreakdown:  map[string]int{},
		RegionBreakdown:   map[string]int{},
		DisasterBreakdown: map[string]int{},
		ExtractedAt:       now,
	}

	for _, article := range articles {
		stats.LanguageStats[orUnknown(article.Language)]++
		stats.QualityBreakdown[string(article.Quality)]++
		stats.RegionBreakdown[orUnknown(article.Region)]++
		stats.DisasterBreakdown[orUnknown(article.DisasterType)]++
	}

	return stats
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}

// ArticleWriter persists a finished extraction run with atomic update
// semantics. WriteRun stages the run's files; Commit makes them visible
// atomically, and Abort discards the staged files.
type ArticleWriter interface {
	WriteRun(ctx context.Context, articles []*Article) error
	Commit() error
	Abort() error
}
