// Package fs writes finished extraction runs to disk as JSON.
package fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	monsoon "github.com/AIDMI-DataHub/monsoon-news-extraction"
)

// Ensure Store implements monsoon.ArticleWriter at compile time.
var _ monsoon.ArticleWriter = (*Store)(nil)

// Output file names within a run directory. The combined file holds the
// publishable high and medium quality articles; everything else lives
// under the spare subdirectory for auditing.
const (
	CombinedFile = "articles_combined.json"
	SpareDir     = "spare"
	AllFile      = "articles_all.json"
	HighFile     = "articles_high_quality.json"
	MediumFile   = "articles_medium_quality.json"
	LowFile      = "articles_low_quality.json"
	StatsFile    = "extraction_stats.json"
)

// Store implements monsoon.ArticleWriter with atomic update semantics.
// Files are staged in a temporary directory, then moved atomically on
// Commit, so a crashed run never leaves a partial output directory.
// Runs are organized by date under the base directory.
type Store struct {
	baseDir string
	name    string
	now     func() time.Time
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithClock overrides the clock used for the run date and statistics.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) { s.now = now }
}

// NewStore creates a Store that writes to baseDir/<date>. Files are
// staged in baseDir/<date>.tmp and moved to baseDir/<date> on Commit.
func NewStore(baseDir string, opts ...StoreOption) *Store {
	s := &Store{
		baseDir: baseDir,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.name = s.now().Format("2006-01-02")
	return s
}

func (s *Store) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

// Dir returns the final run directory.
func (s *Store) Dir() string {
	return filepath.Join(s.baseDir, s.name)
}

// WriteRun stages the run's JSON files: the combined high+medium file at
// the run root, and the full set with per-tier splits and statistics
// under spare/.
func (s *Store) WriteRun(ctx context.Context, articles []*monsoon.Article) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	spareDir := filepath.Join(s.tempDir(), SpareDir)
	if err := os.MkdirAll(spareDir, 0755); err != nil {
		return err
	}

	byTier := map[monsoon.Quality][]*monsoon.Article{}
	for _, article := range articles {
		byTier[article.Quality] = append(byTier[article.Quality], article)
	}
	combined := append(byTier[monsoon.QualityHigh], byTier[monsoon.QualityMedium]...)

	files := []struct {
		path     string
		articles []*monsoon.Article
	}{
		{filepath.Join(s.tempDir(), CombinedFile), combined},
		{filepath.Join(spareDir, AllFile), articles},
		{filepath.Join(spareDir, HighFile), byTier[monsoon.QualityHigh]},
		{filepath.Join(spareDir, MediumFile), byTier[monsoon.QualityMedium]},
		{filepath.Join(spareDir, LowFile), byTier[monsoon.QualityLow]},
	}
	for _, f := range files {
		if len(f.articles) == 0 && f.path != filepath.Join(spareDir, AllFile) {
			continue
		}
		if err := writeJSON(f.path, f.articles); err != nil {
			return err
		}
	}

	stats := monsoon.NewReportStats(articles, s.now())
	return writeJSON(filepath.Join(spareDir, StatsFile), stats)
}

// Commit atomically replaces the run directory with the staged files.
func (s *Store) Commit() error {
	if err := os.RemoveAll(s.Dir()); err != nil {
		return err
	}
	return os.Rename(s.tempDir(), s.Dir())
}

// Abort discards the staged files.
func (s *Store) Abort() error {
	return os.RemoveAll(s.tempDir())
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}
