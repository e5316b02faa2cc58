package fs_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	monsoon "github.com/AIDMI-DataHub/monsoon-news-extraction"
	"github.com/AIDMI-DataHub/monsoon-news-extraction/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Story: Atomic Run Output
// The store stages JSON files in a temp directory for atomic updates

var fixedClock = func() time.Time {
	return time.Date(2026, 7, 15, 10, 30, 0, 0, time.UTC)
}

func tierArticle(i int, quality monsoon.Quality) *monsoon.Article {
	return &monsoon.Article{
		ID:           monsoon.ArticleID("https://news.example.com/flood", string(quality)),
		Title:        "Flood situation worsens",
		FinalURL:     "https://news.example.com/flood",
		Text:         strings.Repeat("River levels continue to rise across the district. ", 20),
		Language:     "en",
		Quality:      quality,
		Region:       "kerala",
		DisasterType: "monsoon_flood",
		ExtractedAt:  fixedClock(),
	}
}

func readArticles(t *testing.T, path string) []*monsoon.Article {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var articles []*monsoon.Article
	require.NoError(t, json.Unmarshal(data, &articles))
	return articles
}

func TestStore_WriteRunStagesInTempDirectory(t *testing.T) {
	t.Parallel()

	// Given a store targeting a base directory
	base := t.TempDir()
	store := fs.NewStore(base, fs.WithClock(fixedClock))

	// When I write a run
	err := store.WriteRun(context.Background(), []*monsoon.Article{
		tierArticle(1, monsoon.QualityHigh),
	})
	require.NoError(t, err)

	// Then the files exist in the temp directory (not final)
	tempPath := filepath.Join(base, "2026-07-15.tmp", fs.CombinedFile)
	_, err = os.Stat(tempPath)
	require.NoError(t, err, "combined file should exist in temp directory")

	_, err = os.Stat(store.Dir())
	assert.True(t, os.IsNotExist(err), "final directory should not exist until commit")
}

func TestStore_CommitMovesFromTempToFinal(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	store := fs.NewStore(base, fs.WithClock(fixedClock))

	articles := []*monsoon.Article{
		tierArticle(1, monsoon.QualityHigh),
		tierArticle(2, monsoon.QualityMedium),
		tierArticle(3, monsoon.QualityLow),
	}
	require.NoError(t, store.WriteRun(context.Background(), articles))
	require.NoError(t, store.Commit())

	// The run directory is dated
	assert.Equal(t, filepath.Join(base, "2026-07-15"), store.Dir())

	// Combined holds high and medium only
	combined := readArticles(t, filepath.Join(store.Dir(), fs.CombinedFile))
	require.Len(t, combined, 2)
	for _, a := range combined {
		assert.NotEqual(t, monsoon.QualityLow, a.Quality)
	}

	// Spare holds the complete set and per-tier splits
	spare := filepath.Join(store.Dir(), fs.SpareDir)
	assert.Len(t, readArticles(t, filepath.Join(spare, fs.AllFile)), 3)
	assert.Len(t, readArticles(t, filepath.Join(spare, fs.HighFile)), 1)
	assert.Len(t, readArticles(t, filepath.Join(spare, fs.MediumFile)), 1)
	assert.Len(t, readArticles(t, filepath.Join(spare, fs.LowFile)), 1)

	// Temp directory is gone
	_, err := os.Stat(filepath.Join(base, "2026-07-15.tmp"))
	assert.True(t, os.IsNotExist(err))
}

func TestStore_CommitReplacesExistingRun(t *testing.T) {
	t.Parallel()

	base := t.TempDir()

	first := fs.NewStore(base, fs.WithClock(fixedClock))
	require.NoError(t, first.WriteRun(context.Background(), []*monsoon.Article{
		tierArticle(1, monsoon.QualityHigh),
		tierArticle(2, monsoon.QualityHigh),
	}))
	require.NoError(t, first.Commit())

	second := fs.NewStore(base, fs.WithClock(fixedClock))
	require.NoError(t, second.WriteRun(context.Background(), []*monsoon.Article{
		tierArticle(3, monsoon.QualityHigh),
	}))
	require.NoError(t, second.Commit())

	combined := readArticles(t, filepath.Join(second.Dir(), fs.CombinedFile))
	assert.Len(t, combined, 1, "commit should replace the earlier run wholesale")
}

func TestStore_AbortDiscardsStagedFiles(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	store := fs.NewStore(base, fs.WithClock(fixedClock))

	require.NoError(t, store.WriteRun(context.Background(), []*monsoon.Article{
		tierArticle(1, monsoon.QualityHigh),
	}))
	require.NoError(t, store.Abort())

	_, err := os.Stat(filepath.Join(base, "2026-07-15.tmp"))
	assert.True(t, os.IsNotExist(err), "temp directory should be removed")
	_, err = os.Stat(store.Dir())
	assert.True(t, os.IsNotExist(err), "final directory should never appear")
}

func TestStore_WritesRunStatistics(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	store := fs.NewStore(base, fs.WithClock(fixedClock))

	hindi := tierArticle(1, monsoon.QualityHigh)
	hindi.Language = "hi"
	articles := []*monsoon.Article{
		hindi,
		tierArticle(2, monsoon.QualityMedium),
		tierArticle(3, monsoon.QualityLow),
	}
	require.NoError(t, store.WriteRun(context.Background(), articles))
	require.NoError(t, store.Commit())

	data, err := os.ReadFile(filepath.Join(store.Dir(), fs.SpareDir, fs.StatsFile))
	require.NoError(t, err)

	var stats monsoon.ReportStats
	require.NoError(t, json.Unmarshal(data, &stats))

	assert.Equal(t, "2026-07-15", stats.ExtractionDate)
	assert.Equal(t, 3, stats.TotalArticles)
	assert.Equal(t, map[string]int{"hi": 1, "en": 2}, stats.LanguageStats)
	assert.Equal(t, map[string]int{"high": 1, "medium": 1, "low": 1}, stats.QualityBreakdown)
	assert.Equal(t, map[string]int{"kerala": 3}, stats.RegionBreakdown)
	assert.Equal(t, map[string]int{"monsoon_flood": 3}, stats.DisasterBreakdown)
}

func TestStore_EmptyRunStillWritesAllAndStats(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	store := fs.NewStore(base, fs.WithClock(fixedClock))

	require.NoError(t, store.WriteRun(context.Background(), nil))
	require.NoError(t, store.Commit())

	spare := filepath.Join(store.Dir(), fs.SpareDir)
	_, err := os.Stat(filepath.Join(spare, fs.AllFile))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(spare, fs.StatsFile))
	require.NoError(t, err)

	// No combined or per-tier files for an empty run
	_, err = os.Stat(filepath.Join(store.Dir(), fs.CombinedFile))
	assert.True(t, os.IsNotExist(err))
}
