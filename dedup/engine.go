// Package dedup implements the three-pass article deduplication engine.
// Collection gathers the same story through many queries and languages,
// so the pipeline removes duplicates by URL, by content fingerprint, and
// by title-per-domain, keeping the best extraction of each story.
package dedup

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/cespare/xxhash/v2"

	monsoon "github.com/AIDMI-DataHub/monsoon-news-extraction"
)

// minFingerprintLength is the minimum text length for content
// fingerprinting. Shorter articles carry too little signal to compare
// and pass through the content pass untouched.
const minFingerprintLength = 100

// titleWords is how many significant title words form the
// title-per-domain key.
const titleWords = 5

// stopWords are excluded from title keys.
var stopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {},
	"in": {}, "on": {}, "at": {}, "to": {}, "for": {}, "of": {},
	"with": {}, "by": {}, "is": {}, "are": {}, "was": {}, "were": {},
}

// Stats reports how many articles each pass removed.
type Stats struct {
	Input     int
	ByURL     int
	ByContent int
	ByTitle   int
	Output    int
}

// Engine deduplicates extracted articles. The zero value is not usable;
// use NewEngine.
type Engine struct {
	logger *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger for per-pass removal counts.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// NewEngine creates a deduplication Engine.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{logger: slog.Default()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Dedup runs the three passes in order and returns the surviving
// articles in their original relative order. The input slice is not
// modified. Running Dedup on its own output removes nothing more.
func (e *Engine) Dedup(articles []*monsoon.Article) ([]*monsoon.Article, Stats) {
	stats := Stats{Input: len(articles)}

	afterURL := dedupBy(articles, urlKey, preferQuality)
	stats.ByURL = len(articles) - len(afterURL)

	afterContent := dedupBy(afterURL, contentKey, preferQuality)
	stats.ByContent = len(afterURL) - len(afterContent)

	afterTitle := dedupBy(afterContent, titleKey, preferLonger)
	stats.ByTitle = len(afterContent) - len(afterTitle)

	stats.Output = len(afterTitle)
	e.logger.Info("deduplication complete",
		"input", stats.Input,
		"removed_by_url", stats.ByURL,
		"removed_by_content", stats.ByContent,
		"removed_by_title", stats.ByTitle,
		"output", stats.Output,
	)
	return afterTitle, stats
}

// dedupBy collapses articles sharing a key. The key function may return
// "" to exempt an article from the pass. When two articles collide,
// better decides whether the challenger replaces the incumbent; the
// survivor keeps the incumbent's position, so order is stable.
func dedupBy(articles []*monsoon.Article, key func(*monsoon.Article) string, better func(challenger, incumbent *monsoon.Article) bool) []*monsoon.Article {
	kept := make([]*monsoon.Article, 0, len(articles))
	index := make(map[string]int)

	for _, a := range articles {
		k := key(a)
		if k == "" {
			kept = append(kept, a)
			continue
		}
		if i, ok := index[k]; ok {
			if better(a, kept[i]) {
				kept[i] = a
			}
			continue
		}
		index[k] = len(kept)
		kept = append(kept, a)
	}
	return kept
}

// preferQuality keeps the article with the higher quality tier. Ties
// keep the first seen.
func preferQuality(challenger, incumbent *monsoon.Article) bool {
	return challenger.Quality.Rank() > incumbent.Quality.Rank()
}

// preferLonger keeps the article with strictly more text.
func preferLonger(challenger, incumbent *monsoon.Article) bool {
	return len(challenger.Text) > len(incumbent.Text)
}

// urlKey fingerprints the normalized URL.
func urlKey(a *monsoon.Article) string {
	u := a.NormalizedURL
	if u == "" {
		u = monsoon.NormalizeURL(a.FinalURL)
	}
	if u == "" {
		return ""
	}
	return fmt.Sprintf("%016x", xxhash.Sum64String(u))
}

// contentKey fingerprints the article body: the collapsed head and tail
// of the text plus a coarse length bucket. Articles below
// minFingerprintLength are exempt.
func contentKey(a *monsoon.Article) string {
	if len(a.Text) < minFingerprintLength {
		return ""
	}
	collapsed := strings.Join(strings.Fields(strings.ToLower(a.Text)), " ")

	head := collapsed
	if len(head) > 500 {
		head = head[:500]
	}
	tail := collapsed
	if len(tail) > 200 {
		tail = tail[len(tail)-200:]
	}
	return fmt.Sprintf("%s||%s||%d", head, tail, len(collapsed)/100)
}

// titleKey builds "domain :: sorted top significant title words". The
// same headline syndicated on one domain under different URLs collapses
// to one key; the same headline on different domains does not.
func titleKey(a *monsoon.Article) string {
	domain := monsoon.Domain(a.FinalURL)
	words := significantWords(a.Title)
	if domain == "" || len(words) == 0 {
		return ""
	}
	return domain + " :: " + strings.Join(words, " ")
}

// significantWords returns up to titleWords sorted lowercase words from
// the title, skipping short words and stop words.
func significantWords(title string) []string {
	var words []string
	for _, w := range strings.Fields(strings.ToLower(title)) {
		w = strings.Trim(w, `.,:;!?"'()[]`)
		if len(w) <= 3 {
			continue
		}
		if _, ok := stopWords[w]; ok {
			continue
		}
		words = append(words, w)
	}
	sort.Strings(words)
	if len(words) > titleWords {
		words = words[:titleWords]
	}
	return words
}
