// Package collect implements the per-region news collection stage: feed
// queries in every language a region speaks, strict date and relevance
// filtering, seen-URL dedup and persistence of the surviving rows.
package collect

import (
	"context"
	"log/slog"
	"time"

	monsoon "github.com/AIDMI-DataHub/monsoon-news-extraction"
	"github.com/AIDMI-DataHub/monsoon-news-extraction/search"
)

// DefaultWhen is the feed window operator for a daily run.
const DefaultWhen = "1d"

// DefaultNewspaperCap bounds how many sitemap URLs are taken per
// newspaper, so one prolific site cannot flood a region's row set.
const DefaultNewspaperCap = 4

// collectedTerm tags rows produced by this harvester.
const collectedTerm = "monsoon"

// Newspaper describes a regional news site checked through its sitemap
// in addition to the feed queries.
type Newspaper struct {
	Name     string
	Website  string
	Language string
}

// Stats summarizes one region's collection run.
type Stats struct {
	Region            string
	Languages         int
	Queries           int
	SuccessfulQueries int
	Entries           int
	Kept              int
	RejectedDate      int
	RejectedContent   int
	Duplicates        int
	NewspaperRows     int
}

// ClientFactory builds a SearchClient for a feed language. The collector
// closes the client when it finishes with the language.
type ClientFactory func(lang string) monsoon.SearchClient

// Collector runs the collection stage for one region at a time.
type Collector struct {
	executor   *search.Executor
	controller *search.Controller
	newClient  ClientFactory
	results    monsoon.ResultService
	seen       monsoon.SeenFilter
	sitemaps   monsoon.SitemapService
	newspapers map[string][]Newspaper
	mode       monsoon.QueryMode
	when       string
	paperCap   int
	sleep      func(context.Context, time.Duration) error
	logger     *slog.Logger
	now        func() time.Time
}

// Option configures a Collector.
type Option func(*Collector)

// WithQueryMode selects conservative or full query generation.
func WithQueryMode(mode monsoon.QueryMode) Option {
	return func(c *Collector) { c.mode = mode }
}

// WithWhen sets the feed window operator ("1d", "7d", "1h").
func WithWhen(when string) Option {
	return func(c *Collector) { c.when = when }
}

// WithNewspapers enables the newspaper sitemap pass for the given
// region-to-papers mapping.
func WithNewspapers(svc monsoon.SitemapService, papers map[string][]Newspaper) Option {
	return func(c *Collector) {
		c.sitemaps = svc
		c.newspapers = papers
	}
}

// WithNewspaperCap bounds URLs taken per newspaper.
func WithNewspaperCap(n int) Option {
	return func(c *Collector) { c.paperCap = n }
}

// WithSleep replaces the pause function, for tests.
func WithSleep(sleep func(context.Context, time.Duration) error) Option {
	return func(c *Collector) { c.sleep = sleep }
}

// WithLogger sets the collector's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Collector) { c.logger = logger }
}

// WithClock overrides the clock used for collection timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *Collector) { c.now = now }
}

// NewCollector wires a Collector. The controller must be the one the
// executor uses; the collector reads its adaptive delay for the pauses
// between queries and languages.
func NewCollector(executor *search.Executor, controller *search.Controller, newClient ClientFactory, results monsoon.ResultService, seen monsoon.SeenFilter, opts ...Option) *Collector {
	c := &Collector{
		executor:   executor,
		controller: controller,
		newClient:  newClient,
		results:    results,
		seen:       seen,
		mode:       monsoon.QueryConservative,
		when:       DefaultWhen,
		paperCap:   DefaultNewspaperCap,
		sleep:      sleepCtx,
		logger:     slog.Default(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Run collects rows for one region across all of its languages. start
// and end are day-precision IST bounds; only articles published within
// them survive. Returns the partial statistics alongside any error.
func (c *Collector) Run(ctx context.Context, region string, start, end time.Time) (*Stats, error) {
	if !monsoon.ValidRegion(region) {
		return nil, monsoon.Errorf(monsoon.EINVALID, "unknown region %q", region)
	}

	stats := &Stats{Region: region}
	regionName := monsoon.RegionDisplayName(region)
	langs := monsoon.RegionLanguages(region)
	stats.Languages = len(langs)

	c.logger.Info("collecting region",
		"region", region, "languages", len(langs), "window", c.when)

	for li, lang := range langs {
		if err := c.collectLanguage(ctx, region, regionName, lang, start, end, stats); err != nil {
			return stats, err
		}

		if li < len(langs)-1 {
			if err := c.sleep(ctx, c.controller.AdaptiveDelay()); err != nil {
				return stats, err
			}
		}
	}

	if err := c.collectNewspapers(ctx, region, start, end, stats); err != nil {
		return stats, err
	}

	c.logger.Info("region collected",
		"region", region,
		"queries", stats.Queries,
		"successful", stats.SuccessfulQueries,
		"kept", stats.Kept,
		"rejected_date", stats.RejectedDate,
		"rejected_content", stats.RejectedContent,
		"duplicates", stats.Duplicates,
	)
	return stats, nil
}

func (c *Collector) collectLanguage(ctx context.Context, region, regionName, lang string, start, end time.Time, stats *Stats) error {
	terms := monsoon.ClimateTerms(lang)
	if len(terms) == 0 {
		c.logger.Warn("no terms for language", "lang", lang)
		return nil
	}

	client := c.newClient(lang)
	defer client.Close()

	queries := monsoon.BuildQueries(terms, regionName, c.mode)
	stats.Queries += len(queries)

	for qi, query := range queries {
		if err := ctx.Err(); err != nil {
			return err
		}

		results := c.executor.Search(ctx, client, query, c.when, lang, region)
		if results != nil && len(results.Entries) > 0 {
			kept, err := c.keepEntries(ctx, results.Entries, lang, region, terms, start, end, stats)
			if err != nil {
				return err
			}
			if kept > 0 {
				stats.SuccessfulQueries++
			}
		}

		if qi < len(queries)-1 {
			if err := c.sleep(ctx, c.controller.AdaptiveDelay()); err != nil {
				return err
			}
		}
	}
	return nil
}

// keepEntries applies the strict filters to one batch of feed entries
// and persists the survivors. Date filtering prefers the feed timestamp;
// when that is unparseable or out of range, a date embedded in the URL
// can still save the entry.
func (c *Collector) keepEntries(ctx context.Context, entries []monsoon.SearchEntry, lang, region string, terms []string, start, end time.Time, stats *Stats) (int, error) {
	kept := 0
	for _, entry := range entries {
		stats.Entries++

		if !monsoon.IsRelevant(entry.Title, terms) {
			stats.RejectedContent++
			continue
		}

		published := monsoon.ParsePublished(entry.Published)
		if !monsoon.SameDayIST(published, start, end) {
			urlDate := monsoon.DateFromURL(entry.Link)
			if !monsoon.SameDayIST(urlDate, start, end) {
				stats.RejectedDate++
				continue
			}
			published = urlDate.Add(12 * time.Hour)
		}

		if !monsoon.IsRelevant(entry.Title+" "+entry.Summary, terms) {
			stats.RejectedContent++
			continue
		}

		if c.seen.Seen(entry.Link) {
			stats.Duplicates++
			continue
		}
		c.seen.Add(entry.Link)

		row := &monsoon.ResultRow{
			Title:       entry.Title,
			Link:        entry.Link,
			Published:   published,
			Source:      entry.Source,
			Summary:     entry.Summary,
			Term:        collectedTerm,
			Language:    lang,
			Region:      region,
			CollectedAt: c.now().UTC(),
		}
		if err := c.results.CreateResult(ctx, row); err != nil {
			return kept, err
		}
		kept++
		stats.Kept++
	}
	return kept, nil
}

// collectNewspapers checks the region's newspapers through their
// sitemaps. Sitemap URLs carry no headline, so date-in-URL is the only
// filter here; relevance is settled later at extraction time.
func (c *Collector) collectNewspapers(ctx context.Context, region string, start, end time.Time, stats *Stats) error {
	if c.sitemaps == nil {
		return nil
	}

	for pi, paper := range c.newspapers[region] {
		if err := ctx.Err(); err != nil {
			return err
		}
		if pi > 0 {
			if err := c.sleep(ctx, c.controller.AdaptiveDelay()/2); err != nil {
				return err
			}
		}

		urls, err := c.sitemaps.DiscoverURLs(ctx, paper.Website, nil)
		if err != nil {
			c.logger.Warn("newspaper sitemap failed",
				"paper", paper.Name, "err", err)
			continue
		}

		taken := 0
		for _, u := range urls {
			if taken >= c.paperCap {
				break
			}
			urlDate := monsoon.DateFromURL(u)
			if !monsoon.SameDayIST(urlDate, start, end) {
				continue
			}
			if c.seen.Seen(u) {
				stats.Duplicates++
				continue
			}
			c.seen.Add(u)

			row := &monsoon.ResultRow{
				Link:        u,
				Published:   urlDate.Add(12 * time.Hour),
				Source:      paper.Name,
				Term:        collectedTerm,
				Language:    paper.Language,
				Region:      region,
				CollectedAt: c.now().UTC(),
			}
			if err := c.results.CreateResult(ctx, row); err != nil {
				return err
			}
			taken++
			stats.NewspaperRows++
			stats.Kept++
		}

		c.logger.Info("newspaper checked",
			"paper", paper.Name, "urls", len(urls), "taken", taken)
	}
	return nil
}
