package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	monsoon "github.com/AIDMI-DataHub/monsoon-news-extraction"
	"github.com/AIDMI-DataHub/monsoon-news-extraction/collect"
	"github.com/AIDMI-DataHub/monsoon-news-extraction/extract"
	"github.com/AIDMI-DataHub/monsoon-news-extraction/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	DB       *sqlite.DB
	Results  monsoon.ResultService
	Articles monsoon.ArticleService
	Collector *collect.Collector
	Pipeline  *extract.Pipeline
	Writer    monsoon.ArticleWriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB string `help:"SQLite database path (default: $MONSOON_DB or ~/.monsoon/monsoon.db)"`

	Collect CollectCmd `cmd:"" help:"Collect news rows for one or all regions"`
	Extract ExtractCmd `cmd:"" help:"Extract article text from collected rows"`
	Run     RunCmd     `cmd:"" help:"Collect and extract in one pass"`
	Regions RegionsCmd `cmd:"" help:"List supported states and union territories"`
}

// CollectCmd is the "collect" subcommand.
type CollectCmd struct {
	State    string `short:"s" help:"Region slug (default: all regions)"`
	Date     string `help:"Target date (YYYY-MM-DD, IST); defaults to today"`
	DaysBack int    `default:"0" help:"Extend the window this many days before the date"`
	Full     bool   `help:"Use the full query set instead of the conservative one"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	State       string `short:"s" help:"Region slug (default: all regions)"`
	Date        string `help:"Target date (YYYY-MM-DD, IST); defaults to today"`
	DaysBack    int    `default:"0" help:"Extend the window this many days before the date"`
	Out         string `short:"o" default:"output" help:"Output directory for JSON files"`
	Concurrency int    `short:"c" default:"3" help:"Concurrent extraction limit"`
}

// RunCmd is the "run" subcommand: collect followed by extract.
type RunCmd struct {
	State       string `short:"s" help:"Region slug (default: all regions)"`
	Date        string `help:"Target date (YYYY-MM-DD, IST); defaults to today"`
	DaysBack    int    `default:"0" help:"Extend the window this many days before the date"`
	Full        bool   `help:"Use the full query set instead of the conservative one"`
	Out         string `short:"o" default:"output" help:"Output directory for JSON files"`
	Concurrency int    `short:"c" default:"3" help:"Concurrent extraction limit"`
}

// RegionsCmd is the "regions" subcommand.
type RegionsCmd struct{}

// DateWindow resolves the --date/--days-back flags into day-precision
// IST bounds [start, end]. An empty date means today in IST.
func DateWindow(date string, daysBack int, now func() time.Time) (start, end time.Time, err error) {
	if date == "" {
		n := now().In(monsoon.IST)
		end = time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, monsoon.IST)
	} else {
		end, err = time.ParseInLocation("2006-01-02", date, monsoon.IST)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", date)
		}
	}
	if daysBack < 0 {
		return time.Time{}, time.Time{}, fmt.Errorf("days-back must not be negative")
	}
	start = end.AddDate(0, 0, -daysBack)
	return start, end, nil
}

// whenParameter maps the window length to the feed when: operator.
func whenParameter(daysBack int) string {
	if daysBack <= 0 {
		return "1d"
	}
	return fmt.Sprintf("%dd", daysBack+1)
}

// regionList resolves the --state flag: a single validated slug or every
// region when empty.
func regionList(state string) ([]string, error) {
	if state == "" {
		return monsoon.AllRegions(), nil
	}
	if !monsoon.ValidRegion(state) {
		return nil, fmt.Errorf("unknown region %q; run 'monsoon regions' to list valid slugs", state)
	}
	return []string{state}, nil
}
