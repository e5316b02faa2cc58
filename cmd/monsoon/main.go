package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	monsoon "github.com/AIDMI-DataHub/monsoon-news-extraction"
	"github.com/AIDMI-DataHub/monsoon-news-extraction/bloom"
	"github.com/AIDMI-DataHub/monsoon-news-extraction/chromedp"
	"github.com/AIDMI-DataHub/monsoon-news-extraction/collect"
	"github.com/AIDMI-DataHub/monsoon-news-extraction/dedup"
	"github.com/AIDMI-DataHub/monsoon-news-extraction/extract"
	"github.com/AIDMI-DataHub/monsoon-news-extraction/fs"
	"github.com/AIDMI-DataHub/monsoon-news-extraction/gofeed"
	"github.com/AIDMI-DataHub/monsoon-news-extraction/goquery"
	monhttp "github.com/AIDMI-DataHub/monsoon-news-extraction/http"
	"github.com/AIDMI-DataHub/monsoon-news-extraction/readability"
	"github.com/AIDMI-DataHub/monsoon-news-extraction/rod"
	"github.com/AIDMI-DataHub/monsoon-news-extraction/search"
	monslog "github.com/AIDMI-DataHub/monsoon-news-extraction/slog"
	"github.com/AIDMI-DataHub/monsoon-news-extraction/sqlite"
	"github.com/AIDMI-DataHub/monsoon-news-extraction/trafilatura"
	"github.com/alecthomas/kong"
	"github.com/google/uuid"
)

// seenFilterCapacity sizes the bloom filter for one run's URL volume.
const seenFilterCapacity = 100000

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	ResultService  monsoon.ResultService
	ArticleService monsoon.ArticleService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	logger := slog.New(slog.NewTextHandler(stderr, nil)).With("run_id", uuid.NewString())

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("monsoon"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'monsoon --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// The regions command needs no database or services.
	if cmd == "regions" {
		return kongCtx.Run(deps)
	}

	if cli.DB != "" {
		m.DBPath = cli.DB
	}
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set MONSOON_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.ResultService = sqlite.NewResultService(m.DB)
	m.ArticleService = sqlite.NewArticleService(m.DB)
	deps.DB = m.DB
	deps.Results = m.ResultService
	deps.Articles = m.ArticleService

	if cmd == "collect" || cmd == "run" {
		mode := monsoon.QueryConservative
		daysBack := cli.Collect.DaysBack
		if cmd == "run" {
			daysBack = cli.Run.DaysBack
		}
		if (cmd == "collect" && cli.Collect.Full) || (cmd == "run" && cli.Run.Full) {
			mode = monsoon.QueryFull
		}

		controller := search.NewController()
		executor := search.NewExecutor(controller, search.NewOptimizer(),
			search.WithLogger(logger))
		factory := func(lang string) monsoon.SearchClient {
			return monslog.NewLoggingSearchClient(gofeed.NewClient(lang), logger)
		}
		seen := bloom.NewFilter(seenFilterCapacity, 0.01)

		deps.Collector = collect.NewCollector(executor, controller, factory, deps.Results, seen,
			collect.WithQueryMode(mode),
			collect.WithWhen(whenParameter(daysBack)),
			collect.WithNewspapers(monhttp.NewSitemapService(nil), regionalNewspapers),
			collect.WithLogger(logger),
		)
	}

	if cmd == "extract" || cmd == "run" {
		out := cli.Extract.Out
		concurrency := cli.Extract.Concurrency
		if cmd == "run" {
			out = cli.Run.Out
			concurrency = cli.Run.Concurrency
		}

		rodFetcher, err := rod.NewFetcher()
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return fmt.Errorf("failed to start browser: %w", err)
		}

		cdpFetcher, err := chromedp.NewFetcher()
		if err != nil {
			rodFetcher.Close()
			return fmt.Errorf("failed to start second browser engine: %w", err)
		}

		chain := extract.NewChain([]extract.Strategy{
			{
				Name:       "browser",
				Fetcher:    monslog.NewLoggingFetcher(rodFetcher, logger),
				Extractors: []monsoon.Extractor{goquery.NewExtractor()},
			},
			{
				Name:       "browser-alt",
				Fetcher:    monslog.NewLoggingFetcher(cdpFetcher, logger),
				Extractors: []monsoon.Extractor{readability.NewExtractor(), goquery.NewExtractor()},
			},
			{
				Name:    "http",
				Fetcher: monslog.NewLoggingFetcher(monhttp.NewFetcher(), logger),
				Extractors: []monsoon.Extractor{
					readability.NewExtractor(),
					trafilatura.NewExtractor(),
					goquery.NewExtractor(),
				},
			},
		}, extract.WithChainLogger(logger))
		defer chain.Close()

		pool := extract.NewPool(chain, extract.NewDomainLimiter(1.0),
			extract.WithConcurrency(concurrency),
			extract.WithPoolLogger(logger),
		)

		deps.Pipeline = &extract.Pipeline{
			Results:  deps.Results,
			Articles: deps.Articles,
			Pool:     pool,
			Dedup:    dedup.NewEngine(dedup.WithLogger(logger)),
			Logger:   logger,
		}
		deps.Writer = fs.NewStore(out)
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("MONSOON_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "monsoon.db"
	}
	dir := filepath.Join(home, ".monsoon")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "monsoon.db")
}
