package main

import (
	"fmt"
	"time"

	monsoon "github.com/AIDMI-DataHub/monsoon-news-extraction"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	start, end, err := DateWindow(c.Date, c.DaysBack, time.Now)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}
	return extractRegions(deps, c.State, start, end)
}

// extractRegions runs the extraction pipeline for each region, then
// writes every extracted article to the JSON output in one atomic run.
func extractRegions(deps *Dependencies, state string, start, end time.Time) error {
	regions, err := regionList(state)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	since := start
	until := end.AddDate(0, 0, 1)

	var all []*monsoon.Article
	for _, region := range regions {
		stats, err := deps.Pipeline.Run(deps.Ctx, region, since, until)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error extracting %s: %v\n", region, err)
			return err
		}
		if stats.Rows == 0 {
			continue
		}
		fmt.Fprintf(deps.Stdout, "%s: saved %d articles from %d rows (%d removed as duplicates)\n",
			region, stats.Saved, stats.Rows, stats.Deduped)

		articles, err := deps.Articles.FindArticles(deps.Ctx, monsoon.ArticleFilter{Region: &region})
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", monsoon.ErrorMessage(err))
			return err
		}
		all = append(all, articles...)
	}

	if err := deps.Writer.WriteRun(deps.Ctx, all); err != nil {
		_ = deps.Writer.Abort()
		fmt.Fprintf(deps.Stderr, "error writing output: %v\n", err)
		return err
	}
	if err := deps.Writer.Commit(); err != nil {
		fmt.Fprintf(deps.Stderr, "error committing output: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Wrote %d articles\n", len(all))
	return nil
}
