package main

import (
	"fmt"
	"time"
)

// Run executes the collect command.
func (c *CollectCmd) Run(deps *Dependencies) error {
	start, end, err := DateWindow(c.Date, c.DaysBack, time.Now)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}
	return collectRegions(deps, c.State, start, end)
}

func collectRegions(deps *Dependencies, state string, start, end time.Time) error {
	regions, err := regionList(state)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	for _, region := range regions {
		stats, err := deps.Collector.Run(deps.Ctx, region, start, end)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error collecting %s: %v\n", region, err)
			return err
		}
		fmt.Fprintf(deps.Stdout, "%s: kept %d rows (%d/%d queries successful, %d duplicates)\n",
			region, stats.Kept, stats.SuccessfulQueries, stats.Queries, stats.Duplicates)
	}
	return nil
}
