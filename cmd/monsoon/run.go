package main

import (
	"fmt"
	"time"
)

// Run executes the run command: a full collect-then-extract pass.
func (c *RunCmd) Run(deps *Dependencies) error {
	start, end, err := DateWindow(c.Date, c.DaysBack, time.Now)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	if err := collectRegions(deps, c.State, start, end); err != nil {
		return err
	}
	return extractRegions(deps, c.State, start, end)
}
