package main

import (
	"fmt"
	"strings"

	monsoon "github.com/AIDMI-DataHub/monsoon-news-extraction"
)

// Run executes the regions command.
func (c *RegionsCmd) Run(deps *Dependencies) error {
	for _, slug := range monsoon.AllRegions() {
		langs := monsoon.RegionLanguages(slug)
		fmt.Fprintf(deps.Stdout, "%-42s %-18s %s\n",
			slug, monsoon.TypeOfRegion(slug), strings.Join(langs, ","))
	}
	return nil
}
