package main

import (
	"fmt"

	"github.com/fwojciec/headlines"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	if c.Count <= 0 {
		err := headlines.Errorf(headlines.EINVALID, "count must be positive, got %d", c.Count)
		fmt.Fprintf(deps.Stderr, "error: %s\n", headlines.ErrorMessage(err))
		return err
	}

	hs := deps.Scraper.Scrape(deps.Ctx, c.Count)
	if len(hs) == 0 && !c.JSON {
		fmt.Fprintln(deps.Stdout, "No headlines found.")
		return nil
	}
	return printHeadlines(deps.Stdout, hs, c.JSON)
}
