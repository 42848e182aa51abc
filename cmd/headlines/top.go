package main

import (
	"fmt"

	"github.com/fwojciec/headlines"
)

// Run executes the top command.
func (c *TopCmd) Run(deps *Dependencies) error {
	hs := deps.TopHeadlines.TopHeadlines(deps.Ctx)
	if err := printHeadlines(deps.Stdout, hs, c.JSON); err != nil {
		return err
	}
	if !c.JSON && isFallback(hs) {
		fmt.Fprintln(deps.Stderr, "Note: showing fallback headlines. Set NEWS_API_KEY for live data.")
	}
	return nil
}

func isFallback(hs []*headlines.Headline) bool {
	for _, h := range hs {
		if h.Real {
			return false
		}
	}
	return len(hs) > 0
}
