package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fwojciec/headlines"
)

// printHeadlines writes hs as an indented JSON array or as one line per
// headline followed by its URL.
func printHeadlines(w io.Writer, hs []*headlines.Headline, asJSON bool) error {
	if asJSON {
		if hs == nil {
			hs = []*headlines.Headline{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(hs)
	}

	for _, h := range hs {
		fmt.Fprintf(w, "[%s] %s (%s)\n", h.Type, h.Text, h.Source)
		if h.URL != "" {
			fmt.Fprintf(w, "    %s\n", h.URL)
		}
	}
	return nil
}
