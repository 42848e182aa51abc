package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"

	"github.com/fwojciec/headlines"
)

// Run executes the url command.
func (c *URLCmd) Run(deps *Dependencies) error {
	fmt.Fprintln(deps.Stdout, deps.Resolver.URL(c.Endpoint))
	return nil
}

// Run executes the get command.
func (c *GetCmd) Run(deps *Dependencies) error {
	if !deps.Resolver.Configured() {
		err := headlines.Errorf(headlines.EINVALID, "API URL not configured; set HEADLINES_API_URL")
		fmt.Fprintf(deps.Stderr, "error: %s\n", headlines.ErrorMessage(err))
		return err
	}

	u := deps.Resolver.URL(c.Endpoint)
	req, err := nethttp.NewRequestWithContext(deps.Ctx, nethttp.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := deps.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("requesting %s: %w", u, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return headlines.Errorf(headlines.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, u)
	}

	var out bytes.Buffer
	if err := json.Indent(&out, body, "", "  "); err != nil {
		_, err = deps.Stdout.Write(body)
		return err
	}
	out.WriteByte('\n')
	_, err = out.WriteTo(deps.Stdout)
	return err
}
