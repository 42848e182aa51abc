package main

import (
	headlineshttp "github.com/fwojciec/headlines/http"
)

// Run executes the serve command. It blocks until the context is cancelled.
func (c *ServeCmd) Run(deps *Dependencies) error {
	addr := c.Addr
	if addr == "" {
		addr = deps.Config.Addr
	}

	srv := headlineshttp.NewServer(deps.Scraper, deps.TopHeadlines,
		headlineshttp.WithServerLogger(deps.Logger))
	srv.Addr = addr
	if err := srv.Open(); err != nil {
		return err
	}
	return srv.Serve(deps.Ctx)
}
