package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	dochttp "github.com/fwojciec/doccorpus/http"
)

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	addr := deps.Config.Server.Addr
	if c.Addr != "" {
		addr = c.Addr
	}

	// Per-job output overrides act on a copy so concurrent jobs don't
	// clobber each other's destinations.
	scrape := func(ctx context.Context, req dochttp.ScrapeRequest) ([]string, error) {
		scraper := *deps.Scraper
		if req.OutputDir != "" {
			scraper.OutputDir = req.OutputDir
		}
		if req.Prefix != "" {
			scraper.Prefix = req.Prefix
		}
		return scraper.Scrape(ctx, req.URL, nil)
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           dochttp.NewServer(deps.Ctx, scrape, deps.Logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()

	fmt.Fprintf(deps.Stdout, "listening on %s\n", addr)

	select {
	case <-deps.Ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
