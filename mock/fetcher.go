package mock

import (
	"context"

	"github.com/fwojciec/headlines"
)

var _ headlines.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of headlines.Fetcher. Tests set only the
// functions they expect to be called.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

// Fetch returns whatever FetchFn returns for url.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

// Close calls CloseFn, or reports success when it is unset.
func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}
