// Package mock provides function-field mock implementations of the
// polodata interfaces for use in tests.
package mock

import (
	"context"

	"github.com/mvesely/polodata"
)

var _ polodata.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of polodata.Fetcher.
type Fetcher struct {
	OpenFn       func() error
	FetchMatchFn func(ctx context.Context, matchID int) (string, error)
	CloseFn      func() error

	OpenCount  int
	CloseCount int
}

func (f *Fetcher) Open() error {
	f.OpenCount++
	if f.OpenFn != nil {
		return f.OpenFn()
	}
	return nil
}

func (f *Fetcher) FetchMatch(ctx context.Context, matchID int) (string, error) {
	return f.FetchMatchFn(ctx, matchID)
}

func (f *Fetcher) Close() error {
	f.CloseCount++
	if f.CloseFn != nil {
		return f.CloseFn()
	}
	return nil
}
