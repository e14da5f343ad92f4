// Package slog provides log/slog instrumentation wrappers for polodata
// interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/mvesely/polodata"
)

// Ensure Fetcher implements polodata.Fetcher.
var _ polodata.Fetcher = (*Fetcher)(nil)

// Fetcher wraps a polodata.Fetcher with per-fetch logging.
type Fetcher struct {
	next   polodata.Fetcher
	logger *slog.Logger
}

// NewFetcher creates a new logging Fetcher.
func NewFetcher(next polodata.Fetcher, logger *slog.Logger) *Fetcher {
	return &Fetcher{next: next, logger: logger}
}

// Open delegates to the wrapped fetcher.
func (f *Fetcher) Open() error {
	return f.next.Open()
}

// FetchMatch delegates to the wrapped fetcher, logging the outcome and
// duration of each fetch.
func (f *Fetcher) FetchMatch(ctx context.Context, matchID int) (string, error) {
	begin := time.Now()
	html, err := f.next.FetchMatch(ctx, matchID)
	if err != nil {
		f.logger.Error("fetch match",
			"match_id", matchID,
			"duration", time.Since(begin),
			"error", err,
		)
		return "", err
	}
	f.logger.Info("fetch match",
		"match_id", matchID,
		"duration", time.Since(begin),
		"bytes", len(html),
	)
	return html, nil
}

// Close delegates to the wrapped fetcher.
func (f *Fetcher) Close() error {
	return f.next.Close()
}
