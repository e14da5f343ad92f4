// Package scrape provides batch scraping orchestration. It drives the
// fetch→parse pipeline across a list of match ids, one at a time, and
// accumulates the successfully parsed matches in input order.
package scrape

import (
	"context"
	"errors"

	"github.com/mvesely/polodata"
)

// Scraper orchestrates scraping a batch of match pages.
type Scraper struct {
	Fetcher polodata.Fetcher
	Parser  polodata.Parser

	// Limiter optionally paces requests. Nil means no pacing.
	Limiter Limiter
}

// Failure records a match id that could not be scraped and why.
type Failure struct {
	MatchID int
	Err     error
}

// Result holds the outcome of a batch run. Matches preserves the relative
// order of the input ids restricted to successes.
type Result struct {
	Matches   []*polodata.Match
	Attempted int
	NotPlayed int
	Failures  []Failure
}

// ProgressType indicates the type of progress event.
type ProgressType int

// Progress event types emitted during a batch run.
const (
	ProgressStarted ProgressType = iota
	ProgressScraped
	ProgressNotPlayed
	ProgressFailed
	ProgressFinished
)

// ProgressEvent reports progress during a batch run.
type ProgressEvent struct {
	Type    ProgressType
	MatchID int
	Total   int
	Err     error
}

// ProgressFunc is a callback for reporting batch progress.
type ProgressFunc func(event ProgressEvent)

// Run fetches and parses every match id in order. One fetcher session is
// opened for the whole batch and released before Run returns.
//
// Per-match extraction failures (EPARSE) and transport failures
// (ETRANSPORT) are recorded in Result.Failures and do not stop the batch;
// a match without a final score is counted and skipped silently. Contract
// violations (EINVALID, ESESSION), context cancellation and unexpected
// errors abort the batch immediately.
func (s *Scraper) Run(ctx context.Context, matchIDs []int, progress ProgressFunc) (*Result, error) {
	if err := s.Fetcher.Open(); err != nil {
		return nil, err
	}
	defer s.Fetcher.Close()

	result := &Result{}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: len(matchIDs)})
	}

	for _, matchID := range matchIDs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if s.Limiter != nil {
			if err := s.Limiter.Wait(ctx); err != nil {
				return nil, err
			}
		}

		result.Attempted++

		match, err := s.scrapeMatch(ctx, matchID)
		switch {
		case err == nil:
			result.Matches = append(result.Matches, match)
			if progress != nil {
				progress(ProgressEvent{Type: ProgressScraped, MatchID: matchID, Total: len(matchIDs)})
			}
		case errors.Is(err, polodata.ErrNotPlayed):
			result.NotPlayed++
			if progress != nil {
				progress(ProgressEvent{Type: ProgressNotPlayed, MatchID: matchID, Total: len(matchIDs)})
			}
		case recoverable(err):
			result.Failures = append(result.Failures, Failure{MatchID: matchID, Err: err})
			if progress != nil {
				progress(ProgressEvent{Type: ProgressFailed, MatchID: matchID, Total: len(matchIDs), Err: err})
			}
		default:
			return nil, err
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Total: len(matchIDs)})
	}

	return result, nil
}

// scrapeMatch fetches and parses a single match.
func (s *Scraper) scrapeMatch(ctx context.Context, matchID int) (*polodata.Match, error) {
	html, err := s.Fetcher.FetchMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}
	return s.Parser.ParseMatch(html, matchID)
}

// recoverable reports whether a per-match failure should be recorded
// instead of aborting the batch. Extraction failures are scoped to one
// page by definition; transport failures are treated the same way so one
// dead id cannot discard the rest of the batch.
func recoverable(err error) bool {
	switch polodata.ErrorCode(err) {
	case polodata.EPARSE, polodata.ETRANSPORT:
		return true
	}
	return false
}
