package mock

import (
	"context"

	"github.com/mvesely/polodata"
)

var _ polodata.MatchWriter = (*MatchWriter)(nil)

// MatchWriter is a mock implementation of polodata.MatchWriter.
type MatchWriter struct {
	WriteMatchesFn func(ctx context.Context, matches []*polodata.Match) error
}

func (w *MatchWriter) WriteMatches(ctx context.Context, matches []*polodata.Match) error {
	return w.WriteMatchesFn(ctx, matches)
}

var _ polodata.MatchService = (*MatchService)(nil)

// MatchService is a mock implementation of polodata.MatchService.
type MatchService struct {
	WriteMatchesFn  func(ctx context.Context, matches []*polodata.Match) error
	FindMatchByIDFn func(ctx context.Context, matchID int) (*polodata.Match, error)
	FindMatchesFn   func(ctx context.Context, filter polodata.MatchFilter) ([]*polodata.Match, error)
}

func (s *MatchService) WriteMatches(ctx context.Context, matches []*polodata.Match) error {
	return s.WriteMatchesFn(ctx, matches)
}

func (s *MatchService) FindMatchByID(ctx context.Context, matchID int) (*polodata.Match, error) {
	return s.FindMatchByIDFn(ctx, matchID)
}

func (s *MatchService) FindMatches(ctx context.Context, filter polodata.MatchFilter) ([]*polodata.Match, error) {
	return s.FindMatchesFn(ctx, filter)
}
