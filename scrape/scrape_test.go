package scrape_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/mvesely/polodata"
	"github.com/mvesely/polodata/mock"
	"github.com/mvesely/polodata/scrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testMatch returns a valid match for the given id.
func testMatch(matchID int) *polodata.Match {
	date, _ := time.Parse(polodata.InputDateLayout, "21. 12. 2025 - 11:00")
	return &polodata.Match{
		MatchID:   matchID,
		HomeTeam:  "Home Team",
		AwayTeam:  "Away Team",
		MatchDate: date,
		League:    "1. liga mužů",
		HomeScore: 15,
		AwayScore: 12,
		Winner:    polodata.WinnerHome,
	}
}

// passthroughFetcher returns a fetcher that yields a per-id page body.
func passthroughFetcher() *mock.Fetcher {
	return &mock.Fetcher{
		FetchMatchFn: func(ctx context.Context, matchID int) (string, error) {
			return fmt.Sprintf("page-%d", matchID), nil
		},
	}
}

func TestScraper_Run(t *testing.T) {
	t.Parallel()

	t.Run("collects matches in input order", func(t *testing.T) {
		t.Parallel()

		fetcher := passthroughFetcher()
		parser := &mock.Parser{
			ParseMatchFn: func(html string, matchID int) (*polodata.Match, error) {
				assert.Equal(t, fmt.Sprintf("page-%d", matchID), html)
				return testMatch(matchID), nil
			},
		}

		s := &scrape.Scraper{Fetcher: fetcher, Parser: parser}
		result, err := s.Run(context.Background(), []int{3, 1, 2}, nil)
		require.NoError(t, err)

		require.Len(t, result.Matches, 3)
		assert.Equal(t, 3, result.Matches[0].MatchID)
		assert.Equal(t, 1, result.Matches[1].MatchID)
		assert.Equal(t, 2, result.Matches[2].MatchID)
		assert.Equal(t, 3, result.Attempted)
		assert.Empty(t, result.Failures)
	})

	t.Run("opens one session for the whole batch", func(t *testing.T) {
		t.Parallel()

		fetcher := passthroughFetcher()
		parser := &mock.Parser{
			ParseMatchFn: func(html string, matchID int) (*polodata.Match, error) {
				return testMatch(matchID), nil
			},
		}

		s := &scrape.Scraper{Fetcher: fetcher, Parser: parser}
		_, err := s.Run(context.Background(), []int{1, 2, 3, 4}, nil)
		require.NoError(t, err)

		assert.Equal(t, 1, fetcher.OpenCount)
		assert.Equal(t, 1, fetcher.CloseCount)
	})

	t.Run("absorbs extraction failures and continues", func(t *testing.T) {
		t.Parallel()

		fetcher := passthroughFetcher()
		parser := &mock.Parser{
			ParseMatchFn: func(html string, matchID int) (*polodata.Match, error) {
				if matchID == 2 {
					return nil, polodata.WrapErrorf(polodata.EPARSE, polodata.OpScore, nil, "failed to extract score")
				}
				return testMatch(matchID), nil
			},
		}

		s := &scrape.Scraper{Fetcher: fetcher, Parser: parser}
		result, err := s.Run(context.Background(), []int{1, 2, 3}, nil)
		require.NoError(t, err)

		require.Len(t, result.Matches, 2)
		assert.Equal(t, 1, result.Matches[0].MatchID)
		assert.Equal(t, 3, result.Matches[1].MatchID)
		require.Len(t, result.Failures, 1)
		assert.Equal(t, 2, result.Failures[0].MatchID)
		assert.Equal(t, polodata.EPARSE, polodata.ErrorCode(result.Failures[0].Err))
	})

	t.Run("absorbs transport failures and continues", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchMatchFn: func(ctx context.Context, matchID int) (string, error) {
				if matchID == 1 {
					return "", polodata.Errorf(polodata.ETRANSPORT, "HTTP 500")
				}
				return "page", nil
			},
		}
		parser := &mock.Parser{
			ParseMatchFn: func(html string, matchID int) (*polodata.Match, error) {
				return testMatch(matchID), nil
			},
		}

		s := &scrape.Scraper{Fetcher: fetcher, Parser: parser}
		result, err := s.Run(context.Background(), []int{1, 2}, nil)
		require.NoError(t, err)

		require.Len(t, result.Matches, 1)
		assert.Equal(t, 2, result.Matches[0].MatchID)
		require.Len(t, result.Failures, 1)
		assert.Equal(t, 1, result.Failures[0].MatchID)
		assert.Equal(t, polodata.ETRANSPORT, polodata.ErrorCode(result.Failures[0].Err))
	})

	t.Run("skips unplayed matches silently", func(t *testing.T) {
		t.Parallel()

		fetcher := passthroughFetcher()
		parser := &mock.Parser{
			ParseMatchFn: func(html string, matchID int) (*polodata.Match, error) {
				if matchID == 2 {
					return nil, polodata.ErrNotPlayed
				}
				return testMatch(matchID), nil
			},
		}

		s := &scrape.Scraper{Fetcher: fetcher, Parser: parser}
		result, err := s.Run(context.Background(), []int{1, 2, 3}, nil)
		require.NoError(t, err)

		assert.Len(t, result.Matches, 2)
		assert.Equal(t, 1, result.NotPlayed)
		assert.Empty(t, result.Failures)
	})

	t.Run("propagates contract violations", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchMatchFn: func(ctx context.Context, matchID int) (string, error) {
				return "", polodata.Errorf(polodata.EINVALID, "match id must be positive, got %d", matchID)
			},
		}
		parser := &mock.Parser{
			ParseMatchFn: func(html string, matchID int) (*polodata.Match, error) {
				return testMatch(matchID), nil
			},
		}

		s := &scrape.Scraper{Fetcher: fetcher, Parser: parser}
		result, err := s.Run(context.Background(), []int{0, 1}, nil)
		require.Error(t, err)
		assert.Equal(t, polodata.EINVALID, polodata.ErrorCode(err))
		assert.Nil(t, result)
		assert.Equal(t, 1, fetcher.CloseCount)
	})

	t.Run("propagates a failed session open", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			OpenFn: func() error {
				return polodata.Errorf(polodata.ESESSION, "session already open")
			},
			FetchMatchFn: func(ctx context.Context, matchID int) (string, error) {
				t.Fatal("fetch must not be called when open fails")
				return "", nil
			},
		}

		s := &scrape.Scraper{Fetcher: fetcher, Parser: &mock.Parser{}}
		_, err := s.Run(context.Background(), []int{1}, nil)
		require.Error(t, err)
		assert.Equal(t, polodata.ESESSION, polodata.ErrorCode(err))
	})

	t.Run("returns an empty result for an empty id list", func(t *testing.T) {
		t.Parallel()

		fetcher := passthroughFetcher()
		s := &scrape.Scraper{Fetcher: fetcher, Parser: &mock.Parser{}}

		result, err := s.Run(context.Background(), nil, nil)
		require.NoError(t, err)
		assert.Empty(t, result.Matches)
		assert.Equal(t, 0, result.Attempted)
		assert.Equal(t, 1, fetcher.OpenCount)
		assert.Equal(t, 1, fetcher.CloseCount)
	})

	t.Run("stops on context cancellation", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		s := &scrape.Scraper{Fetcher: passthroughFetcher(), Parser: &mock.Parser{}}
		_, err := s.Run(ctx, []int{1, 2}, nil)
		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("reports progress events", func(t *testing.T) {
		t.Parallel()

		fetcher := passthroughFetcher()
		parser := &mock.Parser{
			ParseMatchFn: func(html string, matchID int) (*polodata.Match, error) {
				switch matchID {
				case 2:
					return nil, polodata.ErrNotPlayed
				case 3:
					return nil, polodata.WrapErrorf(polodata.EPARSE, polodata.OpTeams, nil, "failed to extract teams")
				}
				return testMatch(matchID), nil
			},
		}

		var events []scrape.ProgressType
		progress := func(event scrape.ProgressEvent) {
			events = append(events, event.Type)
		}

		s := &scrape.Scraper{Fetcher: fetcher, Parser: parser}
		_, err := s.Run(context.Background(), []int{1, 2, 3}, progress)
		require.NoError(t, err)

		assert.Equal(t, []scrape.ProgressType{
			scrape.ProgressStarted,
			scrape.ProgressScraped,
			scrape.ProgressNotPlayed,
			scrape.ProgressFailed,
			scrape.ProgressFinished,
		}, events)
	})

	t.Run("waits on the limiter before each fetch", func(t *testing.T) {
		t.Parallel()

		waits := 0
		limiter := limiterFunc(func(ctx context.Context) error {
			waits++
			return nil
		})

		fetcher := passthroughFetcher()
		parser := &mock.Parser{
			ParseMatchFn: func(html string, matchID int) (*polodata.Match, error) {
				return testMatch(matchID), nil
			},
		}

		s := &scrape.Scraper{Fetcher: fetcher, Parser: parser, Limiter: limiter}
		_, err := s.Run(context.Background(), []int{1, 2, 3}, nil)
		require.NoError(t, err)
		assert.Equal(t, 3, waits)
	})
}

// limiterFunc adapts a function to the scrape.Limiter interface.
type limiterFunc func(ctx context.Context) error

func (f limiterFunc) Wait(ctx context.Context) error {
	return f(ctx)
}
