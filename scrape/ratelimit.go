package scrape

import (
	"context"

	"golang.org/x/time/rate"
)

// Limiter paces outbound requests.
type Limiter interface {
	// Wait blocks until the next request may be sent. Returns an error if
	// the context is canceled before the wait completes.
	Wait(ctx context.Context) error
}

// Ensure RateLimiter implements Limiter at compile time.
var _ Limiter = (*RateLimiter)(nil)

// RateLimiter is a token-bucket Limiter. Every request goes to the same
// site, so a single bucket with a burst of 1 is enough: requests are
// spaced evenly at the configured rate with no bursting.
type RateLimiter struct {
	limiter *rate.Limiter
}

// NewRateLimiter creates a RateLimiter allowing rps requests per second.
func NewRateLimiter(rps float64) *RateLimiter {
	return &RateLimiter{
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
	}
}

// Wait blocks until the rate limit allows the next request.
func (l *RateLimiter) Wait(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}
