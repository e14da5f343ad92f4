package polodata

import "context"

// Fetcher retrieves raw match page HTML from the league website.
// A Fetcher owns one underlying HTTP session: Open must be called before
// the first fetch and Close after the last. Fetching outside an open
// session fails with ESESSION.
type Fetcher interface {
	// Open acquires the underlying session resource.
	Open() error

	// FetchMatch retrieves the HTML document for the match with the given
	// id. The context controls timeout and cancellation. Fails with
	// EINVALID for a non-positive id (before any network activity) and
	// with ETRANSPORT for timeouts, connection failures, and non-2xx
	// responses.
	FetchMatch(ctx context.Context, matchID int) (html string, err error)

	// Close releases the session resource. Fetching after Close fails
	// with ESESSION.
	Close() error
}
