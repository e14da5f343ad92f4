package polodata

import (
	"errors"
	"fmt"
)

// Error codes categorize failures for the propagation policy: contract
// violations (EINVALID, ESESSION) are always surfaced to the caller, while
// ETRANSPORT and EPARSE are scoped to a single match and absorbed by the
// batch scraper.
const (
	EINVALID   = "invalid"    // argument violates a precondition
	ESESSION   = "session"    // fetch attempted outside an open session
	ETRANSPORT = "transport"  // timeout, network failure, or non-2xx status
	EPARSE     = "parse"      // required page structure missing or malformed
	ENOTFOUND  = "not_found"  // stored entity does not exist
	ENOTPLAYED = "not_played" // match exists but has no final score yet
	EINTERNAL  = "internal"   // unexpected internal failure
)

// Extraction sub-step ops carried by EPARSE errors. Tests assert on these
// instead of matching error text.
const (
	OpLeagueDate = "parser.league_date"
	OpTeams      = "parser.teams"
	OpScore      = "parser.score"
)

// ErrNotPlayed reports that a match page exists but the match has no final
// score yet. It is a recognized terminal outcome, not a failure: the batch
// scraper skips such matches silently.
var ErrNotPlayed = &Error{Code: ENOTPLAYED, Message: "match not played yet"}

// Error is an application error with a machine-readable code and a
// human-readable message. Op optionally names the operation that failed.
type Error struct {
	Code    string
	Op      string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// Errorf constructs an *Error with the given code and formatted message.
func Errorf(code string, format string, args ...any) error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// WrapErrorf constructs an *Error with the given code and op, wrapping err
// as the underlying cause.
func WrapErrorf(code, op string, err error, format string, args ...any) error {
	return &Error{
		Code:    code,
		Op:      op,
		Message: fmt.Sprintf(format, args...),
		Err:     err,
	}
}

// ErrorCode returns the code of the error, if it is an *Error.
// Returns EINTERNAL for non-application errors and "" for nil.
func ErrorCode(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorOp returns the op of the error, if it is an *Error, or "".
func ErrorOp(err error) string {
	var e *Error
	if err != nil && errors.As(err, &e) {
		return e.Op
	}
	return ""
}

// ErrorMessage returns the message of the error, if it is an *Error.
// Returns a generic message for non-application errors and "" for nil.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "internal error"
}
