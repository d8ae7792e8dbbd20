package api

import "errors"

// Failure classes at the API boundary. Callers match them with errors.Is;
// for display they all collapse into a single general message (see Message).
var (
	// ErrUnavailable: the transport failed before a response arrived.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized: the server rejected the caller's credentials.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrDeclined: the response arrived but declared success=false.
	ErrDeclined = errors.New("request declined by server")

	// ErrBadResponse: the response body could not be decoded.
	ErrBadResponse = errors.New("unexpected server response")
)

// Message collapses any API error into the single user-facing string shown
// near the relevant form or dialog. No class is retried; the user re-triggers
// the action manually.
func Message(err error) string {
	switch {
	case errors.Is(err, ErrUnavailable):
		return "Cannot reach the server. Please try again."
	case errors.Is(err, ErrUnauthorized):
		return "You are not authorized to do that. Please log in again."
	case errors.Is(err, ErrDeclined):
		return "The server rejected the request."
	case errors.Is(err, ErrBadResponse):
		return "Unexpected server response."
	default:
		return "Something went wrong. Please try again."
	}
}
