package paradesk

import (
	"errors"
	"strings"
)

// Static errors for local misuse. Remote-call failures never take this
// form; they are reported through CallResult.
var (
	ErrConfigRequired     = errors.New("config is required")
	ErrHostRequired       = errors.New("host is required")
	ErrInstanceRequired   = errors.New("instance id is required")
	ErrTokenRequired      = errors.New("token is required")
	ErrNoDocument         = errors.New("no document")
	ErrEmptyAttachment    = errors.New("attachment is empty")
	ErrNoUploadURL        = errors.New("server returned no upload url")
	ErrCacheDisabled      = errors.New("cache disabled")
	ErrCacheMiss          = errors.New("cache miss")
	ErrNATSConfigRequired = errors.New("NATS configuration required for NATS cache")
	ErrUnsupportedCache   = errors.New("unsupported cache type")
)

// Sentinel response-text fragments. The vendor emits no structured fault
// code for these conditions; matching the human-readable message is the
// only classification signal it provides, fragile as that is.
const (
	// UnexpectedErrorText marks an intermittent server fault.
	UnexpectedErrorText = "An unexpected error occurred"

	// TicketStatusRejectionText marks a business-rule rejection that
	// arrives dressed as a 500.
	TicketStatusRejectionText = "invalid action given the current status of the ticket"
)

// IsOverloaded reports whether the result describes a service-overload
// condition: an explicit 503, or no response at all (recorded as 0 before
// the transport layer promotes it).
func IsOverloaded(r *CallResult) bool {
	return r.HTTPResponseCode == 503 || r.HTTPResponseCode == 0
}

// IsTransientAuth reports whether the result is a 401. The vendor
// intermittently rejects valid tokens, so a 401 is treated as retryable
// rather than a genuine credential failure.
func IsTransientAuth(r *CallResult) bool {
	return r.HTTPResponseCode == 401
}

// IsServerFault reports whether the result describes an intermittent
// server-side fault worth retrying at the outer layer: a 500 that is not a
// business-rule rejection, a 401, or the vendor's unstructured "unexpected
// error" text.
func IsServerFault(r *CallResult) bool {
	if r.HTTPResponseCode == 500 && !IsBusinessRejection(r) {
		return true
	}

	if r.HTTPResponseCode == 401 {
		return true
	}

	return strings.Contains(r.ExceptionDetails, UnexpectedErrorText)
}

// IsBusinessRejection reports whether the result is the known business-rule
// rejection the ticket workflow returns as a 500. It must never be retried;
// the server will keep refusing it.
func IsBusinessRejection(r *CallResult) bool {
	return strings.Contains(strings.ToLower(r.ExceptionDetails), TicketStatusRejectionText)
}
