package api

import "errors"

// Kind classifies an API failure.
type Kind string

const (
	KindConfig      Kind = "config"
	KindTransport   Kind = "transport"
	KindProtocol    Kind = "protocol"
	KindApplication Kind = "application"
)

// Error is the single failure shape for every API call: an application-level
// code, an HTTP-like status, and optional diagnostic details.
type Error struct {
	Kind    Kind
	Code    int
	Status  int
	Message string
	Details any
	cause   error
}

// Error returns the human-readable message only, so callers can surface it
// directly in UI state without stripping prefixes.
func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == kind
}

// NewApplicationError builds a local precondition failure that never reached
// the network (invalid role, missing token, and friends).
func NewApplicationError(code int, message string) *Error {
	return &Error{
		Kind:    KindApplication,
		Code:    code,
		Status:  code,
		Message: message,
	}
}

// ProtocolDetails carries the raw response body and the parse failure for a
// response that was not valid JSON.
type ProtocolDetails struct {
	Raw   string
	Cause string
}
