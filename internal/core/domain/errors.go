package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failed gateway call. The set is closed: every call
// site branches on exactly these three outcomes.
type ErrorKind int

const (
	// KindTransport means no HTTP response was obtained at all.
	KindTransport ErrorKind = iota
	// KindValidation means the gateway rejected the payload with a 400 and a
	// message body meant for the user.
	KindValidation
	// KindUnexpected covers every other non-2xx status, including 404.
	KindUnexpected
)

func (k ErrorKind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindValidation:
		return "validation"
	default:
		return "unexpected"
	}
}

// GatewayError is the typed result of a failed gateway call. Message holds
// the gateway's response body verbatim for validation rejections; for the
// other kinds it is diagnostic only and never shown to the user.
type GatewayError struct {
	Kind    ErrorKind
	Status  int
	Message string
	Err     error
}

func (e *GatewayError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("gateway %s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("gateway %s (status %d): %s", e.Kind, e.Status, e.Message)
}

func (e *GatewayError) Unwrap() error { return e.Err }

// AsGatewayError extracts a *GatewayError from err, if there is one.
func AsGatewayError(err error) (*GatewayError, bool) {
	var ge *GatewayError
	if errors.As(err, &ge) {
		return ge, true
	}
	return nil, false
}

var (
	// ErrSubmissionInFlight is returned when a second submission is attempted
	// while one is still outstanding for the same session.
	ErrSubmissionInFlight = errors.New("submission already in flight")
	// ErrConfirmationRequired gates destructive deletes behind an explicit
	// confirmation token.
	ErrConfirmationRequired = errors.New("delete confirmation required")
	// ErrConfirmationInvalid means the presented token is unknown, expired or
	// bound to another reservation.
	ErrConfirmationInvalid = errors.New("delete confirmation invalid or expired")
	// ErrNotAuthenticated means the session cookie did not pass the gateway's
	// check-auth probe.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrReservationNotLoaded is returned by list-view operations before a
	// successful load.
	ErrReservationNotLoaded = errors.New("reservation list not loaded")
)
