package domain

import (
	"errors"
	"fmt"
)

var (
	ErrListingNotFound = errors.New("listing not found")
	ErrThreadNotLoaded = errors.New("comment thread not loaded")
	ErrRequestInFlight = errors.New("a request is already in flight")
	ErrNotLoggedIn     = errors.New("not logged in")
)

// ValidationKind identifies which local pre-submit check rejected the input.
type ValidationKind string

const (
	MissingField        ValidationKind = "missing_field"
	TooShort            ValidationKind = "too_short"
	DescriptionTooShort ValidationKind = "description_too_short"
	InvalidPrice        ValidationKind = "invalid_price"
)

// ValidationError is detected locally, before any network call. It is
// surfaced to the user and never treated as a system fault.
type ValidationError struct {
	Kind    ValidationKind
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(kind ValidationKind, message string) *ValidationError {
	return &ValidationError{Kind: kind, Message: message}
}

// IsValidation reports whether err is a local validation failure and, if so,
// returns it.
func IsValidation(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}

// RemoteError covers every gateway failure: transport errors, timeouts and
// unexpected status codes. Local state is never changed when one is returned.
type RemoteError struct {
	Status  int
	Timeout bool
	Err     error
}

func (e *RemoteError) Error() string {
	switch {
	case e.Timeout:
		return "request timed out"
	case e.Status != 0:
		return fmt.Sprintf("unexpected status %d", e.Status)
	case e.Err != nil:
		return e.Err.Error()
	default:
		return "remote request failed"
	}
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// IsRemote reports whether err is a gateway failure and, if so, returns it.
func IsRemote(err error) (*RemoteError, bool) {
	var rerr *RemoteError
	if errors.As(err, &rerr) {
		return rerr, true
	}
	return nil, false
}
