package easynews

import (
	"errors"
	"fmt"
)

var (
	// ErrUpstream matches every failure talking to Easynews.
	ErrUpstream = errors.New("easynews request failed")
	// ErrUnauthorized is returned when Easynews rejects the account.
	ErrUnauthorized = errors.New("easynews rejected the credentials")
	// ErrMissingField means a result lacked something every result must carry.
	ErrMissingField = errors.New("missing field")
)

// Error wraps a failed call with the operation and the http status, if there was a response.
type Error struct {
	Op         string
	StatusCode int
	Err        error
	Message    string
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("easynews %s", e.Op)
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" (status %d)", e.StatusCode)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return fmt.Sprintf("%s: %v", msg, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is makes every Error an upstream failure.
func (e *Error) Is(target error) bool {
	return target == ErrUpstream
}

func wrapError(op string, status int, err error, message string) error {
	return &Error{Op: op, StatusCode: status, Err: err, Message: message}
}

// IsUnauthorized returns true if Easynews refused the credentials.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

// IsUpstream returns true for any failure of the Easynews search, including rejected credentials.
func IsUpstream(err error) bool {
	return errors.Is(err, ErrUpstream)
}
