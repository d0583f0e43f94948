package apiframe

import (
	"fmt"
)

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	ErrSuccess             Err = iota
	ErrNotFound                // unknown tool or resource
	ErrBadParameter            // missing API key, invalid option or tool input
	ErrNotImplemented          // operation not supported
	ErrConflict                // duplicate tool name
	ErrInternalServerError     // unexpected failure
	ErrUnauthorized            // rejected credentials or webhook secret
	ErrTransport               // the request could not be completed
	ErrDecode                  // the response body is not JSON
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Err is an error code. Wrap it with With or Withf and test for it with
// errors.Is.
type Err int

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (e Err) Error() string {
	switch e {
	case ErrSuccess:
		return "success"
	case ErrNotFound:
		return "not found"
	case ErrBadParameter:
		return "bad parameter"
	case ErrNotImplemented:
		return "not implemented"
	case ErrConflict:
		return "conflict"
	case ErrInternalServerError:
		return "internal server error"
	case ErrUnauthorized:
		return "unauthorized"
	case ErrTransport:
		return "request failed"
	case ErrDecode:
		return "response could not be decoded"
	}
	return fmt.Sprintf("error code %d", int(e))
}

func (e Err) With(args ...any) error {
	return fmt.Errorf("%w: %s", e, fmt.Sprint(args...))
}

func (e Err) Withf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", e, fmt.Sprintf(format, args...))
}
