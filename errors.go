package xkindle

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	EDELIVERY    = "delivery"    // delivery API rejected the send
	EEXTRACT     = "extract"     // extraction heuristic found no prose
	EINTERNAL    = "internal"    // unexpected fault
	EINVALID     = "invalid"     // validation failed
	ENOTFOUND    = "not_found"   // article container never appeared
	EUNAVAILABLE = "unavailable" // browser launch or navigation failed
)

// Error represents an application error with a machine-readable code and a
// human-readable message. Messages are safe to return to API callers;
// anything sensitive belongs in logs, not here.
type Error struct {
	// Code is one of the application error codes above.
	Code string

	// Message is the human-readable description of the error.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("xkindle error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return a generic message.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "An unexpected error occurred."
}

// Errorf returns an Error with the given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
