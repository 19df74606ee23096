package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

// Error carries the HTTP status and public message a handler should use for
// a failure that originated below the transport layer.
type Error struct {
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Message != "" {
		return e.Message
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, message string, err error) *Error {
	return &Error{Status: status, Message: message, Err: err}
}

// StatusOf returns the status carried by the first *Error in err's chain, or
// def when there is none.
func StatusOf(err error, def int) int {
	var ae *Error
	if errors.As(err, &ae) && ae.Status != 0 {
		return ae.Status
	}
	return def
}

func BadRequest(message string, err error) *Error {
	return New(http.StatusBadRequest, message, err)
}

func NotFound(message string) *Error {
	return New(http.StatusNotFound, message, nil)
}
