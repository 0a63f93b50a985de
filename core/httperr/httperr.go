package httperr

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrSerialization indicates the content-encoding filter could not encode a
// response body for the negotiated content type. Treated as a request-time
// 500 by the error-mapping filter.
var ErrSerialization = errors.New("failed to serialize response body")

// StatusCoder is implemented by errors that carry an HTTP status code.
// The error-mapping filter honors it for errors from outside this package.
type StatusCoder interface {
	StatusCode() int
}

// Error is a request-time error with an HTTP status code. Whether the
// message is exposed to the client depends on the status: client errors
// (4xx) pass the message through, server errors are reported generically.
type Error struct {
	status  int
	message string
}

// New creates an Error with the given status code and message.
func New(status int, message string) *Error {
	return &Error{status: status, message: message}
}

// NotFound creates a 404 error. The message is passed through to the client.
func NotFound(message string) *Error {
	return New(http.StatusNotFound, message)
}

// NotFoundf creates a 404 error with a formatted message.
func NotFoundf(format string, args ...any) *Error {
	return NotFound(fmt.Sprintf(format, args...))
}

// Forbidden creates a 403 error. The message is passed through to the client.
func Forbidden(message string) *Error {
	return New(http.StatusForbidden, message)
}

// BadRequest creates a 400 error. The message is passed through to the client.
func BadRequest(message string) *Error {
	return New(http.StatusBadRequest, message)
}

// BadRequestf creates a 400 error with a formatted message.
func BadRequestf(format string, args ...any) *Error {
	return BadRequest(fmt.Sprintf(format, args...))
}

// Internal creates a 500 error. The message is logged but never exposed to
// the client.
func Internal(message string) *Error {
	return New(http.StatusInternalServerError, message)
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.message
}

// StatusCode returns the HTTP status code.
func (e *Error) StatusCode() int {
	return e.status
}
