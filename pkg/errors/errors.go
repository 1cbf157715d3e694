// Package errors carries HTTP-shaped errors produced by delivery layers.
package errors

import "net/http"

// HTTPError pairs a status code with a user-facing message.
type HTTPError struct {
	StatusCode int
	Message    string
}

// NewHTTPError creates an HTTPError.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

func (e *HTTPError) Error() string {
	return e.Message
}

// ErrInternalServerError is the catch-all for unmapped failures.
var ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "internal server error")
