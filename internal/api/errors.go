package api

import (
	"fmt"
	"net/http"

	"github.com/sentinel-lite/sentinel/internal/errors"
)

// RequestError is returned when the backend answers with a non-2xx status.
// The payload is not interpreted beyond an optional detail string.
type RequestError struct {
	StatusCode int
	Method     string
	Path       string
	Detail     string
}

func (e *RequestError) Error() string {
	msg := fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.StatusCode, http.StatusText(e.StatusCode))
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

// StatusCode returns the HTTP status carried by err, or 0 when err is not a
// RequestError.
func StatusCode(err error) int {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr.StatusCode
	}
	return 0
}

// IsStatus reports whether err is a RequestError with the given status.
func IsStatus(err error, status int) bool {
	return StatusCode(err) == status
}

// IsNotFound reports whether the backend said the record doesn't exist.
func IsNotFound(err error) bool {
	return IsStatus(err, http.StatusNotFound)
}

// MalformedError is returned when a 2xx response body isn't the JSON the
// caller asked for, including an empty body on a read.
type MalformedError struct {
	Path string
	Err  error
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("%s: malformed response: %v", e.Path, e.Err)
}

func (e *MalformedError) Unwrap() error {
	return e.Err
}

// IsMalformed reports whether err carries a MalformedError.
func IsMalformed(err error) bool {
	var m *MalformedError
	return errors.As(err, &m)
}
