package repositories

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrCityNotFound matches, via errors.Is, a 404 returned by a city lookup.
var ErrCityNotFound = errors.New("city not found")

// NetworkError means no response reached the client.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: network error: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// HTTPError is a non-2xx response. Message carries the provider's
// explanation when the body had one.
type HTTPError struct {
	Op         string
	StatusCode int
	Status     string
	Message    string
}

func (e *HTTPError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: HTTP error (status %d): %s", e.Op, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: HTTP error (status %d): %s", e.Op, e.StatusCode, e.Status)
}

func (e *HTTPError) Is(target error) bool {
	return target == ErrCityNotFound && e.Op == opCurrentByCity && e.StatusCode == http.StatusNotFound
}

// DecodeError means the body was not the expected JSON.
type DecodeError struct {
	Op  string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: failed to parse JSON response: %v", e.Op, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err carries a 404 from the provider.
func IsNotFound(err error) bool {
	var httpErr *HTTPError
	return errors.As(err, &httpErr) && httpErr.StatusCode == http.StatusNotFound
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode
	}
	return 0
}
