package cidsdk

import (
	"errors"
	"fmt"
)

var (
	ErrNotConfigured   = errors.New("auto-detection of CID API failed and no endpoint provided to the SDK")
	ErrInvalidEndpoint = errors.New("invalid CID API endpoint")
)

// Error is the error document returned by the daemon for failed requests.
type Error struct {
	Status  int    `json:"status"`
	Title   string `json:"title"`
	Details string `json:"details"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d: %s [%s]", e.Status, e.Title, e.Details)
}

// TransportError is returned when a request could not be completed or the
// daemon answered with a non-2xx status but without a JSON error document.
type TransportError struct {
	Method string
	URL    string
	// StatusCode is 0 if no response was received.
	StatusCode int
	Status     string
	Body       string
	Err        error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
	}
	if e.Body != "" {
		return fmt.Sprintf("%s %s: unexpected response %s: %s", e.Method, e.URL, e.Status, e.Body)
	}
	return fmt.Sprintf("%s %s: unexpected response %s", e.Method, e.URL, e.Status)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
