package movies

import (
	"errors"
	"fmt"
)

// ErrSomethingWentWrong is returned when the collection answers with a
// non-success status. Its text is what the UI shows.
var ErrSomethingWentWrong = errors.New("Something went wrong!")

// APIError carries the details of a non-success response. Its message stays
// the generic one so callers can display it directly.
type APIError struct {
	Method     string
	StatusCode int
	Body       string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return ErrSomethingWentWrong.Error()
}

// Unwrap lets errors.Is match ErrSomethingWentWrong.
func (e *APIError) Unwrap() error {
	return ErrSomethingWentWrong
}

// Detail describes the failed call for logs.
func (e *APIError) Detail() string {
	return fmt.Sprintf("%s returned status %d: %s", e.Method, e.StatusCode, e.Body)
}
