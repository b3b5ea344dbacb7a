package client

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable means the server could not be reached at all.
	ErrUnavailable = errors.New("server unavailable")
	// ErrUnknown covers everything that is neither a server error payload
	// nor a connectivity problem, e.g. an undecodable response.
	ErrUnknown = errors.New("unknown error")
)

// APIError is an error payload returned by the server.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server error (status %d)", e.Status)
	}
	return e.Message
}
