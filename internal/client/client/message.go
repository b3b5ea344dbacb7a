package client

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/logdash/internal/common"
)

// User-facing texts for each error category.
const (
	MsgServerError = "server error"
	MsgUnavailable = "could not connect to the server"
	MsgUnknown     = "unknown error"
)

// UserMessage turns any error into the single line shown to the user.
// Server payloads keep their own message; connectivity and everything
// else collapse to a fixed text.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var apiErr *APIError
	switch {
	case errors.As(err, &apiErr):
		if apiErr.Message != "" {
			return apiErr.Message
		}
		return MsgServerError
	case errors.Is(err, ErrUnavailable), errors.Is(err, context.DeadlineExceeded):
		return MsgUnavailable
	case errors.Is(err, common.ErrPasswordMismatch), errors.Is(err, common.ErrEmptyField):
		return err.Error()
	default:
		return MsgUnknown
	}
}
