package client

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/dmitrijs2005/logdash/internal/common"
	"github.com/stretchr/testify/assert"
)

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"api error with message", &APIError{Status: 401, Message: "invalid credentials"}, "invalid credentials"},
		{"api error wrapped", fmt.Errorf("login: %w", &APIError{Status: 409, Message: "email taken"}), "email taken"},
		{"api error without message", &APIError{Status: 500}, MsgServerError},
		{"unavailable", fmt.Errorf("%w: dial tcp", ErrUnavailable), MsgUnavailable},
		{"deadline", context.DeadlineExceeded, MsgUnavailable},
		{"unknown", ErrUnknown, MsgUnknown},
		{"arbitrary", errors.New("boom"), MsgUnknown},
		{"password mismatch", common.ErrPasswordMismatch, "passwords do not match"},
		{"empty field", fmt.Errorf("%w: email", common.ErrEmptyField), "required field is empty: email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UserMessage(tt.err))
		})
	}
}

func TestAPIError_Error(t *testing.T) {
	assert.Equal(t, "server error (status 502)", (&APIError{Status: 502}).Error())
	assert.Equal(t, "nope", (&APIError{Status: 400, Message: "nope"}).Error())
}
