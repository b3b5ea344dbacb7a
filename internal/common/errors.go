package common

import "errors"

var (
	// Token lifecycle errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
	ErrNoToken      = errors.New("no token stored")

	// Form validation errors, raised before anything is sent.
	ErrEmptyField       = errors.New("required field is empty")
	ErrPasswordMismatch = errors.New("passwords do not match")
)
