// Package common contains shared constants, sentinel errors and small helpers
// used across logdash packages.
package common

const (
	// TokenMetadataKey is the single local key the credential token lives under.
	TokenMetadataKey = "token"
	// EmailMetadataKey remembers who the stored token belongs to.
	EmailMetadataKey = "email"

	AuthorizationHeaderName = "Authorization"
	RequestIDHeaderName     = "X-Request-ID"
	BearerPrefix            = "Bearer "
)
