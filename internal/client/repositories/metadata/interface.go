// Package metadata is a small key/value repository over the local SQLite
// database. The session guard keeps the credential token here.
package metadata

import (
	"context"
)

// Repository stores opaque byte values by string key.
//
// Get returns (nil, nil) when the key is absent.
// Delete accepts several keys so related values can be dropped together.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, keys ...string) error
}
