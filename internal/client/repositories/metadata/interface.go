// Package metadata provides the key-value byte store the forum persists into.
//
// Values are opaque byte slices addressed by fixed key names. Get of an
// absent key returns (nil, nil) so callers can treat "never written" as an
// empty collection without special error handling.
package metadata

import (
	"context"
)

type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// SetMany writes all pairs or none of them.
	SetMany(ctx context.Context, values map[string][]byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
