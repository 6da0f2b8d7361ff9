// Package session persists the authentication state of the client: the
// opaque bearer token and the cached user profile. State lives in a local
// SQLite file so it survives process restarts.
package session

import "context"

// Store is a small key/value persistence contract. All operations are
// idempotent; Get returns nil for a missing key.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
