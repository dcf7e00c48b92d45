// Package kv provides the key-value document contract the shop store
// persists through, with three interchangeable backends: SQLite (production),
// a directory of JSON files, and an in-memory map for tests.
//
// Each key holds one JSON-serialized document. Values are opaque strings;
// encoding and decoding are the caller's responsibility.
package kv

import "context"

// Store is a flat string-keyed document store.
//
// Get reports absence via the boolean rather than an error so callers can
// distinguish "no document" from backend failure. Set overwrites any
// existing value. Delete of an absent key is a no-op.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}
