// Package localstorage is the client's persistent, string-keyed key/value
// store. Values are opaque strings; callers own their encoding.
package localstorage

import "context"

// Repository is the storage contract shared by the SQLite and in-memory
// implementations.
//
// Get reports ok=false (and a nil error) when the key is absent. Delete of a
// missing key is not an error. Every Set replaces the whole value.
type Repository interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string]string, error)
	Clear(ctx context.Context) error
}
