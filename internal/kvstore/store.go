// Package kvstore holds the opaque key-value substrate every collection is
// persisted in. Values are whole documents; there are no transactions.
package kvstore

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("key not found")

// Store is a string-keyed byte store. Get returns ErrNotFound for an absent
// key; Remove of an absent key is not an error.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}
