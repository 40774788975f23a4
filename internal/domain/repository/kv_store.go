// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"github.com/pkg/errors"
)

// Domain-specific errors for key-value persistence.
var (
	// ErrKeyNotFound is returned when no value is stored under a key.
	ErrKeyNotFound = errors.New("key not found")
	// ErrQuotaExceeded is returned when a value is larger than the store accepts.
	ErrQuotaExceeded = errors.New("storage quota exceeded")
)

// KVStore is the durable key-value backend that holds serialized state slices.
type KVStore interface {
	// Get returns the raw value stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// SetMany stores every entry atomically where the backend allows it.
	SetMany(ctx context.Context, entries map[string][]byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
