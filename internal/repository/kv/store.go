// Package kv provides the string key-value stores that persist guide state.
package kv

import (
	"context"

	apperrors "github.com/Taichi-iskw/tv-guide/internal/errors"
)

// Store defines a string key-value store
type Store interface {
	// Get returns the value stored under key, or a NOT_FOUND AppError
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, replacing any previous value
	Set(ctx context.Context, key, value string) error

	// Close releases the store's resources
	Close() error
}

// IsNotFound reports whether err means the key holds no value
func IsNotFound(err error) bool {
	return apperrors.HasCode(err, apperrors.CodeNotFound)
}

func notFound(key string) error {
	return apperrors.New(apperrors.CodeNotFound, "key not found: "+key)
}
