package repository

import (
	"context"
	"time"
)

// EntitySource supplies the full collection for one entity kind. Fixtures
// implement it today; a real backend client would tomorrow.
type EntitySource[T any] interface {
	Load(ctx context.Context) ([]T, error)
}

// EntitySourceFunc adapts a plain function to EntitySource.
type EntitySourceFunc[T any] func(ctx context.Context) ([]T, error)

func (f EntitySourceFunc[T]) Load(ctx context.Context) ([]T, error) {
	return f(ctx)
}

// LockManager serialises writes to one entity key.
type LockManager interface {
	// AcquireLock returns the token that owns the lock until ttl passes.
	AcquireLock(ctx context.Context, key string, ttl time.Duration) (token string, ok bool, err error)
	// ReleaseLock frees key only while token still owns it.
	ReleaseLock(ctx context.Context, key, token string) error
	IsLocked(ctx context.Context, key string) (bool, error)
}
