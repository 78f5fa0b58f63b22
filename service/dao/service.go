package dao

import (
	"context"
)

// Service is a keyed record storage
type Service[K comparable, T any] interface {
	Save(ctx context.Context, t *T) error

	Load(ctx context.Context, id K) (*T, error)

	Delete(ctx context.Context, id K) error

	// List returns records in insertion order, filtered by parameters
	List(ctx context.Context, parameters ...*Parameter) ([]*T, error)
}
