package source

import (
	"context"
	"slices"
)

// Static serves a fixed in-memory list.
type Static[T any] struct {
	records []T
}

func NewStatic[T any](records []T) *Static[T] {
	return &Static[T]{records: records}
}

// Load - implements Source. Returns a copy of the list.
func (s *Static[T]) Load(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, fetchError("static list", err)
	}
	if s == nil {
		return []T{}, nil
	}

	return slices.Clone(s.records), nil
}

var _ Source[struct{}] = (*Static[struct{}])(nil)
