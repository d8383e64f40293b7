package source

import (
	"context"
	"fmt"

	"github.com/Alp4ka/pagetable"
)

// Sorted orders the output of another source in memory.
type Sorted[T any] struct {
	inner     Source[T]
	orderings pagetable.Orderings
	getters   pagetable.Getters[T]
}

func NewSorted[T any](inner Source[T], getters pagetable.Getters[T], orderBy ...pagetable.OrderBy) *Sorted[T] {
	return &Sorted[T]{
		inner:     inner,
		orderings: orderBy,
		getters:   getters,
	}
}

// Load - implements Source.
func (s *Sorted[T]) Load(ctx context.Context) ([]T, error) {
	records, err := s.inner.Load(ctx)
	if err != nil {
		return nil, err
	}

	sorted, err := pagetable.SortRecords(records, s.orderings, s.getters)
	if err != nil {
		return nil, fmt.Errorf("sorted source: %w", err)
	}

	return sorted, nil
}

var _ Source[struct{}] = (*Sorted[struct{}])(nil)
