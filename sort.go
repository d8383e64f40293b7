package pagetable

import (
	"cmp"
	"fmt"
	"slices"
	"time"
)

// Getters maps column names to value getters of a record. Specify the columns
// the list can be sorted by.
// Example:
//
//	pagetable.Getters[source.User]{
//		"id":   func(u source.User) any { return u.ID },
//		"name": func(u source.User) any { return u.Name },
//	}
type Getters[T any] map[string]func(T) any

// SortRecords returns a sorted copy of records. The sort is stable, so records
// equal on every ordering column keep their source order. Empty orderings
// return an unsorted copy.
func SortRecords[T any](records []T, orderings Orderings, getters Getters[T]) ([]T, error) {
	if err := orderings.Validate(); err != nil {
		return nil, fmt.Errorf("cannot sort records: %w", err)
	}

	for _, orderBy := range orderings {
		if _, ok := getters[orderBy.Column]; !ok {
			return nil, fmt.Errorf("cannot find getter for column '%s' met in ordering", orderBy.Column)
		}
	}

	ret := slices.Clone(records)
	if len(orderings) == 0 {
		return ret, nil
	}

	var cmpErr error
	slices.SortStableFunc(ret, func(a, b T) int {
		for _, orderBy := range orderings {
			getter := getters[orderBy.Column]

			c, err := compareValues(getter(a), getter(b))
			if err != nil {
				cmpErr = fmt.Errorf("column '%s': %w", orderBy.Column, err)
				return 0
			}
			if c == 0 {
				continue
			}

			if orderBy.Direction == DirectionDESC {
				return -c
			}
			return c
		}

		return 0
	})
	if cmpErr != nil {
		return nil, fmt.Errorf("cannot sort records: %w", cmpErr)
	}

	return ret, nil
}

// compareValues compares two getter results of the same column. Values of
// different types are not comparable.
func compareValues(a, b any) (int, error) {
	switch av := a.(type) {
	case int:
		if bv, ok := b.(int); ok {
			return cmp.Compare(av, bv), nil
		}
	case int64:
		if bv, ok := b.(int64); ok {
			return cmp.Compare(av, bv), nil
		}
	case uint:
		if bv, ok := b.(uint); ok {
			return cmp.Compare(av, bv), nil
		}
	case uint64:
		if bv, ok := b.(uint64); ok {
			return cmp.Compare(av, bv), nil
		}
	case float64:
		if bv, ok := b.(float64); ok {
			return cmp.Compare(av, bv), nil
		}
	case string:
		if bv, ok := b.(string); ok {
			return cmp.Compare(av, bv), nil
		}
	case time.Time:
		if bv, ok := b.(time.Time); ok {
			return av.Compare(bv), nil
		}
	default:
		return 0, fmt.Errorf("unsupported value type %T", a)
	}

	return 0, fmt.Errorf("mismatched value types %T and %T", a, b)
}
