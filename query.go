package pagetable

import (
	"fmt"
	"slices"

	"gorm.io/gorm"
)

// PageQuery fetches a single page from SQL storage with LIMIT/OFFSET. Use it
// when the record list is too large to be loaded and sliced in memory.
type PageQuery struct {
	state PageState
	sort  Orderings
}

func NewPageQuery(state PageState) *PageQuery {
	return new(PageQuery).WithState(state)
}

// WithState sets the requested page. ItemsPerPage is normalized with
// NormalizeItemsPerPage and CurrentPage is kept within [1, maxPage] so the
// OFFSET never overflows.
func (q *PageQuery) WithState(state PageState) *PageQuery {
	if q == nil {
		q = new(PageQuery)
	}

	state.ItemsPerPage = NormalizeItemsPerPage(state.ItemsPerPage)
	state.CurrentPage = min(max(state.CurrentPage, 1), maxPage(state.ItemsPerPage))
	q.state = state

	return q
}

// WithSubstitutedSort resets previous orderings and applies the provided ones.
func (q *PageQuery) WithSubstitutedSort(orderBy ...OrderBy) *PageQuery {
	if q == nil {
		q = new(PageQuery)
	}

	q.sort = nil

	return q.WithSort(orderBy...)
}

// WithSort appends sort orderings without overwriting existing ones.
// A column that is already present is moved to the end with the new direction.
func (q *PageQuery) WithSort(orderBy ...OrderBy) *PageQuery {
	if q == nil {
		q = new(PageQuery)
	}

	for _, o := range orderBy {
		idx := slices.IndexFunc(q.sort, func(processed OrderBy) bool {
			return processed.Column == o.Column
		})

		if idx != -1 {
			q.sort = slices.Delete(q.sort, idx, idx+1)
		}

		q.sort = append(q.sort, o)
	}

	return q
}

// GetState returns the requested page state as stored in PageQuery.
func (q *PageQuery) GetState() PageState {
	if q == nil {
		return NewPageState(DefaultItemsPerPage, 0)
	}

	return q.state
}

// GetSort returns orderings that will be applied to the dataset.
func (q *PageQuery) GetSort() Orderings {
	if q == nil {
		return nil
	}

	return q.sort
}

// Paginate applies ordering, limit and offset to the dataset. Returns an error
// if the orderings are invalid.
func (q *PageQuery) Paginate(db *gorm.DB) (*gorm.DB, error) {
	if q == nil {
		q = new(PageQuery).WithState(PageState{})
	}

	if err := q.sort.Validate(); err != nil {
		return nil, fmt.Errorf("cannot paginate: %w", err)
	}

	return q.sort.Apply(db).
		Limit(q.state.ItemsPerPage).
		Offset(q.state.Offset()), nil
}
