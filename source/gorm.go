package source

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"gorm.io/gorm"

	"github.com/Alp4ka/pagetable"
)

// Gorm loads records of model T from a SQL table.
type Gorm[T any] struct {
	db    *gorm.DB
	table string
	sort  pagetable.Orderings
}

// NewGorm creates a SQL source. orderBy becomes the ORDER BY clause; without
// it the database order is used.
func NewGorm[T any](db *gorm.DB, orderBy ...pagetable.OrderBy) *Gorm[T] {
	return &Gorm[T]{
		db:   db,
		sort: orderBy,
	}
}

// WithTable overrides the table name derived from T.
func (s *Gorm[T]) WithTable(table string) *Gorm[T] {
	s.table = table
	return s
}

func (s *Gorm[T]) name() string {
	return lo.Ternary(s.table != "", "table "+s.table, fmt.Sprintf("table of %T", *new(T)))
}

func (s *Gorm[T]) query(ctx context.Context) *gorm.DB {
	db := s.db.WithContext(ctx).Model(new(T))
	if s.table != "" {
		db = db.Table(s.table)
	}

	return db
}

// Load - implements Source. Loads the whole table.
func (s *Gorm[T]) Load(ctx context.Context) ([]T, error) {
	if err := s.sort.Validate(); err != nil {
		return nil, fetchError(s.name(), err)
	}

	var records []T
	if err := s.sort.Apply(s.query(ctx)).Find(&records).Error; err != nil {
		return nil, fetchError(s.name(), err)
	}
	if records == nil {
		records = []T{}
	}

	return records, nil
}

// Count returns the number of rows in the table.
func (s *Gorm[T]) Count(ctx context.Context) (int, error) {
	var total int64
	if err := s.query(ctx).Count(&total).Error; err != nil {
		return 0, fetchError(s.name(), err)
	}

	return int(total), nil
}

// LoadPage fetches only the page requested by state. The state is clamped
// against the current row count before the page query runs.
func (s *Gorm[T]) LoadPage(ctx context.Context, state pagetable.PageState) (pagetable.View[T], error) {
	total, err := s.Count(ctx)
	if err != nil {
		return pagetable.View[T]{}, err
	}

	q := pagetable.NewPageQuery(state).WithSubstitutedSort(s.sort...)
	state = q.GetState().WithTotalItems(total)
	if total == 0 {
		return pagetable.Assemble([]T{}, state), nil
	}

	paged, err := q.WithState(state).Paginate(s.query(ctx))
	if err != nil {
		return pagetable.View[T]{}, fetchError(s.name(), err)
	}

	var records []T
	if err = paged.Find(&records).Error; err != nil {
		return pagetable.View[T]{}, fetchError(s.name(), err)
	}

	return pagetable.Assemble(records, state), nil
}

var _ Source[struct{}] = (*Gorm[struct{}])(nil)
