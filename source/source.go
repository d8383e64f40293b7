// Package source provides record sources feeding a paginated view: a static
// list, an HTTP endpoint returning a JSON array, and a SQL table through GORM.
package source

import (
	"context"
	"errors"
	"fmt"
)

// Source produces the ordered record list of a paginated view.
type Source[T any] interface {
	Load(ctx context.Context) ([]T, error)
}

// Func adapts a plain function to Source.
type Func[T any] func(ctx context.Context) ([]T, error)

// Load - implements Source.
func (f Func[T]) Load(ctx context.Context) ([]T, error) {
	return f(ctx)
}

// ErrUnexpectedStatus is wrapped by FetchError when an HTTP source gets a
// non-2xx response.
var ErrUnexpectedStatus = errors.New("unexpected response status")

// FetchError is returned by sources when the record list cannot be produced.
type FetchError struct {
	// Source human-readable name of the failed source.
	Source string
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch from %s failed: %v", e.Source, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

func fetchError(source string, err error) error {
	return &FetchError{Source: source, Err: err}
}

var (
	_ Source[struct{}] = Func[struct{}](nil)
	_ error            = (*FetchError)(nil)
)
