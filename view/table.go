// Package view owns the state of a paginated table: the record list, the
// PageState and the single asynchronous load that fills the list.
//
// A Table renders eagerly: before the load resolves it serves an empty page.
// The load is bound to the table's lifetime; Close cancels it and any result
// arriving afterwards is dropped.
package view

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/Alp4ka/pagetable"
	"github.com/Alp4ka/pagetable/source"
)

// ErrClosed is returned by Err after Close when no load error was recorded.
var ErrClosed = errors.New("table is closed")

// Listener receives the new view after every state change.
type Listener[T any] func(pagetable.View[T])

type Option func(*options)

type options struct {
	itemsPerPage int
	logger       zerolog.Logger
}

// WithItemsPerPage sets the page size. Normalized with pagetable.NormalizeItemsPerPage.
func WithItemsPerPage(itemsPerPage int) Option {
	return func(o *options) {
		o.itemsPerPage = itemsPerPage
	}
}

// WithLogger sets the logger used for load events. It is also attached to the
// context passed to sources.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Table is safe for concurrent use.
type Table[T any] struct {
	mu        sync.Mutex
	records   []T
	state     pagetable.PageState
	err       error
	listeners map[int]Listener[T]
	nextID    int

	generation uint64
	cancel     context.CancelFunc
	done       chan struct{}
	closed     bool

	logger zerolog.Logger
}

func New[T any](opts ...Option) *Table[T] {
	o := options{
		itemsPerPage: pagetable.DefaultItemsPerPage,
		logger:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	done := make(chan struct{})
	close(done)

	return &Table[T]{
		records:   []T{},
		state:     pagetable.NewPageState(o.itemsPerPage, 0),
		listeners: make(map[int]Listener[T]),
		done:      done,
		logger:    o.logger,
	}
}

// Load starts fetching the record list from src in the background. A load
// that is still running is canceled and its result dropped. On success the
// list is replaced and CurrentPage clamped; on failure the error is logged,
// kept for Err, and the list is left as it was.
func (t *Table[T]) Load(ctx context.Context, src source.Source[T]) {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return
	}

	if t.cancel != nil {
		t.cancel()
	}

	ctx, cancel := context.WithCancel(t.logger.WithContext(ctx))
	t.generation++
	generation := t.generation
	done := make(chan struct{})
	t.cancel = cancel
	t.done = done
	t.mu.Unlock()

	go func() {
		defer close(done)
		defer cancel()

		records, err := src.Load(ctx)
		t.finishLoad(ctx, generation, records, err)
	}()
}

func (t *Table[T]) finishLoad(ctx context.Context, generation uint64, records []T, err error) {
	t.mu.Lock()

	if t.closed || generation != t.generation || ctx.Err() != nil {
		t.mu.Unlock()
		t.logger.Debug().
			Uint64("generation", generation).
			Msg("discarding stale load result")
		return
	}

	if err != nil {
		t.err = err
		t.mu.Unlock()
		t.logger.Error().Err(err).Msg("failed to load records")
		return
	}

	v := t.replaceLocked(records)
	listeners := t.listenersLocked()
	t.mu.Unlock()

	t.logger.Info().
		Int("records", v.State.TotalItems).
		Int("pages", v.TotalPages).
		Msg("records loaded")

	notify(listeners, v)
}

// Replace swaps the record list synchronously, clamps CurrentPage and clears
// the error of an earlier failed load.
func (t *Table[T]) Replace(records []T) pagetable.View[T] {
	t.mu.Lock()
	v := t.replaceLocked(records)
	listeners := t.listenersLocked()
	t.mu.Unlock()

	notify(listeners, v)

	return v
}

func (t *Table[T]) replaceLocked(records []T) pagetable.View[T] {
	if records == nil {
		records = []T{}
	}

	t.err = nil
	t.records = records
	t.state = t.state.WithTotalItems(len(records))

	return pagetable.Build(t.records, t.state)
}

// Navigate applies intent and returns the resulting view. Listeners are
// notified only when the page actually changed.
func (t *Table[T]) Navigate(intent pagetable.Intent) pagetable.View[T] {
	t.mu.Lock()
	prev := t.state.CurrentPage
	t.state = pagetable.Navigate(t.state, intent)
	v := pagetable.Build(t.records, t.state)

	var listeners []Listener[T]
	if t.state.CurrentPage != prev {
		listeners = t.listenersLocked()
	}
	t.mu.Unlock()

	notify(listeners, v)

	return v
}

// Snapshot returns the view of the current state.
func (t *Table[T]) Snapshot() pagetable.View[T] {
	t.mu.Lock()
	defer t.mu.Unlock()

	return pagetable.Build(t.records, t.state)
}

// ViewAt returns the view of page without moving CurrentPage. page is
// clamped like a JumpTo.
func (t *Table[T]) ViewAt(page int) pagetable.View[T] {
	t.mu.Lock()
	defer t.mu.Unlock()

	return pagetable.Build(t.records, pagetable.Navigate(t.state, pagetable.JumpTo(page)))
}

// State returns the current PageState.
func (t *Table[T]) State() pagetable.PageState {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.state
}

// Subscribe registers fn for state changes. The returned function removes it.
func (t *Table[T]) Subscribe(fn Listener[T]) (unsubscribe func()) {
	t.mu.Lock()
	defer t.mu.Unlock()

	id := t.nextID
	t.nextID++
	t.listeners[id] = fn

	return func() {
		t.mu.Lock()
		defer t.mu.Unlock()

		delete(t.listeners, id)
	}
}

// Done is closed when the most recent load has finished, failed or was
// canceled. Before the first Load it is already closed.
func (t *Table[T]) Done() <-chan struct{} {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.done
}

// Err returns the error of the last failed load, ErrClosed after Close, or nil.
func (t *Table[T]) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.err == nil && t.closed {
		return ErrClosed
	}

	return t.err
}

// Close cancels a running load and drops all listeners. Safe to call twice.
func (t *Table[T]) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return
	}

	t.closed = true
	if t.cancel != nil {
		t.cancel()
	}
	clear(t.listeners)
}

func (t *Table[T]) listenersLocked() []Listener[T] {
	return lo.Values(t.listeners)
}

func notify[T any](listeners []Listener[T], v pagetable.View[T]) {
	for _, fn := range listeners {
		fn(v)
	}
}
