package pagetable

// View is everything a presentation layer needs to render one page.
type View[T any] struct {
	// Items records of the current page.
	Items []T `json:"items"`
	// Padding number of filler rows after Items.
	Padding int `json:"padding"`
	// Window page-selector tokens.
	Window []PageToken `json:"window"`
	// State the (clamped) state the view was computed for.
	State PageState `json:"state"`
	// TotalPages derived from State.
	TotalPages int `json:"totalPages"`
	// HasPrevious enablement of the Previous control.
	HasPrevious bool `json:"hasPrevious"`
	// HasNext enablement of the Next control.
	HasNext bool `json:"hasNext"`
}

// Build computes the view of state over the full record list.
// state.TotalItems is overwritten with len(records).
func Build[T any](records []T, state PageState) View[T] {
	state = state.WithTotalItems(len(records))

	return Assemble(Slice(records, state.CurrentPage, state.ItemsPerPage), state)
}

// Assemble computes the view when the current page was already fetched
// elsewhere (for example with Paginate). pageItems longer than ItemsPerPage
// are truncated.
func Assemble[T any](pageItems []T, state PageState) View[T] {
	state = state.Clamp()
	if len(pageItems) > state.ItemsPerPage {
		pageItems = pageItems[:max(state.ItemsPerPage, 0)]
	}
	if pageItems == nil {
		pageItems = []T{}
	}

	return View[T]{
		Items:       pageItems,
		Padding:     PadCount(len(pageItems), state.ItemsPerPage),
		Window:      PageWindow(state.CurrentPage, state.TotalPages()),
		State:       state,
		TotalPages:  state.TotalPages(),
		HasPrevious: state.HasPrevious(),
		HasNext:     state.HasNext(),
	}
}

// IsCurrent reports whether token points at the page the view was built for.
func (v View[T]) IsCurrent(token PageToken) bool {
	page, ok := token.Page()
	return ok && page == v.State.CurrentPage
}
