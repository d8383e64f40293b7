package pagetable

import "math"

// PageState is the whole navigation state of a paginated view.
//
// IMPORTANT:
// CurrentPage is 1-based and stays within [1, max(TotalPages(), 1)] as long as
// the state is mutated through Navigate and WithTotalItems.
type PageState struct {
	// CurrentPage 1-based number of the displayed page.
	CurrentPage int `json:"currentPage"`
	// ItemsPerPage number of rows on a single page.
	ItemsPerPage int `json:"itemsPerPage"`
	// TotalItems number of records in the underlying list.
	TotalItems int `json:"totalItems"`
}

// NewPageState returns the state of the first page of totalItems records.
// itemsPerPage is normalized with NormalizeItemsPerPage.
func NewPageState(itemsPerPage, totalItems int) PageState {
	return PageState{
		CurrentPage:  1,
		ItemsPerPage: NormalizeItemsPerPage(itemsPerPage),
		TotalItems:   max(totalItems, 0),
	}.Clamp()
}

// TotalPages returns ceil(TotalItems / ItemsPerPage). An empty list has zero pages.
func (s PageState) TotalPages() int {
	return TotalPages(s.TotalItems, s.ItemsPerPage)
}

// TotalPages returns the number of pages needed for totalItems records.
func TotalPages(totalItems, itemsPerPage int) int {
	if totalItems <= 0 || itemsPerPage <= 0 {
		return 0
	}

	return (totalItems + itemsPerPage - 1) / itemsPerPage
}

// HasPrevious reports whether the Previous control is enabled.
func (s PageState) HasPrevious() bool {
	return s.CurrentPage > 1
}

// HasNext reports whether the Next control is enabled.
func (s PageState) HasNext() bool {
	return s.CurrentPage < s.TotalPages()
}

// Offset returns the index of the first record of the current page. Pages
// whose offset does not fit into int are capped at maxPage.
func (s PageState) Offset() int {
	if s.CurrentPage <= 1 || s.ItemsPerPage <= 0 {
		return 0
	}

	return (min(s.CurrentPage, maxPage(s.ItemsPerPage)) - 1) * s.ItemsPerPage
}

// Clamp restores the CurrentPage invariant.
func (s PageState) Clamp() PageState {
	s.CurrentPage = clampPage(s.CurrentPage, s.TotalPages())
	return s
}

// WithTotalItems replaces the size of the underlying list and clamps
// CurrentPage back into range. Use it whenever the record list is replaced.
func (s PageState) WithTotalItems(totalItems int) PageState {
	s.TotalItems = max(totalItems, 0)
	return s.Clamp()
}

// maxPage is the last page whose offset fits into int.
func maxPage(itemsPerPage int) int {
	return math.MaxInt / max(itemsPerPage, 1)
}

func clampPage(page, totalPages int) int {
	return min(max(page, 1), max(totalPages, 1))
}
