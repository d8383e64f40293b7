package pagetable

import (
	"slices"

	"github.com/samber/lo"
)

// Slice returns the records of the 1-based currentPage:
//
//	records[(currentPage-1)*itemsPerPage : currentPage*itemsPerPage]
//
// A page outside [1, TotalPages] yields an empty slice, never an error. The result is a copy, the input is never mutated, and its length is
// at most itemsPerPage.
func Slice[T any](records []T, currentPage, itemsPerPage int) []T {
	if currentPage < 1 || itemsPerPage <= 0 || currentPage > TotalPages(len(records), itemsPerPage) {
		return []T{}
	}

	start := (currentPage - 1) * itemsPerPage

	return slices.Clone(lo.Slice(records, start, start+itemsPerPage))
}

// PadCount returns the number of filler rows needed to keep a page of
// displayedCount rows at a constant height. Never negative.
func PadCount(displayedCount, itemsPerPage int) int {
	return max(itemsPerPage-displayedCount, 0)
}

// PageWindow returns page-selector tokens around currentPage:
//
//  1. the first page, followed by Ellipsis if page 2 is not adjacent to the window;
//  2. the previous, current and next page clamped to [1, totalPages];
//  3. Ellipsis if the window does not reach totalPages-1, then the last page.
//
// Example for totalPages = 10:
//
//	currentPage = 1  -> [1 2 ... 10]
//	currentPage = 5  -> [1 ... 4 5 6 ... 10]
//	currentPage = 10 -> [1 ... 9 10]
//
// currentPage is clamped into [1, totalPages]. A window never contains more
// than 5 page numbers and 2 ellipsis markers.
func PageWindow(currentPage, totalPages int) []PageToken {
	if totalPages <= 0 {
		return []PageToken{}
	}

	currentPage = clampPage(currentPage, totalPages)
	ret := make([]PageToken, 0, 7)

	if currentPage > 2 {
		ret = append(ret, PageNumber(1))
		if currentPage > 3 {
			ret = append(ret, Ellipsis)
		}
	}

	for i := max(1, currentPage-1); i <= min(totalPages, currentPage+1); i++ {
		ret = append(ret, PageNumber(i))
	}

	if currentPage < totalPages-1 {
		if currentPage < totalPages-2 {
			ret = append(ret, Ellipsis)
		}
		ret = append(ret, PageNumber(totalPages))
	}

	return ret
}

// Navigate applies intent to state and returns the new state.
//
//   - Previous decrements CurrentPage unless it is the first page.
//   - Next increments CurrentPage unless it is the last page.
//   - JumpTo sets CurrentPage, clamped into [1, max(TotalPages, 1)].
//
// The input state is clamped first, so a stale CurrentPage never leaks into
// the result. Unknown intents leave the state unchanged.
func Navigate(state PageState, intent Intent) PageState {
	state = state.Clamp()

	switch intent.Kind {
	case IntentPrevious:
		if state.HasPrevious() {
			state.CurrentPage--
		}
	case IntentNext:
		if state.HasNext() {
			state.CurrentPage++
		}
	case IntentJump:
		state.CurrentPage = clampPage(intent.Page, state.TotalPages())
	}

	return state
}
