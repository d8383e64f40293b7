package pagetable

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeRecords(n int) []int {
	ret := make([]int, n)
	for i := range ret {
		ret[i] = i + 1
	}

	return ret
}

func tokens(values ...any) []PageToken {
	ret := make([]PageToken, 0, len(values))
	for _, v := range values {
		switch vt := v.(type) {
		case int:
			ret = append(ret, PageNumber(vt))
		case string:
			ret = append(ret, Ellipsis)
		}
	}

	return ret
}

func Test_Slice(t *testing.T) {
	records := makeRecords(95)

	tests := []struct {
		name         string
		records      []int
		currentPage  int
		itemsPerPage int
		want         []int
	}{
		{"first page", records, 1, 10, makeRecords(10)},
		{"middle page", records, 5, 10, []int{41, 42, 43, 44, 45, 46, 47, 48, 49, 50}},
		{"partial last page", records, 10, 10, []int{91, 92, 93, 94, 95}},
		{"page after last is empty", records, 11, 10, []int{}},
		{"zero page is empty", records, 0, 10, []int{}},
		{"negative page is empty", records, -3, 10, []int{}},
		{"zero page size is empty", records, 1, 0, []int{}},
		{"empty list", nil, 1, 10, []int{}},
		{"huge page is empty", records, math.MaxInt/5 + 1, 10, []int{}},
		{"max page is empty", records, math.MaxInt, 10, []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Slice(tt.records, tt.currentPage, tt.itemsPerPage))
		})
	}
}

func Test_Slice_DoesNotAliasInput(t *testing.T) {
	records := makeRecords(20)

	page := Slice(records, 2, 10)
	page[0] = -1

	require.Equal(t, 11, records[10])
}

func Test_Slice_NeverExceedsItemsPerPage(t *testing.T) {
	for totalItems := 0; totalItems <= 57; totalItems++ {
		records := makeRecords(totalItems)
		for _, itemsPerPage := range []int{1, 3, 10} {
			totalPages := TotalPages(totalItems, itemsPerPage)
			for page := 1; page <= max(totalPages, 1); page++ {
				got := Slice(records, page, itemsPerPage)
				require.LessOrEqual(t, len(got), itemsPerPage)
				require.GreaterOrEqual(t, PadCount(len(got), itemsPerPage), 0)
			}
		}
	}
}

func Test_PadCount(t *testing.T) {
	tests := []struct {
		name         string
		displayed    int
		itemsPerPage int
		want         int
	}{
		{"full page", 10, 10, 0},
		{"partial page", 5, 10, 5},
		{"empty page", 0, 10, 10},
		{"never negative", 12, 10, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PadCount(tt.displayed, tt.itemsPerPage); got != tt.want {
				t.Errorf("%s: got %d want %d", tt.name, got, tt.want)
			}
		})
	}
}

func Test_PageWindow(t *testing.T) {
	tests := []struct {
		name        string
		currentPage int
		totalPages  int
		want        []PageToken
	}{
		{"no pages", 1, 0, tokens()},
		{"single page", 1, 1, tokens(1)},
		{"two pages, first", 1, 2, tokens(1, 2)},
		{"two pages, last", 2, 2, tokens(1, 2)},
		{"three pages, first", 1, 3, tokens(1, 2, 3)},
		{"three pages, middle", 2, 3, tokens(1, 2, 3)},
		{"three pages, last", 3, 3, tokens(1, 2, 3)},
		{"four pages, first", 1, 4, tokens(1, 2, "...", 4)},
		{"four pages, last", 4, 4, tokens(1, "...", 3, 4)},
		{"ten pages, first", 1, 10, tokens(1, 2, "...", 10)},
		{"ten pages, second", 2, 10, tokens(1, 2, 3, "...", 10)},
		{"ten pages, third", 3, 10, tokens(1, 2, 3, 4, "...", 10)},
		{"ten pages, fifth", 5, 10, tokens(1, "...", 4, 5, 6, "...", 10)},
		{"ten pages, eighth", 8, 10, tokens(1, "...", 7, 8, 9, 10)},
		{"ten pages, ninth", 9, 10, tokens(1, "...", 8, 9, 10)},
		{"ten pages, last", 10, 10, tokens(1, "...", 9, 10)},
		{"page above range is clamped", 42, 10, tokens(1, "...", 9, 10)},
		{"page below range is clamped", -1, 10, tokens(1, 2, "...", 10)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, PageWindow(tt.currentPage, tt.totalPages))
		})
	}
}

func Test_PageWindow_Properties(t *testing.T) {
	for totalPages := 0; totalPages <= 100; totalPages++ {
		for currentPage := 1; currentPage <= max(totalPages, 1); currentPage++ {
			name := fmt.Sprintf("page %d of %d", currentPage, totalPages)
			window := PageWindow(currentPage, totalPages)

			seen := make(map[int]struct{}, len(window))
			numbers, ellipses := 0, 0
			prev := 0
			for i, token := range window {
				page, ok := token.Page()
				if !ok {
					ellipses++

					require.Greater(t, totalPages, 3, "%s: ellipsis with few pages", name)
					require.True(t, i > 0 && i < len(window)-1, "%s: ellipsis at the edge", name)

					before, _ := window[i-1].Page()
					after, _ := window[i+1].Page()
					require.Greater(t, after-before, 1, "%s: ellipsis skips nothing", name)

					continue
				}

				numbers++
				require.GreaterOrEqual(t, page, 1, name)
				require.LessOrEqual(t, page, totalPages, name)
				require.Greater(t, page, prev, "%s: not ascending", name)

				_, dup := seen[page]
				require.False(t, dup, "%s: duplicate page %d", name, page)
				seen[page] = struct{}{}
				prev = page
			}

			require.LessOrEqual(t, numbers, 5, name)
			require.LessOrEqual(t, ellipses, 2, name)

			if totalPages > 0 {
				require.Contains(t, seen, currentPage, name)
			}
			if totalPages <= 3 {
				require.Len(t, window, totalPages, name)
			}
		}
	}
}

func Test_Navigate(t *testing.T) {
	tenPages := NewPageState(10, 95)

	tests := []struct {
		name   string
		state  PageState
		intent Intent
		want   int
	}{
		{"next from first", tenPages, Next(), 2},
		{"next from last is a no-op", PageState{CurrentPage: 10, ItemsPerPage: 10, TotalItems: 95}, Next(), 10},
		{"previous from first is a no-op", tenPages, Previous(), 1},
		{"previous from middle", PageState{CurrentPage: 5, ItemsPerPage: 10, TotalItems: 95}, Previous(), 4},
		{"jump inside range", tenPages, JumpTo(7), 7},
		{"jump above range is clamped", tenPages, JumpTo(11), 10},
		{"jump below range is clamped", tenPages, JumpTo(0), 1},
		{"next on empty list", NewPageState(10, 0), Next(), 1},
		{"previous on empty list", NewPageState(10, 0), Previous(), 1},
		{"jump on empty list", NewPageState(10, 0), JumpTo(3), 1},
		{"stale page is clamped before previous", PageState{CurrentPage: 12, ItemsPerPage: 10, TotalItems: 95}, Previous(), 9},
		{"unknown intent is a no-op", PageState{CurrentPage: 3, ItemsPerPage: 10, TotalItems: 95}, Intent{Kind: "bogus"}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Navigate(tt.state, tt.intent)
			assert.Equal(t, tt.want, got.CurrentPage)
			assert.Equal(t, tt.state.TotalItems, got.TotalItems)
			assert.Equal(t, tt.state.ItemsPerPage, got.ItemsPerPage)
		})
	}
}

func Test_Navigate_WalkForwardAndBack(t *testing.T) {
	state := NewPageState(10, 95)

	for i := 0; i < 20; i++ {
		state = Navigate(state, Next())
	}
	require.Equal(t, 10, state.CurrentPage)
	require.False(t, state.HasNext())
	require.True(t, state.HasPrevious())

	for i := 0; i < 20; i++ {
		state = Navigate(state, Previous())
	}
	require.Equal(t, 1, state.CurrentPage)
	require.False(t, state.HasPrevious())
	require.True(t, state.HasNext())
}
