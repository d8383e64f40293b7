package pagetable

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_TotalPages(t *testing.T) {
	tests := []struct {
		name         string
		totalItems   int
		itemsPerPage int
		want         int
	}{
		{"empty list has no pages", 0, 10, 0},
		{"negative total has no pages", -5, 10, 0},
		{"one item", 1, 10, 1},
		{"exact multiple", 100, 10, 10},
		{"partial last page", 95, 10, 10},
		{"one over", 101, 10, 11},
		{"zero page size", 10, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TotalPages(tt.totalItems, tt.itemsPerPage); got != tt.want {
				t.Errorf("%s: got %d want %d", tt.name, got, tt.want)
			}
		})
	}
}

func Test_NewPageState(t *testing.T) {
	s := NewPageState(0, 95)

	require.Equal(t, PageState{CurrentPage: 1, ItemsPerPage: DefaultItemsPerPage, TotalItems: 95}, s)
	require.Equal(t, 10, s.TotalPages())
	require.Equal(t, 0, s.Offset())
	require.False(t, s.HasPrevious())
	require.True(t, s.HasNext())
}

func Test_PageState_EmptyListDisablesNavigation(t *testing.T) {
	s := NewPageState(10, 0)

	require.Equal(t, 0, s.TotalPages())
	require.Equal(t, 1, s.CurrentPage)
	require.False(t, s.HasPrevious())
	require.False(t, s.HasNext())
}

func Test_PageState_WithTotalItems(t *testing.T) {
	tests := []struct {
		name       string
		state      PageState
		totalItems int
		wantPage   int
	}{
		{"list shrinks below current page", PageState{CurrentPage: 8, ItemsPerPage: 10, TotalItems: 95}, 25, 3},
		{"list emptied", PageState{CurrentPage: 8, ItemsPerPage: 10, TotalItems: 95}, 0, 1},
		{"list grows keeps page", PageState{CurrentPage: 3, ItemsPerPage: 10, TotalItems: 30}, 95, 3},
		{"data arrives after render", PageState{CurrentPage: 1, ItemsPerPage: 10}, 95, 1},
		{"negative total treated as empty", PageState{CurrentPage: 2, ItemsPerPage: 10, TotalItems: 30}, -1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.state.WithTotalItems(tt.totalItems)
			require.Equal(t, tt.wantPage, got.CurrentPage)
			require.Equal(t, max(tt.totalItems, 0), got.TotalItems)
		})
	}
}

func Test_PageState_Offset(t *testing.T) {
	s := PageState{CurrentPage: 4, ItemsPerPage: 10, TotalItems: 95}

	require.Equal(t, 30, s.Offset())
}

func Test_PageState_Offset_Bounds(t *testing.T) {
	tests := []struct {
		name  string
		state PageState
		want  int
	}{
		{"first page", PageState{CurrentPage: 1, ItemsPerPage: 10}, 0},
		{"page below range", PageState{CurrentPage: -4, ItemsPerPage: 10}, 0},
		{"zero page size", PageState{CurrentPage: 3, ItemsPerPage: 0}, 0},
		{"huge page is capped", PageState{CurrentPage: math.MaxInt, ItemsPerPage: 10}, (math.MaxInt/10 - 1) * 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.state.Offset()
			require.Equal(t, tt.want, got)
			require.GreaterOrEqual(t, got, 0)
		})
	}
}
