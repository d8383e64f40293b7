package pagetable

const (
	MaxItemsPerPage     = 100
	DefaultItemsPerPage = 10
)

// IsNormalizedItemsPerPageMax reports the normalized page size and whether the
// input was already valid.
func IsNormalizedItemsPerPageMax(itemsPerPage int, maxItemsPerPage int) (int, bool) {
	if itemsPerPage <= 0 {
		return DefaultItemsPerPage, false
	} else if itemsPerPage > maxItemsPerPage {
		return maxItemsPerPage, false
	}

	return itemsPerPage, true
}

func NormalizeItemsPerPageMax(itemsPerPage int, maxItemsPerPage int) int {
	ret, _ := IsNormalizedItemsPerPageMax(itemsPerPage, maxItemsPerPage)
	return ret
}

func NormalizeItemsPerPage(itemsPerPage int) int {
	return NormalizeItemsPerPageMax(itemsPerPage, MaxItemsPerPage)
}
