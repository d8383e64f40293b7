package pagetable

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// EllipsisText is the textual form of an elided range of pages.
const EllipsisText = "..."

// PageToken is a single element of a page window: either a page number or an
// ellipsis marker. The zero value is the ellipsis marker.
type PageToken struct {
	page int
}

// Ellipsis marks an elided range of page numbers.
var Ellipsis = PageToken{}

// PageNumber returns a token for a clickable page.
func PageNumber(page int) PageToken {
	return PageToken{page: page}
}

// IsEllipsis reports whether the token is the ellipsis marker.
func (t PageToken) IsEllipsis() bool {
	return t.page <= 0
}

// Page returns the page number and true, or 0 and false for the ellipsis marker.
func (t PageToken) Page() (int, bool) {
	if t.IsEllipsis() {
		return 0, false
	}

	return t.page, true
}

// String - implements fmt.Stringer.
func (t PageToken) String() string {
	if t.IsEllipsis() {
		return EllipsisText
	}

	return strconv.Itoa(t.page)
}

// MarshalJSON encodes page numbers as JSON numbers and the marker as "...".
func (t PageToken) MarshalJSON() ([]byte, error) {
	if t.IsEllipsis() {
		return json.Marshal(EllipsisText)
	}

	return json.Marshal(t.page)
}

// UnmarshalJSON - implements json.Unmarshaler. JSON null leaves the token
// unchanged.
func (t *PageToken) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	var page int
	if err := json.Unmarshal(data, &page); err == nil {
		if page <= 0 {
			return fmt.Errorf("invalid page token '%d'", page)
		}

		t.page = page
		return nil
	}

	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return fmt.Errorf("failed to unmarshal page token: %w", err)
	}
	if text != EllipsisText {
		return fmt.Errorf("invalid page token '%s'", text)
	}

	t.page = 0

	return nil
}

var (
	_ fmt.Stringer     = PageToken{}
	_ json.Marshaler   = PageToken{}
	_ json.Unmarshaler = (*PageToken)(nil)
)
