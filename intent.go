package pagetable

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// IntentKind defines the kind of navigation requested by the presentation layer.
type IntentKind string

const (
	IntentPrevious IntentKind = "previous"
	IntentNext     IntentKind = "next"
	IntentJump     IntentKind = "jump"
)

func (k IntentKind) Valid() bool {
	return k == IntentPrevious || k == IntentNext || k == IntentJump
}

// ErrUnknownIntent is returned by ParseIntent for unrecognized input.
var ErrUnknownIntent = errors.New("unknown navigation intent")

// Intent is a navigation request. Page is meaningful for IntentJump only.
type Intent struct {
	Kind IntentKind
	Page int
}

func Previous() Intent {
	return Intent{Kind: IntentPrevious}
}

func Next() Intent {
	return Intent{Kind: IntentNext}
}

func JumpTo(page int) Intent {
	return Intent{Kind: IntentJump, Page: page}
}

// String - implements fmt.Stringer.
func (i Intent) String() string {
	if i.Kind == IntentJump {
		return fmt.Sprintf("%s(%d)", i.Kind, i.Page)
	}

	return string(i.Kind)
}

// ParseIntent builds an Intent from user input: "prev"/"previous"/"p",
// "next"/"n", or a page number.
func ParseIntent(raw string) (Intent, error) {
	s := strings.ToLower(strings.TrimSpace(raw))

	switch s {
	case "p", "prev", string(IntentPrevious):
		return Previous(), nil
	case "n", string(IntentNext):
		return Next(), nil
	}

	page, err := strconv.Atoi(s)
	if err != nil {
		return Intent{}, fmt.Errorf("%w: '%s'", ErrUnknownIntent, raw)
	}

	return JumpTo(page), nil
}
