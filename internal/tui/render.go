package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"

	"github.com/Alp4ka/pagetable"
	"github.com/Alp4ka/pagetable/source"
)

type column struct {
	title string
	width int
}

var _columns = []column{
	{"ID", 6},
	{"Name", 20},
	{"Email", 24},
	{"Password", 12},
	{"Role", 8},
}

// Render writes the table, its filler rows and the navigation controls.
func Render(w io.Writer, v pagetable.View[source.User]) error {
	var b strings.Builder

	writeRow(&b, columnTitles())
	writeSeparator(&b)
	for _, u := range v.Items {
		writeRow(&b, []string{fmt.Sprint(u.ID), u.Name, u.Email, u.Password, u.Role})
	}
	for i := 0; i < v.Padding; i++ {
		writeRow(&b, make([]string, len(_columns)))
	}
	writeSeparator(&b)

	b.WriteString(Controls(v))
	b.WriteByte('\n')

	_, err := io.WriteString(w, b.String())
	return err
}

// Controls renders the Previous/Next buttons and the page window. Disabled
// buttons are wrapped in parentheses, the current page in brackets.
func Controls[T any](v pagetable.View[T]) string {
	parts := make([]string, 0, len(v.Window)+2)

	parts = append(parts, button("Previous", v.HasPrevious))
	for _, token := range v.Window {
		if v.IsCurrent(token) {
			parts = append(parts, "["+token.String()+"]")
			continue
		}
		parts = append(parts, token.String())
	}
	parts = append(parts, button("Next", v.HasNext))

	return strings.Join(parts, " ")
}

func button(label string, enabled bool) string {
	if enabled {
		return "<" + label + ">"
	}

	return "(" + label + ")"
}

func columnTitles() []string {
	return lo.Map(_columns, func(c column, _ int) string {
		return c.title
	})
}

func writeRow(b *strings.Builder, cells []string) {
	b.WriteString("|")
	for i, c := range _columns {
		b.WriteString(" ")
		b.WriteString(fit(cells[i], c.width))
		b.WriteString(" |")
	}
	b.WriteByte('\n')
}

func writeSeparator(b *strings.Builder) {
	b.WriteString("+")
	for _, c := range _columns {
		b.WriteString(strings.Repeat("-", c.width+2))
		b.WriteString("+")
	}
	b.WriteByte('\n')
}

// fit pads or truncates s to exactly width runes.
func fit(s string, width int) string {
	r := []rune(s)
	if len(r) > width {
		return string(r[:width-1]) + "~"
	}

	return s + strings.Repeat(" ", width-len(r))
}
