// Package tui is the terminal presentation of a paginated user table.
package tui

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Alp4ka/pagetable"
	"github.com/Alp4ka/pagetable/source"
	"github.com/Alp4ka/pagetable/view"
)

// maxJumpDigits bounds the typed page number.
const maxJumpDigits = 6

// loadedMsg is sent once the table's load has finished.
type loadedMsg struct {
	err error
}

// Model renders a view.Table and turns key presses into navigation intents.
type Model struct {
	table   *view.Table[source.User]
	current pagetable.View[source.User]
	loading bool
	err     error
	input   string
}

// New returns a model over tbl. The caller starts the load with tbl.Load
// before running the program.
func New(tbl *view.Table[source.User]) Model {
	return Model{
		table:   tbl,
		current: tbl.Snapshot(),
		loading: true,
	}
}

// Init waits for the load to finish (required for tea.Model interface).
func (m Model) Init() tea.Cmd {
	return waitForLoad(m.table)
}

func waitForLoad(tbl *view.Table[source.User]) tea.Cmd {
	done := tbl.Done()

	return func() tea.Msg {
		<-done
		return loadedMsg{err: tbl.Err()}
	}
}

// Update handles key presses and the load result.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		m.loading = false
		m.err = msg.err
		m.current = m.table.Snapshot()
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

//nolint:exhaustive // Only navigation keys are handled.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		if msg.Type == tea.KeyEsc && m.input != "" {
			m.input = ""
			return m, nil
		}
		return m, tea.Quit
	case tea.KeyLeft:
		return m.navigate(pagetable.Previous()), nil
	case tea.KeyRight:
		return m.navigate(pagetable.Next()), nil
	case tea.KeyHome:
		return m.navigate(pagetable.JumpTo(1)), nil
	case tea.KeyEnd:
		return m.navigate(pagetable.JumpTo(m.current.TotalPages)), nil
	case tea.KeyBackspace:
		if m.input != "" {
			m.input = m.input[:len(m.input)-1]
		}
		return m, nil
	case tea.KeyEnter:
		if m.input == "" {
			return m, nil
		}
		intent, err := pagetable.ParseIntent(m.input)
		m.input = ""
		if err != nil {
			return m, nil
		}
		return m.navigate(intent), nil
	case tea.KeyRunes:
		return m.handleRunes(msg.Runes)
	}

	return m, nil
}

// handleRunes processes runes in order, so pasted input like "12" types
// every digit.
func (m Model) handleRunes(runes []rune) (tea.Model, tea.Cmd) {
	for _, r := range runes {
		switch {
		case r == 'q':
			return m, tea.Quit
		case r == 'h' || r == 'p':
			m = m.navigate(pagetable.Previous())
		case r == 'l' || r == 'n':
			m = m.navigate(pagetable.Next())
		case r >= '0' && r <= '9':
			if len(m.input) < maxJumpDigits {
				m.input += string(r)
			}
		}
	}

	return m, nil
}

func (m Model) navigate(intent pagetable.Intent) Model {
	m.current = m.table.Navigate(intent)
	return m
}

// View renders the model (required for tea.Model interface).
func (m Model) View() string {
	var b strings.Builder

	b.WriteString("User details\n\n")
	_ = Render(&b, m.current)

	switch {
	case m.loading:
		b.WriteString("\nloading...\n")
	case m.err != nil && !errors.Is(m.err, view.ErrClosed):
		b.WriteString("\nfailed to load users: " + m.err.Error() + "\n")
	}

	b.WriteString("\n←/h previous  →/l next  digits+enter jump  q quit")
	if m.input != "" {
		b.WriteString("  go to: " + m.input)
	}
	b.WriteByte('\n')

	return b.String()
}

// Current returns the view currently displayed.
func (m Model) Current() pagetable.View[source.User] {
	return m.current
}

var _ tea.Model = Model{}
