package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/lexiz/internal/ui/theme"
)

// MultiChoice renders four answer options with a cursor and, once an
// answer is locked, the correct and chosen options highlighted.
type MultiChoice struct {
	Options []string
	Cursor  int

	// Locked is set once the learner has answered.
	Locked bool
	Chosen string
	Answer string
}

// NewMultiChoice creates a MultiChoice with the cursor on the first option.
func NewMultiChoice(options []string) MultiChoice {
	return MultiChoice{Options: options}
}

// Up moves the cursor up one option.
func (m *MultiChoice) Up() {
	if m.Cursor > 0 {
		m.Cursor--
	}
}

// Down moves the cursor down one option.
func (m *MultiChoice) Down() {
	if m.Cursor < len(m.Options)-1 {
		m.Cursor++
	}
}

// Lock freezes the component on the given answer.
func (m *MultiChoice) Lock(chosen, answer string) {
	m.Locked = true
	m.Chosen = chosen
	m.Answer = answer
}

// View renders the options.
func (m MultiChoice) View() string {
	var b strings.Builder
	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Cursor && !m.Locked {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d)  %s", prefix, i+1, opt)

		style := theme.Unselected
		switch {
		case m.Locked && opt == m.Answer:
			style = theme.Correct
			line += "  ✓"
		case m.Locked && opt == m.Chosen:
			style = theme.Incorrect
			line += "  ✗"
		case m.Locked:
			style = theme.Disabled
		case i == m.Cursor:
			style = theme.Selected
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

// Width returns the rendered width of the widest option line.
func (m MultiChoice) Width() int {
	w := 0
	for _, line := range strings.Split(m.View(), "\n") {
		w = max(w, lipgloss.Width(line))
	}
	return w
}
