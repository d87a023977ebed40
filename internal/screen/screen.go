package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/lexiz/internal/ui/layout"
)

// Screen is one view of the app. The router forwards messages to the
// screen on top of its stack.
type Screen interface {
	// Init returns an initial command when the screen becomes active.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is implemented by screens that replace the default
// footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// EscapeHandler is implemented by screens that handle Esc themselves
// instead of letting the app pop them.
type EscapeHandler interface {
	HandlesEscape() bool
}

// Closer is implemented by screens holding background work that should
// stop once the router drops them.
type Closer interface {
	Close()
}
