// Package router keeps the stack of screens the app draws from.
package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/lexiz/internal/screen"
)

// PushScreenMsg asks the router to open a screen on top of the current one.
type PushScreenMsg struct {
	Screen screen.Screen
}

// PopScreenMsg asks the router to close the top screen.
type PopScreenMsg struct{}

// Router is a stack of screens. Only the top one receives messages. The
// root screen is never popped.
type Router struct {
	stack []screen.Screen
}

// New creates a Router with root at the bottom of the stack.
func New(root screen.Screen) *Router {
	return &Router{stack: []screen.Screen{root}}
}

// Push opens s and returns its Init command.
func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	return s.Init()
}

// Pop closes the top screen unless it is the root.
func (r *Router) Pop() {
	if len(r.stack) <= 1 {
		return
	}
	top := len(r.stack) - 1
	closeScreen(r.stack[top])
	r.stack[top] = nil
	r.stack = r.stack[:top]
}

// Reset closes every screen and starts over with root. The app calls this
// on each phase change.
func (r *Router) Reset(root screen.Screen) tea.Cmd {
	for i := len(r.stack) - 1; i >= 0; i-- {
		closeScreen(r.stack[i])
	}
	r.stack = []screen.Screen{root}
	return root.Init()
}

func closeScreen(s screen.Screen) {
	if c, ok := s.(screen.Closer); ok {
		c.Close()
	}
}

// Active returns the top screen.
func (r *Router) Active() screen.Screen {
	if len(r.stack) == 0 {
		return nil
	}
	return r.stack[len(r.stack)-1]
}

// Depth returns the number of open screens.
func (r *Router) Depth() int {
	return len(r.stack)
}

// Update applies navigation messages and forwards everything else to the
// active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushScreenMsg:
		return r.Push(msg.Screen)
	case PopScreenMsg:
		r.Pop()
		return nil
	}

	active := r.Active()
	if active == nil {
		return nil
	}
	updated, cmd := active.Update(msg)
	r.stack[len(r.stack)-1] = updated
	return cmd
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	active := r.Active()
	if active == nil {
		return ""
	}
	return active.View(width, height)
}
