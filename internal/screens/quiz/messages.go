package quiz

import (
	"github.com/abhisek/lexiz/internal/audio"
	qz "github.com/abhisek/lexiz/internal/quiz"
)

// advanceMsg fires when an answer's feedback period ends.
type advanceMsg struct {
	session uint64
	index   int
}

// audioLoadedMsg carries the result of a pronunciation fetch.
type audioLoadedMsg struct {
	ticket qz.Ticket
	buf    *audio.Buffer
	err    error
}

// playbackDoneMsg is sent when a speech voice ends or is stopped.
type playbackDoneMsg struct {
	ticket qz.Ticket
}
