package screen

import "github.com/abhisek/lexiz/internal/track"

// Messages screens send to move the app between its phases.

// StartQuizMsg asks for a question batch on Track.
type StartQuizMsg struct {
	Track *track.Track
}

// QuizDoneMsg reports that the last question has been answered.
type QuizDoneMsg struct{}

// RestartMsg abandons the current quiz, if any, and returns to track
// selection.
type RestartMsg struct{}
