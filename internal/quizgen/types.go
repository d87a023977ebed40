package quizgen

import "github.com/abhisek/lexiz/internal/track"

// OptionCount is the number of answer options every question carries.
const OptionCount = 4

// Question is a single multiple-choice vocabulary question.
type Question struct {
	// Text is the prompt shown to the learner, e.g. "学习 (xuéxí)".
	Text string `json:"question"`

	// Options holds exactly four answer options in display order.
	Options []string `json:"options"`

	// Answer is the text of the correct option.
	Answer string `json:"correctAnswer"`

	// Level is the track level the question targets.
	Level track.Level `json:"level"`

	// Context is an optional sentence using the word.
	Context string `json:"context,omitempty"`
}

// IsCorrect reports whether choice is the correct answer.
func (q *Question) IsCorrect(choice string) bool {
	return choice == q.Answer
}

// Valid reports whether the question has exactly four options and one of
// them is the correct answer.
func (q *Question) Valid() bool {
	if len(q.Options) != OptionCount {
		return false
	}
	for _, o := range q.Options {
		if o == q.Answer {
			return true
		}
	}
	return false
}

// AnswerIndex returns the position of the correct answer in Options, or -1.
func (q *Question) AnswerIndex() int {
	for i, o := range q.Options {
		if o == q.Answer {
			return i
		}
	}
	return -1
}
