package track

import (
	"fmt"
	"strings"
)

// ID identifies a language track.
type ID string

const (
	HSK   ID = "hsk"
	IELTS ID = "ielts"
	DELE  ID = "dele"
)

// Level is a difficulty level within a track, e.g. "3" for HSK or "B1" for DELE.
type Level string

// Track describes one assessment scale: its level ordering, labels, and
// vocabulary-size lookup.
type Track struct {
	ID   ID
	Name string

	// Language is the language being assessed.
	Language string

	// Levels lists the track's levels from easiest to hardest.
	Levels []Level

	// LabelPrefix is prepended to a level when displaying an estimate,
	// e.g. "HSK " + "3".
	LabelPrefix string

	// Floor is the level reported when no level passes but the raw
	// score still clears FloorScore.
	Floor Level

	// BelowMinimum is the label reported when no level passes and the
	// score does not clear FloorScore.
	BelowMinimum string

	// Vocabulary maps a passed level to an approximate vocabulary size.
	Vocabulary map[Level]string

	// PromptGuide is extra instruction for the question generator.
	PromptGuide string
}

// FloorScore is the raw score a learner must exceed for the floor level to
// apply when no level is passed.
const FloorScore = 20

// UnknownVocabulary is the vocabulary estimate when no level is passed.
const UnknownVocabulary = "<150 words"

var hsk = Track{
	ID:           HSK,
	Name:         "HSK (Chinese)",
	Language:     "Mandarin Chinese",
	Levels:       []Level{"1", "2", "3", "4", "5", "6"},
	LabelPrefix:  "HSK ",
	Floor:        "1",
	BelowMinimum: "Below HSK 1",
	Vocabulary: map[Level]string{
		"1": "~150 words",
		"2": "~300 words",
		"3": "~600 words",
		"4": "~1200 words",
		"5": "~2500 words",
		"6": "~5000 words",
	},
	PromptGuide: `Each question shows a Chinese word in simplified characters with pinyin in parentheses, e.g. "学习 (xuéxí)", and asks for its English meaning. Options are English glosses. Use the level numbers 1-6 of the HSK 2.0 word lists.`,
}

var ielts = Track{
	ID:           IELTS,
	Name:         "IELTS (English)",
	Language:     "English",
	Levels:       []Level{"4", "5", "6", "7", "8", "9"},
	LabelPrefix:  "IELTS Band ",
	Floor:        "3.5",
	BelowMinimum: "Below IELTS Band 4",
	Vocabulary: map[Level]string{
		"4": "~2000 words",
		"5": "~3000 words",
		"6": "~4500 words",
		"7": "~6500 words",
		"8": "~8500 words",
		"9": "~10000+ words",
	},
	PromptGuide: `Each question presents an English word, optionally inside a short context sentence, and asks for the closest synonym or definition. Options are English. Use IELTS bands 4-9 as levels, matching the band at which a candidate would be expected to know the word.`,
}

var dele = Track{
	ID:           DELE,
	Name:         "DELE (Spanish)",
	Language:     "Spanish",
	Levels:       []Level{"A1", "A2", "B1", "B2", "C1", "C2"},
	LabelPrefix:  "DELE ",
	Floor:        "A1",
	BelowMinimum: "Below DELE A1",
	Vocabulary: map[Level]string{
		"A1": "~500 words",
		"A2": "~1000 words",
		"B1": "~2000 words",
		"B2": "~4000 words",
		"C1": "~8000 words",
		"C2": "~10000+ words",
	},
	PromptGuide: `Each question shows a Spanish word and asks for its English meaning. Options are English glosses. Use CEFR levels A1, A2, B1, B2, C1, C2 as levels.`,
}

var registry = map[ID]*Track{
	HSK:   &hsk,
	IELTS: &ielts,
	DELE:  &dele,
}

// All returns the tracks in menu order.
func All() []*Track {
	return []*Track{&hsk, &ielts, &dele}
}

// Get returns the track for id.
func Get(id ID) (*Track, error) {
	t, ok := registry[ID(strings.ToLower(string(id)))]
	if !ok {
		return nil, fmt.Errorf("unknown track %q", id)
	}
	return t, nil
}

// Label formats a level with the track's prefix.
func (t *Track) Label(l Level) string {
	return t.LabelPrefix + string(l)
}

// Index returns the position of l in the track's ordering, or -1.
func (t *Track) Index(l Level) int {
	for i, lv := range t.Levels {
		if lv == l {
			return i
		}
	}
	return -1
}

// HasLevel reports whether l belongs to the track.
func (t *Track) HasLevel(l Level) bool {
	return t.Index(l) >= 0
}

// VocabularyFor returns the vocabulary estimate for a passed level.
func (t *Track) VocabularyFor(l Level) string {
	if v, ok := t.Vocabulary[l]; ok {
		return v
	}
	return UnknownVocabulary
}
