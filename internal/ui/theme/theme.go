// Package theme holds the palette and shared text styles.
package theme

import "charm.land/lipgloss/v2"

// Palette: paper text on slate cards with a seal-red accent.
var (
	Primary   = lipgloss.Color("#E0525A") // Seal Red
	Secondary = lipgloss.Color("#4FA3A5") // Jade
	Accent    = lipgloss.Color("#E8B04B") // Amber
	Success   = lipgloss.Color("#5CB85C") // Leaf
	Error     = lipgloss.Color("#D9534F") // Brick
	Text      = lipgloss.Color("#F4F1EA") // Paper
	TextDim   = lipgloss.Color("#9A958C") // Ash
	BgCard    = lipgloss.Color("#22252C") // Slate Ink
	Border    = lipgloss.Color("#3A3E48") // Graphite
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	// Prompt is the word being tested.
	Prompt = lipgloss.NewStyle().
		Foreground(Text).
		Bold(true).
		Align(lipgloss.Center)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Disabled = lipgloss.NewStyle().
			Foreground(TextDim)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	ErrorText = lipgloss.NewStyle().
			Foreground(Error)
)
