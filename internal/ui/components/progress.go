package components

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/lexiz/internal/ui/theme"
)

// ProgressBar displays a horizontal bar with an optional label and a
// trailing caption such as "12/30" or "80%".
type ProgressBar struct {
	Label   string
	Percent float64
	Caption string
	Width   int

	// Fill overrides the filled color. Nil uses theme.Secondary.
	Fill color.Color
}

// NewProgressBar creates a bar filled to n/total with an "n/total" caption.
func NewProgressBar(label string, n, total, width int) ProgressBar {
	p := ProgressBar{Label: label, Width: width, Caption: fmt.Sprintf("%d/%d", n, total)}
	if total > 0 {
		p.Percent = float64(n) / float64(total)
	}
	return p
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string
	if p.Label != "" {
		result = lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}

	caption := ""
	if p.Caption != "" {
		caption = lipgloss.NewStyle().Foreground(theme.TextDim).Render("  " + p.Caption)
	}

	barWidth := max(p.Width-lipgloss.Width(result)-lipgloss.Width(caption), 4)
	filled := min(max(int(float64(barWidth)*p.Percent), 0), barWidth)

	fill := p.Fill
	if fill == nil {
		fill = theme.Secondary
	}

	result += lipgloss.NewStyle().Background(fill).Render(strings.Repeat(" ", filled))
	result += lipgloss.NewStyle().Background(theme.Border).Render(strings.Repeat(" ", barWidth-filled))
	return result + caption
}
