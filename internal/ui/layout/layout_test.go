package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestIsTooSmall(t *testing.T) {
	tests := []struct {
		w, h int
		want bool
	}{
		{MinWidth, MinHeight, false},
		{MinWidth - 1, MinHeight, true},
		{MinWidth, MinHeight - 1, true},
		{120, 40, false},
	}
	for _, tt := range tests {
		if got := IsTooSmall(tt.w, tt.h); got != tt.want {
			t.Errorf("IsTooSmall(%d, %d) = %v, want %v", tt.w, tt.h, got, tt.want)
		}
	}
}

func TestRenderHeaderDropsStatusWhenNarrow(t *testing.T) {
	wide := RenderHeader("Quiz", "HSK  ·  Vol 80%", 100)
	if !strings.Contains(wide, "Vol 80%") {
		t.Errorf("expected status in wide header:\n%s", wide)
	}

	narrow := RenderHeader("Quiz", "HSK  ·  Vol 80%", 64)
	if strings.Contains(narrow, "Vol 80%") {
		t.Errorf("expected status dropped in narrow header:\n%s", narrow)
	}
	if !strings.Contains(narrow, "Quiz") {
		t.Errorf("expected title kept in narrow header:\n%s", narrow)
	}
}

func TestRenderFooter(t *testing.T) {
	out := RenderFooter([]KeyHint{{Key: "P", Description: "Pronounce"}, {Key: "Esc", Description: "Quit"}}, 80)
	for _, want := range []string{"P", "Pronounce", "Esc", "Quit"} {
		if !strings.Contains(out, want) {
			t.Errorf("footer missing %q:\n%s", want, out)
		}
	}
}

func TestRenderFrameFillsHeight(t *testing.T) {
	header := RenderHeader("Results", "", 80)
	footer := RenderFooter(nil, 80)

	out := RenderFrame(header, "body", footer, 80, 30)
	if h := lipgloss.Height(out); h != 30 {
		t.Errorf("frame height = %d, want 30", h)
	}
	if ContentHeight(header, footer, 4) != 0 {
		t.Error("content height should not go negative")
	}
}
