package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lexiz/internal/ui/theme"
)

const bannerArt = `
 ██╗     ███████╗██╗  ██╗██╗███████╗
 ██║     ██╔════╝╚██╗██╔╝██║╚══███╔╝
 ██║     █████╗   ╚███╔╝ ██║  ███╔╝
 ██║     ██╔══╝   ██╔██╗ ██║ ███╔╝
 ███████╗███████╗██╔╝ ██╗██║███████╗
 ╚══════╝╚══════╝╚═╝  ╚═╝╚═╝╚══════╝`

const bannerCompact = "L E X I Z"

// RenderBanner returns the LEXIZ banner styled in the primary color.
// Terminals narrower than 40 columns get the compact form.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 40 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
