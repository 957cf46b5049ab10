package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/trivia/internal/ui/theme"
)

const bannerArt = `
 ████████╗██████╗ ██╗██╗   ██╗██╗ █████╗
 ╚══██╔══╝██╔══██╗██║██║   ██║██║██╔══██╗
    ██║   ██████╔╝██║██║   ██║██║███████║
    ██║   ██╔══██╗██║╚██╗ ██╔╝██║██╔══██║
    ██║   ██║  ██║██║ ╚████╔╝ ██║██║  ██║
    ╚═╝   ╚═╝  ╚═╝╚═╝  ╚═══╝  ╚═╝╚═╝  ╚═╝`

const bannerCompact = "T R I V I A"

// Tagline is shown under the banner once the animation settles.
const Tagline = "How much do you really know?"

// RenderBanner returns the TRIVIA banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 44 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 44 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
