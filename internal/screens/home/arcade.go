package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/trivia/internal/ui/theme"
)

// Block-letter title, shared with the welcome banner.
const arcadeTitleFull = ` ████████╗██████╗ ██╗██╗   ██╗██╗ █████╗
 ╚══██╔══╝██╔══██╗██║██║   ██║██║██╔══██╗
    ██║   ██████╔╝██║██║   ██║██║███████║
    ██║   ██╔══██╗██║╚██╗ ██╔╝██║██╔══██║
    ██║   ██║  ██║██║ ╚████╔╝ ██║██║  ██║
    ╚═╝   ╚═╝  ╚═╝╚═╝  ╚═══╝  ╚═╝╚═╝  ╚═╝`

const arcadeTitleCompact = "T · R · I · V · I · A"

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true)

	title := arcadeTitleFull
	if compact {
		title = arcadeTitleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(title))
}

// renderStatsBar renders the dashboard stats in a bordered box matching content width.
func renderStatsBar(best, hints, quizzes, cw int, compact bool) string {
	bestStyle := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	hintStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	quizStyle := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s %s",
			bestStyle.Render(fmt.Sprintf("★%d", best)),
			hintText(hints, true, hintStyle, dimStyle),
			quizStyle.Render(fmt.Sprintf("🏁%d", quizzes)),
		)
	} else {
		stats = fmt.Sprintf("%s  %s  %s",
			bestStyle.Render(fmt.Sprintf("★ %d BEST", best)),
			hintText(hints, false, hintStyle, dimStyle),
			quizStyle.Render(fmt.Sprintf("🏁 %d PLAYED", quizzes)),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

func hintText(hints int, compact bool, active, dim lipgloss.Style) string {
	if hints == 0 {
		if compact {
			return dim.Render("💡0")
		}
		return dim.Render("💡 NO HINTS")
	}
	if compact {
		return active.Render(fmt.Sprintf("💡%d", hints))
	}
	return active.Render(fmt.Sprintf("💡 %d HINTS", hints))
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

// menuRows is the height of the bordered menu plus title, stats bar and gaps.
func menuRows(items int) int {
	return items*3 + 12
}

// renderMenuCompact renders menu items as plain lines for terminals too
// short for bordered buttons.
func renderMenuCompact(items []string, selected int, cw int) string {
	lines := make([]string, 0, len(items))
	for i, label := range items {
		if i == selected {
			lines = append(lines, theme.Selected.Render("▸ "+label))
			continue
		}
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.Text).Render("  "+label))
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}
