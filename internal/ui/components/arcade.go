package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/trivia/internal/ui/theme"
)

// Content width bounds for boxed sections.
const (
	minContentWidth = 20
	maxContentWidth = 60
)

// ContentWidth returns the inner width shared by every boxed section of a
// screen, leaving room for the cabinet border and its padding.
func ContentWidth(frameWidth int) int {
	return min(max(frameWidth-6, minContentWidth), maxContentWidth)
}

// CabinetFrame wraps content in the double-border frame used by the home
// screen, centered in the given area.
func CabinetFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width - 2).
		Height(height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// ArcadeCard wraps content in a rounded card at the given content width.
func ArcadeCard(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(1, 2).
		Render(content)
}

// ButtonState is how an arcade button is drawn.
type ButtonState int

const (
	ButtonNormal ButtonState = iota
	ButtonSelected
	ButtonDisabled
)

// ArcadeButton renders a bordered button. A width of 0 sizes the button
// to its label.
func ArcadeButton(label string, state ButtonState, width int) string {
	style := lipgloss.NewStyle().
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)
	if width > 0 {
		style = style.Width(width)
	}

	switch state {
	case ButtonSelected:
		return style.
			Bold(true).
			Foreground(theme.BgDark).
			Background(theme.ArcadeYellow).
			BorderForeground(theme.ArcadeYellow).
			Render("▸ " + label)
	case ButtonDisabled:
		return style.
			Foreground(theme.TextDim).
			Faint(true).
			BorderForeground(theme.Border).
			Render(label)
	default:
		return style.
			Foreground(theme.Text).
			BorderForeground(theme.Border).
			Render(label)
	}
}

// ArcadeMenu stacks labels as fixed-width buttons, centered in cw.
// Labels in disabled are drawn dimmed and never selected.
func ArcadeMenu(labels []string, selected int, disabled map[int]bool, buttonWidth, cw int) string {
	buttons := make([]string, 0, len(labels))
	for i, label := range labels {
		state := ButtonNormal
		switch {
		case disabled[i]:
			state = ButtonDisabled
		case i == selected:
			state = ButtonSelected
		}
		buttons = append(buttons, ArcadeButton(label, state, buttonWidth))
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(lipgloss.JoinVertical(lipgloss.Center, buttons...))
}
