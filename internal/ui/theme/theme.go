// Package theme holds the trivia palette and the shared styles built on it.
package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Base palette.
var (
	Primary   = lipgloss.Color("#8B5CF6") // Purple
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F97316") // Orange
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC")
	TextDim   = lipgloss.Color("#94A3B8")
	BgDark    = lipgloss.Color("#0F172A")
	BgCard    = lipgloss.Color("#1E293B")
	Border    = lipgloss.Color("#334155")

	ArcadeYellow = lipgloss.Color("#FACC15")
	ArcadeCyan   = lipgloss.Color("#22D3EE")
)

// Difficulty colors, keyed by the difficulty's wire name.
var levelColors = map[string]color.Color{
	"easy":   Success,
	"medium": ArcadeYellow,
	"hard":   Error,
}

// Level returns the color for a difficulty name, TextDim when unknown.
func Level(name string) color.Color {
	if c, ok := levelColors[name]; ok {
		return c
	}
	return TextDim
}

// LevelBadge renders label in the difficulty's color.
func LevelBadge(name, label string) string {
	return lipgloss.NewStyle().Foreground(Level(name)).Bold(true).Render(label)
}

// Answer states.
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	// HintMark highlights the option revealed by a hint.
	HintMark = lipgloss.NewStyle().
			Foreground(ArcadeYellow).
			Bold(true)
)

// Timer bar segments.
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)

	// ProgressLow is used once the countdown drops under the bar's threshold.
	ProgressLow = lipgloss.NewStyle().
			Background(Error)
)
