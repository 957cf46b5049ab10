package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/trivia/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// EscapeHandler is implemented by screens that handle Esc themselves
// instead of letting the app pop them.
type EscapeHandler interface {
	HandlesEscape() bool
}

// Resumer is implemented by screens that refresh their data when they
// become active again after the screens above them are popped.
type Resumer interface {
	Resume() tea.Cmd
}

// ClockMsg is delivered to the active screen after the app ran a
// pending clock callback, so screens can redraw timer-driven state.
type ClockMsg struct{}
