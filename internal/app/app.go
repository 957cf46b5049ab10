// Package app hosts the Bubble Tea program: the root model, the screen
// router and the clock loop that drives quiz countdowns.
package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/trivia/internal/clock"
	"github.com/abhisek/trivia/internal/game"
	"github.com/abhisek/trivia/internal/helpers"
	"github.com/abhisek/trivia/internal/questionbank"
	"github.com/abhisek/trivia/internal/router"
	"github.com/abhisek/trivia/internal/screen"
	"github.com/abhisek/trivia/internal/screens/home"
	sessionscreen "github.com/abhisek/trivia/internal/screens/session"
	"github.com/abhisek/trivia/internal/screens/welcome"
	"github.com/abhisek/trivia/internal/ui/layout"
)

// Options configures Run.
type Options struct {
	Services *game.Services
	// Loop must be the clock the Services were built with. Its events are
	// run on the program goroutine.
	Loop *clock.Loop

	// Category, when set, starts a quiz right away instead of showing the
	// welcome screen.
	Category   string
	Difficulty questionbank.Difficulty

	SkipWelcome bool
}

// clockEventMsg carries one pending clock callback.
type clockEventMsg func()

// AppModel is the root Bubble Tea model.
type AppModel struct {
	svc    *game.Services
	loop   *clock.Loop
	router *router.Router
	start  tea.Cmd
	width  int
	height int
}

// newAppModel creates a new AppModel on the welcome or home screen.
func newAppModel(opts Options) AppModel {
	svc := opts.Services
	homeFactory := func() screen.Screen { return home.New(svc) }

	var root screen.Screen
	var start tea.Cmd
	switch {
	case opts.Category != "":
		root = homeFactory()
		quiz := sessionscreen.New(svc, opts.Category, opts.Difficulty)
		start = func() tea.Msg { return router.PushScreenMsg{Screen: quiz} }
	case opts.SkipWelcome:
		root = homeFactory()
	default:
		root = welcome.New(homeFactory, welcome.Teaser(svc.Bank))
	}

	return AppModel{
		svc:    svc,
		loop:   opts.Loop,
		router: router.New(root),
		start:  start,
	}
}

// waitForClock blocks until the loop has a callback to run.
func (m AppModel) waitForClock() tea.Cmd {
	if m.loop == nil {
		return nil
	}
	events := m.loop.Events()
	return func() tea.Msg {
		return clockEventMsg(<-events)
	}
}

func (m AppModel) Init() tea.Cmd {
	return tea.Batch(m.router.Active().Init(), m.start, m.waitForClock())
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case clockEventMsg:
		msg()
		cmd := m.router.Update(screen.ClockMsg{})
		return m, tea.Batch(cmd, m.waitForClock())

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if eh, ok := m.router.Active().(screen.EscapeHandler); ok && eh.HandlesEscape() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	ctx := m.svc.Context(context.Background())
	hints := m.svc.Budget.Remaining(ctx, helpers.Hint)
	best := m.svc.Achievements.Counters(ctx).HighScore
	header := layout.RenderHeader(title, hints, best, m.width)

	var footerHints []layout.KeyHint
	if kp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = append(kp.KeyHints(), layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	content := m.router.View(m.width, layout.ContentHeight(m.height))
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
