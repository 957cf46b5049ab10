package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/trivia/internal/game"
	"github.com/abhisek/trivia/internal/results"
	"github.com/abhisek/trivia/internal/router"
	"github.com/abhisek/trivia/internal/screen"
	achievementsscreen "github.com/abhisek/trivia/internal/screens/achievements"
	"github.com/abhisek/trivia/internal/screens/categories"
	"github.com/abhisek/trivia/internal/screens/history"
	"github.com/abhisek/trivia/internal/screens/stats"
	"github.com/abhisek/trivia/internal/session"
	"github.com/abhisek/trivia/internal/ui/components"
	"github.com/abhisek/trivia/internal/ui/layout"
	"github.com/abhisek/trivia/internal/ui/theme"
)

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	svc           *game.Services
	menu          components.Menu
	menuLabels    []string
	bestScore     int
	hints         int
	quizzes       int
	mood          components.Mood
	dailyReady    bool
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.Resumer = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(svc *game.Services) *HomeScreen {
	menuLabels := []string{"PLAY", "HISTORY", "STATS", "ACHIEVEMENTS", "EXIT GAME"}

	push := func(build func() screen.Screen) func() tea.Cmd {
		return func() tea.Cmd {
			next := build()
			return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
		}
	}

	items := []components.MenuItem{
		{Label: menuLabels[0], Disabled: svc.Bank.Len() == 0, Action: push(func() screen.Screen {
			return categories.New(svc)
		})},
		{Label: menuLabels[1], Action: push(func() screen.Screen {
			return history.New(svc)
		})},
		{Label: menuLabels[2], Action: push(func() screen.Screen {
			return stats.New(svc)
		})},
		{Label: menuLabels[3], Action: push(func() screen.Screen {
			return achievementsscreen.New(svc.Achievements)
		})},
		{Label: menuLabels[4], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	h := &HomeScreen{
		svc:        svc,
		menu:       components.NewMenu(items),
		menuLabels: menuLabels,
	}
	h.refresh()
	return h
}

// refresh reloads the dashboard numbers and picks the mascot.
func (h *HomeScreen) refresh() {
	ctx := h.svc.Context(context.Background())

	counters := h.svc.Achievements.Counters(ctx)
	h.bestScore = counters.HighScore
	h.quizzes = counters.CompletedQuizzes

	counts := h.svc.Budget.Counts(ctx)
	h.hints = counts.Hints

	h.dailyReady = h.svc.Daily.Available(ctx)
	h.mood = pickMood(counts.Total(), h.dailyReady, h.svc.Results.Recent(ctx, 1))
}

// gloomyBelow is the last-quiz percentage under which the mascot sulks.
const gloomyBelow = 50.0

// pickMood chooses the mascot: out of helpers beats a pending daily
// challenge, which beats the verdict on the last quiz.
func pickMood(helpersLeft int, dailyReady bool, recent []results.QuizResult) components.Mood {
	switch {
	case helpersLeft == 0:
		return components.MoodAlert
	case dailyReady:
		return components.MoodCurious
	case len(recent) == 0:
		return components.MoodIdle
	case recent[0].Percentage() >= session.BonusThreshold:
		return components.MoodCelebrating
	case recent[0].Percentage() < gloomyBelow:
		return components.MoodGloomy
	}
	return components.MoodIdle
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

// Resume refreshes the dashboard after a quiz or another screen closes.
func (h *HomeScreen) Resume() tea.Cmd {
	h.refresh()
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	compact := layout.IsCompactHeight(height) || layout.IsCompactWidth(width)
	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	if !compact {
		sections = append(sections, components.Mascot(h.mood, cw))
	}
	sections = append(sections, renderStatsBar(h.bestScore, h.hints, h.quizzes, cw, compact))
	if h.dailyReady && !compact {
		sections = append(sections, lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).
			Foreground(theme.ArcadeCyan).Render("📅 Today's challenge is ready under PLAY"))
	}

	if height < menuRows(len(h.menuLabels)) {
		sections = append(sections, renderMenuCompact(h.menuLabels, h.menu.Selected, cw))
	} else {
		disabled := make(map[int]bool)
		for i, it := range h.menu.Items {
			disabled[i] = it.Disabled
		}
		sections = append(sections, components.ArcadeMenu(h.menuLabels, h.menu.Selected, disabled, buttonWidth, cw))
	}

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
