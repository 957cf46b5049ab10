package stats

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/trivia/internal/achievements"
	"github.com/abhisek/trivia/internal/game"
	"github.com/abhisek/trivia/internal/helpers"
	"github.com/abhisek/trivia/internal/questionbank"
	"github.com/abhisek/trivia/internal/results"
	"github.com/abhisek/trivia/internal/router"
	"github.com/abhisek/trivia/internal/screen"
	"github.com/abhisek/trivia/internal/ui/components"
	"github.com/abhisek/trivia/internal/ui/layout"
	"github.com/abhisek/trivia/internal/ui/theme"
)

type statsLoadedMsg struct {
	Stats    results.Stats
	Counters achievements.Counters
	Helpers  helpers.Counts
}

// StatsScreen shows aggregate results and lifetime counters.
type StatsScreen struct {
	svc    *game.Services
	data   statsLoadedMsg
	loaded bool
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New creates a new StatsScreen.
func New(svc *game.Services) *StatsScreen {
	return &StatsScreen{svc: svc}
}

func (s *StatsScreen) Init() tea.Cmd {
	svc := s.svc
	return func() tea.Msg {
		ctx := context.Background()
		return statsLoadedMsg{
			Stats:    svc.Results.Aggregate(ctx),
			Counters: svc.Achievements.Counters(ctx),
			Helpers:  svc.Budget.Counts(ctx),
		}
	}
}

func (s *StatsScreen) Title() string {
	return "Statistics"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		s.data = msg
		s.loaded = true
	case tea.KeyMsg:
		if msg.String() == "esc" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading statistics...")
	}

	st := s.data.Stats
	cw := components.ContentWidth(width)
	label := lipgloss.NewStyle().Foreground(theme.TextDim)
	value := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)

	row := func(k, v string) string {
		return fmt.Sprintf("%s %s", label.Render(fmt.Sprintf("%-18s", k)), value.Render(v))
	}

	overview := strings.Join([]string{
		row("Quizzes played", fmt.Sprintf("%d", st.TotalQuizzes)),
		row("Average score", fmt.Sprintf("%.1f", st.AverageScore)),
		row("Best score", fmt.Sprintf("%d", st.BestScore)),
		row("Correct / wrong", fmt.Sprintf("%d / %d", st.TotalCorrect, st.TotalWrong)),
		row("Time played", st.TotalTimeSpent().String()),
		row("High score (ever)", fmt.Sprintf("%d", s.data.Counters.HighScore)),
		row("Quizzes (ever)", fmt.Sprintf("%d", s.data.Counters.CompletedQuizzes)),
	}, "\n")
	acc := components.NewProgressBar("Accuracy", st.AccuracyPercentage/100, true, cw-8).View()

	var levels []string
	for _, d := range questionbank.AllDifficulties() {
		ls := st.ByDifficulty[d]
		name := theme.LevelBadge(string(d), fmt.Sprintf("%-18s", d.Icon()+" "+d.DisplayName()))
		levels = append(levels, name+" "+value.Render(
			fmt.Sprintf("%d played, avg %.1f", ls.Quizzes, ls.AverageScore)))
	}

	var tools []string
	for _, k := range helpers.AllKinds() {
		tools = append(tools, row(k.Icon()+" "+k.DisplayName(), fmt.Sprintf("%d left", s.data.Helpers.Of(k))))
	}

	sections := []string{
		components.ArcadeCard(overview+"\n\n"+acc, cw),
		components.ArcadeCard(strings.Join(levels, "\n"), cw),
		components.ArcadeCard(strings.Join(tools, "\n"), cw),
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(sections, "\n"))
}
