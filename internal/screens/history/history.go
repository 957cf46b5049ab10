package history

import (
	"context"
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/trivia/internal/game"
	"github.com/abhisek/trivia/internal/questionbank"
	"github.com/abhisek/trivia/internal/results"
	"github.com/abhisek/trivia/internal/router"
	"github.com/abhisek/trivia/internal/screen"
	"github.com/abhisek/trivia/internal/ui/layout"
	"github.com/abhisek/trivia/internal/ui/theme"
)

type historyLoadedMsg struct {
	Results []results.QuizResult
}

// filters cycles with Tab; the empty difficulty shows everything.
var filters = append([]questionbank.Difficulty{""}, questionbank.AllDifficulties()...)

// HistoryScreen displays past quiz results, newest first.
type HistoryScreen struct {
	svc      *game.Services
	all      []results.QuizResult
	filter   int
	selected int
	expanded map[string]bool
	loaded   bool
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(svc *game.Services) *HistoryScreen {
	return &HistoryScreen{
		svc:      svc,
		expanded: make(map[string]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	rec := s.svc.Results
	ctx := s.svc.Context(context.Background())
	return func() tea.Msg {
		return historyLoadedMsg{Results: rec.All(ctx)}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "Tab", Description: "Difficulty"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) visible() []results.QuizResult {
	d := filters[s.filter]
	if d == "" {
		return s.all
	}
	var out []results.QuizResult
	for _, r := range s.all {
		if r.Difficulty == d {
			out = append(out, r)
		}
	}
	return out
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		s.all = msg.Results
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "tab":
			s.filter = (s.filter + 1) % len(filters)
			s.selected = 0
			return s, nil
		case "shift+tab":
			s.filter = (s.filter - 1 + len(filters)) % len(filters)
			s.selected = 0
			return s, nil
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.visible())-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			if v := s.visible(); s.selected < len(v) {
				id := v[s.selected].ID
				s.expanded[id] = !s.expanded[id]
			}
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.all) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No quizzes yet. Start playing!")
	}

	var b strings.Builder
	b.WriteString("\n")

	var tabs []string
	for i, d := range filters {
		label := "All"
		if d != "" {
			label = d.Icon() + " " + d.DisplayName()
		}
		switch {
		case i != s.filter:
			tabs = append(tabs, lipgloss.NewStyle().Foreground(theme.TextDim).Render(label))
		case d == "":
			tabs = append(tabs, lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(label))
		default:
			tabs = append(tabs, theme.LevelBadge(string(d), label))
		}
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(tabs, "     ")))
	b.WriteString("\n\n")

	list := s.visible()
	if len(list) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("No quizzes at this difficulty"))
		return b.String()
	}

	maxVisible := height - 6
	if maxVisible < 3 {
		maxVisible = 3
	}
	start := 0
	if s.selected >= maxVisible {
		start = s.selected - maxVisible + 1
	}
	end := min(start+maxVisible, len(list))

	for i := start; i < end; i++ {
		r := list[i]
		dateStr := r.Timestamp.Local().Format("Jan 02, 2006 15:04")
		mins := r.TimeSpentSecs / 60
		secs := r.TimeSpentSecs % 60

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %-20s %-7s %2d/%-2d  %3.0f%%  %d:%02d",
			prefix, dateStr, truncate(r.CategoryName, 20), r.Difficulty.DisplayName(),
			r.Score, r.TotalQuestions, r.Percentage(), mins, secs)

		style := lipgloss.NewStyle().Foreground(scoreColor(r.Percentage()))
		if i == s.selected {
			style = style.Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[r.ID] {
			detail := fmt.Sprintf("    correct %d · wrong %d · skipped %d",
				r.CorrectAnswers, r.WrongAnswers, r.Skipped)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render(detail)))
			b.WriteString("\n")
		}
	}

	if end < len(list) {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render(fmt.Sprintf("... %d more", len(list)-end)))
	}

	return b.String()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func scoreColor(pct float64) color.Color {
	switch {
	case pct >= 80:
		return theme.Success
	case pct >= 50:
		return theme.Text
	default:
		return theme.Error
	}
}
