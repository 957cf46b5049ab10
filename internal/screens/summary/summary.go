package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/trivia/internal/game"
	"github.com/abhisek/trivia/internal/router"
	"github.com/abhisek/trivia/internal/screen"
	"github.com/abhisek/trivia/internal/ui/components"
	"github.com/abhisek/trivia/internal/ui/layout"
	"github.com/abhisek/trivia/internal/ui/theme"
)

// SummaryScreen displays the outcome of a completed quiz.
type SummaryScreen struct {
	outcome   game.Outcome
	err       error
	buttons   components.ButtonRow
	showShare bool
	final     bool
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)
var _ screen.EscapeHandler = (*SummaryScreen)(nil)

// New creates a SummaryScreen. err is a failure to record the outcome;
// playAgain builds a fresh quiz with the same settings, and is nil when
// the quiz cannot be replayed.
func New(outcome game.Outcome, err error, playAgain func() screen.Screen) *SummaryScreen {
	s := &SummaryScreen{outcome: outcome, err: err, final: playAgain == nil}
	home := components.NewButton("Home", false, func() tea.Cmd {
		return func() tea.Msg { return router.PopToRootMsg{} }
	})
	if s.final {
		s.buttons = components.NewButtonRow(home)
		return s
	}
	s.buttons = components.NewButtonRow(
		components.NewButton("Play again", false, func() tea.Cmd {
			next := playAgain()
			return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
		}),
		home,
	)
	return s
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Quiz Summary"
}

// HandlesEscape sends Esc home rather than back into the finished quiz.
func (s *SummaryScreen) HandlesEscape() bool {
	return true
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Choose"},
		{Key: "Enter", Description: "Select"},
		{Key: "S", Description: "Share text"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopToRootMsg{} }
		case "s", "S":
			s.showShare = !s.showShare
			return s, nil
		}
	}
	var cmd tea.Cmd
	s.buttons, cmd = s.buttons.Update(msg)
	return s, cmd
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.outcome.Summary
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder

	title := "Quiz complete!"
	if sum.Passed() {
		title = "Excellent work!"
	}
	if !layout.IsCompactHeight(height) {
		b.WriteString(components.Mascot(components.MoodFor(sum.Passed()), width))
		b.WriteString("\n")
	}
	b.WriteString(center.Foreground(theme.Primary).Bold(true).Render(title))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(s.outcome.CategoryName+" · ")+
			theme.LevelBadge(string(sum.Difficulty), sum.Difficulty.DisplayName())))
	b.WriteString("\n\n")

	mins := int(sum.Elapsed.Minutes())
	secs := int(sum.Elapsed.Seconds()) % 60
	b.WriteString(center.Foreground(theme.Text).Render(
		fmt.Sprintf("Score: %d/%d        Accuracy: %.0f%%        Time: %d:%02d",
			sum.Score, sum.TotalQuestions, sum.Percentage, mins, secs)))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.TextDim).Render(
		fmt.Sprintf("Correct %d   Wrong %d   Skipped %d   Weighted %.1f",
			sum.Correct, sum.Wrong, sum.Skipped, sum.WeightedScore)))
	b.WriteString("\n\n")

	if sum.BonusHint {
		b.WriteString(center.Foreground(theme.Accent).Bold(true).Render("💡 +1 hint for scoring 80% or more"))
		b.WriteString("\n\n")
	}

	if len(s.outcome.Unlocked) > 0 {
		divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
			strings.Repeat("─", min(width-8, 60)))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Achievements")))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n")
		for _, a := range s.outcome.Unlocked {
			line := fmt.Sprintf("%s %s: %s", a.Type.Icon(), a.Title, a.Description)
			b.WriteString(center.Foreground(theme.ArcadeYellow).Render(line))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if s.err != nil {
		b.WriteString(center.Foreground(theme.Error).Render(
			fmt.Sprintf("Could not save this result: %v", s.err)))
		b.WriteString("\n\n")
	}

	if s.showShare {
		card := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 2).
			Foreground(theme.Text).
			Render(s.outcome.ShareText())
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card))
		b.WriteString("\n\n")
	}

	if s.final {
		b.WriteString(center.Foreground(theme.ArcadeCyan).Render("📅 A new daily challenge opens tomorrow"))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.buttons.View()))
	return b.String()
}
