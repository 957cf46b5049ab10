package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/trivia/internal/helpers"
	"github.com/abhisek/trivia/internal/questionbank"
	sess "github.com/abhisek/trivia/internal/session"
	"github.com/abhisek/trivia/internal/ui/components"
	"github.com/abhisek/trivia/internal/ui/layout"
	"github.com/abhisek/trivia/internal/ui/theme"
)

func (s *SessionScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, height, s.errMsg)
	}
	if s.state == nil || s.filing {
		return renderLoading(width, height)
	}
	if s.showingQuitConfirm {
		return renderQuitConfirm(width, height)
	}
	return s.renderQuestionView(width, height)
}

// renderQuestionView renders the current question, its options and the
// feedback once it is resolved.
func (s *SessionScreen) renderQuestionView(width, height int) string {
	q, ok := s.state.Current()
	if !ok {
		return renderLoading(width, height)
	}

	var b strings.Builder

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Question %d/%d", s.state.Index()+1, s.state.Total()))

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s %d  %s %d  %s",
			lipgloss.NewStyle().Foreground(theme.Success).Render("✓"),
			s.state.Correct(),
			lipgloss.NewStyle().Foreground(theme.Error).Render("✗"),
			s.state.Wrong(),
			s.helperLine(),
		))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}
	b.WriteString(infoLine)
	b.WriteString("\n")

	bar := components.NewProgressBar(
		fmt.Sprintf("  ⏱ %2ds", s.state.Remaining()),
		s.state.TimeFraction(), false, min(width-4, 70))
	bar.LowThreshold = 0.25
	b.WriteString(bar.View())
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Text))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.choice.View()))
	b.WriteString("\n")

	if fb, ok := s.state.Feedback(); ok {
		b.WriteString(renderFeedback(width, height, q, fb))
	} else if s.notice != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render(s.notice))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Select (1-4) or use arrows + Enter"))
	}

	return b.String()
}

func (s *SessionScreen) helperLine() string {
	counts := s.svc.Budget.Counts(s.ctx())
	parts := make([]string, 0, len(helpers.AllKinds()))
	for _, k := range helpers.AllKinds() {
		parts = append(parts, fmt.Sprintf("%s %d", k.Icon(), counts.Of(k)))
	}
	return strings.Join(parts, "  ")
}

// renderFeedback renders the verdict and the explanation. Short
// terminals get neither the mascot nor the explanation.
func renderFeedback(width, height int, q questionbank.Question, fb sess.Feedback) string {
	var b strings.Builder
	roomy := !layout.IsCompactHeight(height)

	if roomy && !layout.IsCompactWidth(width) {
		b.WriteString(components.Mascot(components.MoodFor(fb.Correct), width))
		b.WriteString("\n")
	}

	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	switch {
	case fb.TimedOut:
		b.WriteString(center.Foreground(theme.Accent).Bold(true).Render("Time's up!"))
	case fb.Correct:
		b.WriteString(center.Foreground(theme.Success).Bold(true).Render("Correct!"))
	default:
		b.WriteString(center.Foreground(theme.Error).Bold(true).Render("Not quite"))
	}
	b.WriteString("\n")

	if !fb.Correct {
		b.WriteString(center.Foreground(theme.TextDim).Render(
			fmt.Sprintf("Correct answer: %s) %s", questionbank.OptionLabel(fb.Answer), q.CorrectOption())))
		b.WriteString("\n")
	}

	if q.Explanation != "" && roomy {
		b.WriteString("\n")
		exp := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.Text).
			Render(q.Explanation)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, exp))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.TextDim).Render("Press Enter to continue..."))
	return b.String()
}

// renderQuitConfirm renders the quit confirmation dialog.
func renderQuitConfirm(width, height int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("End quiz early?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("This quiz will not be recorded. Helpers already used stay spent."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[Y] Yes, end quiz"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}

// renderLoading renders the loading state.
func renderLoading(width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  Tallying your answers...")
}

// renderError renders an error message.
func renderError(width, height int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  %s\n\n  Press any key to go back.", errMsg))
}
