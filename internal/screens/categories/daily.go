package categories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/trivia/internal/daily"
	"github.com/abhisek/trivia/internal/game"
	"github.com/abhisek/trivia/internal/questionbank"
	"github.com/abhisek/trivia/internal/router"
	"github.com/abhisek/trivia/internal/screen"
	sessionscreen "github.com/abhisek/trivia/internal/screens/session"
	"github.com/abhisek/trivia/internal/session"
	"github.com/abhisek/trivia/internal/ui/components"
	"github.com/abhisek/trivia/internal/ui/layout"
	"github.com/abhisek/trivia/internal/ui/theme"
)

// DailyScreen shows today's challenge and starts it if it is still open.
type DailyScreen struct {
	svc    *game.Services
	notice string
}

var _ screen.Screen = (*DailyScreen)(nil)
var _ screen.KeyHintProvider = (*DailyScreen)(nil)

// NewDaily creates the daily challenge screen.
func NewDaily(svc *game.Services) *DailyScreen {
	return &DailyScreen{svc: svc}
}

func (s *DailyScreen) ctx() context.Context {
	return s.svc.Context(context.Background())
}

func (s *DailyScreen) Init() tea.Cmd {
	return nil
}

func (s *DailyScreen) Title() string {
	return questionbank.DailyCategoryName
}

func (s *DailyScreen) KeyHints() []layout.KeyHint {
	if !s.svc.Daily.Available(s.ctx()) {
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Start"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *DailyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || kmsg.String() != "enter" {
		return s, nil
	}

	err := s.svc.ClaimDaily(s.ctx())
	switch {
	case errors.Is(err, daily.ErrAlreadyPlayed):
		s.notice = "You already played today's challenge."
		return s, nil
	case errors.Is(err, session.ErrNoQuestions):
		s.notice = "No questions are loaded."
		return s, nil
	case err != nil:
		s.notice = fmt.Sprintf("Could not start the challenge: %v", err)
		return s, nil
	}

	next := sessionscreen.New(s.svc, questionbank.DailyCategoryID, questionbank.Medium)
	return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

func (s *DailyScreen) View(width, height int) string {
	ctx := s.ctx()
	now := s.svc.Clock.Now()
	open := s.svc.Daily.Available(ctx)
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString("\n")
	if !layout.IsCompactHeight(height) {
		mood := components.MoodCurious
		if !open {
			mood = components.MoodIdle
		}
		b.WriteString(components.Mascot(mood, width))
		b.WriteString("\n\n")
	}
	b.WriteString(center.Foreground(theme.Primary).Bold(true).Render("📅 " + now.Format("Monday, January 2")))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.TextDim).Render(fmt.Sprintf(
		"%d questions from every category · %ds each",
		min(questionbank.DailyCount, s.svc.Bank.Len()), questionbank.Medium.SecondsPerQuestion())))
	b.WriteString("\n\n")

	var button string
	if open {
		button = components.ArcadeButton("START", components.ButtonSelected, 20)
	} else {
		button = components.ArcadeButton("PLAYED TODAY", components.ButtonDisabled, 20)
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, button))
	b.WriteString("\n")

	if !open {
		wait := s.svc.Daily.NextOpen().Sub(now).Round(time.Minute)
		b.WriteString(center.Foreground(theme.TextDim).Render(
			fmt.Sprintf("Next challenge in %dh %02dm", int(wait.Hours()), int(wait.Minutes())%60)))
		b.WriteString("\n")
	}
	if s.notice != "" {
		b.WriteString("\n")
		b.WriteString(center.Foreground(theme.Accent).Render(s.notice))
	}
	return b.String()
}
