package session

import (
	"context"
	"errors"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/trivia/internal/game"
	"github.com/abhisek/trivia/internal/helpers"
	"github.com/abhisek/trivia/internal/questionbank"
	"github.com/abhisek/trivia/internal/router"
	"github.com/abhisek/trivia/internal/screen"
	"github.com/abhisek/trivia/internal/screens/summary"
	sess "github.com/abhisek/trivia/internal/session"
	"github.com/abhisek/trivia/internal/ui/components"
	"github.com/abhisek/trivia/internal/ui/layout"
)

// SessionScreen implements screen.Screen for a running quiz.
type SessionScreen struct {
	svc        *game.Services
	categoryID string
	difficulty questionbank.Difficulty

	state    *sess.Session
	choice   components.MultiChoice
	shownIdx int

	completed *sess.Summary
	filing    bool

	showingQuitConfirm bool
	notice             string
	errMsg             string
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)
var _ screen.EscapeHandler = (*SessionScreen)(nil)

// New creates a quiz screen for categoryID at difficulty d.
func New(svc *game.Services, categoryID string, d questionbank.Difficulty) *SessionScreen {
	return &SessionScreen{
		svc:        svc,
		categoryID: categoryID,
		difficulty: d,
		shownIdx:   -1,
	}
}

func (s *SessionScreen) ctx() context.Context {
	return s.svc.Context(context.Background())
}

func (s *SessionScreen) Init() tea.Cmd {
	s.state = s.svc.NewSession(s.categoryID, s.difficulty, func(sum sess.Summary) {
		s.completed = &sum
	})
	if err := s.state.Start(s.ctx()); err != nil {
		if errors.Is(err, sess.ErrNoQuestions) {
			s.errMsg = "No questions available for this category."
		} else {
			s.errMsg = err.Error()
		}
		return nil
	}
	s.sync()
	return nil
}

func (s *SessionScreen) Title() string {
	return fmt.Sprintf("%s · %s", s.svc.Bank.CategoryName(s.categoryID), s.difficulty.DisplayName())
}

// HandlesEscape keeps Esc for the quit confirmation.
func (s *SessionScreen) HandlesEscape() bool {
	return s.errMsg == ""
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	if s.errMsg != "" || s.state == nil {
		return []layout.KeyHint{{Key: "any key", Description: "Back"}}
	}
	if s.showingQuitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "End quiz"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.state.Phase() == sess.PhaseAnswered {
		label := "Next question"
		if s.state.IsLast() {
			label = "Finish"
		}
		return []layout.KeyHint{
			{Key: "Enter", Description: label},
			{Key: "Esc", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "1-4", Description: "Answer"},
		{Key: "H", Description: "Hint"},
		{Key: "F", Description: "50:50"},
		{Key: "S", Description: "Skip"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screen.ClockMsg:
		s.sync()
		return s, nil

	case sessionFiledMsg:
		return s.handleFiled(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *SessionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Error state: any key goes back.
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if s.state == nil || s.filing {
		return s, nil
	}

	if s.showingQuitConfirm {
		switch key {
		case "y", "Y":
			s.showingQuitConfirm = false
			s.state.Abandon()
			return s, func() tea.Msg { return router.PopToRootMsg{} }
		case "n", "N", "esc":
			s.showingQuitConfirm = false
		}
		return s, nil
	}

	if key == "esc" {
		s.showingQuitConfirm = true
		return s, nil
	}

	s.notice = ""
	ctx := s.ctx()

	switch s.state.Phase() {
	case sess.PhaseAnswered:
		switch key {
		case "enter", "n", "space", " ":
			s.state.Advance(ctx)
		}

	case sess.PhaseInProgress:
		switch key {
		case "1", "2", "3", "4":
			s.submit(int(key[0] - '1'))
		case "enter":
			s.submit(s.choice.Selected)
		case "h", "H":
			if _, ok := s.state.UseHint(ctx); !ok {
				s.notice = s.unavailable(helpers.Hint)
			}
		case "f", "F":
			if s.state.FiftyFiftyUsed() {
				s.notice = "50:50 already used on this question"
			} else if _, ok := s.state.UseFiftyFifty(ctx); !ok {
				s.notice = s.unavailable(helpers.FiftyFifty)
			}
		case "s", "S":
			if !s.state.UseSkip(ctx) {
				s.notice = s.unavailable(helpers.Skip)
			}
		default:
			s.choice, _ = s.choice.Update(msg)
		}
	}

	s.sync()
	return s, s.finishIfDone()
}

func (s *SessionScreen) submit(option int) {
	if _, ok := s.state.Submit(option); !ok {
		s.notice = "That option is not available"
	}
}

func (s *SessionScreen) unavailable(k helpers.Kind) string {
	return fmt.Sprintf("No %s remaining", k.DisplayName())
}

// sync mirrors the session's question state into the choice component.
func (s *SessionScreen) sync() {
	if s.state == nil {
		return
	}
	q, ok := s.state.Current()
	if !ok {
		return
	}
	if s.state.Index() != s.shownIdx {
		s.shownIdx = s.state.Index()
		s.choice = components.NewMultiChoice(q.Options[:])
	}
	for i := range q.Options {
		if s.state.Hidden(i) && !s.choice.Hidden[i] {
			s.choice.Hide(i)
		}
	}
	if s.state.HintShown() {
		s.choice.Hint = q.CorrectIndex
	}
	if fb, ok := s.state.Feedback(); ok && !s.choice.Revealed {
		s.choice.Reveal(fb.Choice, fb.Answer)
	}
}

// finishIfDone files a completed session in the background.
func (s *SessionScreen) finishIfDone() tea.Cmd {
	if s.completed == nil || s.filing {
		return nil
	}
	s.filing = true
	sum := *s.completed
	svc := s.svc
	ctx := s.ctx()
	return func() tea.Msg {
		out, err := svc.Finish(ctx, sum)
		return sessionFiledMsg{Outcome: out, Err: err}
	}
}

func (s *SessionScreen) handleFiled(msg sessionFiledMsg) (screen.Screen, tea.Cmd) {
	svc, cat, d := s.svc, s.categoryID, s.difficulty
	// The daily challenge cannot be replayed the same day.
	var playAgain func() screen.Screen
	if cat != questionbank.DailyCategoryID {
		playAgain = func() screen.Screen { return New(svc, cat, d) }
	}
	next := summary.New(msg.Outcome, msg.Err, playAgain)
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}
