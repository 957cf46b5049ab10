package summary

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/trivia/internal/achievements"
	"github.com/abhisek/trivia/internal/game"
	"github.com/abhisek/trivia/internal/questionbank"
	"github.com/abhisek/trivia/internal/router"
	"github.com/abhisek/trivia/internal/screen"
	"github.com/abhisek/trivia/internal/session"
)

// stubScreen is a minimal screen used as the play-again target.
type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "quiz" }
func (s *stubScreen) Title() string                           { return "Quiz" }

func testOutcome() game.Outcome {
	return game.Outcome{
		Summary: session.Summary{
			Difficulty:     questionbank.Medium,
			Score:          7,
			Correct:        7,
			Wrong:          1,
			TotalQuestions: 8,
			Elapsed:        3 * time.Minute,
			Percentage:     87.5,
			WeightedScore:  10.5,
			BonusHint:      true,
		},
		CategoryName: "Science",
		Unlocked:     []achievements.Achievement{achievements.Catalogue()[0]},
	}
}

func newTestSummary() (*SummaryScreen, *int) {
	calls := 0
	return New(testOutcome(), nil, func() screen.Screen {
		calls++
		return &stubScreen{}
	}), &calls
}

func TestSummaryScreen_Title(t *testing.T) {
	s, _ := newTestSummary()
	if s.Title() != "Quiz Summary" {
		t.Errorf("Title = %q, want %q", s.Title(), "Quiz Summary")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s, _ := newTestSummary()
	view := s.View(100, 30)
	for _, want := range []string{"Excellent work!", "Score: 7/8", "+1 hint", "Beginner"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSummaryScreen_SaveError(t *testing.T) {
	s := New(testOutcome(), errors.New("disk full"), func() screen.Screen { return &stubScreen{} })
	if !strings.Contains(s.View(100, 30), "disk full") {
		t.Error("expected save error in view")
	}
}

func TestSummaryScreen_PlayAgain(t *testing.T) {
	s, calls := newTestSummary()
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Error("expected ReplaceScreenMsg")
	}
	if *calls != 1 {
		t.Errorf("factory calls = %d, want 1", *calls)
	}
}

func TestSummaryScreen_Home(t *testing.T) {
	s, _ := newTestSummary()
	s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if _, ok := cmd().(router.PopToRootMsg); !ok {
		t.Error("expected PopToRootMsg from Home button")
	}
}

func TestSummaryScreen_Navigation_Esc(t *testing.T) {
	s, _ := newTestSummary()
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a command on Esc")
	}
	if _, ok := cmd().(router.PopToRootMsg); !ok {
		t.Error("expected PopToRootMsg")
	}
}

func TestSummaryScreen_ShareToggle(t *testing.T) {
	s, _ := newTestSummary()
	s.Update(tea.KeyPressMsg{Code: 's', Text: "s"})
	if !strings.Contains(s.View(100, 40), "Accuracy: 87.5%") {
		t.Error("expected share text after pressing S")
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s, _ := newTestSummary()
	if len(s.KeyHints()) != 4 {
		t.Errorf("KeyHints length = %d, want 4", len(s.KeyHints()))
	}
}

func TestSummaryScreen_NoReplay(t *testing.T) {
	s := New(testOutcome(), nil, nil)
	view := s.View(100, 30)
	if strings.Contains(view, "Play again") {
		t.Error("replay button shown for a one-off quiz")
	}
	if !strings.Contains(view, "opens tomorrow") {
		t.Error("expected the next-challenge note")
	}
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	if _, ok := cmd().(router.PopToRootMsg); !ok {
		t.Error("Enter should go home")
	}
}

func TestSummaryScreen_CompactDropsMascot(t *testing.T) {
	s, _ := newTestSummary()
	if !strings.Contains(s.View(100, 30), "★ ★") {
		t.Error("expected the celebrating mascot on a roomy terminal")
	}
	if strings.Contains(s.View(100, 18), "★ ★") {
		t.Error("mascot should be dropped on a short terminal")
	}
}
