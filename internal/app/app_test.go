package app

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/trivia/internal/clock"
	"github.com/abhisek/trivia/internal/game"
	"github.com/abhisek/trivia/internal/questionbank"
	"github.com/abhisek/trivia/internal/router"
	"github.com/abhisek/trivia/internal/screens/home"
	sessionscreen "github.com/abhisek/trivia/internal/screens/session"
	"github.com/abhisek/trivia/internal/screens/stats"
	"github.com/abhisek/trivia/internal/screens/welcome"
	"github.com/abhisek/trivia/internal/store"
)

func testOptions(category string) (Options, *clock.Fake) {
	qs := make([]questionbank.Question, 3)
	for i := range qs {
		qs[i] = questionbank.Question{
			ID:           fmt.Sprintf("q%d", i+1),
			Text:         fmt.Sprintf("Question %d?", i+1),
			Options:      [questionbank.OptionCount]string{"alpha", "beta", "gamma", "delta"},
			CorrectIndex: 0,
			CategoryID:   "science",
			Difficulty:   questionbank.Easy,
		}
	}
	bank := questionbank.New(qs, questionbank.WithRand(rand.New(rand.NewPCG(1, 2))))
	fake := clock.NewFake(time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC))
	loop := clock.NewLoop(fake)
	return Options{
		Services:   game.NewServices(bank, store.NewMemory(), loop, nil),
		Loop:       loop,
		Category:   category,
		Difficulty: questionbank.Easy,
	}, fake
}

func update(t *testing.T, m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	am, ok := next.(AppModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return am, cmd
}

func TestRootScreen(t *testing.T) {
	opts, _ := testOptions("")
	m := newAppModel(opts)
	if _, ok := m.router.Active().(*welcome.WelcomeScreen); !ok {
		t.Errorf("root = %T, want welcome", m.router.Active())
	}

	opts.SkipWelcome = true
	m = newAppModel(opts)
	if _, ok := m.router.Active().(*home.HomeScreen); !ok {
		t.Errorf("root = %T, want home", m.router.Active())
	}
}

func TestEscPopsPlainScreen(t *testing.T) {
	opts, _ := testOptions("")
	opts.SkipWelcome = true
	m := newAppModel(opts)
	m, _ = update(t, m, router.PushScreenMsg{Screen: stats.New(opts.Services)})

	_, cmd := update(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestEscReachesQuiz(t *testing.T) {
	opts, _ := testOptions("science")
	m := newAppModel(opts)
	m, _ = update(t, m, m.start())
	if _, ok := m.router.Active().(*sessionscreen.SessionScreen); !ok {
		t.Fatalf("active = %T, want quiz", m.router.Active())
	}

	m, _ = update(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if m.router.Depth() != 2 {
		t.Fatalf("depth = %d, quiz should stay open", m.router.Depth())
	}
	if !strings.Contains(m.router.View(100, 30), "End quiz early?") {
		t.Error("expected quit confirmation")
	}
}

func TestClockEventsDriveCountdown(t *testing.T) {
	opts, fake := testOptions("science")
	m := newAppModel(opts)
	m, _ = update(t, m, m.start())

	fake.Advance(time.Second)
	msg := m.waitForClock()()
	if _, ok := msg.(clockEventMsg); !ok {
		t.Fatalf("expected clockEventMsg, got %T", msg)
	}
	m, cmd := update(t, m, msg)
	if cmd == nil {
		t.Error("expected the loop to be re-armed")
	}

	want := fmt.Sprintf("⏱ %2ds", questionbank.Easy.SecondsPerQuestion()-1)
	if !strings.Contains(m.router.View(100, 30), want) {
		t.Errorf("view missing %q", want)
	}
}
