package home

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/trivia/internal/game"
	"github.com/abhisek/trivia/internal/helpers"
	"github.com/abhisek/trivia/internal/questionbank"
	"github.com/abhisek/trivia/internal/results"
	"github.com/abhisek/trivia/internal/router"
	"github.com/abhisek/trivia/internal/screens/categories"
	"github.com/abhisek/trivia/internal/store"
	"github.com/abhisek/trivia/internal/ui/components"
)

func testServices() *game.Services {
	bank := questionbank.New([]questionbank.Question{{
		ID: "q1", Text: "Largest ocean?", CategoryID: "geography", Difficulty: questionbank.Easy,
		Options: [questionbank.OptionCount]string{"Pacific", "Atlantic", "Indian", "Arctic"},
	}})
	return game.NewServices(bank, store.NewMemory(), nil, nil)
}

func TestEmptyBankDisablesPlay(t *testing.T) {
	h := New(game.NewServices(questionbank.New(nil), store.NewMemory(), nil, nil))
	if h.menu.Selected != 1 {
		t.Errorf("Selected = %d, want HISTORY when there is nothing to play", h.menu.Selected)
	}
	if strings.Contains(h.View(120, 40), "▸ PLAY") {
		t.Error("PLAY should not be drawn as selected")
	}
}

func TestNewReadsDashboard(t *testing.T) {
	svc := testServices()
	ctx := context.Background()
	if _, err := svc.Achievements.RecordSession(ctx, 7, 7, 3); err != nil {
		t.Fatalf("RecordSession: %v", err)
	}

	h := New(svc)
	if h.bestScore != 7 {
		t.Errorf("bestScore = %d, want 7", h.bestScore)
	}
	if h.quizzes != 1 {
		t.Errorf("quizzes = %d, want 1", h.quizzes)
	}
	if h.hints != helpers.DefaultCount {
		t.Errorf("hints = %d, want %d", h.hints, helpers.DefaultCount)
	}
	if h.mood != components.MoodCurious || !h.dailyReady {
		t.Errorf("mood = %d, want curious while the daily challenge is open", h.mood)
	}
}

func TestResumeRefreshes(t *testing.T) {
	svc := testServices()
	ctx := context.Background()
	h := New(svc)
	if err := svc.Daily.Claim(ctx); err != nil {
		t.Fatalf("Claim: %v", err)
	}

	err := svc.Results.Record(ctx, results.QuizResult{
		CategoryID:     "science",
		Difficulty:     questionbank.Easy,
		Score:          9,
		CorrectAnswers: 9,
		WrongAnswers:   1,
		TotalQuestions: 10,
		Timestamp:      time.Now(),
	})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	h.Resume()
	if h.mood != components.MoodCelebrating {
		t.Errorf("mood = %d, want celebrating", h.mood)
	}

	for _, k := range helpers.AllKinds() {
		for svc.Budget.Use(ctx, k) {
		}
	}
	h.Resume()
	if h.mood != components.MoodAlert {
		t.Errorf("mood = %d, want alert", h.mood)
	}
	if h.hints != 0 {
		t.Errorf("hints = %d, want 0", h.hints)
	}
}

func TestPlayPushesCategories(t *testing.T) {
	h := New(testServices())
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected command")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	if _, ok := push.Screen.(*categories.CategoryScreen); !ok {
		t.Errorf("pushed %T, want categories", push.Screen)
	}
}

func TestViewShowsMenu(t *testing.T) {
	h := New(testServices())
	out := h.View(120, 40)
	for _, want := range []string{"PLAY", "HISTORY", "STATS", "ACHIEVEMENTS", "EXIT GAME", "BEST"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestPickMood(t *testing.T) {
	low := []results.QuizResult{{CorrectAnswers: 2, WrongAnswers: 8, TotalQuestions: 10}}
	mid := []results.QuizResult{{CorrectAnswers: 6, WrongAnswers: 4, TotalQuestions: 10}}
	high := []results.QuizResult{{CorrectAnswers: 9, WrongAnswers: 1, TotalQuestions: 10}}

	tests := []struct {
		name    string
		helpers int
		daily   bool
		recent  []results.QuizResult
		want    components.Mood
	}{
		{"no helpers beats everything", 0, true, high, components.MoodAlert},
		{"daily waiting", 3, true, low, components.MoodCurious},
		{"never played", 3, false, nil, components.MoodIdle},
		{"strong last quiz", 3, false, high, components.MoodCelebrating},
		{"weak last quiz", 3, false, low, components.MoodGloomy},
		{"middling last quiz", 3, false, mid, components.MoodIdle},
	}
	for _, tt := range tests {
		if got := pickMood(tt.helpers, tt.daily, tt.recent); got != tt.want {
			t.Errorf("%s: mood = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestViewCompactDropsMascot(t *testing.T) {
	h := New(testServices())
	if !strings.Contains(h.View(120, 40), "Today's challenge") {
		t.Error("roomy view should advertise the daily challenge")
	}
	small := h.View(80, 18)
	if strings.Contains(small, "Today's challenge") || strings.Contains(small, "◔ ◔") {
		t.Error("compact view should drop the mascot and daily banner")
	}
	if !strings.Contains(small, "PLAY") {
		t.Error("compact view lost the menu")
	}
}
