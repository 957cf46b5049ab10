package history

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"

	"github.com/abhisek/trivia/internal/game"
	"github.com/abhisek/trivia/internal/questionbank"
	"github.com/abhisek/trivia/internal/results"
	"github.com/abhisek/trivia/internal/router"
	"github.com/abhisek/trivia/internal/store"
)

func loadedScreen(t *testing.T, rs ...results.QuizResult) *HistoryScreen {
	t.Helper()
	svc := game.NewServices(questionbank.New(nil), store.NewMemory(), nil, nil)
	for _, r := range rs {
		if err := svc.Results.Record(context.Background(), r); err != nil {
			t.Fatal(err)
		}
	}
	s := New(svc)
	s.Update(s.Init()())
	return s
}

func result(id, name string, d questionbank.Difficulty, score int) results.QuizResult {
	return results.QuizResult{
		ID: id, CategoryID: strings.ToLower(name), CategoryName: name, Difficulty: d,
		Score: score, CorrectAnswers: score, WrongAnswers: 5 - score, TotalQuestions: 5,
		TimeSpentSecs: 75, Timestamp: time.Date(2025, 4, 2, 8, 0, 0, 0, time.UTC),
	}
}

func TestEmptyHistory(t *testing.T) {
	s := loadedScreen(t)
	if !strings.Contains(s.View(100, 30), "No quizzes yet") {
		t.Error("expected empty state")
	}
}

func TestListAndExpand(t *testing.T) {
	s := loadedScreen(t,
		result("r1", "Science", questionbank.Easy, 4),
		result("r2", "History", questionbank.Hard, 2),
	)

	view := s.View(120, 30)
	if !strings.Contains(view, "History") || !strings.Contains(view, "Science") {
		t.Fatalf("expected both results in view")
	}

	// Newest first: r2 is selected.
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !s.expanded["r2"] {
		t.Error("expected r2 expanded")
	}
	if !strings.Contains(s.View(120, 30), "wrong 3") {
		t.Error("expected detail line")
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if s.selected != 1 {
		t.Errorf("selected = %d, want 1", s.selected)
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if s.selected != 1 {
		t.Errorf("selected moved past the end: %d", s.selected)
	}
}

func TestDifficultyFilter(t *testing.T) {
	s := loadedScreen(t,
		result("r1", "Science", questionbank.Easy, 4),
		result("r2", "History", questionbank.Hard, 2),
	)

	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	if filters[s.filter] != questionbank.Easy {
		t.Fatalf("filter = %q, want easy", filters[s.filter])
	}
	if v := s.visible(); len(v) != 1 || v[0].ID != "r1" {
		t.Errorf("visible = %v", v)
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	if len(s.visible()) != 0 {
		t.Error("expected no medium results")
	}
	if !strings.Contains(s.View(100, 30), "No quizzes at this difficulty") {
		t.Error("expected empty filter message")
	}
}

func TestEscPops(t *testing.T) {
	s := loadedScreen(t)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestCorruptHistoryWarnsThroughServicesLogger(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()
	if err := kv.Set(ctx, results.Namespace+"/results_list", "{not json"); err != nil {
		t.Fatal(err)
	}
	log, hook := logtest.NewNullLogger()
	svc := game.NewServices(questionbank.New(nil), kv, nil, log)

	s := New(svc)
	s.Update(s.Init()())

	if !strings.Contains(s.View(100, 30), "No quizzes yet") {
		t.Error("corrupt history should read as empty")
	}
	entry := hook.LastEntry()
	if entry == nil {
		t.Fatal("expected a warning on the services logger")
	}
	if entry.Level != logrus.WarnLevel {
		t.Errorf("level = %s, want warning", entry.Level)
	}
	if entry.Data["namespace"] != results.Namespace {
		t.Errorf("namespace field = %v", entry.Data["namespace"])
	}
}
