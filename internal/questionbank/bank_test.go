package questionbank

import (
	"fmt"
	"math/rand/v2"
	"testing"
)

func seeded() Option {
	return WithRand(rand.New(rand.NewPCG(1, 2)))
}

func makeQuestions(category string, d Difficulty, n int) []Question {
	qs := make([]Question, n)
	for i := range qs {
		qs[i] = Question{
			ID:           fmt.Sprintf("%s-%s-%d", category, d, i),
			Text:         fmt.Sprintf("Question %d?", i),
			Options:      [OptionCount]string{"a", "b", "c", "d"},
			CorrectIndex: i % OptionCount,
			CategoryID:   category,
			Difficulty:   d,
		}
	}
	return qs
}

func ids(qs []Question) map[string]bool {
	m := make(map[string]bool, len(qs))
	for _, q := range qs {
		m[q.ID] = true
	}
	return m
}

func TestQuestionsForFiltersAndCaps(t *testing.T) {
	var qs []Question
	qs = append(qs, makeQuestions("science", Easy, 12)...)
	qs = append(qs, makeQuestions("science", Hard, 3)...)
	b := New(qs, seeded())

	got := b.QuestionsFor("science", Easy)
	if len(got) != Easy.QuestionCount() {
		t.Fatalf("len = %d, want %d", len(got), Easy.QuestionCount())
	}
	for _, q := range got {
		if q.Difficulty != Easy || q.CategoryID != "science" {
			t.Errorf("unexpected question %+v", q)
		}
	}
	if len(ids(got)) != len(got) {
		t.Error("selection contains duplicates")
	}

	hard := b.QuestionsFor("science", Hard)
	if len(hard) != 3 {
		t.Errorf("hard len = %d, want 3 (fewer than cap)", len(hard))
	}
}

func TestQuestionsForDifficultyFallback(t *testing.T) {
	b := New(makeQuestions("art", Easy, 4), seeded())

	got := b.QuestionsFor("art", Hard)
	if len(got) != 4 {
		t.Fatalf("len = %d, want whole category (4)", len(got))
	}
}

func TestQuestionsForCategoryFallback(t *testing.T) {
	b := New(makeQuestions(DefaultCategoryID, Medium, 10), seeded())

	got := b.QuestionsFor("sports", Medium)
	if len(got) != Medium.QuestionCount() {
		t.Fatalf("len = %d, want %d", len(got), Medium.QuestionCount())
	}
	for _, q := range got {
		if q.CategoryID != DefaultCategoryID {
			t.Errorf("expected fallback to general, got %q", q.CategoryID)
		}
	}
}

func TestQuestionsForEmpty(t *testing.T) {
	b := New(makeQuestions("history", Easy, 3), seeded())
	if got := b.QuestionsFor("sports", Easy); len(got) != 0 {
		t.Errorf("expected empty selection, got %d", len(got))
	}
	if got := New(nil).QuestionsFor("general", Easy); len(got) != 0 {
		t.Errorf("expected empty selection from empty bank, got %d", len(got))
	}
}

func TestQuestionsForShuffles(t *testing.T) {
	b := New(makeQuestions("general", Hard, 30), seeded())
	first := b.QuestionsFor("general", Hard)
	second := b.QuestionsFor("general", Hard)

	same := true
	for i := range first {
		if first[i].ID != second[i].ID {
			same = false
			break
		}
	}
	if same {
		t.Error("expected two draws to differ")
	}
}

func TestQuestionsForDoesNotMutateBank(t *testing.T) {
	qs := makeQuestions("general", Easy, 6)
	b := New(qs, seeded())
	_ = b.QuestionsFor("general", Easy)

	all := b.All()
	for i := range qs {
		if all[i].ID != qs[i].ID {
			t.Fatalf("bank order changed at %d", i)
		}
	}
}

func TestCategoryLookup(t *testing.T) {
	b := New(nil)
	c, ok := b.Category("science")
	if !ok || c.Name != "Science" {
		t.Errorf("Category(science) = %+v, %v", c, ok)
	}
	if _, ok := b.Category("cooking"); ok {
		t.Error("expected unknown category")
	}
	if b.CategoryName("cooking") != "cooking" {
		t.Error("CategoryName should echo unknown ids")
	}
	if len(b.Categories()) != 10 {
		t.Errorf("expected 10 categories, got %d", len(b.Categories()))
	}
}

func TestDailyDrawsFromEveryCategory(t *testing.T) {
	var qs []Question
	qs = append(qs, makeQuestions("science", Easy, 4)...)
	qs = append(qs, makeQuestions("history", Hard, 4)...)
	qs = append(qs, makeQuestions("art", Medium, 4)...)
	b := New(qs, seeded())

	got := b.QuestionsFor(DailyCategoryID, Hard)
	if len(got) != DailyCount {
		t.Fatalf("len = %d, want %d", len(got), DailyCount)
	}
	if len(ids(got)) != DailyCount {
		t.Error("daily selection contains duplicates")
	}

	if got := b.Daily(50); len(got) != 12 {
		t.Errorf("Daily(50) len = %d, want whole bank (12)", len(got))
	}
	if got := New(nil).Daily(DailyCount); got != nil {
		t.Errorf("empty bank Daily = %v, want nil", got)
	}
	if name := b.CategoryName(DailyCategoryID); name != DailyCategoryName {
		t.Errorf("CategoryName = %q", name)
	}
}
