// Package questionbank holds the trivia questions and selects the set
// served in one quiz session.
package questionbank

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Bank is an immutable collection of questions indexed by category.
type Bank struct {
	questions  []Question
	byCategory map[string][]Question
	categories []Category

	mu  sync.Mutex
	rng *rand.Rand
}

// Option configures a Bank.
type Option func(*Bank)

// WithRand sets the random source used to shuffle selections.
func WithRand(r *rand.Rand) Option {
	return func(b *Bank) { b.rng = r }
}

// WithCategories replaces the default category catalogue.
func WithCategories(cats []Category) Option {
	return func(b *Bank) { b.categories = cats }
}

// New builds a Bank over questions.
func New(questions []Question, opts ...Option) *Bank {
	b := &Bank{
		questions:  append([]Question(nil), questions...),
		byCategory: make(map[string][]Question),
		categories: DefaultCategories(),
	}
	for _, q := range b.questions {
		b.byCategory[q.CategoryID] = append(b.byCategory[q.CategoryID], q)
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.rng == nil {
		seed := uint64(time.Now().UnixNano())
		b.rng = rand.New(rand.NewPCG(seed, seed>>1|1))
	}
	return b
}

// Len returns the total number of questions.
func (b *Bank) Len() int {
	return len(b.questions)
}

// All returns every question in load order.
func (b *Bank) All() []Question {
	return append([]Question(nil), b.questions...)
}

// Count returns the number of questions in a category.
func (b *Bank) Count(categoryID string) int {
	return len(b.byCategory[categoryID])
}

// Categories returns the category catalogue.
func (b *Bank) Categories() []Category {
	return append([]Category(nil), b.categories...)
}

// Category looks up a category by ID.
func (b *Bank) Category(id string) (Category, bool) {
	for _, c := range b.categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// CategoryName returns the display name for id, or id itself.
func (b *Bank) CategoryName(id string) string {
	if id == DailyCategoryID {
		return DailyCategoryName
	}
	if c, ok := b.Category(id); ok {
		return c.Name
	}
	return id
}

// QuestionsFor selects the questions for one session.
//
// The category's questions are used, or the default category's when the
// category has none. Those are narrowed to the difficulty unless that
// leaves nothing, in which case the whole category set is kept. The
// result is shuffled and capped at the difficulty's question count. It
// is empty only when neither the category nor the default category has
// any questions.
//
// DailyCategoryID ignores the difficulty and returns Daily(DailyCount).
func (b *Bank) QuestionsFor(categoryID string, d Difficulty) []Question {
	if categoryID == DailyCategoryID {
		return b.Daily(DailyCount)
	}

	pool := b.byCategory[categoryID]
	if len(pool) == 0 {
		pool = b.byCategory[DefaultCategoryID]
	}
	if len(pool) == 0 {
		return nil
	}

	var selected []Question
	for _, q := range pool {
		if q.Difficulty == d {
			selected = append(selected, q)
		}
	}
	if len(selected) == 0 {
		selected = append([]Question(nil), pool...)
	}

	b.shuffle(selected)
	if n := d.QuestionCount(); len(selected) > n {
		selected = selected[:n]
	}
	return selected
}

// Daily returns n questions drawn from the whole bank in random order,
// or all of them when the bank holds fewer.
func (b *Bank) Daily(n int) []Question {
	if len(b.questions) == 0 || n <= 0 {
		return nil
	}
	selected := b.All()
	b.shuffle(selected)
	if len(selected) > n {
		selected = selected[:n]
	}
	return selected
}

func (b *Bank) shuffle(qs []Question) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.rng.Shuffle(len(qs), func(i, j int) {
		qs[i], qs[j] = qs[j], qs[i]
	})
}
