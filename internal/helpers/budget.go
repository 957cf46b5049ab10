// Package helpers tracks the persisted budget of helper tools (hint,
// 50:50 and skip) a player can spend during quizzes.
package helpers

import (
	"context"
	"errors"
	"fmt"

	"github.com/abhisek/trivia/internal/logging"
	"github.com/abhisek/trivia/internal/store"
	"github.com/sirupsen/logrus"
)

// Namespace is the preference namespace holding the counters.
const Namespace = "quiz_helper"

// DefaultCount is the starting and reset value of every counter.
const DefaultCount = 3

// ErrUnknownKind is returned for helper kinds outside AllKinds.
var ErrUnknownKind = errors.New("unknown helper kind")

// Kind identifies a helper tool.
type Kind string

const (
	Hint       Kind = "hint"
	FiftyFifty Kind = "fifty_fifty"
	Skip       Kind = "skip"
)

// AllKinds returns every helper kind in display order.
func AllKinds() []Kind {
	return []Kind{Hint, FiftyFifty, Skip}
}

// ParseKind parses a kind name.
func ParseKind(s string) (Kind, error) {
	for _, k := range AllKinds() {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// key returns the preference key storing the counter for k.
func (k Kind) key() string {
	switch k {
	case Hint:
		return "hints_remaining"
	case FiftyFifty:
		return "fifty_fifty_remaining"
	case Skip:
		return "skip_remaining"
	default:
		return ""
	}
}

// DisplayName returns a human-readable label.
func (k Kind) DisplayName() string {
	switch k {
	case Hint:
		return "Hint"
	case FiftyFifty:
		return "50:50"
	case Skip:
		return "Skip"
	default:
		return string(k)
	}
}

// Icon returns the display icon for the helper.
func (k Kind) Icon() string {
	switch k {
	case Hint:
		return "💡"
	case FiftyFifty:
		return "✂"
	case Skip:
		return "⏭"
	default:
		return "•"
	}
}

// Counts is a snapshot of all counters.
type Counts struct {
	Hints      int
	FiftyFifty int
	Skips      int
}

// Of returns the count for k.
func (c Counts) Of(k Kind) int {
	switch k {
	case Hint:
		return c.Hints
	case FiftyFifty:
		return c.FiftyFifty
	case Skip:
		return c.Skips
	default:
		return 0
	}
}

// Total returns the helpers left across every kind.
func (c Counts) Total() int {
	return c.Hints + c.FiftyFifty + c.Skips
}

// Budget is the persisted helper budget. Counters never go negative.
type Budget struct {
	prefs *store.Prefs
}

// NewBudget returns a Budget stored in kv.
func NewBudget(kv store.KV) *Budget {
	return &Budget{prefs: store.NewPrefs(kv, Namespace)}
}

// Remaining returns the counter for k. Unknown kinds have zero remaining.
func (b *Budget) Remaining(ctx context.Context, k Kind) int {
	if k.key() == "" {
		return 0
	}
	n := b.prefs.Int(ctx, k.key(), DefaultCount)
	if n < 0 {
		return 0
	}
	return n
}

// Use decrements the counter for k if it is positive. It reports
// whether a helper was consumed.
func (b *Budget) Use(ctx context.Context, k Kind) bool {
	n := b.Remaining(ctx, k)
	if n <= 0 {
		return false
	}
	if err := b.prefs.SetInt(ctx, k.key(), n-1); err != nil {
		logging.WithContext(ctx).WithError(err).WithField("kind", k).Error("consume helper")
		return false
	}
	logging.WithContext(ctx).WithFields(logrus.Fields{
		"kind":      k,
		"remaining": n - 1,
	}).Debug("helper used")
	return true
}

// Grant adds n helpers of kind k.
func (b *Budget) Grant(ctx context.Context, k Kind, n int) error {
	if k.key() == "" {
		return fmt.Errorf("%w: %q", ErrUnknownKind, k)
	}
	if n <= 0 {
		return nil
	}
	total := b.Remaining(ctx, k) + n
	if err := b.prefs.SetInt(ctx, k.key(), total); err != nil {
		return fmt.Errorf("grant %s: %w", k, err)
	}
	logging.WithContext(ctx).WithFields(logrus.Fields{
		"kind":      k,
		"granted":   n,
		"remaining": total,
	}).Info("helper granted")
	return nil
}

// Reset restores every counter to DefaultCount.
func (b *Budget) Reset(ctx context.Context) error {
	for _, k := range AllKinds() {
		if err := b.prefs.SetInt(ctx, k.key(), DefaultCount); err != nil {
			return fmt.Errorf("reset %s: %w", k, err)
		}
	}
	return nil
}

// Counts returns all counters.
func (b *Budget) Counts(ctx context.Context) Counts {
	return Counts{
		Hints:      b.Remaining(ctx, Hint),
		FiftyFifty: b.Remaining(ctx, FiftyFifty),
		Skips:      b.Remaining(ctx, Skip),
	}
}
