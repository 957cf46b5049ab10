package helpers

import (
	"context"
	"errors"
	"testing"

	"github.com/abhisek/trivia/internal/store"
)

func TestDefaults(t *testing.T) {
	ctx := context.Background()
	b := NewBudget(store.NewMemory())

	for _, k := range AllKinds() {
		if got := b.Remaining(ctx, k); got != DefaultCount {
			t.Errorf("Remaining(%s) = %d, want %d", k, got, DefaultCount)
		}
	}
}

func TestUseUntilExhausted(t *testing.T) {
	ctx := context.Background()
	b := NewBudget(store.NewMemory())

	for i := 0; i < DefaultCount; i++ {
		if !b.Use(ctx, Hint) {
			t.Fatalf("Use #%d failed", i+1)
		}
	}
	if b.Use(ctx, Hint) {
		t.Error("Use should fail when exhausted")
	}
	if got := b.Remaining(ctx, Hint); got != 0 {
		t.Errorf("Remaining = %d, want 0", got)
	}
	// Other kinds are untouched.
	if got := b.Remaining(ctx, Skip); got != DefaultCount {
		t.Errorf("Remaining(skip) = %d, want %d", got, DefaultCount)
	}
}

func TestGrantAndReset(t *testing.T) {
	ctx := context.Background()
	b := NewBudget(store.NewMemory())

	b.Use(ctx, FiftyFifty)
	if err := b.Grant(ctx, FiftyFifty, 2); err != nil {
		t.Fatal(err)
	}
	if got := b.Remaining(ctx, FiftyFifty); got != 4 {
		t.Errorf("after grant = %d, want 4", got)
	}

	if err := b.Reset(ctx); err != nil {
		t.Fatal(err)
	}
	want := Counts{Hints: 3, FiftyFifty: 3, Skips: 3}
	if got := b.Counts(ctx); got != want {
		t.Errorf("Counts = %+v, want %+v", got, want)
	}
}

func TestUnknownKind(t *testing.T) {
	ctx := context.Background()
	b := NewBudget(store.NewMemory())

	if b.Use(ctx, Kind("teleport")) {
		t.Error("Use of unknown kind should fail")
	}
	if err := b.Grant(ctx, Kind("teleport"), 1); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("Grant unknown kind err = %v", err)
	}
	if _, err := ParseKind("teleport"); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("ParseKind err = %v", err)
	}
	if k, err := ParseKind("fifty_fifty"); err != nil || k != FiftyFifty {
		t.Errorf("ParseKind(fifty_fifty) = %q, %v", k, err)
	}
}

func TestCorruptCounterReadsDefault(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()
	kv.Set(ctx, Namespace+"/hints_remaining", "lots")
	kv.Set(ctx, Namespace+"/skip_remaining", "-4")

	b := NewBudget(kv)
	if got := b.Remaining(ctx, Hint); got != DefaultCount {
		t.Errorf("corrupt counter = %d, want %d", got, DefaultCount)
	}
	if got := b.Remaining(ctx, Skip); got != 0 {
		t.Errorf("negative counter = %d, want 0", got)
	}
}

func TestPersistsAcrossInstances(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()
	NewBudget(kv).Use(ctx, Skip)

	if got := NewBudget(kv).Remaining(ctx, Skip); got != DefaultCount-1 {
		t.Errorf("Remaining = %d, want %d", got, DefaultCount-1)
	}
}
