// Package daily gates the daily challenge: one mixed-category quiz per
// calendar day, tracked by the time it was last started.
package daily

import (
	"context"
	"errors"
	"time"

	"github.com/abhisek/trivia/internal/clock"
	"github.com/abhisek/trivia/internal/logging"
	"github.com/abhisek/trivia/internal/store"
)

// Namespace is the preference namespace holding the last start time.
const Namespace = "daily_challenge"

// lastKey stores the start time in Unix milliseconds.
const lastKey = "last_challenge_date"

// ErrAlreadyPlayed is returned when today's challenge was already started.
var ErrAlreadyPlayed = errors.New("daily challenge already played today")

// Challenge tracks whether today's challenge is still open.
type Challenge struct {
	prefs *store.Prefs
	clock clock.Clock
}

// New returns the Challenge stored in kv. A nil clk uses clock.Real.
func New(kv store.KV, clk clock.Clock) *Challenge {
	if clk == nil {
		clk = clock.Real{}
	}
	return &Challenge{prefs: store.NewPrefs(kv, Namespace), clock: clk}
}

// LastPlayed returns when the challenge was last started, and false if
// it never was.
func (c *Challenge) LastPlayed(ctx context.Context) (time.Time, bool) {
	ms := c.prefs.Int(ctx, lastKey, 0)
	if ms <= 0 {
		return time.Time{}, false
	}
	return time.UnixMilli(int64(ms)), true
}

// Available reports whether today's challenge has not been started yet.
func (c *Challenge) Available(ctx context.Context) bool {
	last, ok := c.LastPlayed(ctx)
	if !ok {
		return true
	}
	return !SameDay(last, c.clock.Now())
}

// Claim marks today's challenge as started. It fails with
// ErrAlreadyPlayed when it already was.
func (c *Challenge) Claim(ctx context.Context) error {
	if !c.Available(ctx) {
		return ErrAlreadyPlayed
	}
	now := c.clock.Now()
	if err := c.prefs.SetInt(ctx, lastKey, int(now.UnixMilli())); err != nil {
		return err
	}
	logging.WithContext(ctx).WithField("date", now.Format(time.DateOnly)).Info("daily challenge claimed")
	return nil
}

// Reset forgets the last start so the challenge opens again.
func (c *Challenge) Reset(ctx context.Context) error {
	return c.prefs.Clear(ctx)
}

// NextOpen returns the local midnight after now.
func (c *Challenge) NextOpen() time.Time {
	now := c.clock.Now()
	y, m, d := now.Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, now.Location())
}

// SameDay reports whether a and b fall on the same calendar day in b's
// location.
func SameDay(a, b time.Time) bool {
	a = a.In(b.Location())
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
