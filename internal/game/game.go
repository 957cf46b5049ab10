// Package game wires the quiz core together: it builds sessions against
// the player's persisted state and files completed sessions into the
// history and achievement stores.
package game

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/trivia/internal/achievements"
	"github.com/abhisek/trivia/internal/clock"
	"github.com/abhisek/trivia/internal/daily"
	"github.com/abhisek/trivia/internal/helpers"
	"github.com/abhisek/trivia/internal/logging"
	"github.com/abhisek/trivia/internal/questionbank"
	"github.com/abhisek/trivia/internal/results"
	"github.com/abhisek/trivia/internal/session"
	"github.com/abhisek/trivia/internal/store"

	"github.com/sirupsen/logrus"
)

// Services bundles the long-lived collaborators of the app.
type Services struct {
	Bank         *questionbank.Bank
	Budget       *helpers.Budget
	Results      *results.Recorder
	Achievements *achievements.Service
	Daily        *daily.Challenge
	Clock        clock.Clock
	Log          logrus.FieldLogger
}

// NewServices builds Services over kv. A nil clk uses clock.Real and a
// nil log discards.
func NewServices(bank *questionbank.Bank, kv store.KV, clk clock.Clock, log logrus.FieldLogger) *Services {
	if clk == nil {
		clk = clock.Real{}
	}
	if log == nil {
		log = logging.Discard()
	}
	return &Services{
		Bank:         bank,
		Budget:       helpers.NewBudget(kv),
		Results:      results.NewRecorder(kv),
		Achievements: achievements.NewService(kv),
		Daily:        daily.New(kv, clk),
		Clock:        clk,
		Log:          log,
	}
}

// Context returns ctx carrying the services logger.
func (s *Services) Context(ctx context.Context) context.Context {
	return logging.NewContext(ctx, s.Log)
}

// NewSession creates an unstarted session. onComplete may be nil.
func (s *Services) NewSession(categoryID string, d questionbank.Difficulty, onComplete func(session.Summary)) *session.Session {
	return session.New(session.Deps{
		Bank:       s.Bank,
		Budget:     s.Budget,
		Clock:      s.Clock,
		OnComplete: onComplete,
	}, categoryID, d)
}

// ClaimDaily opens today's daily challenge. It fails with
// session.ErrNoQuestions when the bank is empty, leaving the day unclaimed,
// and with daily.ErrAlreadyPlayed when today's challenge was started.
func (s *Services) ClaimDaily(ctx context.Context) error {
	if s.Bank == nil || s.Bank.Len() == 0 {
		return session.ErrNoQuestions
	}
	if err := s.Daily.Claim(ctx); err != nil {
		if !errors.Is(err, daily.ErrAlreadyPlayed) {
			s.Log.WithError(err).Error("claim daily challenge")
		}
		return err
	}
	return nil
}

// NewDailySession creates the session for today's challenge. Call
// ClaimDaily first.
func (s *Services) NewDailySession(onComplete func(session.Summary)) *session.Session {
	return s.NewSession(questionbank.DailyCategoryID, questionbank.Medium, onComplete)
}

// Outcome is what a completed session produced.
type Outcome struct {
	Summary      session.Summary
	CategoryName string
	Result       results.QuizResult
	Unlocked     []achievements.Achievement
}

// Finish records a completed session in the history and the lifetime
// counters. The outcome is returned even when a write fails.
func (s *Services) Finish(ctx context.Context, sum session.Summary) (Outcome, error) {
	name := sum.CategoryID
	if s.Bank != nil {
		name = s.Bank.CategoryName(sum.CategoryID)
	}
	out := Outcome{
		Summary:      sum,
		CategoryName: name,
		Result:       results.FromSummary(sum, name),
	}

	log := s.Log.WithFields(logrus.Fields{
		"session_id": sum.SessionID,
		"category":   sum.CategoryID,
	})

	if err := s.Results.Record(ctx, out.Result); err != nil {
		log.WithError(err).Error("record result")
		return out, fmt.Errorf("record result: %w", err)
	}

	unlocked, err := s.Achievements.RecordSession(ctx, sum.Score, sum.Correct, sum.Wrong)
	out.Unlocked = unlocked
	if err != nil {
		log.WithError(err).Error("update achievements")
		return out, fmt.Errorf("update achievements: %w", err)
	}

	log.WithField("unlocked", len(unlocked)).Info("session filed")
	return out, nil
}

// ShareText renders a plain-text brag line for the outcome.
func (o Outcome) ShareText() string {
	var b strings.Builder
	b.WriteString("🎯 I just finished a Trivia quiz")
	if o.CategoryName != "" {
		fmt.Fprintf(&b, " in %s", o.CategoryName)
	}
	b.WriteString("!\n")
	fmt.Fprintf(&b, "✅ Score: %d of %d\n", o.Summary.Score, o.Summary.TotalQuestions)
	fmt.Fprintf(&b, "📊 Accuracy: %.1f%%", o.Summary.Percentage)
	for _, a := range o.Unlocked {
		fmt.Fprintf(&b, "\n🏆 Unlocked: %s", a.Title)
	}
	return b.String()
}
