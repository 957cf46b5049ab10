package achievements

import (
	"context"
	"fmt"

	"github.com/abhisek/trivia/internal/logging"
	"github.com/abhisek/trivia/internal/store"
	"github.com/sirupsen/logrus"
)

const (
	// StatsNamespace holds the lifetime counters.
	StatsNamespace = "user_stats"
	// UnlockNamespace holds one boolean flag per achievement ID.
	UnlockNamespace = "achievements"

	keyHighScore = "high_score"
	keyCompleted = "completed_quizzes"
	keyCorrect   = "correct_answers"
	keyWrong     = "wrong_answers"
)

// Service tracks counters and achievement unlocks.
type Service struct {
	stats   *store.Prefs
	unlocks *store.Prefs
	catalog []Achievement
}

// NewService returns a Service stored in kv.
func NewService(kv store.KV) *Service {
	return &Service{
		stats:   store.NewPrefs(kv, StatsNamespace),
		unlocks: store.NewPrefs(kv, UnlockNamespace),
		catalog: Catalogue(),
	}
}

// Counters returns the lifetime counters.
func (s *Service) Counters(ctx context.Context) Counters {
	return Counters{
		HighScore:        s.stats.Int(ctx, keyHighScore, 0),
		CompletedQuizzes: s.stats.Int(ctx, keyCompleted, 0),
		CorrectAnswers:   s.stats.Int(ctx, keyCorrect, 0),
		WrongAnswers:     s.stats.Int(ctx, keyWrong, 0),
	}
}

// RecordSession folds a completed session into the counters and returns
// the achievements it unlocked.
func (s *Service) RecordSession(ctx context.Context, score, correct, wrong int) ([]Achievement, error) {
	c := s.Counters(ctx)
	if score > c.HighScore {
		c.HighScore = score
	}
	c.CompletedQuizzes++
	c.CorrectAnswers += correct
	c.WrongAnswers += wrong

	updates := []struct {
		key string
		val int
	}{
		{keyHighScore, c.HighScore},
		{keyCompleted, c.CompletedQuizzes},
		{keyCorrect, c.CorrectAnswers},
		{keyWrong, c.WrongAnswers},
	}
	for _, u := range updates {
		if err := s.stats.SetInt(ctx, u.key, u.val); err != nil {
			return nil, fmt.Errorf("update %s: %w", u.key, err)
		}
	}

	return s.Check(ctx)
}

// Check unlocks every achievement whose counter has reached its threshold
// and returns the ones unlocked by this call.
func (s *Service) Check(ctx context.Context) ([]Achievement, error) {
	c := s.Counters(ctx)
	var unlocked []Achievement
	for _, a := range s.catalog {
		if s.IsUnlocked(ctx, a.ID) || c.Value(a.Type) < a.Threshold {
			continue
		}
		if err := s.unlocks.SetBool(ctx, a.ID, true); err != nil {
			return unlocked, fmt.Errorf("unlock %s: %w", a.ID, err)
		}
		logging.WithContext(ctx).WithFields(logrus.Fields{
			"achievement": a.ID,
			"type":        a.Type,
		}).Info("achievement unlocked")
		unlocked = append(unlocked, a)
	}
	return unlocked, nil
}

// IsUnlocked reports whether the achievement with id is unlocked.
func (s *Service) IsUnlocked(ctx context.Context, id string) bool {
	return s.unlocks.Bool(ctx, id, false)
}

// All returns every achievement with its unlock state.
func (s *Service) All(ctx context.Context) []Status {
	out := make([]Status, 0, len(s.catalog))
	for _, a := range s.catalog {
		out = append(out, Status{Achievement: a, Unlocked: s.IsUnlocked(ctx, a.ID)})
	}
	return out
}

// Unlocked returns the unlocked achievements.
func (s *Service) Unlocked(ctx context.Context) []Achievement {
	var out []Achievement
	for _, st := range s.All(ctx) {
		if st.Unlocked {
			out = append(out, st.Achievement)
		}
	}
	return out
}

// ResetStats clears the lifetime counters.
func (s *Service) ResetStats(ctx context.Context) error {
	return s.stats.Clear(ctx)
}

// ResetUnlocks locks every achievement again.
func (s *Service) ResetUnlocks(ctx context.Context) error {
	return s.unlocks.Clear(ctx)
}

// Reset clears the counters and every unlock.
func (s *Service) Reset(ctx context.Context) error {
	if err := s.ResetStats(ctx); err != nil {
		return err
	}
	return s.ResetUnlocks(ctx)
}
