package results

import (
	"context"
	"fmt"
	"sort"

	"github.com/abhisek/trivia/internal/logging"
	"github.com/abhisek/trivia/internal/questionbank"
	"github.com/abhisek/trivia/internal/store"
	"github.com/sirupsen/logrus"
)

const (
	// Namespace is the preference namespace holding the history.
	Namespace = "quiz_results_history"

	historyKey = "results_list"

	// MaxResults bounds the stored history.
	MaxResults = 100
)

// Recorder stores completed quiz results, newest first.
type Recorder struct {
	prefs *store.Prefs
	max   int
}

// NewRecorder returns a Recorder stored in kv.
func NewRecorder(kv store.KV) *Recorder {
	return &Recorder{prefs: store.NewPrefs(kv, Namespace), max: MaxResults}
}

// Record prepends r to the history and drops the oldest entries beyond
// MaxResults.
func (rec *Recorder) Record(ctx context.Context, r QuizResult) error {
	history := rec.All(ctx)
	history = append([]QuizResult{r}, history...)
	if len(history) > rec.max {
		history = history[:rec.max]
	}
	if err := rec.prefs.SetJSON(ctx, historyKey, history); err != nil {
		return fmt.Errorf("record result: %w", err)
	}
	logging.WithContext(ctx).WithFields(logrus.Fields{
		"result_id": r.ID,
		"category":  r.CategoryID,
		"score":     r.Score,
		"history":   len(history),
	}).Info("result recorded")
	return nil
}

// All returns the history, newest first. A corrupt history reads as empty.
func (rec *Recorder) All(ctx context.Context) []QuizResult {
	var history []QuizResult
	if !rec.prefs.JSON(ctx, historyKey, &history) {
		return nil
	}
	return history
}

// Recent returns at most n of the newest results.
func (rec *Recorder) Recent(ctx context.Context, n int) []QuizResult {
	history := rec.All(ctx)
	if n >= 0 && len(history) > n {
		history = history[:n]
	}
	return history
}

// Query narrows the history. Zero fields match everything.
type Query struct {
	CategoryID string
	Difficulty questionbank.Difficulty
	// Limit caps the result count when positive.
	Limit int
}

// Find returns the results matching every set field of q, newest first.
func (rec *Recorder) Find(ctx context.Context, q Query) []QuizResult {
	out := filter(rec.All(ctx), func(r QuizResult) bool {
		if q.CategoryID != "" && r.CategoryID != q.CategoryID {
			return false
		}
		return q.Difficulty == "" || r.Difficulty == q.Difficulty
	})
	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out
}

// Top returns the n highest-scoring results. Ties keep history order.
func (rec *Recorder) Top(ctx context.Context, n int) []QuizResult {
	history := rec.All(ctx)
	sort.SliceStable(history, func(i, j int) bool {
		return history[i].Score > history[j].Score
	})
	if n >= 0 && len(history) > n {
		history = history[:n]
	}
	return history
}

// Aggregate computes statistics over the whole history.
func (rec *Recorder) Aggregate(ctx context.Context) Stats {
	return Aggregate(rec.All(ctx))
}

// Clear removes the history.
func (rec *Recorder) Clear(ctx context.Context) error {
	return rec.prefs.Clear(ctx)
}

func filter(history []QuizResult, keep func(QuizResult) bool) []QuizResult {
	var out []QuizResult
	for _, r := range history {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}
