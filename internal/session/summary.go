package session

import (
	"time"

	"github.com/abhisek/trivia/internal/questionbank"
)

// Summary is the outcome of a completed session.
type Summary struct {
	SessionID      string
	CategoryID     string
	Difficulty     questionbank.Difficulty
	Score          int
	Correct        int
	Wrong          int
	Skipped        int
	TotalQuestions int
	StartedAt      time.Time
	CompletedAt    time.Time
	Elapsed        time.Duration
	// Percentage is correct answers over non-skipped questions, 0..100.
	Percentage float64
	// WeightedScore is Score times the difficulty's multiplier.
	WeightedScore float64
	// BonusHint is true when the session earned an extra hint.
	BonusHint bool
}

// Answered returns the number of questions answered or timed out.
func (s Summary) Answered() int {
	return s.Correct + s.Wrong
}

// Passed reports whether the percentage reached BonusThreshold.
func (s Summary) Passed() bool {
	return s.Percentage >= BonusThreshold
}

// buildSummary computes the summary from final counters. Skipped
// questions count in neither the numerator nor the denominator.
func buildSummary(s *Session) Summary {
	sum := Summary{
		SessionID:      s.id,
		CategoryID:     s.categoryID,
		Difficulty:     s.difficulty,
		Score:          s.score,
		Correct:        s.correct,
		Wrong:          s.wrong,
		Skipped:        s.skipped,
		TotalQuestions: len(s.questions),
		StartedAt:      s.startedAt,
		CompletedAt:    s.completedAt,
		Elapsed:        s.completedAt.Sub(s.startedAt),
		WeightedScore:  float64(s.score) * s.difficulty.ScoreMultiplier(),
	}
	if denom := len(s.questions) - s.skipped; denom > 0 {
		sum.Percentage = float64(s.correct) / float64(denom) * 100
	}
	return sum
}
