// Package results keeps the bounded history of completed quizzes and
// derives aggregate statistics from it.
package results

import (
	"time"

	"github.com/abhisek/trivia/internal/questionbank"
	"github.com/abhisek/trivia/internal/session"
	"github.com/google/uuid"
)

// QuizResult is one completed quiz. Results are immutable once recorded.
type QuizResult struct {
	ID             string                  `json:"id"`
	SessionID      string                  `json:"sessionId,omitempty"`
	CategoryID     string                  `json:"categoryId"`
	CategoryName   string                  `json:"categoryName"`
	Difficulty     questionbank.Difficulty `json:"difficulty"`
	Score          int                     `json:"score"`
	CorrectAnswers int                     `json:"correctAnswers"`
	WrongAnswers   int                     `json:"wrongAnswers"`
	Skipped        int                     `json:"skipped"`
	TotalQuestions int                     `json:"totalQuestions"`
	TimeSpentSecs  int                     `json:"timeSpent"`
	Timestamp      time.Time               `json:"timestamp"`
}

// Percentage returns correct answers over non-skipped questions.
func (r QuizResult) Percentage() float64 {
	denom := r.TotalQuestions - r.Skipped
	if denom <= 0 {
		return 0
	}
	return float64(r.CorrectAnswers) / float64(denom) * 100
}

// FromSummary converts a session summary into a result.
func FromSummary(sum session.Summary, categoryName string) QuizResult {
	return QuizResult{
		ID:             uuid.New().String(),
		SessionID:      sum.SessionID,
		CategoryID:     sum.CategoryID,
		CategoryName:   categoryName,
		Difficulty:     sum.Difficulty,
		Score:          sum.Score,
		CorrectAnswers: sum.Correct,
		WrongAnswers:   sum.Wrong,
		Skipped:        sum.Skipped,
		TotalQuestions: sum.TotalQuestions,
		TimeSpentSecs:  int(sum.Elapsed.Seconds()),
		Timestamp:      sum.CompletedAt,
	}
}
