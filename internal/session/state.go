package session

import (
	"context"
	"errors"

	"github.com/abhisek/trivia/internal/helpers"
	"github.com/abhisek/trivia/internal/questionbank"
)

// Phase is the lifecycle phase of a quiz session.
type Phase int

const (
	PhaseNotStarted Phase = iota // Created, Start not yet called
	PhaseInProgress              // Current question is open and the countdown runs
	PhaseAnswered                // Current question answered or timed out
	PhaseCompleted               // Every question served; summary available
	PhaseAbandoned               // Player quit; nothing is recorded
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not_started"
	case PhaseInProgress:
		return "in_progress"
	case PhaseAnswered:
		return "answered"
	case PhaseCompleted:
		return "completed"
	case PhaseAbandoned:
		return "abandoned"
	default:
		return "unknown"
	}
}

// BonusThreshold is the percentage at or above which a completed
// session earns one extra hint.
const BonusThreshold = 80.0

var (
	// ErrNoQuestions is returned by Start when neither the category nor
	// the default category has questions.
	ErrNoQuestions = errors.New("no questions available")

	// ErrAlreadyStarted is returned by Start on a session that has left
	// PhaseNotStarted.
	ErrAlreadyStarted = errors.New("session already started")
)

// QuestionSource selects the questions for a session.
type QuestionSource interface {
	QuestionsFor(categoryID string, d questionbank.Difficulty) []questionbank.Question
}

// HelperBudget is the helper counter store the session spends from.
type HelperBudget interface {
	Use(ctx context.Context, k helpers.Kind) bool
	Grant(ctx context.Context, k helpers.Kind, n int) error
}

// Feedback describes how the last question was resolved.
type Feedback struct {
	// Choice is the submitted option, or -1 on timeout.
	Choice   int
	Correct  bool
	TimedOut bool
	// Answer is the correct option index, revealed once answered.
	Answer int
}
