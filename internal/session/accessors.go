package session

import (
	"github.com/abhisek/trivia/internal/questionbank"
)

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// CategoryID returns the requested category.
func (s *Session) CategoryID() string { return s.categoryID }

// Difficulty returns the session difficulty.
func (s *Session) Difficulty() questionbank.Difficulty { return s.difficulty }

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Index returns the zero-based position of the current question.
func (s *Session) Index() int { return s.index }

// Total returns the number of questions in the session.
func (s *Session) Total() int { return len(s.questions) }

// Score returns the number of points earned so far.
func (s *Session) Score() int { return s.score }

// Correct returns the number of correct answers so far.
func (s *Session) Correct() int { return s.correct }

// Wrong returns the number of wrong answers and timeouts so far.
func (s *Session) Wrong() int { return s.wrong }

// Skipped returns the number of skipped questions so far.
func (s *Session) Skipped() int { return s.skipped }

// Remaining returns the seconds left on the current question.
func (s *Session) Remaining() int { return s.remaining }

// TimeFraction returns Remaining as a fraction of the full countdown.
func (s *Session) TimeFraction() float64 {
	full := s.difficulty.SecondsPerQuestion()
	if full == 0 {
		return 0
	}
	return float64(s.remaining) / float64(full)
}

// Current returns the question being shown, if any.
func (s *Session) Current() (questionbank.Question, bool) {
	if s.phase != PhaseInProgress && s.phase != PhaseAnswered {
		return questionbank.Question{}, false
	}
	return s.questions[s.index], true
}

// Hidden reports whether option i was removed by 50:50.
func (s *Session) Hidden(i int) bool {
	if i < 0 || i >= questionbank.OptionCount {
		return false
	}
	return s.hidden[i]
}

// HintShown reports whether a hint was used on the current question.
func (s *Session) HintShown() bool { return s.hintShown }

// FiftyFiftyUsed reports whether 50:50 was used on the current question.
func (s *Session) FiftyFiftyUsed() bool { return s.fiftyUsed }

// Feedback returns how the current question was resolved while the
// session is in PhaseAnswered.
func (s *Session) Feedback() (Feedback, bool) {
	if s.phase != PhaseAnswered || s.feedback == nil {
		return Feedback{}, false
	}
	return *s.feedback, true
}

// Summary returns the completion summary once the session is completed.
func (s *Session) Summary() (Summary, bool) {
	if s.summary == nil {
		return Summary{}, false
	}
	return *s.summary, true
}

// IsLast reports whether the current question is the final one.
func (s *Session) IsLast() bool {
	return s.index == len(s.questions)-1
}
