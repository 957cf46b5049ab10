// Package session implements the quiz session state machine: question
// progression, the per-question countdown, scoring and helper use.
//
// A Session is not safe for concurrent use. Timer callbacks must be
// delivered on the goroutine that drives the session; clock.Loop does
// that for the terminal UI and clock.Fake for tests.
package session

import (
	"context"
	"math/rand/v2"
	"sort"
	"time"

	"github.com/abhisek/trivia/internal/clock"
	"github.com/abhisek/trivia/internal/helpers"
	"github.com/abhisek/trivia/internal/logging"
	"github.com/abhisek/trivia/internal/questionbank"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Deps are the collaborators a session needs.
type Deps struct {
	Bank   QuestionSource
	Budget HelperBudget
	// Clock defaults to clock.Real.
	Clock clock.Clock
	// Rand picks the options removed by 50:50. Defaults to a time-seeded source.
	Rand *rand.Rand
	// OnComplete is called once when the session completes.
	OnComplete func(Summary)
}

// Session is one run through a set of questions.
type Session struct {
	deps       Deps
	id         string
	categoryID string
	difficulty questionbank.Difficulty
	log        logrus.FieldLogger

	phase     Phase
	questions []questionbank.Question
	index     int
	score     int
	correct   int
	wrong     int
	skipped   int

	remaining int
	timer     clock.Timer
	// gen invalidates ticks scheduled for an earlier question.
	gen int

	hidden    [questionbank.OptionCount]bool
	fiftyUsed bool
	hintShown bool
	feedback  *Feedback

	startedAt   time.Time
	completedAt time.Time
	summary     *Summary
}

// New creates a session for categoryID at difficulty d.
func New(deps Deps, categoryID string, d questionbank.Difficulty) *Session {
	if deps.Clock == nil {
		deps.Clock = clock.Real{}
	}
	if deps.Rand == nil {
		seed := uint64(time.Now().UnixNano())
		deps.Rand = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
	return &Session{
		deps:       deps,
		id:         uuid.New().String(),
		categoryID: categoryID,
		difficulty: d,
		log:        logging.WithContext(context.Background()),
	}
}

// Start loads the questions and opens the first one. When no questions
// are available the session goes straight to PhaseCompleted with zero
// counts and ErrNoQuestions is returned; no bonus is granted and
// OnComplete is not called.
func (s *Session) Start(ctx context.Context) error {
	if s.phase != PhaseNotStarted {
		return ErrAlreadyStarted
	}
	s.log = logging.WithContext(ctx).WithFields(logrus.Fields{
		"session_id": s.id,
		"category":   s.categoryID,
		"difficulty": s.difficulty,
	})

	s.startedAt = s.deps.Clock.Now()
	if s.deps.Bank != nil {
		s.questions = s.deps.Bank.QuestionsFor(s.categoryID, s.difficulty)
	}

	if len(s.questions) == 0 {
		s.phase = PhaseCompleted
		s.completedAt = s.startedAt
		sum := buildSummary(s)
		s.summary = &sum
		s.log.Warn("no questions available")
		return ErrNoQuestions
	}

	s.log.WithField("questions", len(s.questions)).Info("session started")
	s.openQuestion()
	return nil
}

// openQuestion resets per-question state and arms the countdown.
func (s *Session) openQuestion() {
	s.phase = PhaseInProgress
	s.hidden = [questionbank.OptionCount]bool{}
	s.fiftyUsed = false
	s.hintShown = false
	s.feedback = nil
	s.remaining = s.difficulty.SecondsPerQuestion()
	s.gen++
	s.arm()
}

// arm schedules the next countdown tick.
func (s *Session) arm() {
	gen := s.gen
	s.timer = s.deps.Clock.AfterFunc(time.Second, func() { s.tick(gen) })
}

func (s *Session) stopTimer() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (s *Session) tick(gen int) {
	if gen != s.gen || s.phase != PhaseInProgress {
		return
	}
	s.remaining--
	if s.remaining > 0 {
		s.arm()
		return
	}
	s.remaining = 0
	s.timer = nil
	s.wrong++
	s.phase = PhaseAnswered
	q := s.questions[s.index]
	s.feedback = &Feedback{Choice: -1, TimedOut: true, Answer: q.CorrectIndex}
	s.log.WithField("question_id", q.ID).Debug("question timed out")
}

// Submit answers the current question with option. ok is false when no
// question is open or the option is out of range or hidden.
func (s *Session) Submit(option int) (correct bool, ok bool) {
	if s.phase != PhaseInProgress {
		return false, false
	}
	if option < 0 || option >= questionbank.OptionCount || s.hidden[option] {
		return false, false
	}
	s.stopTimer()

	q := s.questions[s.index]
	correct = q.IsCorrect(option)
	if correct {
		s.score++
		s.correct++
	} else {
		s.wrong++
	}
	s.phase = PhaseAnswered
	s.feedback = &Feedback{Choice: option, Correct: correct, Answer: q.CorrectIndex}
	s.log.WithFields(logrus.Fields{
		"question_id": q.ID,
		"correct":     correct,
	}).Debug("answer submitted")
	return correct, true
}

// Advance moves past an answered question. It reports false unless the
// session is in PhaseAnswered.
func (s *Session) Advance(ctx context.Context) bool {
	if s.phase != PhaseAnswered {
		return false
	}
	s.next(ctx)
	return true
}

func (s *Session) next(ctx context.Context) {
	s.index++
	if s.index >= len(s.questions) {
		s.complete(ctx)
		return
	}
	s.openQuestion()
}

// UseHint spends a hint and reveals the correct option of the open
// question. Asking again on the same question returns the revealed
// option without spending another hint.
func (s *Session) UseHint(ctx context.Context) (int, bool) {
	if s.phase != PhaseInProgress {
		return 0, false
	}
	q := s.questions[s.index]
	if s.hintShown {
		return q.CorrectIndex, true
	}
	if !s.useHelper(ctx, helpers.Hint) {
		return 0, false
	}
	s.hintShown = true
	return q.CorrectIndex, true
}

// UseFiftyFifty spends a 50:50 and hides two of the three wrong options
// of the open question, chosen uniformly at random. It can be used once
// per question. The hidden indices are returned in ascending order.
func (s *Session) UseFiftyFifty(ctx context.Context) ([]int, bool) {
	if s.phase != PhaseInProgress || s.fiftyUsed {
		return nil, false
	}
	if !s.useHelper(ctx, helpers.FiftyFifty) {
		return nil, false
	}
	q := s.questions[s.index]
	wrong := make([]int, 0, questionbank.OptionCount-1)
	for i := 0; i < questionbank.OptionCount; i++ {
		if i != q.CorrectIndex {
			wrong = append(wrong, i)
		}
	}
	s.deps.Rand.Shuffle(len(wrong), func(i, j int) {
		wrong[i], wrong[j] = wrong[j], wrong[i]
	})
	removed := wrong[:2]
	sort.Ints(removed)
	for _, i := range removed {
		s.hidden[i] = true
	}
	s.fiftyUsed = true
	return append([]int(nil), removed...), true
}

// UseSkip spends a skip and moves to the next question without touching
// the score. Skipping the last question completes the session.
func (s *Session) UseSkip(ctx context.Context) bool {
	if s.phase != PhaseInProgress {
		return false
	}
	if !s.useHelper(ctx, helpers.Skip) {
		return false
	}
	s.stopTimer()
	s.skipped++
	s.next(ctx)
	return true
}

func (s *Session) useHelper(ctx context.Context, k helpers.Kind) bool {
	if s.deps.Budget == nil || !s.deps.Budget.Use(ctx, k) {
		s.log.WithField("kind", k).Debug("helper unavailable")
		return false
	}
	return true
}

// Abandon stops the countdown and ends the session without completing it.
func (s *Session) Abandon() {
	if s.phase == PhaseCompleted || s.phase == PhaseAbandoned {
		return
	}
	s.stopTimer()
	s.gen++
	s.phase = PhaseAbandoned
	s.log.WithField("index", s.index).Info("session abandoned")
}

func (s *Session) complete(ctx context.Context) {
	s.stopTimer()
	s.phase = PhaseCompleted
	s.completedAt = s.deps.Clock.Now()
	sum := buildSummary(s)

	if sum.Passed() && s.deps.Budget != nil {
		if err := s.deps.Budget.Grant(ctx, helpers.Hint, 1); err != nil {
			s.log.WithError(err).Error("grant bonus hint")
		} else {
			sum.BonusHint = true
		}
	}
	s.summary = &sum

	s.log.WithFields(logrus.Fields{
		"score":      sum.Score,
		"correct":    sum.Correct,
		"wrong":      sum.Wrong,
		"skipped":    sum.Skipped,
		"percentage": sum.Percentage,
	}).Info("session completed")

	if s.deps.OnComplete != nil {
		s.deps.OnComplete(sum)
	}
}
