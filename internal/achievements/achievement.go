// Package achievements keeps the player's lifetime counters and unlocks
// achievements when a counter reaches its threshold.
package achievements

// Achievement is a milestone on one lifetime counter.
type Achievement struct {
	ID          string
	Title       string
	Description string
	Threshold   int
	Type        Type
}

// Catalogue returns every achievement in display order.
func Catalogue() []Achievement {
	return []Achievement{
		{ID: "completed_1", Title: "Beginner", Description: "Complete your first quiz", Threshold: 1, Type: TypeCompletedQuizzes},
		{ID: "completed_5", Title: "Learner", Description: "Complete 5 quizzes", Threshold: 5, Type: TypeCompletedQuizzes},
		{ID: "completed_10", Title: "Persistent", Description: "Complete 10 quizzes", Threshold: 10, Type: TypeCompletedQuizzes},
		{ID: "correct_10", Title: "Clever", Description: "Answer 10 questions correctly", Threshold: 10, Type: TypeCorrectAnswers},
		{ID: "correct_50", Title: "Scholar", Description: "Answer 50 questions correctly", Threshold: 50, Type: TypeCorrectAnswers},
		{ID: "score_10", Title: "Ace", Description: "Score 10 in a single quiz", Threshold: 10, Type: TypeHighScore},
	}
}

// Counters are the lifetime statistics achievements are measured on.
type Counters struct {
	HighScore        int
	CompletedQuizzes int
	CorrectAnswers   int
	WrongAnswers     int
}

// Value returns the counter an achievement type is measured on.
func (c Counters) Value(t Type) int {
	switch t {
	case TypeCompletedQuizzes:
		return c.CompletedQuizzes
	case TypeCorrectAnswers:
		return c.CorrectAnswers
	case TypeHighScore:
		return c.HighScore
	default:
		return 0
	}
}

// Progress returns how far c is towards a, clamped to [0,1].
func (a Achievement) Progress(c Counters) float64 {
	if a.Threshold <= 0 {
		return 1
	}
	p := float64(c.Value(a.Type)) / float64(a.Threshold)
	if p > 1 {
		return 1
	}
	return p
}

// Status pairs an achievement with its unlock state.
type Status struct {
	Achievement
	Unlocked bool
}
