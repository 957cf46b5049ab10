package achievements

// Type identifies the lifetime counter an achievement is measured on.
type Type string

const (
	TypeCompletedQuizzes Type = "completed_quizzes"
	TypeCorrectAnswers   Type = "correct_answers"
	TypeHighScore        Type = "high_score"
)

// AllTypes returns all achievement types in display order.
func AllTypes() []Type {
	return []Type{TypeCompletedQuizzes, TypeCorrectAnswers, TypeHighScore}
}

// DisplayName returns a human-readable label for the type.
func (t Type) DisplayName() string {
	switch t {
	case TypeCompletedQuizzes:
		return "Quizzes"
	case TypeCorrectAnswers:
		return "Knowledge"
	case TypeHighScore:
		return "High Score"
	default:
		return string(t)
	}
}

// Icon returns the display icon for the type.
func (t Type) Icon() string {
	switch t {
	case TypeCompletedQuizzes:
		return "🏁"
	case TypeCorrectAnswers:
		return "🧠"
	case TypeHighScore:
		return "🏆"
	default:
		return "✦"
	}
}
