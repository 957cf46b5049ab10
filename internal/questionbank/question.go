package questionbank

// OptionCount is the number of answer options every question carries.
const OptionCount = 4

// Question is a single multiple-choice trivia question. Questions are
// immutable once loaded.
type Question struct {
	ID           string
	Text         string
	Options      [OptionCount]string
	CorrectIndex int
	Explanation  string
	CategoryID   string
	Difficulty   Difficulty
}

// IsCorrect reports whether option is the correct answer.
func (q Question) IsCorrect(option int) bool {
	return option == q.CorrectIndex
}

// CorrectOption returns the text of the correct answer.
func (q Question) CorrectOption() string {
	return q.Options[q.CorrectIndex]
}

// OptionLabel returns the letter shown next to option i ("A".."D").
func OptionLabel(i int) string {
	if i < 0 || i >= OptionCount {
		return "?"
	}
	return string(rune('A' + i))
}
