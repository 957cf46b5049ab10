package questionbank

import (
	"fmt"
	"strings"
	"time"
)

// Difficulty is the quiz difficulty level. It fixes the countdown per
// question, the number of questions served and the score multiplier.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// AllDifficulties returns every level in ascending order.
func AllDifficulties() []Difficulty {
	return []Difficulty{Easy, Medium, Hard}
}

// ParseDifficulty parses a level name, ignoring case.
func ParseDifficulty(s string) (Difficulty, error) {
	switch d := Difficulty(strings.ToLower(strings.TrimSpace(s))); d {
	case Easy, Medium, Hard:
		return d, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q", s)
	}
}

// DifficultyFromString parses s and falls back to Medium.
func DifficultyFromString(s string) Difficulty {
	d, err := ParseDifficulty(s)
	if err != nil {
		return Medium
	}
	return d
}

// SecondsPerQuestion returns the countdown length for one question.
func (d Difficulty) SecondsPerQuestion() int {
	switch d {
	case Easy:
		return 45
	case Hard:
		return 20
	default:
		return 30
	}
}

// TimeLimit returns SecondsPerQuestion as a duration.
func (d Difficulty) TimeLimit() time.Duration {
	return time.Duration(d.SecondsPerQuestion()) * time.Second
}

// QuestionCount returns the maximum number of questions in a session.
func (d Difficulty) QuestionCount() int {
	switch d {
	case Easy:
		return 5
	case Hard:
		return 10
	default:
		return 8
	}
}

// ScoreMultiplier weights the raw score for display.
func (d Difficulty) ScoreMultiplier() float64 {
	switch d {
	case Easy:
		return 1.0
	case Hard:
		return 2.0
	default:
		return 1.5
	}
}

// DisplayName returns a human-readable label.
func (d Difficulty) DisplayName() string {
	switch d {
	case Easy:
		return "Easy"
	case Medium:
		return "Medium"
	case Hard:
		return "Hard"
	default:
		return string(d)
	}
}

// Icon returns the display icon for the level.
func (d Difficulty) Icon() string {
	switch d {
	case Easy:
		return "🟢"
	case Medium:
		return "🟡"
	case Hard:
		return "🔴"
	default:
		return "•"
	}
}
