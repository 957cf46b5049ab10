package results

import (
	"time"

	"github.com/abhisek/trivia/internal/questionbank"
)

// LevelStats aggregates results of one difficulty.
type LevelStats struct {
	Quizzes      int
	AverageScore float64
}

// Stats aggregates a result history.
type Stats struct {
	TotalQuizzes       int
	AverageScore       float64
	BestScore          int
	TotalCorrect       int
	TotalWrong         int
	AccuracyPercentage float64
	TotalTimeSpentSecs int
	ByDifficulty       map[questionbank.Difficulty]LevelStats
}

// TotalTimeSpent returns the summed quiz time.
func (st Stats) TotalTimeSpent() time.Duration {
	return time.Duration(st.TotalTimeSpentSecs) * time.Second
}

// Aggregate folds results into Stats. An empty history yields zero stats
// with an entry for every difficulty.
func Aggregate(history []QuizResult) Stats {
	st := Stats{ByDifficulty: make(map[questionbank.Difficulty]LevelStats)}
	for _, d := range questionbank.AllDifficulties() {
		st.ByDifficulty[d] = LevelStats{}
	}
	if len(history) == 0 {
		return st
	}

	totalScore := 0
	levelScore := make(map[questionbank.Difficulty]int)
	for _, r := range history {
		totalScore += r.Score
		if r.Score > st.BestScore {
			st.BestScore = r.Score
		}
		st.TotalCorrect += r.CorrectAnswers
		st.TotalWrong += r.WrongAnswers
		st.TotalTimeSpentSecs += r.TimeSpentSecs

		ls := st.ByDifficulty[r.Difficulty]
		ls.Quizzes++
		st.ByDifficulty[r.Difficulty] = ls
		levelScore[r.Difficulty] += r.Score
	}

	st.TotalQuizzes = len(history)
	st.AverageScore = float64(totalScore) / float64(len(history))
	if answered := st.TotalCorrect + st.TotalWrong; answered > 0 {
		st.AccuracyPercentage = float64(st.TotalCorrect) / float64(answered) * 100
	}
	for d, ls := range st.ByDifficulty {
		if ls.Quizzes > 0 {
			ls.AverageScore = float64(levelScore[d]) / float64(ls.Quizzes)
			st.ByDifficulty[d] = ls
		}
	}
	return st
}
