package results

import (
	"testing"
	"time"

	"github.com/abhisek/trivia/internal/questionbank"
)

func TestAggregateEmpty(t *testing.T) {
	st := Aggregate(nil)
	if st.TotalQuizzes != 0 || st.AverageScore != 0 || st.BestScore != 0 || st.AccuracyPercentage != 0 || st.TotalTimeSpentSecs != 0 {
		t.Errorf("expected zero stats, got %+v", st)
	}
	if len(st.ByDifficulty) != 3 {
		t.Errorf("expected entries for every difficulty, got %d", len(st.ByDifficulty))
	}
}

func TestAggregate(t *testing.T) {
	history := []QuizResult{
		result("1", "science", questionbank.Easy, 4, 4, 1),
		result("2", "science", questionbank.Easy, 2, 2, 3),
		result("3", "history", questionbank.Hard, 9, 9, 1),
	}
	history[0].TimeSpentSecs = 45
	history[1].TimeSpentSecs = 60
	history[2].TimeSpentSecs = 200
	st := Aggregate(history)

	if st.TotalTimeSpentSecs != 305 {
		t.Errorf("TotalTimeSpentSecs = %d, want 305", st.TotalTimeSpentSecs)
	}
	if st.TotalTimeSpent() != 5*time.Minute+5*time.Second {
		t.Errorf("TotalTimeSpent = %v", st.TotalTimeSpent())
	}

	if st.TotalQuizzes != 3 {
		t.Errorf("TotalQuizzes = %d", st.TotalQuizzes)
	}
	if st.AverageScore != 5 {
		t.Errorf("AverageScore = %v, want 5", st.AverageScore)
	}
	if st.BestScore != 9 {
		t.Errorf("BestScore = %d", st.BestScore)
	}
	if st.TotalCorrect != 15 || st.TotalWrong != 5 {
		t.Errorf("correct/wrong = %d/%d", st.TotalCorrect, st.TotalWrong)
	}
	if st.AccuracyPercentage != 75 {
		t.Errorf("Accuracy = %v, want 75", st.AccuracyPercentage)
	}

	easy := st.ByDifficulty[questionbank.Easy]
	if easy.Quizzes != 2 || easy.AverageScore != 3 {
		t.Errorf("easy = %+v", easy)
	}
	medium := st.ByDifficulty[questionbank.Medium]
	if medium.Quizzes != 0 || medium.AverageScore != 0 {
		t.Errorf("medium = %+v", medium)
	}
	hard := st.ByDifficulty[questionbank.Hard]
	if hard.Quizzes != 1 || hard.AverageScore != 9 {
		t.Errorf("hard = %+v", hard)
	}
}

func TestAggregateNoAnswers(t *testing.T) {
	r := result("1", "general", questionbank.Easy, 0, 0, 0)
	r.Skipped = 5
	r.TotalQuestions = 5
	st := Aggregate([]QuizResult{r})
	if st.AccuracyPercentage != 0 {
		t.Errorf("Accuracy = %v, want 0", st.AccuracyPercentage)
	}
}
