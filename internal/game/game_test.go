package game

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/trivia/internal/clock"
	"github.com/abhisek/trivia/internal/daily"
	"github.com/abhisek/trivia/internal/questionbank"
	"github.com/abhisek/trivia/internal/session"
	"github.com/abhisek/trivia/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBank(n int) *questionbank.Bank {
	qs := make([]questionbank.Question, n)
	for i := range qs {
		qs[i] = questionbank.Question{
			ID:           fmt.Sprintf("q%d", i+1),
			Text:         fmt.Sprintf("Question %d?", i+1),
			Options:      [questionbank.OptionCount]string{"a", "b", "c", "d"},
			CategoryID:   "general",
			Difficulty:   questionbank.Easy,
			CorrectIndex: 0,
		}
	}
	return questionbank.New(qs, questionbank.WithRand(rand.New(rand.NewPCG(1, 2))))
}

func TestPerfectSessionIsFiled(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewFake(time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC))
	svc := NewServices(testBank(5), store.NewMemory(), clk, nil)

	var done []session.Summary
	sess := svc.NewSession("general", questionbank.Easy, func(s session.Summary) { done = append(done, s) })
	require.NoError(t, sess.Start(ctx))
	for sess.Phase() != session.PhaseCompleted {
		clk.Advance(2 * time.Second)
		_, ok := sess.Submit(0)
		require.True(t, ok)
		sess.Advance(ctx)
	}
	require.Len(t, done, 1)

	out, err := svc.Finish(ctx, done[0])
	require.NoError(t, err)

	assert.Equal(t, "General Knowledge", out.CategoryName)
	assert.Equal(t, 5, out.Result.Score)
	assert.Equal(t, 10, out.Result.TimeSpentSecs)
	assert.True(t, out.Summary.BonusHint)
	assert.Equal(t, 4, svc.Budget.Remaining(ctx, "hint"))

	history := svc.Results.All(ctx)
	require.Len(t, history, 1)
	assert.Equal(t, out.Result.ID, history[0].ID)

	require.Len(t, out.Unlocked, 1)
	assert.Equal(t, "completed_1", out.Unlocked[0].ID)
	assert.Equal(t, 5, svc.Achievements.Counters(ctx).HighScore)
}

func TestShareText(t *testing.T) {
	out := Outcome{
		Summary:      session.Summary{Score: 4, TotalQuestions: 5, Percentage: 80},
		CategoryName: "Science",
	}
	text := out.ShareText()
	assert.Contains(t, text, "in Science")
	assert.Contains(t, text, "Score: 4 of 5")
	assert.Contains(t, text, "Accuracy: 80.0%")
	assert.False(t, strings.Contains(text, "Unlocked"))
}

func TestClaimDailyOncePerDay(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewFake(time.Date(2025, 5, 1, 20, 0, 0, 0, time.UTC))
	svc := NewServices(testBank(8), store.NewMemory(), clk, nil)

	require.NoError(t, svc.ClaimDaily(ctx))
	assert.ErrorIs(t, svc.ClaimDaily(ctx), daily.ErrAlreadyPlayed)

	sess := svc.NewDailySession(nil)
	require.NoError(t, sess.Start(ctx))
	assert.Equal(t, questionbank.DailyCount, sess.Total())

	clk.Advance(5 * time.Hour)
	assert.NoError(t, svc.ClaimDaily(ctx), "next calendar day")
}

func TestClaimDailyEmptyBankLeavesDayOpen(t *testing.T) {
	ctx := context.Background()
	svc := NewServices(questionbank.New(nil), store.NewMemory(), nil, nil)

	assert.ErrorIs(t, svc.ClaimDaily(ctx), session.ErrNoQuestions)
	assert.True(t, svc.Daily.Available(ctx))
}
