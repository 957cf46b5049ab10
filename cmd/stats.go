package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/trivia/internal/helpers"
	"github.com/abhisek/trivia/internal/questionbank"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show quiz statistics, helpers and achievements",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		ctx := e.ctx(cmd.Context())
		out := cmd.OutOrStdout()
		agg := e.svc.Results.Aggregate(ctx)
		counters := e.svc.Achievements.Counters(ctx)

		fmt.Fprintln(out, "Quizzes")
		fmt.Fprintln(out, strings.Repeat("─", 40))
		fmt.Fprintf(out, "%-22s %d\n", "Played", agg.TotalQuizzes)
		fmt.Fprintf(out, "%-22s %.1f\n", "Average score", agg.AverageScore)
		fmt.Fprintf(out, "%-22s %d\n", "Best score (history)", agg.BestScore)
		fmt.Fprintf(out, "%-22s %d\n", "High score (lifetime)", counters.HighScore)
		fmt.Fprintf(out, "%-22s %d / %d\n", "Correct / wrong", agg.TotalCorrect, agg.TotalWrong)
		fmt.Fprintf(out, "%-22s %.1f%%\n", "Accuracy", agg.AccuracyPercentage)
		fmt.Fprintf(out, "%-22s %s\n", "Time played", agg.TotalTimeSpent())
		daily := "open today"
		if !e.svc.Daily.Available(ctx) {
			daily = "played today"
		}
		fmt.Fprintf(out, "%-22s %s\n", "Daily challenge", daily)
		for _, d := range questionbank.AllDifficulties() {
			ls := agg.ByDifficulty[d]
			fmt.Fprintf(out, "  %-20s %d played, avg %.1f\n", d.DisplayName(), ls.Quizzes, ls.AverageScore)
		}

		fmt.Fprintln(out)
		fmt.Fprintln(out, "Helpers")
		fmt.Fprintln(out, strings.Repeat("─", 40))
		counts := e.svc.Budget.Counts(ctx)
		for _, k := range helpers.AllKinds() {
			fmt.Fprintf(out, "%s %-19s %d left\n", k.Icon(), k.DisplayName(), counts.Of(k))
		}

		fmt.Fprintln(out)
		fmt.Fprintln(out, "Achievements")
		fmt.Fprintln(out, strings.Repeat("─", 40))
		for _, st := range e.svc.Achievements.All(ctx) {
			mark := "  "
			if st.Unlocked {
				mark = "✓ "
			}
			fmt.Fprintf(out, "%s%-12s %s\n", mark, st.Title, st.Description)
		}
		return nil
	},
}
