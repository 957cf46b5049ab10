package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/trivia/internal/questionbank"
	"github.com/abhisek/trivia/internal/results"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent quiz results",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		diff, _ := cmd.Flags().GetString("difficulty")
		category, _ := cmd.Flags().GetString("category")

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		q := results.Query{CategoryID: category, Limit: limit}
		if diff != "" {
			if q.Difficulty, err = questionbank.ParseDifficulty(diff); err != nil {
				return err
			}
		}
		list := e.svc.Results.Find(e.ctx(cmd.Context()), q)

		out := cmd.OutOrStdout()
		if len(list) == 0 {
			fmt.Fprintln(out, "No quizzes played yet.")
			return nil
		}

		fmt.Fprintf(out, "%-16s  %-20s  %-6s  %-5s  %-7s  %s\n",
			"Date", "Category", "Level", "Score", "Acc", "Time")
		fmt.Fprintln(out, strings.Repeat("─", 72))
		for _, r := range list {
			fmt.Fprintf(out, "%-16s  %-20s  %-6s  %2d/%-2d  %5.1f%%  %ds\n",
				r.Timestamp.Local().Format("2006-01-02 15:04"),
				truncate(r.CategoryName, 20),
				r.Difficulty.DisplayName(),
				r.Score, r.TotalQuestions,
				r.Percentage(),
				r.TimeSpentSecs,
			)
		}
		return nil
	},
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Maximum number of results to show (0 for all)")
	historyCmd.Flags().String("difficulty", "", "Only show results of this difficulty (combines with --category)")
	historyCmd.Flags().String("category", "", "Only show results of this category ID (combines with --difficulty)")
}
