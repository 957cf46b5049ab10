package cmd

import (
	"errors"
	"strings"

	"github.com/abhisek/trivia/internal/questionbank"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a quiz, optionally jumping straight into a category",
	RunE: func(cmd *cobra.Command, args []string) error {
		category, _ := cmd.Flags().GetString("category")
		diff, _ := cmd.Flags().GetString("difficulty")
		daily, _ := cmd.Flags().GetBool("daily")

		f := appFlags{category: strings.TrimSpace(category), daily: daily}
		if daily && f.category != "" {
			return errors.New("--daily draws from every category; drop --category")
		}
		if f.category != "" {
			d, err := questionbank.ParseDifficulty(diff)
			if err != nil {
				return err
			}
			f.difficulty = d
		}
		return runApp(cmd, f)
	},
}

func init() {
	playCmd.Flags().String("category", "", "Category ID to start a quiz in")
	playCmd.Flags().String("difficulty", string(questionbank.Medium), "Difficulty: easy, medium or hard")
	playCmd.Flags().Bool("daily", false, "Start today's daily challenge (once per calendar day)")
}
