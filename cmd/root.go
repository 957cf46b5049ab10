package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "trivia",
	Short: "Offline trivia quiz for the terminal",
	Long: "Trivia is an offline terminal quiz: pick a category and a difficulty, beat the clock,\n" +
		"spend hints, 50:50s and skips wisely, and unlock achievements along the way.",
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Assigned here rather than in the literal: runApp refers to rootCmd.
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, appFlags{})
	}

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Path to YAML config file (overrides TRIVIA_CONFIG env var)")
	pf.String("db", "", "Path to SQLite database file (overrides TRIVIA_DB env var)")
	pf.String("bank", "", "Path to a JSON question bank (overrides TRIVIA_BANK env var)")
	pf.String("log-level", "", "Log level: trace, debug, info, warn, error (overrides TRIVIA_LOG_LEVEL)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(bankCmd)
	rootCmd.AddCommand(versionCmd)
}
