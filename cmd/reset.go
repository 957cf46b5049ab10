package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset helpers, results, stats, achievements or the daily challenge",
	Long: "Reset restores helper counters to their defaults and can clear the result history,\n" +
		"lifetime stats, unlocked achievements and today's daily challenge.\n" +
		"With no flags only helpers are reset.",
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		all, _ := flags.GetBool("all")
		helpersOnly, _ := flags.GetBool("helpers")
		res, _ := flags.GetBool("results")
		stats, _ := flags.GetBool("stats")
		dailyOnly, _ := flags.GetBool("daily")
		if !helpersOnly && !res && !stats && !dailyOnly && !all {
			helpersOnly = true
		}

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		ctx := e.ctx(cmd.Context())
		out := cmd.OutOrStdout()

		if helpersOnly || all {
			if err := e.svc.Budget.Reset(ctx); err != nil {
				return fmt.Errorf("reset helpers: %w", err)
			}
			fmt.Fprintln(out, "Helpers restored.")
		}
		if res || all {
			if err := e.svc.Results.Clear(ctx); err != nil {
				return fmt.Errorf("clear results: %w", err)
			}
			fmt.Fprintln(out, "Result history cleared.")
		}
		if stats || all {
			if err := e.svc.Achievements.Reset(ctx); err != nil {
				return fmt.Errorf("reset stats: %w", err)
			}
			fmt.Fprintln(out, "Stats and achievements cleared.")
		}
		if dailyOnly || all {
			if err := e.svc.Daily.Reset(ctx); err != nil {
				return fmt.Errorf("reset daily challenge: %w", err)
			}
			fmt.Fprintln(out, "Daily challenge reopened.")
		}
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("helpers", false, "Restore hints, 50:50s and skips")
	resetCmd.Flags().Bool("results", false, "Clear the result history")
	resetCmd.Flags().Bool("stats", false, "Clear lifetime stats and achievements")
	resetCmd.Flags().Bool("daily", false, "Reopen today's daily challenge")
	resetCmd.Flags().Bool("all", false, "Reset everything")
}
