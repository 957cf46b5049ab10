package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/abhisek/trivia/internal/questionbank"
	"github.com/spf13/cobra"
)

var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Inspect and validate question banks",
}

var bankValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a question bank file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		doc, err := questionbank.Decode(f)
		if err != nil {
			var verr *questionbank.ValidationError
			if errors.As(err, &verr) {
				return fmt.Errorf("%s is not a valid question bank: %w", args[0], err)
			}
			return err
		}

		version := doc.Version
		if version == "" {
			version = "unversioned"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d questions (%s)\n", args[0], len(doc.Questions), version)
		return nil
	},
}

var bankCategoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List categories with their question counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		bank, err := loadBank(cfg.BankPath)
		if err != nil {
			return fmt.Errorf("load question bank: %w", err)
		}

		out := cmd.OutOrStdout()
		for _, c := range bank.Categories() {
			fmt.Fprintf(out, "%-12s  %-20s  %3d  %s\n", c.ID, c.Name, bank.Count(c.ID), c.Difficulty.DisplayName())
		}
		return nil
	},
}

func init() {
	bankCmd.AddCommand(bankValidateCmd)
	bankCmd.AddCommand(bankCategoriesCmd)
}
