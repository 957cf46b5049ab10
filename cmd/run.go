package cmd

import (
	"errors"
	"fmt"

	"github.com/abhisek/trivia/internal/app"
	"github.com/abhisek/trivia/internal/daily"
	"github.com/abhisek/trivia/internal/questionbank"
	"github.com/abhisek/trivia/internal/session"
	"github.com/spf13/cobra"
)

// appFlags selects where the TUI starts.
type appFlags struct {
	category   string
	difficulty questionbank.Difficulty
	daily      bool
}

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command, f appFlags) error {
	e, err := openEnv(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	if f.category != "" {
		if _, ok := e.svc.Bank.Category(f.category); !ok {
			return fmt.Errorf("unknown category %q (see `trivia bank categories`)", f.category)
		}
	}
	if f.daily {
		if err := claimDaily(e, cmd); err != nil {
			return err
		}
		f.category, f.difficulty = questionbank.DailyCategoryID, questionbank.Medium
	}

	return app.Run(app.Options{
		Services:    e.svc,
		Loop:        e.loop,
		Category:    f.category,
		Difficulty:  f.difficulty,
		SkipWelcome: cmd != rootCmd,
	})
}

// claimDaily opens today's challenge or explains why it cannot start.
func claimDaily(e *env, cmd *cobra.Command) error {
	err := e.svc.ClaimDaily(e.ctx(cmd.Context()))
	switch {
	case errors.Is(err, daily.ErrAlreadyPlayed):
		return fmt.Errorf("%w; the next one opens %s", err,
			e.svc.Daily.NextOpen().Format("Mon Jan 2 15:04"))
	case errors.Is(err, session.ErrNoQuestions):
		return fmt.Errorf("daily challenge: %w", err)
	}
	return err
}
