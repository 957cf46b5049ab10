package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/abhisek/trivia/internal/clock"
	"github.com/abhisek/trivia/internal/config"
	"github.com/abhisek/trivia/internal/game"
	"github.com/abhisek/trivia/internal/questionbank"
	"github.com/abhisek/trivia/internal/store"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// env is everything a command needs: resolved config, the open store and
// the wired services.
type env struct {
	cfg  *config.Config
	st   *store.Store
	svc  *game.Services
	loop *clock.Loop
	log  *logrus.Logger

	logFile io.Closer
}

// resolveConfig merges the persistent flags over env vars and the config file.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	flags := cmd.Flags()
	var o config.Overrides
	o.ConfigPath, _ = flags.GetString("config")
	o.DBPath, _ = flags.GetString("db")
	o.BankPath, _ = flags.GetString("bank")
	o.LogLevel, _ = flags.GetString("log-level")
	return config.Resolve(o)
}

// loadBank reads the configured bank file or falls back to the built-in one.
func loadBank(path string) (*questionbank.Bank, error) {
	if path == "" {
		return questionbank.Default()
	}
	return questionbank.LoadFile(path)
}

// openEnv resolves config, opens the log file and the database, and
// wires the services over a clock loop.
func openEnv(cmd *cobra.Command) (*env, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log, logFile, err := cfg.OpenLogger()
	if err != nil {
		return nil, err
	}

	bank, err := loadBank(cfg.BankPath)
	if err != nil {
		logFile.Close()
		return nil, fmt.Errorf("load question bank: %w", err)
	}

	if err := store.EnsureDir(cfg.DBPath); err != nil {
		logFile.Close()
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	st, err := store.Open(cfg.DBPath)
	if err != nil {
		logFile.Close()
		return nil, fmt.Errorf("open store: %w", err)
	}

	log.WithFields(logrus.Fields{
		"db":        cfg.DBPath,
		"bank":      cfg.BankPath,
		"questions": bank.Len(),
	}).Info("trivia starting")

	loop := clock.NewLoop(nil)
	return &env{
		cfg:     cfg,
		st:      st,
		svc:     game.NewServices(bank, st, loop, log),
		loop:    loop,
		log:     log,
		logFile: logFile,
	}, nil
}

// ctx returns a context carrying the env's logger.
func (e *env) ctx(parent context.Context) context.Context {
	if parent == nil {
		parent = context.Background()
	}
	return e.svc.Context(parent)
}

func (e *env) Close() error {
	err := e.st.Close()
	e.logFile.Close()
	return err
}
