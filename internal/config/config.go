// Package config resolves runtime settings from flags, environment
// variables and an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/abhisek/trivia/internal/logging"
	"github.com/abhisek/trivia/internal/store"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Environment variables read by Resolve.
const (
	EnvDB       = "TRIVIA_DB"
	EnvBank     = "TRIVIA_BANK"
	EnvLogLevel = "TRIVIA_LOG_LEVEL"
	EnvLogFile  = "TRIVIA_LOG_FILE"
	EnvConfig   = "TRIVIA_CONFIG"
)

// Config holds the resolved settings.
type Config struct {
	DBPath   string `yaml:"db"`
	BankPath string `yaml:"bank"`
	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"`
}

// Overrides are values given on the command line. Empty fields are unset.
type Overrides struct {
	ConfigPath string
	DBPath     string
	BankPath   string
	LogLevel   string
}

// DefaultPath returns $XDG_CONFIG_HOME/trivia/config.yaml, falling back
// to ~/.config.
func DefaultPath() (string, error) {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "trivia", "config.yaml"), nil
}

// LoadFile reads a YAML config file.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &c, nil
}

// Resolve merges, highest priority first, o, the environment, the YAML
// file and the defaults. A missing file is an error only when its path
// was given explicitly.
func Resolve(o Overrides) (*Config, error) {
	path, explicit := o.ConfigPath, o.ConfigPath != ""
	if !explicit {
		if p := os.Getenv(EnvConfig); p != "" {
			path, explicit = p, true
		}
	}
	if path == "" {
		p, err := DefaultPath()
		if err == nil {
			path = p
		}
	}

	c := &Config{}
	if path != "" {
		fc, err := LoadFile(path)
		switch {
		case err == nil:
			c = fc
		case errors.Is(err, fs.ErrNotExist) && !explicit:
		default:
			return nil, fmt.Errorf("load config: %w", err)
		}
	}

	overlay(&c.DBPath, os.Getenv(EnvDB), o.DBPath)
	overlay(&c.BankPath, os.Getenv(EnvBank), o.BankPath)
	overlay(&c.LogLevel, os.Getenv(EnvLogLevel), o.LogLevel)
	overlay(&c.LogFile, os.Getenv(EnvLogFile), "")

	if err := c.applyDefaults(); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// overlay sets *dst to the last non-empty value in vals.
func overlay(dst *string, vals ...string) {
	for _, v := range vals {
		if v != "" {
			*dst = v
		}
	}
}

func (c *Config) applyDefaults() error {
	if c.DBPath == "" {
		dataHome := os.Getenv("XDG_DATA_HOME")
		if dataHome == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return fmt.Errorf("resolve home dir: %w", err)
			}
			dataHome = filepath.Join(home, ".local", "share")
		}
		c.DBPath = filepath.Join(dataHome, "trivia", "trivia.db")
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.LogFile == "" {
		c.LogFile = filepath.Join(filepath.Dir(c.DBPath), "trivia.log")
	}
	return nil
}

// Validate rejects unknown log levels.
func (c *Config) Validate() error {
	lvl := strings.ToLower(c.LogLevel)
	for _, l := range logging.Levels {
		if lvl == l {
			return nil
		}
	}
	return fmt.Errorf("invalid log level %q (want one of %s)", c.LogLevel, strings.Join(logging.Levels, ", "))
}

// OpenLogger opens the log file for appending and returns a logger
// writing to it, with the closer for the file.
func (c *Config) OpenLogger() (*logrus.Logger, io.Closer, error) {
	if err := store.EnsureDir(c.LogFile); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return logging.New(c.LogLevel, f), f, nil
}
