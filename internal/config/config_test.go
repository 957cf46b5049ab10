package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	for _, k := range []string{EnvDB, EnvBank, EnvLogLevel, EnvLogFile, EnvConfig} {
		t.Setenv(k, "")
	}
	return dir
}

func writeConfig(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestResolveDefaults(t *testing.T) {
	dir := isolate(t)

	c, err := Resolve(Overrides{})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "data", "trivia", "trivia.db"), c.DBPath)
	assert.Equal(t, filepath.Join(dir, "data", "trivia", "trivia.log"), c.LogFile)
	assert.Equal(t, "info", c.LogLevel)
	assert.Empty(t, c.BankPath)
}

func TestResolvePrecedence(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, filepath.Join(dir, "config", "trivia", "config.yaml"),
		"db: /file/trivia.db\nbank: /file/bank.json\nlog_level: debug\nlog_file: /file/trivia.log\n")

	c, err := Resolve(Overrides{})
	require.NoError(t, err)
	assert.Equal(t, "/file/trivia.db", c.DBPath)
	assert.Equal(t, "/file/bank.json", c.BankPath)
	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, "/file/trivia.log", c.LogFile)

	t.Setenv(EnvDB, "/env/trivia.db")
	t.Setenv(EnvLogLevel, "warn")
	c, err = Resolve(Overrides{})
	require.NoError(t, err)
	assert.Equal(t, "/env/trivia.db", c.DBPath)
	assert.Equal(t, "warn", c.LogLevel)
	assert.Equal(t, "/file/bank.json", c.BankPath)

	c, err = Resolve(Overrides{DBPath: "/flag/trivia.db", LogLevel: "error"})
	require.NoError(t, err)
	assert.Equal(t, "/flag/trivia.db", c.DBPath)
	assert.Equal(t, "error", c.LogLevel)
}

func TestResolveExplicitMissingFile(t *testing.T) {
	dir := isolate(t)

	_, err := Resolve(Overrides{ConfigPath: filepath.Join(dir, "nope.yaml")})
	assert.Error(t, err)
}

func TestResolveBadYAML(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "bad.yaml")
	writeConfig(t, path, "db: [unterminated\n")

	_, err := Resolve(Overrides{ConfigPath: path})
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	for _, lvl := range []string{"trace", "debug", "info", "warn", "warning", "error", "INFO", "Trace"} {
		c := &Config{LogLevel: lvl}
		assert.NoError(t, c.Validate(), lvl)
	}
	c := &Config{LogLevel: "loud"}
	assert.Error(t, c.Validate())

	isolate(t)
	_, err := Resolve(Overrides{LogLevel: "loud"})
	assert.Error(t, err)
}

func TestOpenLogger(t *testing.T) {
	dir := t.TempDir()
	c := &Config{LogLevel: "debug", LogFile: filepath.Join(dir, "logs", "trivia.log")}

	log, closer, err := c.OpenLogger()
	require.NoError(t, err)
	log.WithField("kind", "hint").Info("hello")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(c.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
	assert.Contains(t, string(data), "kind=hint")
}
