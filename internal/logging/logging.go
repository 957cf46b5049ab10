// Package logging builds the application logger and carries it on a
// context.Context.
package logging

import (
	"context"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

type ctxKey struct{}

// Levels lists the accepted level names.
var Levels = []string{"trace", "debug", "info", "warn", "warning", "error"}

// New creates a text-formatted logger writing to out at the named level.
// Unknown levels fall back to info.
func New(level string, out io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	log.SetOutput(out)
	log.SetLevel(ParseLevel(level))
	return log
}

// ParseLevel maps a level name to a logrus level, defaulting to info.
func ParseLevel(level string) logrus.Level {
	switch strings.ToLower(level) {
	case "trace":
		return logrus.TraceLevel
	case "debug":
		return logrus.DebugLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

// Discard returns a logger that drops everything.
func Discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// NewContext returns a copy of ctx carrying log.
func NewContext(ctx context.Context, log logrus.FieldLogger) context.Context {
	return context.WithValue(ctx, ctxKey{}, log)
}

// WithContext returns the logger stored on ctx, or a discarding logger.
func WithContext(ctx context.Context) logrus.FieldLogger {
	if ctx != nil {
		if log, ok := ctx.Value(ctxKey{}).(logrus.FieldLogger); ok {
			return log
		}
	}
	return discard
}

var discard = Discard()
