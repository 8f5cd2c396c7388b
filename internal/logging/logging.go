// ABOUTME: Structured logger setup built on charmbracelet/log.
// ABOUTME: Logs go to stderr so command output on stdout stays pipeable.

package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// Config describes how the logger writes.
type Config struct {
	Level  string
	JSON   bool
	Output io.Writer
}

func DefaultConfig() Config {
	return Config{
		Level:  LevelWarn,
		Output: os.Stderr,
	}
}

// ParseLevel maps a level name to a charm log level.
func ParseLevel(s string) (log.Level, error) {
	switch s {
	case LevelDebug:
		return log.DebugLevel, nil
	case LevelInfo:
		return log.InfoLevel, nil
	case LevelWarn, "":
		return log.WarnLevel, nil
	case LevelError:
		return log.ErrorLevel, nil
	default:
		return log.WarnLevel, fmt.Errorf("unknown log level %q", s)
	}
}

// New builds a logger from cfg.
func New(cfg Config) (*log.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	logger := log.NewWithOptions(out, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "taglint",
	})
	if cfg.JSON {
		logger.SetFormatter(log.JSONFormatter)
	}
	return logger, nil
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}
