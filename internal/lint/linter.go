// ABOUTME: Linter binds normalization options and a logger for host surfaces.
// ABOUTME: Used by the CLI, TUI and MCP server so they share one configuration.

package lint

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/fiffu/sd-promptkit/internal/models"
)

// Linter applies one set of options to every call. It holds no per-call
// state and is safe for concurrent use.
type Linter struct {
	opts   models.Options
	logger *log.Logger
}

// Option configures a Linter.
type Option func(*Linter)

// WithLogger sets the logger used for debug output about removed tags.
func WithLogger(logger *log.Logger) Option {
	return func(l *Linter) {
		if logger != nil {
			l.logger = logger
		}
	}
}

func New(opts models.Options, options ...Option) *Linter {
	l := &Linter{
		opts:   opts,
		logger: log.New(io.Discard),
	}
	for _, o := range options {
		o(l)
	}
	return l
}

func (l *Linter) Options() models.Options {
	return l.opts
}

func (l *Linter) Normalize(raw string) models.FormattedTag {
	return Normalize(raw, l.opts)
}

func (l *Linter) Tokenize(raw string) []string {
	return Tokenize(raw, l.opts)
}

func (l *Linter) ClassifyAll(raw string) []models.ClassifiedTag {
	tokens := l.Tokenize(raw)
	results := classify(tokens, l.opts, func(tag models.FormattedTag) {
		l.logger.Debug("removed tag", "tag", tag.Canonical, "original", tag.Original)
	})
	l.logger.Debug("classified tags", "tokens", len(tokens))
	return results
}
