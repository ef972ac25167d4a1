// Package log is the structured logger used by the schema resolver, the DSL
// evaluator and the fluent command. The attribute and component packages
// never log.
package log

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options configures New.
type Options struct {
	// Level is a zerolog level name; empty means "info".
	Level string
	// HumanReadable selects the console format instead of JSON lines.
	HumanReadable bool
	// Writer receives the output; nil means stderr.
	Writer io.Writer
}

// Logger writes leveled, structured entries. A nil *Logger discards
// everything, so optional loggers need no checks at call sites.
type Logger struct {
	zl zerolog.Logger
}

// New returns a logger configured by opts.
func New(opts Options) (*Logger, error) {
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}
	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, err
		}
		level = parsed
	}
	if opts.HumanReadable {
		console := zerolog.NewConsoleWriter()
		console.Out = w
		console.TimeFormat = time.Kitchen
		w = console
	}
	return &Logger{zl: zerolog.New(w).Level(level).With().Timestamp().Logger()}, nil
}

// Nop returns a logger that discards every entry.
func Nop() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

// WithFields returns a logger that adds fields to every entry.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	if l == nil {
		return nil
	}
	ctx := l.zl.With()
	for k, v := range fields {
		ctx = ctx.Interface(k, v)
	}
	return &Logger{zl: ctx.Logger()}
}

// With returns a logger that adds one field to every entry.
func (l *Logger) With(key string, value any) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{zl: l.zl.With().Interface(key, value).Logger()}
}

// Debug writes a debug entry.
func (l *Logger) Debug(msg string) {
	if l == nil {
		return
	}
	l.zl.Debug().Msg(msg)
}

// Info writes an info entry.
func (l *Logger) Info(msg string) {
	if l == nil {
		return
	}
	l.zl.Info().Msg(msg)
}

// Warn writes a warning entry.
func (l *Logger) Warn(msg string) {
	if l == nil {
		return
	}
	l.zl.Warn().Msg(msg)
}

// Error writes an error entry carrying err.
func (l *Logger) Error(err error, msg string) {
	if l == nil {
		return
	}
	ev := l.zl.Error()
	if err != nil {
		ev = ev.Err(err)
	}
	ev.Msg(msg)
}

// Enabled reports whether entries at level would be written.
func (l *Logger) Enabled(level string) bool {
	if l == nil {
		return false
	}
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		return false
	}
	return parsed >= l.zl.GetLevel()
}
