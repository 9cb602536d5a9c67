package tracer

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger wraps a zerolog.Logger for the CLI's round-by-round progress
// messages (round N accepted, shuffle converged, and so on) — a
// concern separate from graph.Tracer's per-score data points.
type Logger struct {
	zl zerolog.Logger
}

// NewLogger builds a Logger writing to w in zerolog's console format,
// the way the CLI presents --verbose output on a terminal.
func NewLogger(w io.Writer, verbose bool) Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	console := zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	zl := zerolog.New(console).Level(level).With().Timestamp().Logger()
	return Logger{zl: zl}
}

// StderrLogger is the CLI's default Logger, writing to os.Stderr.
func StderrLogger(verbose bool) Logger { return NewLogger(os.Stderr, verbose) }

// Step logs one progress message at info level.
func (l Logger) Step(format string, args ...any) {
	l.zl.Info().Msgf(format, args...)
}

// Debugf logs one progress message at debug level, suppressed unless
// the Logger was built with verbose set.
func (l Logger) Debugf(format string, args ...any) {
	l.zl.Debug().Msgf(format, args...)
}

// Tracer returns a graph.Tracer that reports every scored value as a
// debug-level log event under name; the events appear only if the Logger
// was built with verbose set.
func (l Logger) Tracer(name string) ZerologTracer {
	return ZerologTracer{zl: l.zl.With().Str("trace", name).Logger()}
}
