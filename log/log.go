package log

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// DefaultLevel is used when the configured level is empty or invalid.
const DefaultLevel = zerolog.WarnLevel

// Logger wraps zerolog.Logger
type Logger struct {
	zerolog.Logger
}

// NewWithWriter creates a logger writing to w
func NewWithWriter(w io.Writer, level string, pretty bool) *Logger {
	out := w
	if pretty {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	logger := zerolog.New(out).
		Level(ParseLevel(level)).
		With().
		Timestamp().
		Logger()

	return &Logger{Logger: logger}
}

// ParseLevel parses a level name, falling back to DefaultLevel.
func ParseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		return DefaultLevel
	}
	return lvl
}

// ValidLevel reports whether level names a zerolog level.
func ValidLevel(level string) bool {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	return err == nil && lvl != zerolog.NoLevel
}

// WithComponent returns a child of l tagged with a component name
func WithComponent(l zerolog.Logger, name string) zerolog.Logger {
	return l.With().Str("component", name).Logger()
}
