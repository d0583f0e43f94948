package logger

import (
	"io"
	"time"

	// Packages
	zerolog "github.com/rs/zerolog"
)

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New returns a timestamped logger writing to w. An unknown level falls back
// to info. When pretty is true, output is formatted for a terminal.
func New(w io.Writer, level string, pretty bool) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	if pretty {
		w = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.RFC3339,
		}
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}

// WithComponent returns a sub-logger tagged with a component name
func WithComponent(log zerolog.Logger, component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}
