// Package logger provides the CLI's leveled console logger.
package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

var logger = newLogger(os.Stderr)

func newLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true, PartsExclude: []string{zerolog.TimestampFieldName}}).
		Level(zerolog.InfoLevel)
}

// SetOutput configures the logger output destination.
// Use io.Discard to silence all logging.
func SetOutput(w io.Writer) {
	level := logger.GetLevel()
	logger = newLogger(w).Level(level)
}

// SetVerbose enables debug messages.
func SetVerbose(on bool) {
	if on {
		logger = logger.Level(zerolog.DebugLevel)
		return
	}
	logger = logger.Level(zerolog.InfoLevel)
}

// Warn logs a warning message.
func Warn(format string, args ...any) {
	logger.Warn().Msgf(format, args...)
}

// Debug logs a debug message. It is dropped unless verbose output is on.
func Debug(format string, args ...any) {
	logger.Debug().Msgf(format, args...)
}
