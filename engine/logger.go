package engine

import (
	"os"

	"github.com/rs/zerolog"
)

// log writes diagnostics to stderr so the UCI channel on stdout stays clean.
var log = newLogger()

func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if os.Getenv("GREBE_DEBUG") != "" {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}
