// Package logging configures the zerolog logger shared by the CLI, the
// terminal dashboard and the web server.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ParseLevel maps a level name to a zerolog level, falling back to info.
func ParseLevel(name string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(name)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

// Setup installs a console logger writing to out (stderr when nil) as the
// global logger and returns it.
func Setup(level string, out io.Writer) zerolog.Logger {
	if out == nil {
		out = os.Stderr
	}
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(ParseLevel(level))

	logger := zerolog.New(zerolog.ConsoleWriter{Out: out, NoColor: true}).
		With().Timestamp().Logger()
	log.Logger = logger
	return logger
}

// Discard returns a logger that drops everything, for the TUI where stderr
// shares the screen.
func Discard() zerolog.Logger {
	return zerolog.Nop()
}
