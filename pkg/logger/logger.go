// Package logger configures the service-wide zerolog logger.
package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// New builds the root logger. Level falls back to info when the supplied
// value does not parse.
func New(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(os.Stdout).Level(lvl).With().Timestamp().Logger()
}
