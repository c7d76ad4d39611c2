package logging

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// New builds the service logger from environment settings.
//
// Supported env vars:
//   - LOG_LEVEL (debug|info|warn|error, default: info)
//   - LOG_FORMAT (json|console, default: console)
func New(serviceName string) zerolog.Logger {
	var level zerolog.Level
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	default:
		level = zerolog.InfoLevel
	}

	zerolog.TimeFieldFormat = "2006-01-02 15:04:05"

	var base zerolog.Logger
	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		base = zerolog.New(os.Stdout)
	} else {
		base = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "2006-01-02 15:04:05"})
	}

	return base.
		Level(level).
		With().
		Timestamp().
		Str("service", serviceName).
		Logger()
}
