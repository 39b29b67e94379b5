package loggers

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger aliases zerolog.Logger; the rest of the codebase never imports
// zerolog directly.
type Logger = zerolog.Logger

// New builds the process logger: JSON to stdout, UTC timestamps, caller
// annotation. The level string comes straight from configuration and is the
// only way to fail here.
func New(level string) (Logger, error) {
	zerologLevel, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}

	zerolog.TimestampFunc = func() time.Time {
		return time.Now().UTC()
	}

	logger := zerolog.New(os.Stdout).
		Level(zerologLevel).
		With().
		Timestamp().
		Caller().
		Logger()

	return logger, nil
}

// Ctx extracts the request-scoped logger from ctx, falling back to a no-op
// logger. A package variable so tests can intercept it.
var Ctx = func(ctx context.Context) *Logger {
	return zerolog.Ctx(ctx)
}
