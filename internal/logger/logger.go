package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/yukikurage/task-follow-api/internal/config"
)

// New builds the application logger. Local runs get a human readable console
// writer, every other environment logs JSON to stdout.
func New(cfg *config.Config) (zerolog.Logger, error) {
	return NewWithWriter(cfg, os.Stdout)
}

func NewWithWriter(cfg *config.Config, out io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", cfg.Log.Level, err)
	}

	zerolog.TimestampFieldName = "timestamp"

	w := out
	if cfg.Env == config.EnvLocal {
		consoleWriter := zerolog.NewConsoleWriter()
		consoleWriter.TimeFormat = time.DateTime
		consoleWriter.Out = out
		w = consoleWriter
	}

	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Str("env", cfg.Env).
		Int("pid", os.Getpid()).
		Logger(), nil
}
