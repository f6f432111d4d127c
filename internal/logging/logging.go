// Package logging builds the zerolog loggers used by the sdpcheck tools.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const EnvLogLevel = "SDPCHECK_LOG_LEVEL"

const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

type Config struct {
	App    string
	Level  string
	Format string
	Out    io.Writer
}

func DefaultConfig() Config {
	return Config{
		App:    "sdpcheck",
		Level:  "info",
		Format: FormatConsole,
		Out:    os.Stderr,
	}
}

// New returns a logger for cfg. The level in EnvLogLevel, when valid, takes
// precedence over cfg.Level.
func New(cfg Config) zerolog.Logger {
	out := cfg.Out
	if out == nil {
		out = os.Stderr
	}
	if !strings.EqualFold(cfg.Format, FormatJSON) {
		out = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
		}
	}

	level, ok := ParseLevel(os.Getenv(EnvLogLevel))
	if !ok {
		level, _ = ParseLevel(cfg.Level)
	}

	logger := zerolog.New(out).Level(level).With().Timestamp()
	if cfg.App != "" {
		logger = logger.Str("app", cfg.App)
	}
	return logger.Logger()
}

func ParseLevel(raw string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return zerolog.InfoLevel, false
	case "trace", "diagnostics":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "disabled", "disable", "off", "none":
		return zerolog.Disabled, true
	default:
		return zerolog.InfoLevel, false
	}
}
