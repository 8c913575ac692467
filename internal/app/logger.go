package app

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/go-chi/httplog/v2"
	"github.com/rs/zerolog"
)

func newLogger(level, format string, out io.Writer) zerolog.Logger {
	if out == nil {
		out = os.Stdout
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	if format == "console" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	return zerolog.New(out).
		Level(lvl).
		With().
		Timestamp().
		Str("service", "leetcode-bot").
		Logger()
}

func newRequestLogger(level, format string) *httplog.Logger {
	slogLevel := slog.LevelInfo
	switch level {
	case "trace", "debug":
		slogLevel = slog.LevelDebug
	case "warn":
		slogLevel = slog.LevelWarn
	case "error":
		slogLevel = slog.LevelError
	}

	return httplog.NewLogger("leetcode-bot", httplog.Options{
		JSON:             format != "console",
		LogLevel:         slogLevel,
		Concise:          true,
		MessageFieldName: "message",
		QuietDownRoutes:  []string{"/healthz"},
		QuietDownPeriod:  10 * time.Second,
	})
}
