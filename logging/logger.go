package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

const EnvLogLevel = "PLOTPIPE_LOG_LEVEL"

// LevelOff disables logging altogether - it is deliberately above any level slog defines
const LevelOff = slog.Level(9999)

func Initialize(appName string) {
	slog.SetDefault(exportLogger(appName))
}

// exportLogger returns a logger that writes JSON log lines to stderr,
// with the level taken from the environment (off by default)
func exportLogger(appName string) *slog.Logger {
	level := getLogLevel()
	if level == LevelOff {
		return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
	}

	handlerOptions := &slog.HandlerOptions{
		Level: level,
	}
	source := fmt.Sprintf("plotpipe-%s", appName)
	return slog.New(slog.NewJSONHandler(os.Stderr, handlerOptions)).With("source", source)
}

func getLogLevel() slog.Leveler {
	levelEnv := os.Getenv(EnvLogLevel)

	switch strings.ToLower(levelEnv) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return LevelOff
	}
}
