package config

import (
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// InitLogger routes the default slog handler to a size-rotated log
// file in the data directory.
func InitLogger() {
	w := &lumberjack.Logger{
		Filename:   logFilePath,
		MaxSize:    5, // megabytes
		MaxBackups: 2,
	}

	opts := &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}

	if os.Getenv("WORKTRACK_DEBUG") != "" {
		opts.Level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(w, opts)))
}
