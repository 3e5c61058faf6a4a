// Package logging configures the process-wide slog logger.
package logging

import (
	"log/slog"
	"os"

	"github.com/cdobratz/nfl-sentiment-analyzer/internal/platform/correlation"
)

// Logger is the application-wide structured logger instance.
var Logger *slog.Logger

var levels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// InitLogger installs the global logger. Unknown levels fall back to
// "info", any format other than "json" falls back to text output. The
// handler is wrapped for correlation ID injection.
func InitLogger(level, format string) {
	logLevel, ok := levels[level]
	if !ok {
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}

	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	Logger = slog.New(correlation.NewHandler(handler))
	slog.SetDefault(Logger)
}
