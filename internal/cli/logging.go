package cli

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/dshills/critic/internal/config"
)

// parseLevel maps a config log level onto slog. Unknown values mean warn.
func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

func newLogger(w io.Writer, level string, verbose bool) *slog.Logger {
	lvl := parseLevel(level)
	if verbose {
		lvl = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

// loadConfig merges configuration and installs the default logger at the
// configured level.
func loadConfig(overrides map[string]string) (config.Config, error) {
	cfg, err := config.Load(overrides)
	if err != nil {
		return config.Config{}, err
	}
	slog.SetDefault(newLogger(os.Stderr, cfg.LogLevel, flagVerbose))
	return cfg, nil
}
