// Package logging wires the charmbracelet handler into log/slog.
// Diagnostics go through this logger; user-facing report lines are
// printed by the cmd layer on stdout.
package logging

import (
	"log/slog"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/bianoble/restamp/internal/config"
)

// New builds the process logger from the logger config section.
func New(cfg config.Logger) *slog.Logger {
	var formatter log.Formatter
	switch cfg.Format {
	case "json":
		formatter = log.JSONFormatter
	case "logfmt":
		formatter = log.LogfmtFormatter
	default:
		formatter = log.TextFormatter
	}

	level := log.InfoLevel
	switch cfg.Level {
	case "debug":
		level = log.DebugLevel
	case "warn":
		level = log.WarnLevel
	case "error":
		level = log.ErrorLevel
	}

	handler := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "restamp",
		Formatter:       formatter,
		Level:           level,
	})
	return slog.New(handler)
}
