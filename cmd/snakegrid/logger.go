package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/snakegrid/internal/config"
)

// newLogger builds the process logger. Format "auto" writes text to a
// terminal and JSON otherwise.
func newLogger(out *os.File, lc config.LogConfig) (*log.Logger, error) {
	level := log.InfoLevel
	if lc.Level != "" {
		parsed, err := log.ParseLevel(lc.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", lc.Level, err)
		}
		level = parsed
	}

	formatter := log.TextFormatter
	switch lc.Format {
	case "json":
		formatter = log.JSONFormatter
	case "auto", "":
		if !term.IsTerminal(int(out.Fd())) {
			formatter = log.JSONFormatter
		}
	}

	return log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "snakegrid",
		Level:           level,
		Formatter:       formatter,
	}), nil
}
