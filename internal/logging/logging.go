// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

// Package logging builds the structured logger. The TUI owns the terminal,
// so interactive sessions log to a file; CLI commands may log to stderr.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// StderrFile selects standard error as the log destination.
const StderrFile = "-"

// Config selects the log destination and level.
type Config struct {
	File  string // log file path, "-" for stderr, empty to discard
	Level string // logrus level name, defaults to info
}

// New builds a logger for cfg. The returned close function releases the log
// file and is always safe to call.
func New(cfg Config) (*logrus.Logger, func() error, error) {
	level := logrus.InfoLevel

	if cfg.Level != "" {
		parsed, err := logrus.ParseLevel(cfg.Level)
		if err != nil {
			return nil, noopClose, fmt.Errorf("invalid log level: %w", err)
		}

		level = parsed
	}

	switch cfg.File {
	case "":
		return Discard(), noopClose, nil
	case StderrFile:
		return NewWithWriter(os.Stderr, level), noopClose, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.File), 0o750); err != nil {
		return nil, noopClose, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600) //nolint:gosec // user-configured path
	if err != nil {
		return nil, noopClose, fmt.Errorf("failed to open log file: %w", err)
	}

	return NewWithWriter(file, level), file.Close, nil
}

// NewWithWriter builds a text logger writing to w.
func NewWithWriter(w io.Writer, level logrus.Level) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})

	return log
}

// Discard returns a logger that drops everything.
func Discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)

	return log
}

func noopClose() error { return nil }
