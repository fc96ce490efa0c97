// Copyright (c) 2025 Vex Labs
// SPDX-License-Identifier: MIT

// Package applog sets up the application logger. The TUI owns stdout, so
// all logging goes to a file under the vex data directory.
package applog

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// FileName is the log file under the vex data directory.
const FileName = "vex.log"

// New creates a logger writing to dir/vex.log at the given level. The
// returned cleanup flushes buffered entries and must run on shutdown.
func New(dir, level string) (*zap.Logger, func(), error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	path := filepath.Join(dir, FileName)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encCfg),
		zapcore.Lock(f),
		lvl,
	)

	logger := zap.New(core, zap.AddCaller())
	cleanup := func() {
		_ = logger.Sync()
		_ = f.Close()
	}
	return logger, cleanup, nil
}

// Nop returns a logger that discards everything. Used in tests and as a
// fallback when the log file cannot be opened.
func Nop() *zap.Logger {
	return zap.NewNop()
}
