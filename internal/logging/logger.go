// Package logging provides config-driven, file-backed structured logging.
// The dashboard owns the terminal, so nothing is ever written to stdout or
// stderr. When debug_mode is false every logger is a no-op and no file is
// created.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"votedash/internal/config"
)

// Category names a subsystem; it becomes the zap logger name.
type Category string

const (
	CategoryBoot  Category = "boot"  // startup, config, shutdown
	CategoryTally Category = "tally" // vote and reset events
	CategoryUI    Category = "ui"    // key handling, resizes
)

// Logger is a zap logger bound to an optional log file.
type Logger struct {
	*zap.Logger
	file *os.File
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{Logger: zap.NewNop()}
}

// New builds a logger from cfg. It returns a no-op logger unless
// cfg.DebugMode is set.
func New(cfg config.LoggingConfig) (*Logger, error) {
	if !cfg.DebugMode {
		return Nop(), nil
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	if dir := filepath.Dir(cfg.File); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create logs directory: %w", err)
		}
	}
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(f), level)

	return &Logger{Logger: zap.New(core), file: f}, nil
}

// Category returns a child logger named after c.
func (l *Logger) Category(c Category) *zap.Logger {
	return l.Named(string(c))
}

// Close flushes buffered entries and closes the log file, if any.
func (l *Logger) Close() error {
	_ = l.Sync()
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}
