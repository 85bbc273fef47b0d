// Package logger builds the zap logger of the hld command.
//
// Logs go to a rotated file, and to stderr in verbose mode. Stdout is left
// to the interactive menu.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config holds the logging options.
type Config struct {
	File    string // rotated JSON log file, none if empty
	Verbose bool   // also log to Console at debug level
	Console io.Writer
}

// New creates a zap.Logger configured based on the given options.
func New(cfg Config) (*zap.Logger, error) {
	var cores []zapcore.Core

	if cfg.File != "" {
		// Create parent directory if it doesn't exist
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		fileWriter := zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    5, // MB
			MaxBackups: 3,
			MaxAge:     30, // days
			Compress:   true,
		})
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			fileWriter,
			zapcore.InfoLevel,
		))
	}

	if cfg.Verbose {
		console := cfg.Console
		if console == nil {
			console = os.Stderr
		}
		cores = append(cores, zapcore.NewCore(
			zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
			zapcore.Lock(zapcore.AddSync(console)),
			zapcore.DebugLevel,
		))
	}

	if len(cores) == 0 {
		return zap.NewNop(), nil
	}
	return zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)), nil
}

// Install makes l the global logger used by the holdings packages. The
// returned function flushes l and restores the previous global logger.
func Install(l *zap.Logger) func() {
	restore := zap.ReplaceGlobals(l)
	return func() {
		_ = l.Sync()
		restore()
	}
}
