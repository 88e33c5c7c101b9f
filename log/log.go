// Package log builds the zap loggers used by gsc components.
package log

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// where logs go by default.
var logWriter io.Writer = os.Stdout

// Encoder kinds accepted by the logging configuration.
const (
	ConsoleEncoder = "console"
	JSONEncoder    = "json"
)

// NewEncoder returns a zap encoder for the configured kind.
func NewEncoder(kind string) (zapcore.Encoder, error) {
	switch kind {
	case "", ConsoleEncoder:
		return zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()), nil
	case JSONEncoder:
		return zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), nil
	default:
		return nil, fmt.Errorf("unknown log encoder %q", kind)
	}
}

// NewWithLevel creates a named logger with a fixed level and with a set of (optional) hooks.
func NewWithLevel(name string, level zap.AtomicLevel, encoder zapcore.Encoder, hooks ...func(zapcore.Entry) error) *zap.Logger {
	core := zapcore.NewCore(encoder, zapcore.AddSync(logWriter), level)
	return zap.New(zapcore.RegisterHooks(core, hooks...)).Named(name)
}

// Leveled returns a child logger with its own level. The level can't be lower than the parent's.
func Leveled(parent *zap.Logger, name, level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse level %q for %s: %w", level, name, err)
	}
	return parent.Named(name).WithOptions(zap.IncreaseLevel(lvl)), nil
}
