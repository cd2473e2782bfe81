// Package logger is a thin structured logging facade over zap.
package logger

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Field is a structured log field
type Field = zapcore.Field

// LoggerI is the logging interface used across the module
type LoggerI interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	Sync() error
}

type loggerImpl struct {
	zap *zap.Logger
}

// Field helpers
var (
	String = zap.String
	Int    = zap.Int
	Bool   = zap.Bool
	Any    = zap.Any
	Error  = zap.Error
)

// NewLogger returns a console logger writing to stderr at the given level.
// Unknown levels fall back to warn.
func NewLogger(name, level string) LoggerI {
	lvl, err := zapcore.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		lvl = zapcore.WarnLevel
	}

	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.TimeKey = ""
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.Lock(os.Stderr),
		zap.NewAtomicLevelAt(lvl),
	)

	return &loggerImpl{zap: zap.New(core).Named(name)}
}

// NewNop returns a logger that discards everything
func NewNop() LoggerI {
	return &loggerImpl{zap: zap.NewNop()}
}

func (l *loggerImpl) Debug(msg string, fields ...Field) { l.zap.Debug(msg, fields...) }
func (l *loggerImpl) Info(msg string, fields ...Field)  { l.zap.Info(msg, fields...) }
func (l *loggerImpl) Warn(msg string, fields ...Field)  { l.zap.Warn(msg, fields...) }
func (l *loggerImpl) Error(msg string, fields ...Field) { l.zap.Error(msg, fields...) }

// Sync flushes buffered entries
func (l *loggerImpl) Sync() error {
	return l.zap.Sync()
}
