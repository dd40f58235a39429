package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// globalLogger discards until Init is called
var globalLogger = zap.NewNop()

// Init initializes the global logger writing JSON lines to path.
// The terminal belongs to the UI, so nothing is ever written to stdout.
func Init(path, level string) error {
	config := zap.NewProductionConfig()
	config.OutputPaths = []string{path}
	config.ErrorOutputPaths = []string{path}
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	config.Level = zap.NewAtomicLevelAt(lvl)

	l, err := config.Build()
	if err != nil {
		return err
	}
	globalLogger = l
	return nil
}

// Replace swaps the global logger and returns a func that restores the old one
func Replace(l *zap.Logger) func() {
	prev := globalLogger
	globalLogger = l
	return func() { globalLogger = prev }
}

// Get returns the global logger
func Get() *zap.Logger {
	return globalLogger
}

// Sync flushes the logger
func Sync() error {
	return globalLogger.Sync()
}

// Info logs at info level
func Info(msg string, fields ...zap.Field) {
	Get().Info(msg, fields...)
}

// Error logs at error level
func Error(msg string, fields ...zap.Field) {
	Get().Error(msg, fields...)
}

// Debug logs at debug level
func Debug(msg string, fields ...zap.Field) {
	Get().Debug(msg, fields...)
}

// Warn logs at warn level
func Warn(msg string, fields ...zap.Field) {
	Get().Warn(msg, fields...)
}
