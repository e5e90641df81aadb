package logger

import (
	"context"
	"sync"

	"github.com/newrelic/go-agent/v3/newrelic"
	"go.uber.org/zap"
)

var (
	globalLogger *ZapLogger
	once         sync.Once
	mu           sync.RWMutex
)

// SetGlobalLogger sets the global logger instance. Called once at startup.
func SetGlobalLogger(logger *ZapLogger) {
	mu.Lock()
	defer mu.Unlock()
	globalLogger = logger
}

// GetGlobalLogger returns the global logger, falling back to a default
// production logger if none was set.
func GetGlobalLogger() *ZapLogger {
	mu.RLock()
	defer mu.RUnlock()

	if globalLogger == nil {
		once.Do(func() {
			defaultLogger, _ := zap.NewProduction()
			globalLogger = &ZapLogger{Logger: defaultLogger}
		})
	}

	return globalLogger
}

// Info logs an info message using the global logger
func Info(msg string, fields ...Field) {
	GetGlobalLogger().Info(msg, fields...)
}

// Warn logs a warning message using the global logger
func Warn(msg string, fields ...Field) {
	GetGlobalLogger().Warn(msg, fields...)
}

// Debug logs a debug message using the global logger
func Debug(msg string, fields ...Field) {
	GetGlobalLogger().Debug(msg, fields...)
}

// Error logs an error message using the global logger
func Error(msg string, fields ...Field) {
	GetGlobalLogger().Error(msg, fields...)
}

// Fatal logs a fatal message and exits using the global logger
func Fatal(msg string, fields ...Field) {
	GetGlobalLogger().Fatal(msg, fields...)
}

// InfoCtx logs an info message with trace correlation when the context
// carries a New Relic transaction
func InfoCtx(ctx context.Context, msg string, fields ...Field) {
	if txn := newrelic.FromContext(ctx); txn != nil {
		GetGlobalLogger().WithNewRelicContext(txn).Info(msg, fields...)
		return
	}
	GetGlobalLogger().Info(msg, fields...)
}

// WarnCtx logs a warning message with trace correlation
func WarnCtx(ctx context.Context, msg string, fields ...Field) {
	if txn := newrelic.FromContext(ctx); txn != nil {
		GetGlobalLogger().WithNewRelicContext(txn).Warn(msg, fields...)
		return
	}
	GetGlobalLogger().Warn(msg, fields...)
}

// ErrorCtx logs an error message with trace correlation
func ErrorCtx(ctx context.Context, msg string, fields ...Field) {
	if txn := newrelic.FromContext(ctx); txn != nil {
		GetGlobalLogger().WithNewRelicContext(txn).Error(msg, fields...)
		return
	}
	GetGlobalLogger().Error(msg, fields...)
}
