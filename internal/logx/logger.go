// Package logx is the small structured logging surface used across the
// generator.
package logx

import (
	"go.uber.org/zap"
)

// Logger is the minimal structured logger the generator depends on.
type Logger interface {
	Info(msg string, fields ...zap.Field)
	Error(msg string, fields ...zap.Field)
	Debug(msg string, fields ...zap.Field)
	Warn(msg string, fields ...zap.Field)
	With(fields ...zap.Field) Logger
}

// Nop returns a Logger that discards everything.
func Nop() Logger {
	return NewZapLogger(nil)
}
