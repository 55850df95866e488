package logx

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger adapts a *zap.Logger to Logger.
type ZapLogger struct {
	logger *zap.Logger
}

// NewZapLogger wraps l; a nil l discards output.
func NewZapLogger(l *zap.Logger) *ZapLogger {
	if l == nil {
		return &ZapLogger{logger: zap.NewNop()}
	}

	return &ZapLogger{logger: l}
}

// New builds a stderr logger at level ("debug", "info", "warn", "error").
// Development loggers use the console encoder, others emit JSON.
func New(level string, development bool) (*ZapLogger, error) {
	lvl := zapcore.InfoLevel
	if level != "" {
		parsed, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("parsing log level: %w", err)
		}

		lvl = parsed
	}

	cfg := zap.NewProductionConfig()
	if development {
		cfg = zap.NewDevelopmentConfig()
	}

	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	l, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}

	return NewZapLogger(l), nil
}

// Zap returns the underlying zap logger.
func (z *ZapLogger) Zap() *zap.Logger {
	return z.logger
}

func (z *ZapLogger) With(fields ...zap.Field) Logger {
	if z == nil {
		return NewZapLogger(nil)
	}

	return &ZapLogger{logger: z.logger.With(fields...)}
}

func (z *ZapLogger) Info(msg string, fields ...zap.Field) {
	z.logger.Info(msg, fields...)
}

func (z *ZapLogger) Error(msg string, fields ...zap.Field) {
	z.logger.Error(msg, fields...)
}

func (z *ZapLogger) Debug(msg string, fields ...zap.Field) {
	z.logger.Debug(msg, fields...)
}

func (z *ZapLogger) Warn(msg string, fields ...zap.Field) {
	z.logger.Warn(msg, fields...)
}

// Sync flushes buffered output. Errors from syncing a terminal are ignored.
func (z *ZapLogger) Sync() {
	_ = z.logger.Sync()
}

var _ Logger = (*ZapLogger)(nil)

