package log

import (
	"context"
	"fmt"
	"log"

	"github.com/cleitonmarx/symbiont/depend"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// InitLogger builds the structured application logger and registers it in the dependency container.
// A *log.Logger bridge writing through the same core is registered for libraries that expect one.
type InitLogger struct {
	Level string `config:"LOG_LEVEL" default:"info"`

	logger *zap.Logger
}

// Initialize builds the logger and registers it.
func (il *InitLogger) Initialize(ctx context.Context) (context.Context, error) {
	level, err := zapcore.ParseLevel(il.Level)
	if err != nil {
		return ctx, fmt.Errorf("invalid LOG_LEVEL %q: %w", il.Level, err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	il.logger, err = cfg.Build(zap.Fields(zap.String("service", "smarttasks")))
	if err != nil {
		return ctx, fmt.Errorf("failed to build logger: %w", err)
	}

	depend.Register(il.logger)
	depend.Register[*log.Logger](zap.NewStdLog(il.logger))
	return ctx, nil
}

// Close flushes buffered log entries.
func (il *InitLogger) Close() {
	if il.logger != nil {
		_ = il.logger.Sync()
	}
}
