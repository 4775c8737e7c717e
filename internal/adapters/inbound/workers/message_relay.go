package workers

import (
	"context"
	"time"

	"github.com/cleitonmarx/symbiont-smarttasks/internal/usecases"
	"go.uber.org/zap"
)

// MessageRelay is a runnable that processes outbox events and publishes them to Pub/Sub.
type MessageRelay struct {
	RelayOutbox         usecases.RelayOutbox `resolve:""`
	Logger              *zap.Logger          `resolve:""`
	Interval            time.Duration        `config:"FETCH_OUTBOX_INTERVAL" default:"500ms"`
	workerExecutionChan chan struct{}
}

// Run starts the periodic processing of outbox events.
func (mr MessageRelay) Run(ctx context.Context) error {
	mr.Logger.Info("MessageRelay: running", zap.Duration("interval", mr.Interval))
	ticker := time.NewTicker(mr.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := mr.RelayOutbox.Execute(ctx); err != nil {
				mr.Logger.Error("MessageRelay: error processing batch", zap.Error(err))
			}
			if mr.workerExecutionChan != nil {
				mr.workerExecutionChan <- struct{}{}
			}
		case <-ctx.Done():
			mr.Logger.Info("MessageRelay: stopped")
			return nil
		}
	}
}
