package time

import (
	"context"
	"time"

	"github.com/cleitonmarx/symbiont-smarttasks/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
)

// UTCClock implements domain.CurrentTimeProvider.
// Timestamps are in UTC and truncated to microseconds, the precision of a Postgres timestamptz.
type UTCClock struct{}

// Now returns the current time.
func (UTCClock) Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// InitCurrentTimeProvider registers the UTCClock in the dependency container.
type InitCurrentTimeProvider struct{}

// Initialize registers the clock.
func (InitCurrentTimeProvider) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.CurrentTimeProvider](UTCClock{})
	return ctx, nil
}
