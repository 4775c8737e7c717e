package time

import (
	"context"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-smarttasks/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitCurrentTimeProvider_Initialize(t *testing.T) {
	_, err := InitCurrentTimeProvider{}.Initialize(context.Background())
	require.NoError(t, err)

	clock, err := depend.Resolve[domain.CurrentTimeProvider]()
	require.NoError(t, err)
	assert.IsType(t, UTCClock{}, clock)
}

func TestUTCClock_Now(t *testing.T) {
	now := UTCClock{}.Now()
	assert.WithinDuration(t, time.Now(), now, time.Second)
	assert.Equal(t, time.UTC, now.Location())
	assert.Zero(t, now.Nanosecond()%int(time.Microsecond))
}
