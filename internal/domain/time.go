package domain

import "time"

// CurrentTimeProvider is the clock used to stamp tasks, profiles and outbox events.
type CurrentTimeProvider interface {
	Now() time.Time
}
