package dareme

import (
	"time"

	"github.com/google/uuid"
)

// Clock supplies "now" for vote windows, story expiry and challenge deadlines.
type Clock interface {
	Now() time.Time
}

// RealClock reads the wall clock in UTC, which is how timestamps are stored.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now().UTC() }

// IDGenerator names uploaded media objects.
type IDGenerator interface {
	New() string
}

// UUIDGenerator names objects with random v4 UUIDs.
type UUIDGenerator struct{}

func (UUIDGenerator) New() string { return uuid.NewString() }
