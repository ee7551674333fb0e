package models

import (
	"time"

	"github.com/google/uuid"
)

// IDGenerator produces opaque unique identifiers for items and log entries.
// The store takes this as an injected capability so tests can supply
// deterministic sequences.
type IDGenerator interface {
	NewID() string
}

// Clock supplies the current time. Injected alongside IDGenerator so tests
// control LastUpdated and log timestamps.
type Clock interface {
	Now() time.Time
}

// UUIDGenerator is the production IDGenerator, backed by random UUIDv4.
type UUIDGenerator struct{}

// NewID returns a fresh UUIDv4 string.
func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// UTCClock is the production Clock. All timestamps are UTC.
type UTCClock struct{}

// Now returns the current UTC time.
func (UTCClock) Now() time.Time {
	return time.Now().UTC()
}
