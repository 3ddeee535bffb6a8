// Provide test utilities for the common package
package common

import (
	"time"
)

// Initialize a new config object for unittests; the clock starts at a
// fixed instant so expiry behavior is reproducible.
func NewTestConfig(now time.Time) (Config, *ManualClock) {
	clock := NewManualClock(now)

	p := Config{}
	p.InitialPollID = InitialPollID
	p.MinPollOptions = MinPollOptions
	p.Clock = clock

	return p, clock
}
