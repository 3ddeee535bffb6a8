package common

import (
	"sync"
	"time"
)

const (
	TIMEFORMAT_ISO8601 string = "2006-01-02T15:04:05.000000000Z07:00"
)

func FormatISO8601(t time.Time) string {
	return t.Format(TIMEFORMAT_ISO8601)
}

func NowISO8601() string {
	return FormatISO8601(time.Now())
}

func ParseISO8601(s string) (time.Time, error) {
	return time.Parse(TIMEFORMAT_ISO8601, s)
}

// Clock is the time source for everything deadline-related; poll expiry is
// always evaluated against a `Clock`, never against `time.Now()` directly,
// so tests can drive time by hand.
type Clock interface {
	Now() time.Time
}

type LocalClock struct{}

func (LocalClock) Now() time.Time {
	return time.Now()
}

// ManualClock only moves when told to.
type ManualClock struct {
	sync.Mutex

	now time.Time
}

func NewManualClock(now time.Time) *ManualClock {
	return &ManualClock{now: now}
}

func (c *ManualClock) Now() time.Time {
	c.Lock()
	defer c.Unlock()

	return c.now
}

func (c *ManualClock) Set(now time.Time) {
	c.Lock()
	defer c.Unlock()

	c.now = now
}

func (c *ManualClock) Advance(d time.Duration) {
	c.Lock()
	defer c.Unlock()

	c.now = c.now.Add(d)
}
