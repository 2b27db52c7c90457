package clock

import "time"

// Clock abstracts time so upgrade timers can be tested deterministically.
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

// Now returns the current time using the system clock.
func (RealClock) Now() time.Time {
	return time.Now()
}

// FrozenClock is a manually advanced clock for tests.
type FrozenClock struct {
	now time.Time
}

func NewFrozenClock(start time.Time) *FrozenClock {
	return &FrozenClock{now: start}
}

func (f *FrozenClock) Now() time.Time {
	return f.now
}

func (f *FrozenClock) Advance(d time.Duration) {
	f.now = f.now.Add(d)
}
