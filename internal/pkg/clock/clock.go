// Package clock lets usecases read the time through an interface so expiry and
// timestamp logic can be pinned in tests.
package clock

import (
	"sync"
	"time"
)

type Clock interface {
	Now() time.Time
}

type system struct{}

func NewSystem() Clock { return system{} }

// Now is UTC at microsecond precision, the resolution of timestamptz, so a
// value compared in memory equals the one read back from Postgres.
func (system) Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// Frozen stands still until a test moves it. Safe for concurrent readers.
type Frozen struct {
	mu  sync.RWMutex
	now time.Time
}

func NewFrozen(t time.Time) *Frozen {
	return &Frozen{now: t}
}

func (f *Frozen) Now() time.Time {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.now
}

func (f *Frozen) Set(t time.Time) {
	f.mu.Lock()
	f.now = t
	f.mu.Unlock()
}

func (f *Frozen) Add(d time.Duration) {
	f.mu.Lock()
	f.now = f.now.Add(d)
	f.mu.Unlock()
}
