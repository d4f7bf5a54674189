package clock

import (
	"sync"
	"time"

	"go.uber.org/atomic"
)

// Fake is a Clocker whose time only moves when told to. It is safe for
// concurrent use.
type Fake struct {
	mu  sync.Mutex // serializes writers
	now *atomic.Time
}

// NewFake returns a Fake clock reading t.
func NewFake(t time.Time) *Fake {
	return &Fake{now: atomic.NewTime(t)}
}

// Now returns the current fake time.
func (f *Fake) Now() time.Time {
	return f.now.Load()
}

// Set moves the clock to t.
func (f *Fake) Set(t time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.now.Store(t)
}

// Advance moves the clock forward by d and returns the new time.
func (f *Fake) Advance(d time.Duration) time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()

	next := f.now.Load().Add(d)
	f.now.Store(next)
	return next
}
