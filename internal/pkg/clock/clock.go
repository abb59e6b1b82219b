package clock

import "time"

// Clocker abstracts time retrieval so code depending on the current time can
// be tested deterministically.
type Clocker interface {
	Now() time.Time
}

// Clock is the production Clocker backed by the system clock.
type Clock struct{}

// New returns a Clock using the real system time.
func New() *Clock {
	return &Clock{}
}

// Now returns the current UTC time.
func (c *Clock) Now() time.Time {
	return time.Now().UTC()
}

// Fixed is a Clocker that always reports the same instant. It is intended for
// tests that assert on expiry windows or timestamps.
type Fixed struct {
	at time.Time
}

// NewFixed returns a Fixed clock pinned to the given instant.
func NewFixed(at time.Time) *Fixed {
	return &Fixed{at: at}
}

// Now returns the pinned instant.
func (f *Fixed) Now() time.Time {
	return f.at
}
