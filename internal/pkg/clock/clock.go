package clock

import "time"

// Clock abstracts access to the current time so that every service comparing
// against "now" stays deterministic under test.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// NewReal returns a Clock backed by time.Now.
func NewReal() Clock { return realClock{} }

// Fixed is a Clock pinned to a single instant.
type Fixed struct {
	Instant time.Time
}

func (f Fixed) Now() time.Time { return f.Instant }
