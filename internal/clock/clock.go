// Package clock fences time.Now away from the engine so occurrence
// arithmetic stays deterministic under test.
package clock

import "time"

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}

// Real returns the system time. Use only at the binary entry point.
type Real struct{}

func (Real) Now() time.Time { return time.Now() }

// Fixed always returns the same instant.
type Fixed struct {
	T time.Time
}

func (c Fixed) Now() time.Time { return c.T }

// Func adapts a function to the Clock interface.
type Func func() time.Time

func (f Func) Now() time.Time { return f() }
