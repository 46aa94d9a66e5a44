// Package clock abstracts the time source behind the diagnostics trace
// writer's date-stamped file names, the same way the teacher's disk cache
// (driver.DiskCache.DropAll) stamps its rotated directory with time.Now(),
// but injectable so tests don't depend on the wall clock.
package clock

import "time"

// Clock returns the current time.
type Clock interface {
	Now() time.Time
}

// Real is the production Clock, backed by time.Now.
type Real struct{}

// Now returns time.Now().
func (Real) Now() time.Time { return time.Now() }

// Fixed is a Clock that always returns the same instant, for tests.
type Fixed struct {
	At time.Time
}

// Now returns the fixed instant.
func (f Fixed) Now() time.Time { return f.At }
