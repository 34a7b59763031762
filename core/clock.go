package core

import "time"

// Clock supplies the timestamp of each record
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns time.Now()
func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock always returns the same instant. It is meant for tests and
// examples where output must be deterministic.
type FixedClock time.Time

// Now returns the fixed instant
func (c FixedClock) Now() time.Time {
	return time.Time(c)
}
