package summary

import "time"

// Clock supplies "now" to the window computations so tests can pin it.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock reads the wall clock.
func SystemClock() Clock { return systemClock{} }

// FixedClock always returns the same instant.
type FixedClock struct {
	Time time.Time
}

func (c FixedClock) Now() time.Time { return c.Time }

// monthWindow returns the first and last instant of the month containing
// now, in now's location. The upper bound is 23:59:59 of the last day,
// matching an inclusive time_created <= bound.
func monthWindow(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	end := time.Date(now.Year(), now.Month()+1, 0, 23, 59, 59, 0, now.Location())
	return start, end
}

// yearWindow returns the first and last instant of the year containing now.
func yearWindow(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	end := time.Date(now.Year(), time.December, 31, 23, 59, 59, 0, now.Location())
	return start, end
}
