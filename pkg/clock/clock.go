package clock

import "time"

// System is the wall clock. Services depend on the Now method through
// their own small interfaces so tests can pin time.
type System struct{}

func New() System {
	return System{}
}

func (System) Now() time.Time {
	return time.Now()
}
