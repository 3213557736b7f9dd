package timezone

import (
	"cowork/shared/constant"
	"time"
)

// Clock supplies the current instant. Services take a Clock so "today" can be pinned in tests.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return Now()
}

func NewClock() Clock {
	return systemClock{}
}

// FixedClock always reports the same instant.
type FixedClock time.Time

func (c FixedClock) Now() time.Time {
	return time.Time(c)
}

// DaysBetween counts calendar days from one date to another, ignoring DST shifts.
func DaysBetween(from, to time.Time) int {
	fy, fm, fd := from.Date()
	ty, tm, td := to.Date()

	start := time.Date(fy, fm, fd, 0, 0, 0, 0, time.UTC)
	end := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)

	return int(end.Sub(start).Hours()) / constant.HoursPerDay
}
