package booking_window

import (
	"fmt"
	"time"
)

// TimezoneName anchors every booking date. The fleet operates on a single
// regional wall clock regardless of where the service runs.
const TimezoneName = "America/Sao_Paulo"

// WindowFactory converts caller-supplied dates into the canonical
// booking instants: starts snap to the beginning of the day, ends snap
// to the last second of the day, both in the fixed timezone.
type WindowFactory struct {
	loc *time.Location
}

func New() (*WindowFactory, error) {
	loc, err := time.LoadLocation(TimezoneName)
	if err != nil {
		return nil, fmt.Errorf("load timezone %s: %w", TimezoneName, err)
	}
	return &WindowFactory{loc: loc}, nil
}

func (f *WindowFactory) AnchorStart(t time.Time) time.Time {
	local := t.In(f.loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, f.loc)
}

func (f *WindowFactory) AnchorEnd(t time.Time) time.Time {
	local := t.In(f.loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 23, 59, 59, 0, f.loc)
}

// StartOfDay returns the beginning of the day containing t, used as the
// "not in the past" boundary for candidate windows.
func (f *WindowFactory) StartOfDay(t time.Time) time.Time {
	return f.AnchorStart(t)
}

// MonthBounds returns the first instant of t's calendar month and the
// first instant of the following month, as a half-open range.
func (f *WindowFactory) MonthBounds(t time.Time) (time.Time, time.Time) {
	local := t.In(f.loc)
	start := time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, f.loc)
	return start, start.AddDate(0, 1, 0)
}
