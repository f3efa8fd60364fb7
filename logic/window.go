package logic

import (
	"fmt"
	"time"
)

// Supported analytics time windows.
const (
	WindowWeek  = "week"
	WindowMonth = "month"
	WindowAll   = "all"
)

// windowCutoff resolves a window name to the earliest timestamp still
// inside the window. The second return is false when the window is
// unbounded ("all" or empty).
func windowCutoff(window string, now time.Time) (time.Time, bool, error) {
	switch window {
	case "", WindowAll:
		return time.Time{}, false, nil
	case WindowWeek:
		return now.AddDate(0, 0, -7), true, nil
	case WindowMonth:
		return monthBack(now), true, nil
	default:
		return time.Time{}, false, fmt.Errorf("%w: unknown time window %q", ErrInvalidInput, window)
	}
}

// monthBack returns the same day-of-month in the previous month,
// clamped to that month's length (Mar 31 -> Feb 28/29). time.AddDate
// would normalize the overflow into March instead.
func monthBack(now time.Time) time.Time {
	year, month, day := now.Date()
	prevYear, prevMonth := year, month-1
	if prevMonth < time.January {
		prevYear, prevMonth = year-1, time.December
	}
	if last := daysIn(prevYear, prevMonth); day > last {
		day = last
	}
	return time.Date(prevYear, prevMonth, day,
		now.Hour(), now.Minute(), now.Second(), now.Nanosecond(), now.Location())
}

// daysIn returns the number of days in a month. Day 0 of the next
// month normalizes to the last day of this one.
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
