package timeutil

import "time"

// TruncateToUTCDay returns the instant's calendar day at midnight UTC.
// All date comparisons and store keys use this normalization.
func TruncateToUTCDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// IsWeekend reports whether the day is a Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.UTC().Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// RemainingDaysOfMonth lists, in calendar order, every day of anchor's month
// from anchor (or today, whichever is later) through the end of the month.
// Days already in the past relative to now are excluded; anchors in a future
// month yield the whole month.
func RemainingDaysOfMonth(anchor, now time.Time) []time.Time {
	start := TruncateToUTCDay(anchor)
	today := TruncateToUTCDay(now)
	if today.After(start) && sameMonth(today, start) {
		start = today
	}

	var days []time.Time
	for d := start; d.Month() == start.Month(); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// WeekendDays filters a day list down to Saturdays and Sundays.
func WeekendDays(days []time.Time) []time.Time {
	filtered := make([]time.Time, 0, len(days))
	for _, d := range days {
		if IsWeekend(d) {
			filtered = append(filtered, d)
		}
	}
	return filtered
}

func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
