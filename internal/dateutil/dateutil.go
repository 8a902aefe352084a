// Package dateutil resolves conference days: weekday names, the five-day
// workweek the schedule covers, and circular stepping between days.
package dateutil

import (
	"errors"
	"strings"
	"time"
)

// ErrInvalidDay is returned when a day name cannot be parsed.
var ErrInvalidDay = errors.New("day must be a weekday name (monday..sunday) or \"today\"")

// Workdays are the conference days in tab order.
var Workdays = []time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
}

// weekdayMap maps weekday names to time.Weekday values.
var weekdayMap = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// DayName returns the lowercase schedule name for a weekday.
// Saturday and Sunday collapse to "monday": there is no weekend schedule and
// both data sources expect one of the five workday names.
func DayName(d time.Weekday) string {
	switch d {
	case time.Monday:
		return "monday"
	case time.Tuesday:
		return "tuesday"
	case time.Wednesday:
		return "wednesday"
	case time.Thursday:
		return "thursday"
	case time.Friday:
		return "friday"
	default:
		return "monday"
	}
}

// Label returns the title-cased tab label for a weekday ("Monday").
func Label(d time.Weekday) string {
	return d.String()
}

// Index returns the tab index (0=Monday .. 4=Friday). Weekend days map to 0.
func Index(d time.Weekday) int {
	if d < time.Monday || d > time.Friday {
		return 0
	}
	return int(d) - int(time.Monday)
}

// Normalize returns d when it is a workday, otherwise Monday.
func Normalize(d time.Weekday) time.Weekday {
	return Workdays[Index(d)]
}

// NextWorkday returns the day after d, wrapping Friday to Monday.
func NextWorkday(d time.Weekday) time.Weekday {
	return Workdays[(Index(d)+1)%len(Workdays)]
}

// PrevWorkday returns the day before d, wrapping Monday to Friday.
func PrevWorkday(d time.Weekday) time.Weekday {
	n := len(Workdays)
	return Workdays[(Index(d)+n-1)%n]
}

// ParseDay parses a weekday name (case-insensitive) or "today"/"" relative to now.
// The result is normalized to a workday.
func ParseDay(s string, now time.Time) (time.Weekday, error) {
	input := strings.ToLower(strings.TrimSpace(s))
	if input == "" || input == "today" {
		return Normalize(now.Weekday()), nil
	}
	if input == "tomorrow" {
		return Normalize(now.AddDate(0, 0, 1).Weekday()), nil
	}
	d, ok := weekdayMap[input]
	if !ok {
		return time.Sunday, ErrInvalidDay
	}
	return Normalize(d), nil
}
