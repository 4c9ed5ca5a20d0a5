package entity

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// WeekDay represents a day of the week a tracker is due on.
// Values run Monday-first, which is also the display order.
type WeekDay int

const (
	Monday WeekDay = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// AllWeekDays lists every weekday in display order (Monday-first).
var AllWeekDays = []WeekDay{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// String returns the English name of the weekday.
func (d WeekDay) String() string {
	switch d {
	case Monday:
		return "Monday"
	case Tuesday:
		return "Tuesday"
	case Wednesday:
		return "Wednesday"
	case Thursday:
		return "Thursday"
	case Friday:
		return "Friday"
	case Saturday:
		return "Saturday"
	case Sunday:
		return "Sunday"
	default:
		return fmt.Sprintf("WeekDay(%d)", int(d))
	}
}

// IsValid reports whether the value is one of the seven weekdays.
func (d WeekDay) IsValid() bool {
	return d >= Monday && d <= Sunday
}

// CalendarNumber returns the calendar day-of-week number used for
// schedule matching: Sunday=1, Monday=2, ..., Saturday=7. This matches
// time.Weekday()+1 and must never drift from it, otherwise trackers
// silently disappear on the wrong day.
func (d WeekDay) CalendarNumber() int {
	if d == Sunday {
		return 1
	}
	return int(d) + 1
}

// WeekDayFromTime returns the weekday of the given calendar date.
func WeekDayFromTime(t time.Time) WeekDay {
	if t.Weekday() == time.Sunday {
		return Sunday
	}
	return WeekDay(t.Weekday())
}

// Schedule is the set of weekdays on which a tracker is due.
type Schedule []WeekDay

// Contains reports whether the schedule includes the given weekday.
func (s Schedule) Contains(day WeekDay) bool {
	for _, d := range s {
		if d == day {
			return true
		}
	}
	return false
}

// Normalized returns a copy with duplicates removed, sorted
// Monday-first. Insertion order is irrelevant for a schedule; display
// order follows the enum order.
func (s Schedule) Normalized() Schedule {
	seen := make(map[WeekDay]bool, len(s))
	out := make(Schedule, 0, len(s))
	for _, d := range s {
		if d.IsValid() && !seen[d] {
			seen[d] = true
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// String returns a comma-joined list of weekday names.
func (s Schedule) String() string {
	names := make([]string, len(s))
	for i, d := range s {
		names[i] = d.String()
	}
	return strings.Join(names, ",")
}
