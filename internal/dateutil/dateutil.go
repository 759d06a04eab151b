package dateutil

import (
	"fmt"
	"time"
)

// DateFormat is the storage format for trip dates.
const DateFormat = "2006-01-02"

// Day pairs a calendar date with its 1-based position in the trip.
type Day struct {
	Date   string // YYYY-MM-DD format
	Number int
}

func parse(s string) (time.Time, error) {
	return time.Parse(DateFormat, s)
}

// FormatDate renders a date string as a long label, e.g. "Jun 5, 2025".
// Returns "" for empty or unparseable input.
func FormatDate(s string) string {
	d, err := parse(s)
	if err != nil {
		return ""
	}
	return d.Format("Jan 2, 2006")
}

// FormatShortDate renders a date string as an abbreviated label, e.g. "Jun 5".
// Returns "" for empty or unparseable input.
func FormatShortDate(s string) string {
	d, err := parse(s)
	if err != nil {
		return ""
	}
	return d.Format("Jan 2")
}

// DaysBetween returns the inclusive day count between two dates: both
// endpoints count, so a same-day range yields 1. Returns 0 if either bound
// is empty or unparseable.
func DaysBetween(start, end string) int {
	s, err := parse(start)
	if err != nil {
		return 0
	}
	e, err := parse(end)
	if err != nil {
		return 0
	}
	return int(e.Sub(s).Hours()/24) + 1
}

// DayList expands a date range into an ordered sequence of days numbered
// from 1. Empty if either bound is absent or invalid.
func DayList(start, end string) []Day {
	count := DaysBetween(start, end)
	if count <= 0 {
		return nil
	}

	s, _ := parse(start)
	days := make([]Day, count)
	for i := range days {
		days[i] = Day{
			Date:   s.AddDate(0, 0, i).Format(DateFormat),
			Number: i + 1,
		}
	}
	return days
}

// DurationText describes a date range as a human phrase: "1 day", "5 days",
// "2 weeks", "1 week, 3 days". Returns "" if either bound is absent.
func DurationText(start, end string) string {
	days := DaysBetween(start, end)
	if days <= 0 {
		return ""
	}
	if days == 1 {
		return "1 day"
	}
	if days < 7 {
		return fmt.Sprintf("%d days", days)
	}

	weeks := days / 7
	remaining := days % 7

	weekPart := fmt.Sprintf("%d weeks", weeks)
	if weeks == 1 {
		weekPart = "1 week"
	}
	if remaining == 0 {
		return weekPart
	}

	dayPart := fmt.Sprintf("%d days", remaining)
	if remaining == 1 {
		dayPart = "1 day"
	}
	return weekPart + ", " + dayPart
}
