package domain

import (
	"fmt"
	"time"
)

// DayLayout is the ISO calendar-day format used for every date in the domain.
const DayLayout = "2006-01-02"

// ParseDay validates an ISO calendar day and returns it normalised.
func ParseDay(s string) (string, error) {
	t, err := time.Parse(DayLayout, s)
	if err != nil {
		return "", fmt.Errorf("%w: date %q must be YYYY-MM-DD", ErrInvalid, s)
	}
	return t.Format(DayLayout), nil
}

// AddDays shifts an ISO calendar day by n days. The input must already be
// valid; invalid input is returned unchanged.
func AddDays(day string, n int) string {
	t, err := time.Parse(DayLayout, day)
	if err != nil {
		return day
	}
	return t.AddDate(0, 0, n).Format(DayLayout)
}

// WeekStart returns the Monday of the ISO week containing t, in t's location.
func WeekStart(t time.Time) string {
	// time.Weekday counts from Sunday; shift so Monday is 0.
	offset := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -offset).Format(DayLayout)
}
