package helper

import (
	"fmt"
	"strings"
	"time"
)

/* ===============================
   Calendar-day + time-of-day utils
   (shared by timetable + attendance)
=================================*/

// DayRange normalizes t to its calendar day as the half-open range
// [start-of-day, next start-of-day) in t's location. Attendance rows are
// matched against this range instead of exact timestamps, so serialization
// or timezone drift within the day still hits the same record.
func DayRange(t time.Time) (start, end time.Time) {
	start = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	end = start.AddDate(0, 0, 1)
	return start, end
}

// Weekday short names accepted on timetable slots.
var WeekDays = map[string]bool{
	"Mon": true, "Tue": true, "Wed": true, "Thu": true,
	"Fri": true, "Sat": true, "Sun": true,
}

// ValidTimeOfDay reports whether s is a zero-padded 24h "HH:MM" string.
// The format is fixed-width, so plain string comparison of two valid values
// is equivalent to chronological comparison.
func ValidTimeOfDay(s string) bool {
	if len(s) != 5 || s[2] != ':' {
		return false
	}
	hh, mm := s[:2], s[3:]
	if !allDigits(hh) || !allDigits(mm) {
		return false
	}
	return hh <= "23" && mm <= "59"
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// ParseDateYMD parses "YYYY-MM-DD".
func ParseDateYMD(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", s)
	}
	return t, nil
}
