package domain

import (
	"fmt"
	"time"
)

var monthAbbreviations = [...]string{
	"JAN", "FEB", "MAR", "APR", "MAY", "JUN",
	"JUL", "AUG", "SEP", "OCT", "NOV", "DEC",
}

// MonthAbbreviation returns the three letter upper-case abbreviation for m.
func MonthAbbreviation(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return monthAbbreviations[m-1]
}

// FormatDateTimeGroup formats t as a military date-time group in Zulu time:
// DDHHMMZ followed by the month abbreviation and the four digit year,
// e.g. 050709ZMAR2024.
func FormatDateTimeGroup(t time.Time) string {
	t = t.UTC()
	return fmt.Sprintf("%02d%02d%02dZ%s%04d",
		t.Day(), t.Hour(), t.Minute(), MonthAbbreviation(t.Month()), t.Year())
}

// CurrentDateTimeGroup returns the date-time group for the current instant.
func CurrentDateTimeGroup() string {
	return FormatDateTimeGroup(time.Now())
}

// BuildStamp returns the line written to a build stamp file for the named artifact.
func BuildStamp(name string, t time.Time) string {
	return "Current " + name + " build is: " + FormatDateTimeGroup(t)
}
