package internal

import (
	"strings"
	"time"
	_ "time/tzdata"
)

const (
	inputLayout   = "2006-01-02 15:04"
	displayLayout = "02 Jan 2006, 15:04"
)

var localZone = loadLocalZone()

func loadLocalZone() *time.Location {
	location, err := time.LoadLocation("Europe/London")
	if err != nil {
		return time.UTC
	}
	return location
}

// ParseLocalTime reads wall-clock input ("2006-01-02 15:04" or with a T
// separator) in the community's local timezone and converts it to the
// absolute UTC instant stored and compared everywhere else.
func ParseLocalTime(value string) (time.Time, error) {
	value = strings.Replace(strings.TrimSpace(value), "T", " ", 1)

	local, err := time.ParseInLocation(inputLayout, value, localZone)
	if err != nil {
		return time.Time{}, err
	}

	return local.UTC(), nil
}

func FormatLocalTime(date time.Time) string {
	return date.In(localZone).Format(displayLayout) + " (Europe/London)"
}

// FormatStoredTime renders a stored RFC3339 instant for display, falling
// back to the raw string when it does not parse.
func FormatStoredTime(value string) string {
	date, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return value
	}
	return FormatLocalTime(date)
}
