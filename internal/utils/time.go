package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/trainlog/internal/constants"
	"github.com/julianstephens/trainlog/internal/schedule"
)

// nowFunc is swapped in tests.
var nowFunc = time.Now

// LoadLocation resolves an IANA name; "" and "Local" mean the system zone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// NowInTimezone returns the current time in the given timezone.
func NowInTimezone(timezone string) (time.Time, error) {
	loc, err := LoadLocation(timezone)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return nowFunc().In(loc), nil
}

// TodayKey returns today's schedule key as seen from timezone.
func TodayKey(timezone string) (string, error) {
	now, err := NowInTimezone(timezone)
	if err != nil {
		return "", err
	}
	return schedule.FormatDateKey(now), nil
}

// ResolveDateArg turns a CLI date argument into a schedule key. It accepts
// "today", "yesterday", "tomorrow" or an exact YYYY-MM-DD date.
func ResolveDateArg(arg, timezone string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(arg)) {
	case "", "today":
		return TodayKey(timezone)
	case "yesterday", "tomorrow":
		now, err := NowInTimezone(timezone)
		if err != nil {
			return "", err
		}
		days := -1
		if strings.EqualFold(strings.TrimSpace(arg), "tomorrow") {
			days = 1
		}
		return schedule.FormatDateKey(now.AddDate(0, 0, days)), nil
	}

	t, err := time.Parse(constants.DateFormat, arg)
	if err != nil {
		return "", fmt.Errorf("invalid date %q, use YYYY-MM-DD, 'today', 'yesterday' or 'tomorrow'", arg)
	}
	return schedule.FormatDateKey(t), nil
}

// ParseDateKey parses a schedule key into midnight UTC of that date.
func ParseDateKey(key string) (time.Time, error) {
	return time.Parse(constants.DateFormat, key)
}

// AddDays shifts a schedule key by n days.
func AddDays(key string, n int) (string, error) {
	t, err := ParseDateKey(key)
	if err != nil {
		return "", err
	}
	return schedule.FormatDateKey(t.AddDate(0, 0, n)), nil
}

// ValidateTimeFormat checks the HH:MM settings format.
func ValidateTimeFormat(s string) bool {
	_, err := time.Parse(constants.TimeFormat, s)
	return err == nil
}

func ValidateTimezone(timezone string) bool {
	_, err := LoadLocation(timezone)
	return err == nil
}
