package cli

import (
	"fmt"
	"time"

	"github.com/julianstephens/trainlog/internal/constants"
	"github.com/julianstephens/trainlog/internal/models"
)

// FormatStatus renders a completion as "[✓ completed]" with its note, or
// "[not logged]".
func FormatStatus(c *models.Completion) string {
	if c == nil {
		return "[not logged]"
	}
	s := fmt.Sprintf("[%s %s]", c.Status.Marker(), c.Status)
	if c.Note != "" {
		s += " " + c.Note
	}
	return s
}

// Weekday returns the short weekday name of a date key, or "" if the key
// does not parse.
func Weekday(date string) string {
	t, err := time.Parse(constants.DateFormat, date)
	if err != nil {
		return ""
	}
	return t.Weekday().String()[:3]
}

// FormatWeek renders "W3 (2026-03-02 – 2026-03-08) · 30–40 mi · note".
func FormatWeek(w models.TrainingWeek) string {
	s := fmt.Sprintf("%s (%s – %s) · %s mi", w.Label, w.Start, w.End, w.Miles)
	if w.Note != "" {
		s += " · " + w.Note
	}
	return s
}
