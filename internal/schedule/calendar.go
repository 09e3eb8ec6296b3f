package schedule

import (
	"time"

	"github.com/julianstephens/trainlog/internal/models"
)

// Day is one cell of a month grid.
type Day struct {
	Date    string
	Day     int
	InMonth bool
	Workout *models.Workout
}

// Month lays out the given month as Monday-first week rows. Leading and
// trailing cells from neighbouring months are included with InMonth false.
func (s *Schedule) Month(year int, month time.Month) [][]Day {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	// Monday = 0
	offset := (int(first.Weekday()) + 6) % 7
	cursor := first.AddDate(0, 0, -offset)

	var rows [][]Day
	for {
		row := make([]Day, 7)
		for i := range row {
			key := FormatDateKey(cursor)
			d := Day{
				Date:    key,
				Day:     cursor.Day(),
				InMonth: cursor.Month() == month,
			}
			if w, ok := s.Workout(key); ok {
				d.Workout = &w
			}
			row[i] = d
			cursor = cursor.AddDate(0, 0, 1)
		}
		rows = append(rows, row)
		if cursor.Month() != month {
			break
		}
	}
	return rows
}
