// Package schedule holds the compiled-in training block and answers lookups by date.
//
// A Schedule is immutable once built, so a single value may be shared by any
// number of goroutines without locking.
package schedule

import (
	"fmt"
	"sort"
	"time"

	"github.com/julianstephens/trainlog/internal/models"
)

type Schedule struct {
	weeks    []models.TrainingWeek
	workouts []models.Workout
	byDate   map[string]models.Workout
}

// New builds a schedule from authored lists. Workouts sharing a date resolve
// to the last one in the list.
func New(weeks []models.TrainingWeek, workouts []models.Workout) *Schedule {
	s := &Schedule{
		weeks:    append([]models.TrainingWeek(nil), weeks...),
		workouts: append([]models.Workout(nil), workouts...),
		byDate:   make(map[string]models.Workout, len(workouts)),
	}
	for _, w := range s.workouts {
		s.byDate[w.Date] = w
	}
	return s
}

var defaultSchedule = New(trainingWeeks, workouts)

// Default returns the compiled-in schedule.
func Default() *Schedule {
	return defaultSchedule
}

// GetWorkout looks up the workout scheduled on date in the default schedule.
func GetWorkout(date string) (models.Workout, bool) {
	return defaultSchedule.Workout(date)
}

// GetTrainingWeek returns the default schedule's week covering date.
func GetTrainingWeek(date string) (models.TrainingWeek, bool) {
	return defaultSchedule.TrainingWeek(date)
}

// FormatDateKey renders t's calendar date, in t's own location, as the
// YYYY-MM-DD key used by every lookup.
func FormatDateKey(t time.Time) string {
	return fmt.Sprintf("%d-%02d-%02d", t.Year(), int(t.Month()), t.Day())
}

// Workout returns the workout for an exact date key. A missing entry means a
// rest day, not an error; malformed keys simply miss.
func (s *Schedule) Workout(date string) (models.Workout, bool) {
	w, ok := s.byDate[date]
	return w, ok
}

// TrainingWeek returns the first week, in authored order, whose inclusive
// range contains date.
func (s *Schedule) TrainingWeek(date string) (models.TrainingWeek, bool) {
	for _, w := range s.weeks {
		if w.Contains(date) {
			return w, true
		}
	}
	return models.TrainingWeek{}, false
}

// Weeks returns a copy of the authored week list.
func (s *Schedule) Weeks() []models.TrainingWeek {
	return append([]models.TrainingWeek(nil), s.weeks...)
}

// Workouts returns a copy of the authored workout list, duplicates included.
func (s *Schedule) Workouts() []models.Workout {
	return append([]models.Workout(nil), s.workouts...)
}

// WorkoutsInRange returns the resolved workouts dated within [start, end],
// sorted by date.
func (s *Schedule) WorkoutsInRange(start, end string) []models.Workout {
	var out []models.Workout
	for date, w := range s.byDate {
		if date >= start && date <= end {
			out = append(out, w)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date < out[j].Date
	})
	return out
}

func (s *Schedule) WorkoutsForWeek(week models.TrainingWeek) []models.Workout {
	return s.WorkoutsInRange(week.Start, week.End)
}

// Bounds returns the earliest and latest dates covered by any week or workout.
// ok is false for an empty schedule.
func (s *Schedule) Bounds() (first, last string, ok bool) {
	consider := func(start, end string) {
		if !ok || start < first {
			first = start
		}
		if !ok || end > last {
			last = end
		}
		ok = true
	}
	for _, w := range s.weeks {
		consider(w.Start, w.End)
	}
	for date := range s.byDate {
		consider(date, date)
	}
	return first, last, ok
}
