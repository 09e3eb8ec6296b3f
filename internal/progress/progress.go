// Package progress summarises how the logged completions line up with the
// scheduled workouts.
package progress

import (
	"github.com/julianstephens/trainlog/internal/models"
	"github.com/julianstephens/trainlog/internal/schedule"
)

type Counts struct {
	Scheduled int
	Completed int
	Partial   int
	Missed    int
	Unlogged  int
}

// Adherence is completed days over scheduled days, partial days counting
// half. It is 0 for an empty count.
func (c Counts) Adherence() float64 {
	if c.Scheduled == 0 {
		return 0
	}
	return (float64(c.Completed) + 0.5*float64(c.Partial)) / float64(c.Scheduled)
}

func (c *Counts) add(o Counts) {
	c.Scheduled += o.Scheduled
	c.Completed += o.Completed
	c.Partial += o.Partial
	c.Missed += o.Missed
	c.Unlogged += o.Unlogged
}

type WeekSummary struct {
	Week models.TrainingWeek
	Counts
}

type Summary struct {
	Weeks  []WeekSummary
	Total  Counts
	Streak int
}

// Summarize counts every scheduled day up to and including through. Days
// after through are left out so a week in progress is not penalised for the
// future. Each day belongs to the first week covering it, and days outside
// every week are not counted. Completions logged on rest days are ignored.
func Summarize(sched *schedule.Schedule, completions []models.Completion, through string) Summary {
	byDate := make(map[string]models.CompletionStatus, len(completions))
	for _, c := range completions {
		byDate[c.Date] = c.Status
	}

	weeks := sched.Weeks()
	s := Summary{Weeks: make([]WeekSummary, len(weeks))}
	for i, week := range weeks {
		s.Weeks[i].Week = week
	}

	for _, d := range countedDays(sched, through) {
		var c Counts
		c.Scheduled = 1
		switch byDate[d.workout.Date] {
		case models.CompletionCompleted:
			c.Completed = 1
		case models.CompletionPartial:
			c.Partial = 1
		case models.CompletionMissed:
			c.Missed = 1
		default:
			c.Unlogged = 1
		}
		s.Weeks[d.week].add(c)
		s.Total.add(c)
	}
	s.Streak = Streak(sched, byDate, through)
	return s
}

// Streak counts consecutive scheduled days ending at through whose status is
// completed or partial. It walks the same days Summarize counts. Rest days
// neither extend nor break it, and an unlogged through day is skipped so the
// streak survives until the day ends.
func Streak(sched *schedule.Schedule, statuses map[string]models.CompletionStatus, through string) int {
	days := countedDays(sched, through)
	streak := 0
	for i := len(days) - 1; i >= 0; i-- {
		date := days[i].workout.Date
		status, logged := statuses[date]
		if !logged && date == through {
			continue
		}
		if status != models.CompletionCompleted && status != models.CompletionPartial {
			break
		}
		streak++
	}
	return streak
}

type day struct {
	workout models.Workout
	week    int
}

// countedDays returns the workouts up to through that fall inside a week,
// in date order, each tagged with the index of the first week covering it.
func countedDays(sched *schedule.Schedule, through string) []day {
	first, _, ok := sched.Bounds()
	if !ok {
		return nil
	}
	weeks := sched.Weeks()
	var out []day
	for _, w := range sched.WorkoutsInRange(first, through) {
		for i, week := range weeks {
			if week.Contains(w.Date) {
				out = append(out, day{workout: w, week: i})
				break
			}
		}
	}
	return out
}
