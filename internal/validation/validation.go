package validation

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/julianstephens/trainlog/internal/constants"
	"github.com/julianstephens/trainlog/internal/models"
)

// ConflictType represents the type of validation conflict
type ConflictType string

const (
	ConflictInvalidDate       ConflictType = "invalid_date"
	ConflictUnknownCategory   ConflictType = "unknown_category"
	ConflictInvertedWeek      ConflictType = "inverted_week"
	ConflictWeeksOutOfOrder   ConflictType = "weeks_out_of_order"
	ConflictOverlappingWeeks  ConflictType = "overlapping_weeks"
	ConflictGapBetweenWeeks   ConflictType = "gap_between_weeks"
	ConflictDuplicateWorkout  ConflictType = "duplicate_workout"
	ConflictWorkoutOutsideAll ConflictType = "workout_outside_weeks"
)

type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Conflict represents a detected problem in the authored schedule
type Conflict struct {
	Type        ConflictType
	Severity    Severity
	Description string
	Date        string   // YYYY-MM-DD format (if applicable)
	Items       []string // Week labels or workout labels involved
}

// ValidationResult contains all detected conflicts
type ValidationResult struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// HasErrors returns true if any conflict is error severity
func (vr *ValidationResult) HasErrors() bool {
	for _, c := range vr.Conflicts {
		if c.Severity == SeverityError {
			return true
		}
	}
	return false
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No conflicts detected."
	}

	var b strings.Builder
	b.WriteString("Conflicts detected:\n")
	for _, conflict := range vr.Conflicts {
		fmt.Fprintf(&b, "- [%s] %s\n", conflict.Severity, conflict.Description)
	}
	return b.String()
}

// Validator checks authored schedule data. The lookups never enforce any of
// this; the report exists for whoever edits the literal lists.
type Validator struct{}

func New() *Validator {
	return &Validator{}
}

// ValidateSchedule runs the week and workout checks together.
func (v *Validator) ValidateSchedule(weeks []models.TrainingWeek, workouts []models.Workout) ValidationResult {
	result := v.ValidateWeeks(weeks)
	result.Conflicts = append(result.Conflicts, v.ValidateWorkouts(workouts, weeks).Conflicts...)
	return result
}

// ValidateWeeks checks that weeks are well-formed, chronological, and
// contiguous without overlap.
func (v *Validator) ValidateWeeks(weeks []models.TrainingWeek) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	valid := make([]bool, len(weeks))
	for i, w := range weeks {
		startOK := isValidDate(w.Start)
		endOK := isValidDate(w.End)
		if !startOK {
			result.Conflicts = append(result.Conflicts, invalidDate("week \""+w.Label+"\" start", w.Start, w.Label))
		}
		if !endOK {
			result.Conflicts = append(result.Conflicts, invalidDate("week \""+w.Label+"\" end", w.End, w.Label))
		}
		if !startOK || !endOK {
			continue
		}
		if w.Start > w.End {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvertedWeek,
				Severity:    SeverityError,
				Description: fmt.Sprintf("Week \"%s\" starts after it ends (%s > %s)", w.Label, w.Start, w.End),
				Date:        w.Start,
				Items:       []string{w.Label},
			})
			continue
		}
		valid[i] = true
	}

	prev := -1
	for i, w := range weeks {
		if !valid[i] {
			continue
		}
		if prev >= 0 {
			p := weeks[prev]
			switch {
			case w.Start < p.Start:
				result.Conflicts = append(result.Conflicts, Conflict{
					Type:        ConflictWeeksOutOfOrder,
					Severity:    SeverityError,
					Description: fmt.Sprintf("Week \"%s\" (%s) is listed after later week \"%s\" (%s)", w.Label, w.Start, p.Label, p.Start),
					Date:        w.Start,
					Items:       []string{p.Label, w.Label},
				})
			case w.Start <= p.End:
				result.Conflicts = append(result.Conflicts, Conflict{
					Type:        ConflictOverlappingWeeks,
					Severity:    SeverityError,
					Description: fmt.Sprintf("Weeks \"%s\" and \"%s\" overlap (%s..%s, %s..%s)", p.Label, w.Label, p.Start, p.End, w.Start, w.End),
					Date:        w.Start,
					Items:       []string{p.Label, w.Label},
				})
			case nextDay(p.End) != w.Start:
				result.Conflicts = append(result.Conflicts, Conflict{
					Type:        ConflictGapBetweenWeeks,
					Severity:    SeverityWarning,
					Description: fmt.Sprintf("Gap between week \"%s\" ending %s and week \"%s\" starting %s", p.Label, p.End, w.Label, w.Start),
					Date:        nextDay(p.End),
					Items:       []string{p.Label, w.Label},
				})
			}
		}
		prev = i
	}

	return result
}

// ValidateWorkouts checks workout dates and categories, reports duplicated
// dates (the later entry wins at lookup time) and workouts not covered by any
// week.
func (v *Validator) ValidateWorkouts(workouts []models.Workout, weeks []models.TrainingWeek) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	byDate := make(map[string][]string)
	var order []string
	for _, w := range workouts {
		if !isValidDate(w.Date) {
			result.Conflicts = append(result.Conflicts, invalidDate("workout \""+w.Label+"\"", w.Date, w.Label))
			continue
		}
		if !w.Category.Valid() {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictUnknownCategory,
				Severity:    SeverityError,
				Description: fmt.Sprintf("Workout \"%s\" on %s has unknown category %q", w.Label, w.Date, w.Category),
				Date:        w.Date,
				Items:       []string{w.Label},
			})
		}
		if _, seen := byDate[w.Date]; !seen {
			order = append(order, w.Date)
		}
		byDate[w.Date] = append(byDate[w.Date], w.Label)
	}

	sort.Strings(order)
	for _, date := range order {
		labels := byDate[date]
		if len(labels) > 1 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDuplicateWorkout,
				Severity:    SeverityWarning,
				Description: fmt.Sprintf("Multiple workouts on %s %v; \"%s\" wins", date, labels, labels[len(labels)-1]),
				Date:        date,
				Items:       labels,
			})
		}
		if len(weeks) > 0 && !covered(date, weeks) {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictWorkoutOutsideAll,
				Severity:    SeverityWarning,
				Description: fmt.Sprintf("Workout on %s is not inside any training week", date),
				Date:        date,
				Items:       labels,
			})
		}
	}

	return result
}

func invalidDate(what, value, item string) Conflict {
	return Conflict{
		Type:        ConflictInvalidDate,
		Severity:    SeverityError,
		Description: fmt.Sprintf("Invalid date for %s: %q (expected YYYY-MM-DD)", what, value),
		Items:       []string{item},
	}
}

func covered(date string, weeks []models.TrainingWeek) bool {
	for _, w := range weeks {
		if w.Contains(date) {
			return true
		}
	}
	return false
}

// isValidDate requires the exact zero-padded key shape, which is stricter than
// time.Parse alone: lookups compare keys as strings.
func isValidDate(s string) bool {
	t, err := time.Parse(constants.DateFormat, s)
	return err == nil && t.Format(constants.DateFormat) == s
}

func nextDay(date string) string {
	t, err := time.Parse(constants.DateFormat, date)
	if err != nil {
		return ""
	}
	return t.AddDate(0, 0, 1).Format(constants.DateFormat)
}
