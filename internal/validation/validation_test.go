package validation

import (
	"strings"
	"testing"

	"github.com/julianstephens/trainlog/internal/models"
	"github.com/julianstephens/trainlog/internal/schedule"
)

func countType(result ValidationResult, typ ConflictType) int {
	n := 0
	for _, c := range result.Conflicts {
		if c.Type == typ {
			n++
		}
	}
	return n
}

func TestValidateSchedule_DefaultIsClean(t *testing.T) {
	s := schedule.Default()
	result := New().ValidateSchedule(s.Weeks(), s.Workouts())
	if result.HasConflicts() {
		t.Errorf("expected compiled-in schedule to validate cleanly, got:\n%s", result.FormatReport())
	}
}

func TestValidateWeeks_Overlap(t *testing.T) {
	weeks := []models.TrainingWeek{
		{Label: "W1", Start: "2026-02-16", End: "2026-02-22"},
		{Label: "W2", Start: "2026-02-22", End: "2026-03-01"},
	}
	result := New().ValidateWeeks(weeks)
	if countType(result, ConflictOverlappingWeeks) != 1 {
		t.Errorf("expected one overlap conflict, got:\n%s", result.FormatReport())
	}
	if !result.HasErrors() {
		t.Error("overlap should be an error")
	}
}

func TestValidateWeeks_Gap(t *testing.T) {
	weeks := []models.TrainingWeek{
		{Label: "W1", Start: "2026-02-16", End: "2026-02-22"},
		{Label: "W2", Start: "2026-02-24", End: "2026-03-01"},
	}
	result := New().ValidateWeeks(weeks)
	if countType(result, ConflictGapBetweenWeeks) != 1 {
		t.Fatalf("expected one gap conflict, got:\n%s", result.FormatReport())
	}
	if result.HasErrors() {
		t.Error("gap should only warn")
	}
	if result.Conflicts[0].Date != "2026-02-23" {
		t.Errorf("gap date = %s, want 2026-02-23", result.Conflicts[0].Date)
	}
}

func TestValidateWeeks_ContiguousAcrossMonth(t *testing.T) {
	weeks := []models.TrainingWeek{
		{Label: "W2", Start: "2026-02-23", End: "2026-03-01"},
		{Label: "W3", Start: "2026-03-02", End: "2026-03-08"},
	}
	result := New().ValidateWeeks(weeks)
	if result.HasConflicts() {
		t.Errorf("unexpected conflicts:\n%s", result.FormatReport())
	}
}

func TestValidateWeeks_OutOfOrderAndInverted(t *testing.T) {
	weeks := []models.TrainingWeek{
		{Label: "W2", Start: "2026-02-23", End: "2026-03-01"},
		{Label: "W1", Start: "2026-02-16", End: "2026-02-22"},
		{Label: "Bad", Start: "2026-04-10", End: "2026-04-01"},
	}
	result := New().ValidateWeeks(weeks)
	if countType(result, ConflictWeeksOutOfOrder) != 1 {
		t.Errorf("expected out-of-order conflict, got:\n%s", result.FormatReport())
	}
	if countType(result, ConflictInvertedWeek) != 1 {
		t.Errorf("expected inverted-week conflict, got:\n%s", result.FormatReport())
	}
}

func TestValidateWeeks_InvalidDates(t *testing.T) {
	weeks := []models.TrainingWeek{
		{Label: "W1", Start: "2026-2-16", End: "2026-02-22"},
		{Label: "W2", Start: "2026-02-23", End: "2026-02-30"},
	}
	result := New().ValidateWeeks(weeks)
	if n := countType(result, ConflictInvalidDate); n != 2 {
		t.Errorf("expected 2 invalid date conflicts, got %d:\n%s", n, result.FormatReport())
	}
}

func TestValidateWorkouts(t *testing.T) {
	weeks := []models.TrainingWeek{{Label: "W1", Start: "2026-02-16", End: "2026-02-22"}}
	workouts := []models.Workout{
		{Date: "2026-02-16", Category: models.CategoryLift, Label: "Lift A"},
		{Date: "2026-02-16", Category: models.CategoryRun, Label: "Easy Run"},
		{Date: "2026-02-17", Category: "swim", Label: "Swim"},
		{Date: "2026-03-01", Category: models.CategoryRun, Label: "Stray"},
		{Date: "tomorrow", Category: models.CategoryRun, Label: "Bad"},
	}

	result := New().ValidateWorkouts(workouts, weeks)

	tests := []struct {
		typ  ConflictType
		want int
	}{
		{ConflictDuplicateWorkout, 1},
		{ConflictUnknownCategory, 1},
		{ConflictWorkoutOutsideAll, 1},
		{ConflictInvalidDate, 1},
	}
	for _, tt := range tests {
		if got := countType(result, tt.typ); got != tt.want {
			t.Errorf("%s: got %d, want %d", tt.typ, got, tt.want)
		}
	}

	for _, c := range result.Conflicts {
		if c.Type == ConflictDuplicateWorkout && !strings.Contains(c.Description, "\"Easy Run\" wins") {
			t.Errorf("duplicate description should name the winning entry: %s", c.Description)
		}
	}
}

func TestFormatReport_NoConflicts(t *testing.T) {
	result := ValidationResult{}
	if got := result.FormatReport(); got != "No conflicts detected." {
		t.Errorf("FormatReport() = %q", got)
	}
}
