package models

// Category is the kind of training session scheduled for a day.
type Category string

const (
	CategoryRun  Category = "run"
	CategoryLift Category = "lift"
	CategoryRace Category = "race"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryRun, CategoryLift, CategoryRace:
		return true
	}
	return false
}

// Workout is one prescribed training session on one calendar day.
type Workout struct {
	Date        string   `json:"date" yaml:"date"` // YYYY-MM-DD format
	Category    Category `json:"category" yaml:"category"`
	Label       string   `json:"label" yaml:"label"`
	Description string   `json:"description" yaml:"description"`
}

// TrainingWeek is a labeled, inclusive date range with a weekly mileage target.
type TrainingWeek struct {
	Label string `json:"label" yaml:"label"`
	Start string `json:"start" yaml:"start"` // YYYY-MM-DD format, inclusive
	End   string `json:"end" yaml:"end"`     // YYYY-MM-DD format, inclusive
	Miles string `json:"miles" yaml:"miles"`
	Note  string `json:"note,omitempty" yaml:"note,omitempty"`
}

// Contains reports whether date falls inside the week's inclusive range.
// Dates are compared as strings, which orders correctly only because every
// key shares the fixed YYYY-MM-DD shape.
func (w TrainingWeek) Contains(date string) bool {
	return date >= w.Start && date <= w.End
}
