package models

// CompletionStatus records how a scheduled day actually went.
type CompletionStatus string

const (
	CompletionCompleted CompletionStatus = "completed"
	CompletionPartial   CompletionStatus = "partial"
	CompletionMissed    CompletionStatus = "missed"
)

func (s CompletionStatus) Valid() bool {
	switch s {
	case CompletionCompleted, CompletionPartial, CompletionMissed:
		return true
	}
	return false
}

// Marker is the one-character marker used in lists and grids. Unknown
// statuses render as a blank.
func (s CompletionStatus) Marker() string {
	switch s {
	case CompletionCompleted:
		return "✓"
	case CompletionPartial:
		return "~"
	case CompletionMissed:
		return "✗"
	}
	return " "
}

// ParseCompletionStatus accepts the full status name or its first letter.
func ParseCompletionStatus(s string) (CompletionStatus, bool) {
	switch s {
	case "completed", "done", "c":
		return CompletionCompleted, true
	case "partial", "p":
		return CompletionPartial, true
	case "missed", "skipped", "m":
		return CompletionMissed, true
	}
	return "", false
}

// Completion is the athlete's record for a single day. There is at most one per date.
type Completion struct {
	ID        string           `json:"id"`
	Date      string           `json:"date"` // YYYY-MM-DD format
	Status    CompletionStatus `json:"status"`
	Note      string           `json:"note,omitempty"`
	CreatedAt string           `json:"created_at"` // RFC3339 timestamp
	UpdatedAt string           `json:"updated_at"` // RFC3339 timestamp
}
