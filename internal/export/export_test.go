package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/julianstephens/trainlog/internal/schedule"
)

func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, schedule.Default(), "json"); err != nil {
		t.Fatalf("Write() error: %v", err)
	}

	var doc Document
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if len(doc.Weeks) != len(schedule.Default().Weeks()) {
		t.Errorf("exported %d weeks", len(doc.Weeks))
	}
	if doc.Workouts[0].Date != "2026-02-12" {
		t.Errorf("first workout = %s, want authored order", doc.Workouts[0].Date)
	}
	if strings.Contains(buf.String(), `>`) {
		t.Error("arrows in descriptions should not be HTML-escaped")
	}
}

func TestWrite_YAMLRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, schedule.Default(), "YAML"); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "weeks:") {
		t.Errorf("unexpected YAML head: %.40q", buf.String())
	}

	sched, err := Read(&buf, "yaml")
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	week, ok := sched.TrainingWeek("2026-03-07")
	if !ok || week.Label != "W3" || week.Note == "" {
		t.Errorf("TrainingWeek() after round trip = %+v, %v", week, ok)
	}
	w, ok := sched.Workout("2026-03-21")
	want, _ := schedule.GetWorkout("2026-03-21")
	if !ok || w != want {
		t.Errorf("Workout() after round trip = %+v, want %+v", w, want)
	}
}

func TestWrite_UnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, schedule.Default(), "csv"); err == nil {
		t.Error("Write() should reject csv")
	}
	if _, err := Read(&buf, "toml"); err == nil {
		t.Error("Read() should reject toml")
	}
}
