package workouts

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/julianstephens/trainlog/internal/cli"
	"github.com/julianstephens/trainlog/internal/export"
	"github.com/julianstephens/trainlog/internal/models"
	"github.com/julianstephens/trainlog/internal/schedule"
	"github.com/julianstephens/trainlog/internal/storage"
)

func setupTestContext(t *testing.T) (*cli.Context, *bytes.Buffer) {
	t.Helper()
	store := storage.NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	})

	var out bytes.Buffer
	return &cli.Context{
		Store:    store,
		Schedule: schedule.Default(),
		Out:      &out,
	}, &out
}

func logDay(t *testing.T, ctx *cli.Context, date string, status models.CompletionStatus, note string) {
	t.Helper()
	err := ctx.Store.SaveCompletion(models.Completion{ID: uuid.New().String(), Date: date, Status: status, Note: note})
	if err != nil {
		t.Fatalf("failed to log %s: %v", date, err)
	}
}

func TestDayCmd(t *testing.T) {
	ctx, out := setupTestContext(t)
	logDay(t, ctx, "2026-03-07", models.CompletionCompleted, "PR by 20s")

	if err := (&DayCmd{Date: "2026-03-07"}).Run(ctx); err != nil {
		t.Fatalf("DayCmd.Run() error: %v", err)
	}
	got := out.String()
	for _, want := range []string{"Sat 2026-03-07", "W3 (2026-03-02 – 2026-03-08)", "[race] RACE: 10K", "[✓ completed] PR by 20s"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestDayCmd_RestDay(t *testing.T) {
	ctx, out := setupTestContext(t)
	if err := (&DayCmd{Date: "2030-01-01"}).Run(ctx); err != nil {
		t.Fatalf("DayCmd.Run() error: %v", err)
	}
	if !strings.Contains(out.String(), "rest day") || !strings.Contains(out.String(), "outside the training block") {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}

func TestDayCmd_BadDate(t *testing.T) {
	ctx, _ := setupTestContext(t)
	if err := (&DayCmd{Date: "03/07/2026"}).Run(ctx); err == nil {
		t.Error("expected error for malformed date")
	}
}

func TestWeekCmd(t *testing.T) {
	ctx, out := setupTestContext(t)
	logDay(t, ctx, "2026-03-03", models.CompletionPartial, "")

	if err := (&WeekCmd{Date: "2026-03-04"}).Run(ctx); err != nil {
		t.Fatalf("WeekCmd.Run() error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	// header, blank, seven days
	if len(lines) != 9 {
		t.Fatalf("got %d lines:\n%s", len(lines), out.String())
	}
	if !strings.HasPrefix(lines[3], "  ~ Tue 2026-03-03") {
		t.Errorf("Tuesday line = %q", lines[3])
	}
	if !strings.HasPrefix(lines[4], ">   Wed 2026-03-04") {
		t.Errorf("Wednesday line = %q", lines[4])
	}
}

func TestWeekCmd_OutsideBlock(t *testing.T) {
	ctx, _ := setupTestContext(t)
	if err := (&WeekCmd{Date: "2030-01-01"}).Run(ctx); err == nil {
		t.Error("expected error outside every week")
	}
}

func TestCalendarCmd(t *testing.T) {
	ctx, out := setupTestContext(t)
	logDay(t, ctx, "2026-03-21", models.CompletionCompleted, "")

	if err := (&CalendarCmd{Month: "2026-03"}).Run(ctx); err != nil {
		t.Fatalf("CalendarCmd.Run() error: %v", err)
	}
	got := out.String()
	if !strings.HasPrefix(got, "March 2026\n") {
		t.Errorf("missing title:\n%s", got)
	}
	if !strings.Contains(got, "21★✓") {
		t.Errorf("race day not marked:\n%s", got)
	}

	if err := (&CalendarCmd{Month: "March"}).Run(ctx); err == nil {
		t.Error("expected error for bad month")
	}
}

func TestExportCmd(t *testing.T) {
	ctx, out := setupTestContext(t)
	if err := (&ExportCmd{Format: "yaml"}).Run(ctx); err != nil {
		t.Fatalf("ExportCmd.Run() error: %v", err)
	}
	var doc export.Document
	if err := yaml.Unmarshal(out.Bytes(), &doc); err != nil {
		t.Fatalf("stdout is not YAML: %v", err)
	}
	if len(doc.Workouts) != len(schedule.Default().Workouts()) {
		t.Errorf("exported %d workouts", len(doc.Workouts))
	}

	path := filepath.Join(t.TempDir(), "schedule.json")
	if err := (&ExportCmd{Format: "json", Output: path}).Run(ctx); err != nil {
		t.Fatalf("ExportCmd.Run() to file error: %v", err)
	}
}

func TestValidateCmd(t *testing.T) {
	ctx, out := setupTestContext(t)
	if err := (&ValidateCmd{Strict: true}).Run(ctx); err != nil {
		t.Fatalf("default schedule should validate: %v", err)
	}
	if !strings.Contains(out.String(), "No conflicts detected.") {
		t.Errorf("unexpected report: %s", out.String())
	}

	ctx.Schedule = schedule.New(
		[]models.TrainingWeek{{Label: "X", Start: "2026-05-07", End: "2026-05-01"}},
		[]models.Workout{{Date: "2026-05-02", Category: models.CategoryRun, Label: "Easy"}},
	)
	if err := (&ValidateCmd{}).Run(ctx); err == nil {
		t.Error("inverted week should fail validation")
	}
}
