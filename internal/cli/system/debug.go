package system

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/julianstephens/trainlog/internal/cli"
	"github.com/julianstephens/trainlog/internal/keyring"
	"github.com/julianstephens/trainlog/internal/models"
	"github.com/julianstephens/trainlog/internal/storage"
)

type DebugCmd struct {
	DBPath         DebugDBPathCmd         `cmd:"" name:"db-path" help:"Show database path."`
	DumpWorkout    DebugDumpWorkoutCmd    `cmd:"" help:"Dump a day's workout as JSON."`
	DumpWeek       DebugDumpWeekCmd       `cmd:"" help:"Dump the training week covering a date as JSON."`
	DumpCompletion DebugDumpCompletionCmd `cmd:"" help:"Dump a logged completion as JSON."`
}

func writeJSON(ctx *cli.Context, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	ctx.Println(string(data))
	return nil
}

type DebugDBPathCmd struct{}

func (cmd *DebugDBPathCmd) Run(ctx *cli.Context) error {
	return writeJSON(ctx, map[string]string{"path": keyring.Mask(ctx.Store.GetConfigPath())})
}

type DebugDumpWorkoutCmd struct {
	Date string `arg:"" help:"Date of the workout (YYYY-MM-DD or 'today')."`
}

func (cmd *DebugDumpWorkoutCmd) Run(ctx *cli.Context) error {
	date, err := ctx.ResolveDate(cmd.Date)
	if err != nil {
		return err
	}
	w, ok := ctx.Schedule.Workout(date)
	if !ok {
		return fmt.Errorf("no workout scheduled on %s", date)
	}
	return writeJSON(ctx, w)
}

type DebugDumpWeekCmd struct {
	Date string `arg:"" help:"Any date inside the week (YYYY-MM-DD or 'today')."`
}

func (cmd *DebugDumpWeekCmd) Run(ctx *cli.Context) error {
	date, err := ctx.ResolveDate(cmd.Date)
	if err != nil {
		return err
	}
	week, ok := ctx.Schedule.TrainingWeek(date)
	if !ok {
		return fmt.Errorf("%s is outside every training week", date)
	}
	return writeJSON(ctx, struct {
		models.TrainingWeek
		Workouts []models.Workout `json:"workouts"`
	}{week, ctx.Schedule.WorkoutsForWeek(week)})
}

type DebugDumpCompletionCmd struct {
	Date string `arg:"" help:"Date of the completion (YYYY-MM-DD or 'today')."`
}

func (cmd *DebugDumpCompletionCmd) Run(ctx *cli.Context) error {
	date, err := ctx.ResolveDate(cmd.Date)
	if err != nil {
		return err
	}
	comp, err := ctx.Store.GetCompletion(date)
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("nothing logged on %s", date)
	}
	if err != nil {
		return fmt.Errorf("failed to get completion: %w", err)
	}
	return writeJSON(ctx, comp)
}
