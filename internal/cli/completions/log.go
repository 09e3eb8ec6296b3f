package completions

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/julianstephens/trainlog/internal/cli"
	"github.com/julianstephens/trainlog/internal/logger"
	"github.com/julianstephens/trainlog/internal/models"
)

type LogCmd struct {
	Date   string `arg:"" help:"Date to log (YYYY-MM-DD, 'today' or 'yesterday')."`
	Status string `arg:"" help:"completed, partial or missed (c, p, m)."`
	Note   string `short:"n" help:"Optional note."`
	Force  bool   `short:"f" help:"Allow logging a rest day."`
}

func (c *LogCmd) Run(ctx *cli.Context) error {
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}
	status, ok := models.ParseCompletionStatus(strings.ToLower(c.Status))
	if !ok {
		return fmt.Errorf("invalid status %q (use completed, partial or missed)", c.Status)
	}

	w, scheduled := ctx.Schedule.Workout(date)
	if !scheduled && !c.Force {
		return fmt.Errorf("no workout scheduled on %s; use --force to log it anyway", date)
	}

	existing, err := ctx.Completion(date)
	if err != nil {
		return fmt.Errorf("failed to load completion: %w", err)
	}

	comp := models.Completion{
		ID:     uuid.New().String(),
		Date:   date,
		Status: status,
		Note:   c.Note,
	}
	if existing != nil && c.Note == "" {
		comp.Note = existing.Note
	}

	if err := ctx.Store.SaveCompletion(comp); err != nil {
		return fmt.Errorf("failed to save completion: %w", err)
	}
	logger.Info("completion logged", "date", date, "status", status)

	verb := "Logged"
	if existing != nil {
		verb = "Updated"
	}
	label := "rest day"
	if scheduled {
		label = w.Label
	}
	ctx.Printf("✓ %s %s %s: %s\n", verb, date, label, status)
	return nil
}
