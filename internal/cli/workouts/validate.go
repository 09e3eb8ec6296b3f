package workouts

import (
	"fmt"
	"strings"

	"github.com/julianstephens/trainlog/internal/cli"
	"github.com/julianstephens/trainlog/internal/validation"
)

type ValidateCmd struct {
	Strict bool `help:"Treat warnings as failures."`
}

func (c *ValidateCmd) Run(ctx *cli.Context) error {
	result := validation.New().ValidateSchedule(ctx.Schedule.Weeks(), ctx.Schedule.Workouts())
	ctx.Println(strings.TrimRight(result.FormatReport(), "\n"))

	if result.HasErrors() || (c.Strict && result.HasConflicts()) {
		return fmt.Errorf("schedule validation failed with %d conflict(s)", len(result.Conflicts))
	}
	return nil
}
