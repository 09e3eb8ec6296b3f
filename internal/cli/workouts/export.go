package workouts

import (
	"fmt"
	"os"

	"github.com/julianstephens/trainlog/internal/cli"
	"github.com/julianstephens/trainlog/internal/export"
)

type ExportCmd struct {
	Format string `help:"Output format." enum:"json,yaml" default:"yaml"`
	Output string `short:"o" help:"Write to a file instead of stdout." type:"path"`
}

func (c *ExportCmd) Run(ctx *cli.Context) error {
	if c.Output == "" {
		return export.Write(ctx.Stdout(), ctx.Schedule, c.Format)
	}

	f, err := os.Create(c.Output)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", c.Output, err)
	}
	if err := export.Write(f, ctx.Schedule, c.Format); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	ctx.Printf("✓ Exported schedule to %s\n", c.Output)
	return nil
}
