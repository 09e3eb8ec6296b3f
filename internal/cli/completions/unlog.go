package completions

import (
	"errors"
	"fmt"

	"github.com/julianstephens/trainlog/internal/cli"
	"github.com/julianstephens/trainlog/internal/logger"
	"github.com/julianstephens/trainlog/internal/storage"
)

type UnlogCmd struct {
	Date string `arg:"" help:"Date whose completion to remove."`
}

func (c *UnlogCmd) Run(ctx *cli.Context) error {
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}

	if err := ctx.Store.DeleteCompletion(date); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("nothing logged on %s", date)
		}
		return fmt.Errorf("failed to delete completion: %w", err)
	}
	logger.Info("completion removed", "date", date)
	ctx.Printf("✓ Removed completion for %s\n", date)
	return nil
}
