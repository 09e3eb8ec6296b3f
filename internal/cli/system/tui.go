package system

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/trainlog/internal/cli"
	"github.com/julianstephens/trainlog/internal/tui"
	"github.com/julianstephens/trainlog/internal/utils"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	today, err := utils.TodayKey(ctx.Settings().Timezone)
	if err != nil {
		return err
	}

	ctx.PerformAutomaticBackup()

	p := tea.NewProgram(tui.NewModel(ctx.Store, ctx.Schedule, today), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui exited with error: %w", err)
	}
	return nil
}
