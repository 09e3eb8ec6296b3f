package completions

import (
	"github.com/julianstephens/trainlog/internal/cli"
	"github.com/julianstephens/trainlog/internal/progress"
)

type StatsCmd struct {
	Through string `help:"Count scheduled days up to this date." default:"today"`
}

func (c *StatsCmd) Run(ctx *cli.Context) error {
	through, err := ctx.ResolveDate(c.Through)
	if err != nil {
		return err
	}
	first, last, ok := ctx.Schedule.Bounds()
	if !ok {
		ctx.Println("The schedule is empty.")
		return nil
	}

	list, err := ctx.Store.GetCompletionsInRange(first, last)
	if err != nil {
		return err
	}
	summary := progress.Summarize(ctx.Schedule, list, through)

	ctx.Printf("%-9s %5s %5s %5s %5s %5s %6s\n", "Week", "Sched", "Done", "Part", "Miss", "Open", "Adh")
	for _, ws := range summary.Weeks {
		if ws.Scheduled == 0 {
			continue
		}
		printRow(ctx, ws.Week.Label, ws.Counts)
	}
	printRow(ctx, "Total", summary.Total)
	ctx.Printf("\nCurrent streak: %d day(s)\n", summary.Streak)
	return nil
}

func printRow(ctx *cli.Context, label string, c progress.Counts) {
	ctx.Printf("%-9s %5d %5d %5d %5d %5d %5.0f%%\n",
		label, c.Scheduled, c.Completed, c.Partial, c.Missed, c.Unlogged, c.Adherence()*100)
}
