package completions

import (
	"github.com/julianstephens/trainlog/internal/cli"
)

type HistoryCmd struct {
	From string `help:"First date to include. Defaults to the start of the block."`
	To   string `help:"Last date to include." default:"today"`
}

func (c *HistoryCmd) Run(ctx *cli.Context) error {
	from, to, err := resolveRange(ctx, c.From, c.To)
	if err != nil {
		return err
	}

	list, err := ctx.Store.GetCompletionsInRange(from, to)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		ctx.Printf("Nothing logged between %s and %s.\n", from, to)
		return nil
	}

	for _, comp := range list {
		label := "rest day"
		if w, ok := ctx.Schedule.Workout(comp.Date); ok {
			label = w.Label
		}
		ctx.Printf("%s %s  %-9s %-16s", cli.Weekday(comp.Date), comp.Date, comp.Status, label)
		if comp.Note != "" {
			ctx.Printf("  %s", comp.Note)
		}
		ctx.Println()
	}
	return nil
}

// resolveRange fills an empty from with the schedule's first date.
func resolveRange(ctx *cli.Context, fromArg, toArg string) (string, string, error) {
	to, err := ctx.ResolveDate(toArg)
	if err != nil {
		return "", "", err
	}
	if fromArg == "" {
		first, _, ok := ctx.Schedule.Bounds()
		if !ok || first > to {
			return to, to, nil
		}
		return first, to, nil
	}
	from, err := ctx.ResolveDate(fromArg)
	if err != nil {
		return "", "", err
	}
	return from, to, nil
}
