package workouts

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/trainlog/internal/cli"
	"github.com/julianstephens/trainlog/internal/constants"
	"github.com/julianstephens/trainlog/internal/models"
)

type CalendarCmd struct {
	Month string `arg:"" optional:"" help:"Month to show (YYYY-MM). Defaults to the current month."`
}

var categoryLetter = map[models.Category]string{
	models.CategoryRun:  "R",
	models.CategoryLift: "L",
	models.CategoryRace: "★",
}

func (c *CalendarCmd) Run(ctx *cli.Context) error {
	year, month, err := c.resolveMonth(ctx)
	if err != nil {
		return err
	}

	rows := ctx.Schedule.Month(year, month)
	completions, err := ctx.CompletionMap(rows[0][0].Date, rows[len(rows)-1][6].Date)
	if err != nil {
		return err
	}

	ctx.Printf("%s %d\n", month, year)
	ctx.Println(" Mon   Tue   Wed   Thu   Fri   Sat   Sun")
	for _, row := range rows {
		var b strings.Builder
		for _, d := range row {
			if !d.InMonth {
				b.WriteString("      ")
				continue
			}
			kind := "·"
			if d.Workout != nil {
				kind = categoryLetter[d.Workout.Category]
			}
			marker := " "
			if comp, ok := completions[d.Date]; ok {
				marker = comp.Status.Marker()
			}
			fmt.Fprintf(&b, " %2d%s%s ", d.Day, kind, marker)
		}
		ctx.Println(strings.TrimRight(b.String(), " "))
	}
	ctx.Println()
	ctx.Println("R run  L lift  ★ race  · rest    ✓ completed  ~ partial  ✗ missed")
	return nil
}

func (c *CalendarCmd) resolveMonth(ctx *cli.Context) (int, time.Month, error) {
	if c.Month != "" {
		t, err := time.Parse(constants.MonthFormat, c.Month)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid month %q, use YYYY-MM", c.Month)
		}
		return t.Year(), t.Month(), nil
	}
	today, err := ctx.ResolveDate("today")
	if err != nil {
		return 0, 0, err
	}
	t, _ := time.Parse(constants.DateFormat, today)
	return t.Year(), t.Month(), nil
}
