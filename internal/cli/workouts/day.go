package workouts

import (
	"fmt"

	"github.com/julianstephens/trainlog/internal/cli"
)

type DayCmd struct {
	Date string `arg:"" help:"Date to show (YYYY-MM-DD, 'today', 'yesterday' or 'tomorrow')." default:"today"`
}

func (c *DayCmd) Run(ctx *cli.Context) error {
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}

	ctx.Printf("%s %s\n\n", cli.Weekday(date), date)

	if week, ok := ctx.Schedule.TrainingWeek(date); ok {
		ctx.Printf("Week:     %s\n", cli.FormatWeek(week))
	} else {
		ctx.Println("Week:     outside the training block")
	}

	w, ok := ctx.Schedule.Workout(date)
	if !ok {
		ctx.Println("Workout:  rest day")
		return nil
	}
	ctx.Printf("Workout:  [%s] %s\n", w.Category, w.Label)
	if w.Description != "" && w.Description != w.Label {
		ctx.Printf("          %s\n", w.Description)
	}

	comp, err := ctx.Completion(date)
	if err != nil {
		return fmt.Errorf("failed to load completion: %w", err)
	}
	ctx.Printf("Status:   %s\n", cli.FormatStatus(comp))
	return nil
}
