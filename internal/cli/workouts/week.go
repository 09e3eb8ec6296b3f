package workouts

import (
	"fmt"

	"github.com/julianstephens/trainlog/internal/cli"
	"github.com/julianstephens/trainlog/internal/utils"
)

type WeekCmd struct {
	Date string `arg:"" help:"Any date inside the week to show." default:"today"`
}

func (c *WeekCmd) Run(ctx *cli.Context) error {
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}

	week, ok := ctx.Schedule.TrainingWeek(date)
	if !ok {
		return fmt.Errorf("%s is outside every training week", date)
	}

	completions, err := ctx.CompletionMap(week.Start, week.End)
	if err != nil {
		return err
	}

	ctx.Println(cli.FormatWeek(week))
	ctx.Println()

	for day := week.Start; day <= week.End; {
		label := "rest"
		if w, ok := ctx.Schedule.Workout(day); ok {
			label = fmt.Sprintf("%-5s %s", w.Category, w.Label)
		}
		marker := " "
		if comp, ok := completions[day]; ok {
			marker = comp.Status.Marker()
		}
		cursor := " "
		if day == date {
			cursor = ">"
		}
		ctx.Printf("%s %s %s %s  %s\n", cursor, marker, cli.Weekday(day), day, label)

		day, err = utils.AddDays(day, 1)
		if err != nil {
			return err
		}
	}
	return nil
}
