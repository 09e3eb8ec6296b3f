package settings

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/trainlog/internal/cli"
	"github.com/julianstephens/trainlog/internal/models"
	"github.com/julianstephens/trainlog/internal/utils"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`
	Edit bool `short:"e" help:"Edit settings in an interactive form."`

	Timezone      *string `help:"IANA timezone used to decide what 'today' is (e.g. America/Chicago, Local)."`
	ReminderTime  *string `help:"Daily reminder time (HH:MM)."`
	Notifications *bool   `help:"Enable or disable reminder notifications." negatable:""`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if c.List {
		printSettings(ctx, settings)
		return nil
	}

	updated := settings
	if c.Edit {
		if err := runForm(&updated); err != nil {
			return err
		}
	}
	if c.Timezone != nil {
		updated.Timezone = *c.Timezone
	}
	if c.ReminderTime != nil {
		updated.ReminderTime = *c.ReminderTime
	}
	if c.Notifications != nil {
		updated.NotificationsEnabled = *c.Notifications
	}

	if updated == settings {
		ctx.Println("No changes specified. Use --list to view settings or flags to update them.")
		return nil
	}
	if err := validate(updated); err != nil {
		return err
	}
	if err := ctx.Store.SaveSettings(updated); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	ctx.Println("Settings updated successfully.")
	return nil
}

func printSettings(ctx *cli.Context, s models.Settings) {
	ctx.Println("Current Settings:")
	ctx.Printf("  Timezone:              %s\n", s.Timezone)
	ctx.Printf("  Reminder Time:         %s\n", s.ReminderTime)
	ctx.Printf("  Notifications Enabled: %v\n", s.NotificationsEnabled)
}

func validate(s models.Settings) error {
	if !utils.ValidateTimezone(s.Timezone) {
		return fmt.Errorf("unknown timezone %q", s.Timezone)
	}
	if !utils.ValidateTimeFormat(s.ReminderTime) {
		return fmt.Errorf("invalid reminder time %q, expected HH:MM", s.ReminderTime)
	}
	return nil
}

func runForm(s *models.Settings) error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Timezone").
				Description("IANA name, or Local for the system zone").
				Value(&s.Timezone).
				Validate(func(v string) error {
					if !utils.ValidateTimezone(v) {
						return fmt.Errorf("unknown timezone")
					}
					return nil
				}),
			huh.NewInput().
				Title("Reminder time").
				Description("HH:MM, 24-hour").
				Value(&s.ReminderTime).
				Validate(func(v string) error {
					if !utils.ValidateTimeFormat(v) {
						return fmt.Errorf("use HH:MM")
					}
					return nil
				}),
			huh.NewConfirm().
				Title("Send reminder notifications?").
				Value(&s.NotificationsEnabled),
		),
	)
	return form.Run()
}
