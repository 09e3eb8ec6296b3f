package system

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/julianstephens/trainlog/internal/cli"
	"github.com/julianstephens/trainlog/internal/constants"
	"github.com/julianstephens/trainlog/internal/reminder"
)

type RemindCmd struct {
	Date   string `arg:"" optional:"" help:"Date to remind about." default:"today"`
	DryRun bool   `help:"Print the reminder instead of sending it."`
	Daemon bool   `help:"Stay running and send the reminder every day at the configured time."`
}

func (c *RemindCmd) Run(ctx *cli.Context) error {
	settings := ctx.Settings()

	if c.Daemon {
		if !settings.NotificationsEnabled {
			return fmt.Errorf("notifications are disabled; enable them with '%s settings --notifications'", constants.AppName)
		}
		sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		ctx.Printf("Sending reminders daily at %s (%s). Press Ctrl+C to stop.\n", settings.ReminderTime, settings.Timezone)
		return reminder.NewDaemon(ctx.Schedule, ctx.Store, ctx.Notifier).Run(sigCtx, settings)
	}

	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}

	if c.DryRun {
		msg, _ := reminder.Message(ctx.Schedule, date)
		ctx.Println(msg)
		return nil
	}
	if !settings.NotificationsEnabled {
		ctx.Println("Notifications are disabled in settings.")
		return nil
	}

	sent, err := reminder.NewDaemon(ctx.Schedule, ctx.Store, ctx.Notifier).Fire(context.Background(), date)
	if err != nil {
		return fmt.Errorf("failed to send reminder: %w", err)
	}
	if sent {
		ctx.Printf("✓ Reminder sent for %s\n", date)
	} else {
		ctx.Printf("Nothing to remind on %s.\n", date)
	}
	return nil
}

// NotifyCmd sends arbitrary text through the tray app.
type NotifyCmd struct {
	Text string `arg:"" help:"Notification text."`
}

func (c *NotifyCmd) Run(ctx *cli.Context) error {
	return ctx.Notifier.Notify(context.Background(), c.Text)
}
