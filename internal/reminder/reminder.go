// Package reminder turns a day's workout into a notification and schedules
// it once a day.
package reminder

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/robfig/cron"

	"github.com/julianstephens/trainlog/internal/constants"
	"github.com/julianstephens/trainlog/internal/logger"
	"github.com/julianstephens/trainlog/internal/models"
	"github.com/julianstephens/trainlog/internal/notifier"
	"github.com/julianstephens/trainlog/internal/schedule"
	"github.com/julianstephens/trainlog/internal/storage"
	"github.com/julianstephens/trainlog/internal/utils"
)

// Message renders the reminder for date, e.g. "W3 · Run Q1: 10–12 mi ...".
// ok is false on rest days.
func Message(sched *schedule.Schedule, date string) (msg string, ok bool) {
	w, ok := sched.Workout(date)
	if !ok {
		return "Rest day", false
	}

	var b strings.Builder
	if week, found := sched.TrainingWeek(date); found {
		b.WriteString(week.Label)
		b.WriteString(" · ")
	}
	b.WriteString(w.Label)
	if w.Description != "" && w.Description != w.Label {
		b.WriteString(": ")
		b.WriteString(w.Description)
	}
	return b.String(), true
}

// CronSpec converts an HH:MM reminder time into a six-field cron schedule.
func CronSpec(reminderTime string) (string, error) {
	t, err := time.Parse(constants.TimeFormat, reminderTime)
	if err != nil {
		return "", fmt.Errorf("invalid reminder time %q, expected HH:MM", reminderTime)
	}
	return fmt.Sprintf("0 %d %d * * *", t.Minute(), t.Hour()), nil
}

type Daemon struct {
	sched  *schedule.Schedule
	store  storage.Provider
	sender notifier.Sender
}

func NewDaemon(sched *schedule.Schedule, store storage.Provider, sender notifier.Sender) *Daemon {
	return &Daemon{sched: sched, store: store, sender: sender}
}

// Fire sends the reminder for the given day. Rest days and days that already
// have a logged completion are skipped; the returned bool reports whether a
// notification went out.
func (d *Daemon) Fire(ctx context.Context, date string) (bool, error) {
	msg, ok := Message(d.sched, date)
	if !ok {
		logger.Debug("rest day, no reminder", "date", date)
		return false, nil
	}

	if d.store != nil {
		c, err := d.store.GetCompletion(date)
		switch {
		case err == nil:
			logger.Debug("already logged, no reminder", "date", date, "status", c.Status)
			return false, nil
		case !errors.Is(err, storage.ErrNotFound):
			return false, fmt.Errorf("failed to check completion: %w", err)
		}
	}

	if err := d.sender.Notify(ctx, msg); err != nil {
		return false, err
	}
	logger.Info("reminder sent", "date", date)
	return true, nil
}

// Run schedules Fire at the configured reminder time in the configured
// timezone and blocks until ctx is cancelled.
func (d *Daemon) Run(ctx context.Context, settings models.Settings) error {
	spec, err := CronSpec(settings.ReminderTime)
	if err != nil {
		return err
	}
	loc, err := utils.LoadLocation(settings.Timezone)
	if err != nil {
		return err
	}

	c := cron.NewWithLocation(loc)
	err = c.AddFunc(spec, func() {
		date := schedule.FormatDateKey(time.Now().In(loc))
		if _, err := d.Fire(ctx, date); err != nil {
			logger.Error("reminder failed", "date", date, "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule reminder: %w", err)
	}

	c.Start()
	logger.Info("reminder daemon started", "spec", spec, "timezone", loc.String())
	<-ctx.Done()
	c.Stop()
	logger.Info("reminder daemon stopped")
	return nil
}
