package tui

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/julianstephens/trainlog/internal/constants"
	"github.com/julianstephens/trainlog/internal/logger"
	"github.com/julianstephens/trainlog/internal/models"
	"github.com/julianstephens/trainlog/internal/progress"
	"github.com/julianstephens/trainlog/internal/schedule"
	"github.com/julianstephens/trainlog/internal/storage"
	"github.com/julianstephens/trainlog/internal/tui/components/calendar"
	"github.com/julianstephens/trainlog/internal/tui/components/detail"
	"github.com/julianstephens/trainlog/internal/validation"
)

type SessionState int

const (
	StateCalendar SessionState = iota
	StateLogging
	StateConfirmUnlog
)

type LogFormModel struct {
	Status string
	Note   string
}

type Model struct {
	store    storage.Provider
	sched    *schedule.Schedule
	state    SessionState
	keys     KeyMap
	help     help.Model
	calendar calendar.Model
	detail   detail.Model
	form     *huh.Form
	logForm  *LogFormModel

	today  string
	cursor string

	summary           *progress.Summary
	status            string
	validationWarning string

	quitting bool
	width    int
	height   int
}

// NewModel opens the calendar on today, a YYYY-MM-DD key already resolved in
// the configured timezone.
func NewModel(store storage.Provider, sched *schedule.Schedule, today string) Model {
	m := Model{
		store:    store,
		sched:    sched,
		state:    StateCalendar,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		calendar: calendar.New(),
		detail:   detail.New(40, 15),
		today:    today,
		cursor:   today,
	}
	m.calendar.Today = today

	result := validation.New().ValidateSchedule(sched.Weeks(), sched.Workouts())
	if result.HasConflicts() {
		m.validationWarning = fmt.Sprintf("⚠ %d schedule warning(s)", len(result.Conflicts))
	}

	m.loadMonth()
	m.refreshSummary()
	m.refreshDetail()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) ShortHelp() []key.Binding {
	return m.keys.ShortHelp()
}

func (m Model) FullHelp() [][]key.Binding {
	return m.keys.FullHelp()
}

func (m Model) Cursor() string {
	return m.cursor
}

func (m Model) State() SessionState {
	return m.state
}

// loadMonth rebuilds the grid for the cursor's month and loads the
// completions it shows.
func (m *Model) loadMonth() {
	t, err := time.Parse(constants.DateFormat, m.cursor)
	if err != nil {
		m.status = fmt.Sprintf("bad date %q", m.cursor)
		return
	}
	m.calendar.SetMonth(t.Year(), t.Month(), m.sched.Month(t.Year(), t.Month()))
	m.calendar.Cursor = m.cursor
	m.reloadCompletions()
}

func (m *Model) reloadCompletions() {
	start, end := m.calendar.Range()
	list, err := m.store.GetCompletionsInRange(start, end)
	if err != nil {
		logger.Error("failed to load completions", "error", err)
		m.status = "failed to load completions"
		return
	}
	byDate := make(map[string]models.Completion, len(list))
	for _, c := range list {
		byDate[c.Date] = c
	}
	m.calendar.SetCompletions(byDate)
}

func (m *Model) refreshSummary() {
	first, last, ok := m.sched.Bounds()
	if !ok {
		m.summary = nil
		return
	}
	list, err := m.store.GetCompletionsInRange(first, last)
	if err != nil {
		logger.Error("failed to load completions", "error", err)
		m.summary = nil
		return
	}
	s := progress.Summarize(m.sched, list, m.today)
	m.summary = &s
}

func (m *Model) refreshDetail() {
	d := detail.Day{Date: m.cursor, Summary: m.summary}
	if t, err := time.Parse(constants.DateFormat, m.cursor); err == nil {
		d.Weekday = t.Weekday().String()[:3]
	}
	if w, ok := m.sched.Workout(m.cursor); ok {
		d.Workout = &w
	}
	if week, ok := m.sched.TrainingWeek(m.cursor); ok {
		d.Week = &week
	}
	if c, ok := m.calendar.Completions[m.cursor]; ok {
		d.Completion = &c
	}
	m.detail.SetDay(d)
}

// moveTo places the cursor on date, reloading the grid when the month
// changes.
func (m *Model) moveTo(date string) {
	if date == "" || date == m.cursor {
		return
	}
	prevMonth := m.cursor[:7]
	m.cursor = date
	m.status = ""
	if date[:7] != prevMonth {
		m.loadMonth()
	}
	m.calendar.Cursor = date
	m.refreshDetail()
}

func (m *Model) startLogging() tea.Cmd {
	m.logForm = &LogFormModel{Status: string(models.CompletionCompleted)}
	if c, ok := m.calendar.Completions[m.cursor]; ok {
		m.logForm.Status = string(c.Status)
		m.logForm.Note = c.Note
	}

	title := "Log " + m.cursor
	if w, ok := m.sched.Workout(m.cursor); ok {
		title += " · " + w.Label
	} else {
		title += " · rest day"
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(title).
				Options(
					huh.NewOption("Completed", string(models.CompletionCompleted)),
					huh.NewOption("Partial", string(models.CompletionPartial)),
					huh.NewOption("Missed", string(models.CompletionMissed)),
				).
				Value(&m.logForm.Status),
			huh.NewInput().
				Title("Note").
				Placeholder("optional").
				Value(&m.logForm.Note),
		),
	)
	m.state = StateLogging
	return m.form.Init()
}

// saveLog records the form values for the cursor day.
func (m *Model) saveLog(status models.CompletionStatus, note string) error {
	c := models.Completion{
		ID:     uuid.New().String(),
		Date:   m.cursor,
		Status: status,
		Note:   note,
	}
	if err := m.store.SaveCompletion(c); err != nil {
		return err
	}
	logger.Info("completion logged", "date", m.cursor, "status", status)
	m.afterWrite()
	m.status = fmt.Sprintf("Logged %s as %s", m.cursor, status)
	return nil
}

func (m *Model) unlog() error {
	err := m.store.DeleteCompletion(m.cursor)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return err
	}
	logger.Info("completion removed", "date", m.cursor)
	m.afterWrite()
	m.status = "Cleared " + m.cursor
	return nil
}

func (m *Model) afterWrite() {
	m.reloadCompletions()
	m.refreshSummary()
	m.refreshDetail()
}
