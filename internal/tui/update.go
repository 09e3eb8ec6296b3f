package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/trainlog/internal/constants"
	"github.com/julianstephens/trainlog/internal/logger"
	"github.com/julianstephens/trainlog/internal/models"
	"github.com/julianstephens/trainlog/internal/schedule"
)

// chromeHeight covers the header, status line and help.
const chromeHeight = 6

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resizeDetail()
		return m, nil
	}

	switch m.state {
	case StateLogging:
		return m.updateLogging(msg)
	case StateConfirmUnlog:
		return m.updateConfirmUnlog(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.detail, cmd = m.detail.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(keyMsg, m.keys.Left):
		m.moveTo(shift(m.cursor, 0, -1))
	case key.Matches(keyMsg, m.keys.Right):
		m.moveTo(shift(m.cursor, 0, 1))
	case key.Matches(keyMsg, m.keys.Up):
		m.moveTo(shift(m.cursor, 0, -7))
	case key.Matches(keyMsg, m.keys.Down):
		m.moveTo(shift(m.cursor, 0, 7))
	case key.Matches(keyMsg, m.keys.PrevMonth):
		m.moveTo(shift(m.cursor, -1, 0))
	case key.Matches(keyMsg, m.keys.NextMonth):
		m.moveTo(shift(m.cursor, 1, 0))
	case key.Matches(keyMsg, m.keys.Today):
		m.moveTo(m.today)
	case key.Matches(keyMsg, m.keys.Log):
		return m, m.startLogging()
	case key.Matches(keyMsg, m.keys.Unlog):
		if _, ok := m.calendar.Completions[m.cursor]; ok {
			m.state = StateConfirmUnlog
		} else {
			m.status = m.cursor + " is not logged"
		}
	}
	return m, nil
}

func (m Model) updateLogging(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.cancelForm("Logging cancelled")
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		status := models.CompletionStatus(m.logForm.Status)
		note := m.logForm.Note
		m.form = nil
		m.logForm = nil
		m.state = StateCalendar
		if err := m.saveLog(status, note); err != nil {
			logger.Error("failed to save completion", "date", m.cursor, "error", err)
			m.status = "Save failed: " + err.Error()
		}
		return m, nil
	case huh.StateAborted:
		m.cancelForm("Logging cancelled")
		return m, nil
	}
	return m, cmd
}

func (m Model) updateConfirmUnlog(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "y", "Y":
		m.state = StateCalendar
		if err := m.unlog(); err != nil {
			logger.Error("failed to delete completion", "date", m.cursor, "error", err)
			m.status = "Delete failed: " + err.Error()
		}
	case "n", "N", "esc", "q":
		m.state = StateCalendar
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) cancelForm(status string) {
	m.form = nil
	m.logForm = nil
	m.state = StateCalendar
	m.status = status
}

func (m *Model) resizeDetail() {
	w := m.width - calendarWidth - 8
	if w < 20 {
		w = 20
	}
	h := m.height - chromeHeight
	if h < 5 {
		h = 5
	}
	m.detail.SetSize(w, h)
}

// shift moves date by months and days. A month step keeps the day of month,
// clamped to the last day of the target month.
func shift(date string, months, days int) string {
	t, err := time.Parse(constants.DateFormat, date)
	if err != nil {
		return ""
	}
	if months != 0 {
		first := time.Date(t.Year(), t.Month()+time.Month(months), 1, 0, 0, 0, 0, time.UTC)
		last := first.AddDate(0, 1, -1).Day()
		day := t.Day()
		if day > last {
			day = last
		}
		t = time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, time.UTC)
	}
	return schedule.FormatDateKey(t.AddDate(0, 0, days))
}
