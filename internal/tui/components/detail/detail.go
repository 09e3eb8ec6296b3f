// Package detail shows everything known about the selected day.
package detail

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/trainlog/internal/models"
	"github.com/julianstephens/trainlog/internal/progress"
)

var (
	dateStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Width(10)
	titleStyle = lipgloss.NewStyle().Bold(true)
	noteStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)
	restStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true)
)

// Day is the content of the panel.
type Day struct {
	Date       string
	Weekday    string
	Workout    *models.Workout
	Week       *models.TrainingWeek
	Completion *models.Completion
	Summary    *progress.Summary
}

type Model struct {
	viewport viewport.Model
	day      Day
}

func New(width, height int) Model {
	return Model{viewport: viewport.New(width, height)}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.viewport.View()
}

func (m *Model) SetSize(width, height int) {
	m.viewport.Width = width
	m.viewport.Height = height
	m.Render()
}

func (m *Model) SetDay(d Day) {
	m.day = d
	m.viewport.GotoTop()
	m.Render()
}

func (m *Model) Render() {
	m.viewport.SetContent(Content(m.day, m.viewport.Width))
}

// Content renders the panel text for d, wrapping descriptions at width.
func Content(d Day, width int) string {
	var b strings.Builder
	row := func(label, value string) {
		b.WriteString(labelStyle.Render(label))
		b.WriteString(value)
		b.WriteString("\n")
	}

	b.WriteString(dateStyle.Render(strings.TrimSpace(d.Weekday + " " + d.Date)))
	b.WriteString("\n\n")

	if d.Week != nil {
		row("Week", fmt.Sprintf("%s · %s mi", d.Week.Label, d.Week.Miles))
		if d.Week.Note != "" {
			row("", noteStyle.Render(d.Week.Note))
		}
	} else {
		row("Week", restStyle.Render("outside the block"))
	}
	b.WriteString("\n")

	if d.Workout == nil {
		b.WriteString(restStyle.Render("Rest day"))
		b.WriteString("\n")
	} else {
		b.WriteString(titleStyle.Render(fmt.Sprintf("%s  [%s]", d.Workout.Label, d.Workout.Category)))
		b.WriteString("\n")
		if d.Workout.Description != "" && d.Workout.Description != d.Workout.Label {
			desc := d.Workout.Description
			if width > 0 {
				desc = lipgloss.NewStyle().Width(width).Render(desc)
			}
			b.WriteString(desc)
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")

	if d.Completion == nil {
		row("Status", restStyle.Render("not logged"))
	} else {
		row("Status", string(d.Completion.Status))
		if d.Completion.Note != "" {
			row("Note", noteStyle.Render(d.Completion.Note))
		}
	}

	if d.Summary != nil {
		b.WriteString("\n")
		row("Block", fmt.Sprintf("%.0f%% adherence", d.Summary.Total.Adherence()*100))
		row("Streak", fmt.Sprintf("%d day(s)", d.Summary.Streak))
	}
	return b.String()
}
