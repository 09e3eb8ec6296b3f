// Package calendar renders a month of the training schedule as a grid.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/trainlog/internal/models"
	"github.com/julianstephens/trainlog/internal/schedule"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")).MarginBottom(1)

	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Width(cellWidth).Align(lipgloss.Center)

	cellStyle = lipgloss.NewStyle().Width(cellWidth).Align(lipgloss.Center)

	outsideStyle = cellStyle.Foreground(lipgloss.Color("238"))

	cursorStyle = cellStyle.Background(lipgloss.Color("62")).Foreground(lipgloss.Color("230")).Bold(true)

	todayStyle = cellStyle.Underline(true)

	categoryStyles = map[models.Category]lipgloss.Style{
		models.CategoryRun:  lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		models.CategoryLift: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		models.CategoryRace: lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
	}

	statusStyles = map[models.CompletionStatus]lipgloss.Style{
		models.CompletionCompleted: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		models.CompletionPartial:   lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		models.CompletionMissed:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
)

const cellWidth = 7

var (
	categoryGlyph = map[models.Category]string{
		models.CategoryRun:  "R",
		models.CategoryLift: "L",
		models.CategoryRace: "★",
	}
	weekdays = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
)

type Model struct {
	Year        int
	Month       time.Month
	Rows        [][]schedule.Day
	Cursor      string
	Today       string
	Completions map[string]models.Completion
}

func New() Model {
	return Model{Completions: map[string]models.Completion{}}
}

// SetMonth replaces the grid. Completions are cleared until SetCompletions.
func (m *Model) SetMonth(year int, month time.Month, rows [][]schedule.Day) {
	m.Year = year
	m.Month = month
	m.Rows = rows
	m.Completions = map[string]models.Completion{}
}

func (m *Model) SetCompletions(c map[string]models.Completion) {
	m.Completions = c
}

// Range returns the first and last date keys shown in the grid.
func (m Model) Range() (string, string) {
	if len(m.Rows) == 0 {
		return "", ""
	}
	last := m.Rows[len(m.Rows)-1]
	return m.Rows[0][0].Date, last[len(last)-1].Date
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s %d", m.Month, m.Year)))
	b.WriteString("\n")

	headers := make([]string, len(weekdays))
	for i, d := range weekdays {
		headers[i] = headerStyle.Render(d)
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, headers...))
	b.WriteString("\n")

	for _, row := range m.Rows {
		cells := make([]string, len(row))
		for i, d := range row {
			cells[i] = m.renderCell(d)
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderCell(d schedule.Day) string {
	kind := "·"
	if d.Workout != nil {
		kind = categoryGlyph[d.Workout.Category]
	}
	mark := " "
	if c, ok := m.Completions[d.Date]; ok {
		mark = c.Status.Marker()
	}
	text := fmt.Sprintf("%2d %s%s", d.Day, kind, mark)

	switch {
	case d.Date == m.Cursor:
		return cursorStyle.Render(text)
	case !d.InMonth:
		return outsideStyle.Render(text)
	}

	if d.Workout != nil {
		kind = categoryStyles[d.Workout.Category].Render(kind)
	}
	if c, ok := m.Completions[d.Date]; ok {
		mark = statusStyles[c.Status].Render(mark)
	}
	text = fmt.Sprintf("%2d %s%s", d.Day, kind, mark)
	if d.Date == m.Today {
		return todayStyle.Render(text)
	}
	return cellStyle.Render(text)
}
