package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// calendarWidth is seven cells of the month grid plus panel padding.
const calendarWidth = 7*7 + 4

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateLogging:
		content = panelStyle.Render(m.form.View())
	case StateConfirmUnlog:
		content = m.viewConfirmUnlog()
	default:
		content = lipgloss.JoinHorizontal(lipgloss.Top,
			panelStyle.Render(m.calendar.View()),
			panelStyle.Render(m.detail.View()),
		)
	}

	return docStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewHeader(),
		content,
		m.viewStatus(),
		m.help.View(m),
	))
}

func (m Model) viewHeader() string {
	title := headerStyle.Render("trainlog")
	if m.validationWarning == "" {
		return title
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, title, " ", warningStyle.Render(m.validationWarning))
}

func (m Model) viewStatus() string {
	if m.status == "" {
		return statusStyle.Render(" ")
	}
	return statusStyle.Render(m.status)
}

func (m Model) viewConfirmUnlog() string {
	return lipgloss.Place(m.width, max(m.height-chromeHeight, 5),
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render(fmt.Sprintf("Clear the log for %s?", m.cursor)),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
