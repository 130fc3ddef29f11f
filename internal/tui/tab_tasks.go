package tui

import (
	"fmt"

	"daybook/internal/tui/components"
	"daybook/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderTasksTab(cw int) string {
	t := theme.Active

	if len(a.tasks) == 0 {
		hint := lipgloss.NewStyle().Foreground(t.TextDim).Render(
			"No open tasks. Press [a] to add one.")
		return components.ContentCard("Tasks", hint, cw)
	}

	inner := components.CardInnerWidth(cw)

	cursorStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	titleStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	selectedStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceBright).Bold(true)
	idxStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	noteStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	body := ""
	for i, task := range a.tasks {
		cursor := "  "
		title := titleStyle.Render(truncStr(task.Title, inner-8))
		if i == a.taskCursor {
			cursor = cursorStyle.Render("▸ ")
			title = selectedStyle.Render(truncStr(task.Title, inner-8))
		}

		body += cursor + idxStyle.Render(fmt.Sprintf("%2d. ", i+1)) + title + "\n"
		if task.Note != "" {
			body += "      " + noteStyle.Render(truncStr(task.Note, inner-8)) + "\n"
		}
	}

	title := fmt.Sprintf("Tasks (%d open)", len(a.tasks))
	return components.ContentCard(title, body, cw)
}
