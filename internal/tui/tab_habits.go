package tui

import (
	"fmt"
	"time"

	"daybook/internal/dates"
	"daybook/internal/stats"
	"daybook/internal/tui/components"
	"daybook/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderHabitsTab(cw int) string {
	t := theme.Active
	now := time.Now()

	if len(a.habits) == 0 {
		hint := lipgloss.NewStyle().Foreground(t.TextDim).Render(
			"No habits yet. Press [a] to add one.")
		return components.ContentCard("Habits", hint, cw)
	}

	inner := components.CardInnerWidth(cw)
	strip := dates.WeekStrip(now, a.ws)
	stripW := lipgloss.Width(components.WeekStripHeader(strip))

	nameW := inner - stripW - 24
	if nameW < 10 {
		nameW = 10
	}

	cursorStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	selectedStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceBright).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	streakStyle := lipgloss.NewStyle().Foreground(t.Orange)

	// Header row aligns the strip column with each habit's strip
	body := fmt.Sprintf("%-*s %s\n", nameW+2, "",
		components.WeekStripHeader(strip))

	for i, h := range a.habits {
		st := stats.ForHabit(h, now)
		row := stats.WeekRow(h, now, a.ws)

		cursor := "  "
		name := nameStyle.Render(fmt.Sprintf("%-*s", nameW, truncStr(h.Name, nameW)))
		if i == a.habitCursor {
			cursor = cursorStyle.Render("▸ ")
			name = selectedStyle.Render(fmt.Sprintf("%-*s", nameW, truncStr(h.Name, nameW)))
		}

		streak := ""
		if st.CurrentStreak > 0 {
			streak = streakStyle.Render(fmt.Sprintf(" %dd streak", st.CurrentStreak))
		}

		body += cursor + name + " " +
			components.WeekStrip(strip, row, now) +
			dimStyle.Render(fmt.Sprintf("  %d/30d", st.Done30d)) +
			streak + "\n"
	}

	out := components.ContentCard("Habits", body, cw)

	// Month grid for the selected habit
	if a.habitCursor < len(a.habits) {
		h := a.habits[a.habitCursor]
		grid := stats.MonthGrid(h, now.Month(), now.Year())
		st := stats.ForHabit(h, now)

		title := fmt.Sprintf("%s · %s", h.Name, now.Format("January"))
		detail := dimStyle.Render(fmt.Sprintf(
			"total %d · best streak %dd · last 7 days %d/7",
			st.TotalDone, st.BestStreak, st.Done7d))

		out += "\n" + components.ContentCard(title,
			components.MonthGrid(grid, components.CardInnerWidth(cw))+"\n"+detail, cw)
	}

	return out
}
