package components

import (
	"strings"
	"time"

	"daybook/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// WeekStrip renders one cell per strip day: filled for done days, with the
// cell for today highlighted. days and done must have equal length.
func WeekStrip(days []time.Time, done []bool, today time.Time) string {
	t := theme.Active

	doneStyle := lipgloss.NewStyle().Foreground(t.Green)
	missStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	for i := range days {
		cell := "·"
		style := missStyle
		if i < len(done) && done[i] {
			cell = "●"
			style = doneStyle
		}
		ty, tm, td := today.Date()
		dy, dm, dd := days[i].Date()
		if ty == dy && tm == dm && td == dd {
			style = style.Underline(true)
		}
		b.WriteString(style.Render(cell))
		if i < len(days)-1 {
			b.WriteString(" ")
		}
	}
	return b.String()
}

// WeekStripHeader renders day-of-week initials aligned with WeekStrip cells.
func WeekStripHeader(days []time.Time) string {
	t := theme.Active
	style := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	for i, d := range days {
		b.WriteString(style.Render(d.Format("Mon")[:1]))
		if i < len(days)-1 {
			b.WriteString(" ")
		}
	}
	return b.String()
}

// MonthGrid renders the month's done-flags in rows of seven.
func MonthGrid(done []bool, width int) string {
	t := theme.Active

	doneStyle := lipgloss.NewStyle().Foreground(t.Green)
	missStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	perRow := 7
	if width >= 2*31 {
		perRow = len(done) // single row when there is room
	}

	var b strings.Builder
	for i, d := range done {
		if d {
			b.WriteString(doneStyle.Render("●"))
		} else {
			b.WriteString(missStyle.Render("·"))
		}
		if (i+1)%perRow == 0 && i < len(done)-1 {
			b.WriteString("\n")
		} else if i < len(done)-1 {
			b.WriteString(" ")
		}
	}
	return b.String()
}
