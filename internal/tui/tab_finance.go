package tui

import (
	"fmt"
	"time"

	"daybook/internal/cli"
	"daybook/internal/dates"
	"daybook/internal/tui/components"
	"daybook/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderFinanceTab(cw int) string {
	t := theme.Active

	if a.fin.MonthlyIncome == 0 {
		hint := lipgloss.NewStyle().Foreground(t.TextDim).Render(
			"No monthly income set. Press [i] to set it.")
		return components.ContentCard("Finance", hint, cw)
	}

	now := time.Now()
	daysThisMonth := len(dates.DaysInMonth(now.Month(), now.Year()))

	perDay := a.fin.MonthlyIncome / float64(daysThisMonth)
	perWeek := perDay * 7
	perYear := a.fin.MonthlyIncome * 12

	daysThisYear := 365
	if dates.IsLeapYear(now.Year()) {
		daysThisYear = 366
	}

	cards := []components.Metric{
		{Label: "Monthly", Value: cli.FormatMoney(a.fin.MonthlyIncome), Detail: "income"},
		{Label: "Weekly", Value: cli.FormatMoney(perWeek), Detail: "≈"},
		{Label: "Daily", Value: cli.FormatMoney(perDay), Detail: fmt.Sprintf("%d days", daysThisMonth)},
		{Label: "Yearly", Value: cli.FormatMoney(perYear), Detail: fmt.Sprintf("%d days", daysThisYear)},
	}

	out := components.MetricCardRow(cards, cw)

	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	elapsed := now.Day()
	earned := perDay * float64(elapsed)
	body := dimStyle.Render(fmt.Sprintf(
		"%d of %d days into %s · %s earned so far this month",
		elapsed, daysThisMonth, now.Format("January"), cli.FormatMoney(earned)))

	out += "\n" + components.ContentCard("This month", body, cw)

	return out
}
