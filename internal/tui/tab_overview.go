package tui

import (
	"fmt"
	"strconv"
	"time"

	"daybook/internal/cli"
	"daybook/internal/stats"
	"daybook/internal/tui/components"
	"daybook/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

const overviewChartDays = 14

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active
	now := time.Now()

	// Metric cards
	doneToday := 0
	for _, h := range a.habits {
		if h.InteractedOn(now) {
			doneToday++
		}
	}

	summary := stats.SummarizeCalories(a.cal)
	remaining := cli.FormatCalories(summary.Remaining)
	remainingDetail := "remaining"
	if summary.Over {
		remaining = cli.FormatCalories(summary.Consumed - summary.Burned - summary.Goal)
		remainingDetail = "over goal"
	}

	cards := []components.Metric{
		{
			Label:  "Habits",
			Value:  fmt.Sprintf("%d/%d", doneToday, len(a.habits)),
			Detail: "done today",
		},
		{
			Label:  "Tasks",
			Value:  strconv.Itoa(len(a.tasks)),
			Detail: "open",
		},
		{
			Label:  "Calories",
			Value:  remaining,
			Detail: remainingDetail,
		},
		{
			Label:  "Income",
			Value:  cli.FormatMoney(a.fin.MonthlyIncome),
			Detail: "monthly",
		},
	}

	out := components.MetricCardRow(cards, cw)

	// Habit completion over the last two weeks
	series := stats.AggregateDailyCompletion(a.habits, overviewChartDays, now)
	if len(series) > 0 {
		inner := components.CardInnerWidth(cw)

		values := make([]float64, len(series))
		labels := make([]string, len(series))
		for i, dc := range series {
			values[i] = dc.Rate
			labels[i] = strconv.Itoa(dc.Date.Day())
		}

		chart := components.BarChart(values, labels, t.Green, inner, 6)
		out += "\n" + components.ContentCard("Habit completion · last 14 days", chart, cw)
	}

	// Calorie progress bar
	if summary.Goal > 0 {
		inner := components.CardInnerWidth(cw)
		barW := inner - 18
		if barW < 10 {
			barW = 10
		}
		bar := components.GoalBar("today", summary.Progress, 6, barW)
		detail := lipgloss.NewStyle().Foreground(t.TextDim).Render(
			fmt.Sprintf("%s eaten · %s burned · goal %s",
				cli.FormatCalories(summary.Consumed),
				cli.FormatCalories(summary.Burned),
				cli.FormatCalories(summary.Goal)))
		out += "\n" + components.ContentCard("Calories", bar+"\n"+detail, cw)
	}

	if len(a.habits) == 0 && len(a.tasks) == 0 {
		hint := lipgloss.NewStyle().Foreground(t.TextDim).Render(
			"Nothing tracked yet. Press [h] then [a] to add your first habit.")
		out += "\n" + components.ContentCard("", hint, cw)
	}

	return out
}
