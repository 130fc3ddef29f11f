package tui

import (
	"fmt"

	"daybook/internal/cli"
	"daybook/internal/stats"
	"daybook/internal/tui/components"
	"daybook/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderCaloriesTab(cw int) string {
	t := theme.Active
	summary := stats.SummarizeCalories(a.cal)

	if summary.Goal == 0 {
		hint := lipgloss.NewStyle().Foreground(t.TextDim).Render(
			"No daily goal set. Press [g] to set one.")
		return components.ContentCard("Calories", hint, cw)
	}

	remaining := cli.FormatCalories(summary.Remaining)
	remainingDetail := "remaining"
	if summary.Over {
		remaining = cli.FormatCalories(summary.Consumed - summary.Burned - summary.Goal)
		remainingDetail = "over goal"
	}

	cards := []components.Metric{
		{Label: "Goal", Value: cli.FormatCalories(summary.Goal), Detail: "per day"},
		{Label: "Eaten", Value: cli.FormatCalories(summary.Consumed), Detail: ""},
		{Label: "Burned", Value: cli.FormatCalories(summary.Burned), Detail: ""},
		{Label: "Remaining", Value: remaining, Detail: remainingDetail},
	}

	out := components.MetricCardRow(cards, cw)

	inner := components.CardInnerWidth(cw)
	barW := inner - 18
	if barW < 10 {
		barW = 10
	}

	bar := components.GoalBar("budget", summary.Progress, 6, barW)

	net := summary.Consumed - summary.Burned
	detailStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	detail := detailStyle.Render(fmt.Sprintf("net intake %s of %s",
		cli.FormatCalories(net), cli.FormatCalories(summary.Goal)))

	body := bar + "\n" + detail
	if summary.Over {
		overStyle := lipgloss.NewStyle().Foreground(t.Red).Bold(true)
		body += "\n" + overStyle.Render("over goal — log some exercise or reset with [r]")
	}

	out += "\n" + components.ContentCard("Today", body, cw)

	return out
}
