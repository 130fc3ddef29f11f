// Package components provides reusable TUI widgets for the daybook dashboard.
package components

import (
	"daybook/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Metric is one headline number shown in a small bordered card: a label, the
// value itself, and an optional detail line underneath.
type Metric struct {
	Label  string
	Value  string
	Detail string
}

func (m Metric) render(outerWidth int) string {
	t := theme.Active

	body := lipgloss.NewStyle().Foreground(t.TextMuted).Render(m.Label) +
		"\n" +
		lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true).Render(m.Value)
	if m.Detail != "" {
		body += "\n" + lipgloss.NewStyle().Foreground(t.TextDim).Render(m.Detail)
	}

	return cardFrame(outerWidth).Render(body)
}

// MetricCardRow renders metrics side by side; the cards sum to exactly
// totalWidth.
func MetricCardRow(metrics []Metric, totalWidth int) string {
	if len(metrics) == 0 {
		return ""
	}

	widths := LayoutRow(totalWidth, len(metrics))
	cards := make([]string, len(metrics))
	for i, m := range metrics {
		cards[i] = m.render(widths[i])
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

// ContentCard renders a bordered card with an optional bold title above body.
func ContentCard(title, body string, outerWidth int) string {
	t := theme.Active

	content := body
	if title != "" {
		content = lipgloss.NewStyle().Foreground(t.TextMuted).Bold(true).Render(title) +
			"\n" + body
	}

	return cardFrame(outerWidth).Render(content)
}

// cardFrame is the shared rounded border style; outerWidth includes the
// border columns.
func cardFrame(outerWidth int) lipgloss.Style {
	contentWidth := outerWidth - 2
	if contentWidth < 10 {
		contentWidth = 10
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Active.Border).
		Width(contentWidth).
		Padding(0, 1)
}

// LayoutRow distributes totalWidth into n widths that sum to exactly
// totalWidth. Earlier slots absorb the remainder from integer division.
func LayoutRow(totalWidth, n int) []int {
	if n <= 0 {
		return nil
	}
	base := totalWidth / n
	remainder := totalWidth % n
	widths := make([]int, n)
	for i := range widths {
		widths[i] = base
		if i < remainder {
			widths[i]++
		}
	}
	return widths
}

// CardInnerWidth returns the usable text width inside a ContentCard given its
// outer width (subtracts border and padding).
func CardInnerWidth(outerWidth int) int {
	w := outerWidth - 4
	if w < 10 {
		w = 10
	}
	return w
}
