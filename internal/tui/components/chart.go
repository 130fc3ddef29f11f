package components

import (
	"strings"

	"daybook/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Sparkline renders a unicode sparkline from values.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	peak := values[0]
	for _, v := range values[1:] {
		if v > peak {
			peak = v
		}
	}
	if peak == 0 {
		peak = 1
	}

	style := lipgloss.NewStyle().Foreground(color)

	var buf strings.Builder
	buf.Grow(len(values) * 4) // UTF-8 block chars are up to 3 bytes
	for _, v := range values {
		idx := int(v / peak * float64(len(blocks)-1))
		if idx >= len(blocks) {
			idx = len(blocks) - 1
		}
		if idx < 0 {
			idx = 0
		}
		buf.WriteRune(blocks[idx])
	}

	return style.Render(buf.String())
}

// BarChart renders a column chart of values in [0..max] with one label per
// column. Falls back to a sparkline when the area is too small.
func BarChart(values []float64, labels []string, color lipgloss.Color, width, height int) string {
	if len(values) == 0 {
		return ""
	}
	if width < 15 || height < 3 {
		return Sparkline(values, color)
	}

	t := theme.Active

	maxVal := 0.0
	for _, v := range values {
		if v > maxVal {
			maxVal = v
		}
	}
	if maxVal == 0 {
		maxVal = 1
	}

	n := len(values)
	gap := 1
	if n <= 1 {
		gap = 0
	}
	barW := (width - (n-1)*gap) / n
	if barW < 1 {
		barW = 1
		gap = 0
	}
	if barW > 4 {
		barW = 4
	}

	barStyle := lipgloss.NewStyle().Foreground(color)
	emptyStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	labelStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	// Rows, top-down
	var b strings.Builder
	for row := height; row >= 1; row-- {
		threshold := float64(row) / float64(height) * maxVal
		for i, v := range values {
			cell := " "
			style := emptyStyle
			if v >= threshold && v > 0 {
				cell = "█"
				style = barStyle
			}
			b.WriteString(style.Render(strings.Repeat(cell, barW)))
			if i < n-1 {
				b.WriteString(strings.Repeat(" ", gap))
			}
		}
		b.WriteString("\n")
	}

	// Label row: first character of each label under its column
	for i := range values {
		label := ""
		if i < len(labels) {
			label = labels[i]
		}
		if len(label) > barW {
			label = label[:barW]
		}
		b.WriteString(labelStyle.Render(label))
		pad := barW - len(label)
		if pad > 0 {
			b.WriteString(strings.Repeat(" ", pad))
		}
		if i < n-1 {
			b.WriteString(strings.Repeat(" ", gap))
		}
	}

	return b.String()
}
