// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatCalories formats a calorie count with its unit.
// e.g., 1850 -> "1,850 kcal"
func FormatCalories(n int) string {
	return FormatNumber(int64(n)) + " kcal"
}

// FormatMoney formats a currency amount. Whole amounts drop the cents.
// e.g., 3200 -> "$3,200", 3200.50 -> "$3,200.50"
func FormatMoney(amount float64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	whole := int64(amount)
	cents := int64((amount-float64(whole))*100 + 0.5)
	if cents >= 100 {
		whole++
		cents -= 100
	}

	s := "$" + FormatNumber(whole)
	if cents > 0 {
		s += fmt.Sprintf(".%02d", cents)
	}
	if neg {
		return "-" + s
	}
	return s
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.0f%%", f*100)
}

// FormatDayOfWeek returns a 3-letter day abbreviation from a weekday number.
func FormatDayOfWeek(weekday int) string {
	days := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	if weekday >= 0 && weekday < 7 {
		return days[weekday]
	}
	return "???"
}

// FormatDate renders a calendar day, using "today" and "yesterday" for the
// two most recent days.
func FormatDate(day, now time.Time) string {
	ny, nm, nd := now.Date()
	today := time.Date(ny, nm, nd, 0, 0, 0, 0, now.Location())

	dy, dm, dd := day.Date()
	d := time.Date(dy, dm, dd, 0, 0, 0, 0, day.Location())

	switch {
	case d.Equal(today):
		return "today"
	case d.Equal(today.AddDate(0, 0, -1)):
		return "yesterday"
	default:
		return d.Format("2006-01-02")
	}
}
