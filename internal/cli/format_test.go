package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "0", FormatNumber(0))
	assert.Equal(t, "999", FormatNumber(999))
	assert.Equal(t, "1,000", FormatNumber(1000))
	assert.Equal(t, "1,234,567", FormatNumber(1234567))
	assert.Equal(t, "-1,850", FormatNumber(-1850))
}

func TestFormatCalories(t *testing.T) {
	assert.Equal(t, "1,850 kcal", FormatCalories(1850))
	assert.Equal(t, "0 kcal", FormatCalories(0))
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "$3,200", FormatMoney(3200))
	assert.Equal(t, "$3,200.50", FormatMoney(3200.50))
	assert.Equal(t, "$0", FormatMoney(0))
	assert.Equal(t, "$0.99", FormatMoney(0.99))
	assert.Equal(t, "-$12.25", FormatMoney(-12.25))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "75%", FormatPercent(0.75))
	assert.Equal(t, "0%", FormatPercent(0))
	assert.Equal(t, "100%", FormatPercent(1))
}

func TestFormatDayOfWeek(t *testing.T) {
	assert.Equal(t, "Sun", FormatDayOfWeek(0))
	assert.Equal(t, "Sat", FormatDayOfWeek(6))
	assert.Equal(t, "???", FormatDayOfWeek(9))
}

func TestFormatDate(t *testing.T) {
	now := time.Date(2024, time.March, 15, 14, 0, 0, 0, time.Local)

	assert.Equal(t, "today", FormatDate(now, now))
	assert.Equal(t, "today", FormatDate(now.Add(-6*time.Hour), now))
	assert.Equal(t, "yesterday", FormatDate(now.AddDate(0, 0, -1), now))
	assert.Equal(t, "2024-03-10", FormatDate(now.AddDate(0, 0, -5), now))
}
