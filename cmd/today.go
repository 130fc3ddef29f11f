package cmd

import (
	"fmt"
	"time"

	"daybook/internal/cli"
	"daybook/internal/dates"
	"daybook/internal/stats"

	"github.com/spf13/cobra"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Overview of today across all trackers",
	RunE:  runToday,
}

func init() {
	rootCmd.AddCommand(todayCmd)
}

func runToday(_ *cobra.Command, _ []string) error {
	s, closer, err := openStore()
	if err != nil {
		return err
	}
	defer closer()

	now := time.Now()
	ws := weekStart()

	fmt.Println()
	fmt.Println(cli.RenderTitle(now.Format("Monday, January 2")))
	fmt.Println()

	// Habits with their week strip
	habits := s.Habits()
	if len(habits) == 0 {
		fmt.Println("  No habits yet. Add one with `daybook habits add <name>`.")
	} else {
		strip := dates.WeekStrip(now, ws)
		todayIdx := stripIndexOf(strip, now)

		rows := make([][]string, 0, len(habits))
		doneToday := 0
		for _, h := range habits {
			if h.InteractedOn(now) {
				doneToday++
			}
			st := stats.ForHabit(h, now)
			rows = append(rows, []string{
				h.Name,
				cli.RenderWeekStrip(stats.WeekRow(h, now, ws), todayIdx),
				fmt.Sprintf("%d", st.CurrentStreak),
			})
		}

		fmt.Print(cli.RenderTable(cli.Table{
			Title:   fmt.Sprintf("Habits  %d/%d today", doneToday, len(habits)),
			Headers: []string{"Habit", "Week", "Streak"},
			Rows:    rows,
		}))
	}
	fmt.Println()

	// Open tasks
	tasks := s.Tasks()
	if len(tasks) == 0 {
		fmt.Println("  No open tasks.")
	} else {
		fmt.Printf("  Open tasks: %s (see `daybook tasks list`)\n", cli.FormatNumber(int64(len(tasks))))
	}
	fmt.Println()

	// Calories
	cs := stats.SummarizeCalories(s.CalorieData())
	if cs.Goal == 0 {
		fmt.Println("  No calorie goal set. Set one with `daybook cal goal <n>`.")
	} else if cs.Over {
		fmt.Printf("  Calories: %s consumed, goal %s — over budget\n",
			cli.FormatCalories(cs.Consumed), cli.FormatCalories(cs.Goal))
	} else {
		fmt.Printf("  Calories: %s remaining of %s  %s\n",
			cli.FormatCalories(cs.Remaining), cli.FormatCalories(cs.Goal),
			cli.RenderMiniBar(cs.Progress, 20))
	}

	// Finances
	fin := s.FinancialData()
	if fin.MonthlyIncome > 0 {
		fmt.Printf("  Monthly income: %s\n", cli.FormatMoney(fin.MonthlyIncome))
	}
	fmt.Println()

	return nil
}

// stripIndexOf returns the index of now's calendar day within the strip,
// or -1 when today is not on the rendered week.
func stripIndexOf(strip []time.Time, now time.Time) int {
	for i, day := range strip {
		if dates.SameDay(day, now) {
			return i
		}
	}
	return -1
}
