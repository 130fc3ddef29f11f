package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"daybook/internal/cli"
	"daybook/internal/model"
	"daybook/internal/stats"
	"daybook/internal/store"

	"github.com/spf13/cobra"
)

var flagHabitDate string

var habitsCmd = &cobra.Command{
	Use:     "habits",
	Aliases: []string{"habit"},
	Short:   "Track daily habits",
	RunE:    runHabitsList,
}

var habitsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List habits with streaks and completion",
	RunE:  runHabitsList,
}

var habitsAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a new habit",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runHabitsAdd,
}

var habitsDoneCmd = &cobra.Command{
	Use:   "done <habit>",
	Short: "Toggle a habit for today (or --date)",
	Args:  cobra.ExactArgs(1),
	RunE:  runHabitsDone,
}

var habitsRmCmd = &cobra.Command{
	Use:   "rm <habit>",
	Short: "Delete a habit and its history",
	Args:  cobra.ExactArgs(1),
	RunE:  runHabitsRm,
}

var habitsMonthCmd = &cobra.Command{
	Use:   "month <habit>",
	Short: "Show a habit's current month day by day",
	Args:  cobra.ExactArgs(1),
	RunE:  runHabitsMonth,
}

func init() {
	habitsDoneCmd.Flags().StringVar(&flagHabitDate, "date", "", "Day to toggle (YYYY-MM-DD, default today)")

	habitsCmd.AddCommand(habitsListCmd, habitsAddCmd, habitsDoneCmd, habitsRmCmd, habitsMonthCmd)
	rootCmd.AddCommand(habitsCmd)
}

func runHabitsList(_ *cobra.Command, _ []string) error {
	s, closer, err := openStore()
	if err != nil {
		return err
	}
	defer closer()

	habits := s.Habits()
	if len(habits) == 0 {
		fmt.Println("\n  No habits yet. Add one with `daybook habits add <name>`.")
		return nil
	}

	now := time.Now()
	ws := weekStart()

	rows := make([][]string, 0, len(habits))
	for i, h := range habits {
		st := stats.ForHabit(h, now)
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			h.Name,
			cli.RenderWeekStrip(stats.WeekRow(h, now, ws), -1),
			fmt.Sprintf("%d", st.CurrentStreak),
			fmt.Sprintf("%d", st.BestStreak),
			cli.FormatPercent(st.Rate30d),
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "HABITS",
		Headers: []string{"#", "Habit", "Week", "Streak", "Best", "30d"},
		Rows:    rows,
	}))

	// Overall completion trend for the last two weeks
	series := stats.AggregateDailyCompletion(habits, 14, now)
	values := make([]float64, len(series))
	for i, dc := range series {
		values[i] = dc.Rate
	}
	fmt.Printf("\n  14d completion: %s\n\n", cli.RenderSparkline(values))

	return nil
}

func runHabitsAdd(_ *cobra.Command, args []string) error {
	s, closer, err := openStore()
	if err != nil {
		return err
	}
	defer closer()

	name := strings.TrimSpace(strings.Join(args, " "))
	if name == "" {
		return errors.New("habit name is empty")
	}

	h := s.AddHabit(name)
	fmt.Printf("  Added habit %q\n", h.Name)
	return nil
}

func runHabitsDone(_ *cobra.Command, args []string) error {
	s, closer, err := openStore()
	if err != nil {
		return err
	}
	defer closer()

	h, err := resolveHabit(s, args[0])
	if err != nil {
		return err
	}

	day := time.Now()
	if flagHabitDate != "" {
		day, err = time.ParseInLocation("2006-01-02", flagHabitDate, time.Local)
		if err != nil {
			return fmt.Errorf("bad --date %q: want YYYY-MM-DD", flagHabitDate)
		}
	}

	s.ToggleInteraction(h.ID, day)

	updated, _ := s.HabitByID(h.ID)
	state := "not done"
	if updated.InteractedOn(day) {
		state = "done"
	}
	fmt.Printf("  %s: %s on %s\n", updated.Name, state, cli.FormatDate(day, time.Now()))
	return nil
}

func runHabitsRm(_ *cobra.Command, args []string) error {
	s, closer, err := openStore()
	if err != nil {
		return err
	}
	defer closer()

	h, err := resolveHabit(s, args[0])
	if err != nil {
		return err
	}

	s.DeleteHabit(h.ID)
	fmt.Printf("  Deleted habit %q\n", h.Name)
	return nil
}

func runHabitsMonth(_ *cobra.Command, args []string) error {
	s, closer, err := openStore()
	if err != nil {
		return err
	}
	defer closer()

	h, err := resolveHabit(s, args[0])
	if err != nil {
		return err
	}

	now := time.Now()
	grid := stats.MonthGrid(h, now.Month(), now.Year())

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("%s — %s", strings.ToUpper(h.Name), now.Format("January 2006"))))
	fmt.Println()

	firstDay := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local)
	fmt.Printf("  month starts on %s\n\n", cli.FormatDayOfWeek(int(firstDay.Weekday())))

	done := 0
	var b strings.Builder
	b.WriteString("  ")
	for i, d := range grid {
		if d {
			done++
			b.WriteString("●")
		} else {
			b.WriteString("·")
		}
		if (i+1)%7 == 0 {
			b.WriteString("\n  ")
		} else {
			b.WriteString(" ")
		}
	}
	fmt.Println(b.String())
	fmt.Printf("\n  %d/%d days\n\n", done, len(grid))

	return nil
}

// resolveHabit finds a habit by 1-based list index, exact name, or unique
// name prefix (case-insensitive).
func resolveHabit(s *store.Store, arg string) (model.Habit, error) {
	habits := s.Habits()

	if n, err := strconv.Atoi(arg); err == nil {
		if n < 1 || n > len(habits) {
			return model.Habit{}, fmt.Errorf("habit %d out of range (1-%d)", n, len(habits))
		}
		return habits[n-1], nil
	}

	needle := strings.ToLower(arg)
	var prefix []model.Habit
	for _, h := range habits {
		name := strings.ToLower(h.Name)
		if name == needle {
			return h, nil
		}
		if strings.HasPrefix(name, needle) {
			prefix = append(prefix, h)
		}
	}

	switch len(prefix) {
	case 1:
		return prefix[0], nil
	case 0:
		return model.Habit{}, fmt.Errorf("no habit matching %q", arg)
	default:
		return model.Habit{}, fmt.Errorf("%q is ambiguous (%d matches)", arg, len(prefix))
	}
}
