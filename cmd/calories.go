package cmd

import (
	"fmt"
	"strconv"

	"daybook/internal/cli"
	"daybook/internal/stats"

	"github.com/spf13/cobra"
)

var caloriesCmd = &cobra.Command{
	Use:     "calories",
	Aliases: []string{"cal"},
	Short:   "Track calorie intake against a daily goal",
	RunE:    runCaloriesStatus,
}

var caloriesStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show today's calorie balance",
	RunE:  runCaloriesStatus,
}

var caloriesGoalCmd = &cobra.Command{
	Use:   "goal <kcal>",
	Short: "Set the daily calorie goal",
	Args:  cobra.ExactArgs(1),
	RunE:  runCaloriesGoal,
}

var caloriesEatCmd = &cobra.Command{
	Use:   "eat <kcal>",
	Short: "Record consumed calories",
	Args:  cobra.ExactArgs(1),
	RunE:  runCaloriesEat,
}

var caloriesBurnCmd = &cobra.Command{
	Use:   "burn <kcal>",
	Short: "Record burned calories",
	Args:  cobra.ExactArgs(1),
	RunE:  runCaloriesBurn,
}

var caloriesResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Zero consumed and burned, keeping the goal",
	RunE:  runCaloriesReset,
}

func init() {
	caloriesCmd.AddCommand(caloriesStatusCmd, caloriesGoalCmd, caloriesEatCmd, caloriesBurnCmd, caloriesResetCmd)
	rootCmd.AddCommand(caloriesCmd)
}

func runCaloriesStatus(_ *cobra.Command, _ []string) error {
	s, closer, err := openStore()
	if err != nil {
		return err
	}
	defer closer()

	cs := stats.SummarizeCalories(s.CalorieData())

	fmt.Println()
	fmt.Println(cli.RenderTitle("CALORIES"))
	fmt.Println()

	if cs.Goal == 0 {
		fmt.Println("  No goal set. Set one with `daybook cal goal <kcal>`.")
		fmt.Println()
		return nil
	}

	rows := [][]string{
		{"Goal", cli.FormatCalories(cs.Goal)},
		{"Consumed", cli.FormatCalories(cs.Consumed)},
		{"Burned", cli.FormatCalories(cs.Burned)},
		{"Remaining", cli.FormatCalories(cs.Remaining)},
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"", ""},
		Rows:    rows,
	}))

	fmt.Printf("\n  %s\n", cli.RenderMiniBar(cs.Progress, 30))
	if cs.Over {
		fmt.Println("  Over budget for today.")
	}
	fmt.Println()

	return nil
}

func runCaloriesGoal(_ *cobra.Command, args []string) error {
	s, closer, err := openStore()
	if err != nil {
		return err
	}
	defer closer()

	goal, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("bad goal %q: want an integer", args[0])
	}

	s.SetCalorieGoal(goal)
	fmt.Printf("  Daily goal set to %s\n", cli.FormatCalories(goal))
	return nil
}

func runCaloriesEat(_ *cobra.Command, args []string) error {
	s, closer, err := openStore()
	if err != nil {
		return err
	}
	defer closer()

	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("bad amount %q: want an integer", args[0])
	}

	s.AddConsumedCalories(n)
	cs := stats.SummarizeCalories(s.CalorieData())
	fmt.Printf("  Recorded %s consumed, %s remaining\n",
		cli.FormatCalories(n), cli.FormatCalories(cs.Remaining))
	return nil
}

func runCaloriesBurn(_ *cobra.Command, args []string) error {
	s, closer, err := openStore()
	if err != nil {
		return err
	}
	defer closer()

	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("bad amount %q: want an integer", args[0])
	}

	s.AddBurnedCalories(n)
	cs := stats.SummarizeCalories(s.CalorieData())
	fmt.Printf("  Recorded %s burned, %s remaining\n",
		cli.FormatCalories(n), cli.FormatCalories(cs.Remaining))
	return nil
}

func runCaloriesReset(_ *cobra.Command, _ []string) error {
	s, closer, err := openStore()
	if err != nil {
		return err
	}
	defer closer()

	s.ResetToday()
	fmt.Println("  Consumed and burned reset to zero.")
	return nil
}
