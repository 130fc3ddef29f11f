package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"daybook/internal/config"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	// Load existing config or defaults
	cfg, _ := config.Load()

	fmt.Println()
	fmt.Println("  Welcome to daybook!")
	fmt.Println()

	// 1. Week start
	fmt.Println("  1. First day of the week")
	fmt.Println("     (1) Monday [default]")
	fmt.Println("     (2) Sunday")
	fmt.Print("     > ")
	choice, _ := reader.ReadString('\n')
	if strings.TrimSpace(choice) == "2" {
		cfg.General.WeekStart = "sunday"
	} else {
		cfg.General.WeekStart = "monday"
	}
	fmt.Println()

	// 2. Daily calorie goal
	fmt.Println("  2. Daily calorie goal")
	fmt.Printf("     Current: %d kcal (Enter to keep)\n", cfg.Calories.DefaultGoal)
	fmt.Print("     > ")
	goalStr, _ := reader.ReadString('\n')
	goalStr = strings.TrimSpace(goalStr)
	if goalStr != "" {
		if goal, err := strconv.Atoi(goalStr); err == nil && goal > 0 {
			cfg.Calories.DefaultGoal = goal
		}
	}
	fmt.Println()

	// 3. Theme
	fmt.Println("  3. Color theme")
	fmt.Println("     (1) Flexoki Dark [default]")
	fmt.Println("     (2) Catppuccin Mocha")
	fmt.Println("     (3) Tokyo Night")
	fmt.Println("     (4) Terminal (ANSI 16)")
	fmt.Print("     > ")
	themeChoice, _ := reader.ReadString('\n')
	switch strings.TrimSpace(themeChoice) {
	case "2":
		cfg.Appearance.Theme = "catppuccin-mocha"
	case "3":
		cfg.Appearance.Theme = "tokyo-night"
	case "4":
		cfg.Appearance.Theme = "terminal"
	default:
		cfg.Appearance.Theme = "flexoki-dark"
	}

	// Save
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	// Seed the calorie goal if it was never set
	s, closer, err := openStore()
	if err == nil {
		if s.CalorieData().Goal == 0 {
			s.SetCalorieGoal(cfg.Calories.DefaultGoal)
		}
		closer()
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `daybook setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}
