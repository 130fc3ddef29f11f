// Package cmd implements the daybook CLI commands.
package cmd

import (
	"fmt"

	"daybook/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Week start: %s\n", cfg.General.WeekStart)
	fmt.Printf("    Data dir:   %s\n", dataDir(cfg))
	fmt.Println()

	fmt.Println("  [Calories]")
	fmt.Printf("    Default goal: %d kcal\n", cfg.Calories.DefaultGoal)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  Run `daybook setup` to reconfigure.")
	return nil
}
