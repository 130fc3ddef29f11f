package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"daybook/internal/config"
	"daybook/internal/dates"
	"daybook/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagDataDir string
	flagQuiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "daybook",
	Short: "Personal habit, task, calorie, and finance tracker",
	Long:  "Track habits, to-dos, calorie intake, and monthly finances from the terminal.",
	RunE:  runToday,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Data directory (default ~/.local/share/daybook)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress warnings")
}

// loadConfigOrDefault loads config, returning defaults on error so commands
// always run even with a corrupted config file.
func loadConfigOrDefault() config.Config {
	cfg, err := config.Load()
	if err != nil {
		if !flagQuiet {
			fmt.Fprintf(os.Stderr, "  Config unreadable, using defaults: %v\n", err)
		}
		return config.DefaultConfig()
	}
	return cfg
}

// dataDir resolves the effective data directory: flag, then config, then the
// XDG default.
func dataDir(cfg config.Config) string {
	if flagDataDir != "" {
		return flagDataDir
	}
	return config.DataDir(cfg)
}

// dbPath returns the key-value store location inside the data directory.
func dbPath(cfg config.Config) string {
	return filepath.Join(dataDir(cfg), "daybook.db")
}

// newLogger builds the slog logger used for store warnings. Quiet mode keeps
// only errors.
func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if flagQuiet {
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// openStore is the shared store opening path used by all commands.
// The returned closer must be called when the command is done.
func openStore() (*store.Store, func(), error) {
	cfg := loadConfigOrDefault()

	kv, err := store.OpenKV(dbPath(cfg))
	if err != nil {
		return nil, nil, fmt.Errorf("opening store: %w", err)
	}

	s := store.Open(kv, newLogger())
	return s, func() { _ = kv.Close() }, nil
}

// weekStart returns the configured first day of the week.
func weekStart() dates.WeekStart {
	cfg := loadConfigOrDefault()
	return dates.ParseWeekStart(cfg.General.WeekStart)
}
