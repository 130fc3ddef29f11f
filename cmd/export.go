package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Export all collections to a JSON snapshot",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace all collections from a JSON snapshot",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func init() {
	rootCmd.AddCommand(exportCmd, importCmd)
}

func runExport(_ *cobra.Command, args []string) error {
	s, closer, err := openStore()
	if err != nil {
		return err
	}
	defer closer()

	if err := s.Export(args[0]); err != nil {
		return err
	}
	fmt.Printf("  Exported to %s\n", args[0])
	return nil
}

func runImport(_ *cobra.Command, args []string) error {
	s, closer, err := openStore()
	if err != nil {
		return err
	}
	defer closer()

	if err := s.Import(args[0]); err != nil {
		return err
	}
	fmt.Printf("  Imported %s\n", args[0])
	return nil
}
