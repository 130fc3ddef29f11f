package cmd

import (
	"fmt"
	"strconv"

	"daybook/internal/cli"

	"github.com/spf13/cobra"
)

var financeCmd = &cobra.Command{
	Use:   "finance",
	Short: "Track monthly finances",
	RunE:  runFinanceShow,
}

var financeShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show monthly finances",
	RunE:  runFinanceShow,
}

var financeIncomeCmd = &cobra.Command{
	Use:   "income <amount>",
	Short: "Set the monthly income",
	Args:  cobra.ExactArgs(1),
	RunE:  runFinanceIncome,
}

func init() {
	financeCmd.AddCommand(financeShowCmd, financeIncomeCmd)
	rootCmd.AddCommand(financeCmd)
}

func runFinanceShow(_ *cobra.Command, _ []string) error {
	s, closer, err := openStore()
	if err != nil {
		return err
	}
	defer closer()

	fin := s.FinancialData()

	fmt.Println()
	fmt.Println(cli.RenderTitle("FINANCES"))
	fmt.Println()
	if fin.MonthlyIncome == 0 {
		fmt.Println("  No income recorded. Set it with `daybook finance income <amount>`.")
	} else {
		fmt.Printf("  Monthly income: %s\n", cli.FormatMoney(fin.MonthlyIncome))
	}
	fmt.Println()

	return nil
}

func runFinanceIncome(_ *cobra.Command, args []string) error {
	s, closer, err := openStore()
	if err != nil {
		return err
	}
	defer closer()

	amount, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("bad amount %q: want a number", args[0])
	}

	s.SetMonthlyIncome(amount)
	fmt.Printf("  Monthly income set to %s\n", cli.FormatMoney(amount))
	return nil
}
