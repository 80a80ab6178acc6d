package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dvloznov/report-ledger/internal/accounts"
	"github.com/dvloznov/report-ledger/internal/logger"
)

var (
	accountsPath string
	verbose      bool
)

func main() {
	root := &cobra.Command{
		Use:           "reportledger",
		Short:         "Convert point-of-sale and payroll reports into ledger journal entries",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&accountsPath, "accounts",
		"", "YAML file layering location-to-settlement-account overrides")
	root.PersistentFlags().BoolVarP(&verbose, "verbose",
		"v", false, "enable debug logging")

	root.AddCommand(newPOSCmd(), newPayrollCmd(), newAccountsCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func runContext() context.Context {
	return logger.WithContext(context.Background(), logger.New(verbose))
}

func loadAccounts() (*accounts.Table, error) {
	if accountsPath == "" {
		return accounts.Default(), nil
	}
	return accounts.Load(accountsPath)
}

// defaultJournalDate is the last day of the previous month as M/D/YY.
// Reports are converted shortly after month close, so that is the date the
// books use.
func defaultJournalDate(now time.Time) string {
	last := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, 0, -1)
	return fmt.Sprintf("%d/%d/%s", int(last.Month()), last.Day(), last.Format("06"))
}
