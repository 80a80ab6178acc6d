package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dvloznov/report-ledger/internal/document"
	"github.com/dvloznov/report-ledger/internal/journal"
	"github.com/dvloznov/report-ledger/internal/logger"
	"github.com/dvloznov/report-ledger/internal/money"
	"github.com/dvloznov/report-ledger/internal/payroll"
	"github.com/dvloznov/report-ledger/internal/render"
)

func newPayrollCmd() *cobra.Command {
	var (
		inputs    []string
		journalNo string
		date      string
		outPath   string
	)

	cmd := &cobra.Command{
		Use:   "payroll",
		Short: "Convert payroll register reports into a journal entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := runContext()
			log := logger.FromContext(ctx)

			table, err := loadAccounts()
			if err != nil {
				return err
			}
			docs, err := document.ReadFiles(inputs)
			if err != nil {
				return err
			}

			rec := payroll.Aggregate(docs, table)
			if !rec.BankKnown {
				log.Warn().
					Str("location", rec.Location).
					Str("account", rec.BankAccount).
					Msg("location not in account table, using default settlement account")
			}

			if journalNo == "" {
				journalNo = rec.Location
			}
			if date == "" {
				if rec.CheckDate != "" {
					date = rec.CheckDate
				} else {
					date = defaultJournalDate(time.Now())
				}
			}

			j := journal.FromPayroll(rec, journalNo, date)
			if !j.Balanced {
				log.Warn().
					Str("debits", money.Format(j.TotalDebits())).
					Str("credits", money.Format(j.TotalCredits())).
					Msg("journal does not balance, review the source reports")
			}

			out := render.JournalCSV(j)
			if outPath == "" {
				fmt.Print(out)
				return nil
			}
			if err := os.WriteFile(outPath, []byte(out), 0o644); err != nil {
				return fmt.Errorf("writing journal: %w", err)
			}

			log.Info().
				Str("location", rec.Location).
				Str("net_pay", money.Format(rec.NetPay)).
				Str("out", outPath).
				Msg("payroll journal written")
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&inputs, "in", nil, "payroll report .txt files (required)")
	cmd.Flags().StringVar(&journalNo, "journal-no", "", "journal number (default: extracted location)")
	cmd.Flags().StringVar(&date, "date", "", "journal date M/D/YY (default: extracted check date)")
	cmd.Flags().StringVar(&outPath, "out", "", "output CSV file (default: stdout)")
	cmd.MarkFlagRequired("in")

	return cmd
}
