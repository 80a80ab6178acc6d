package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/dvloznov/report-ledger/internal/batch"
	"github.com/dvloznov/report-ledger/internal/document"
	"github.com/dvloznov/report-ledger/internal/journal"
	"github.com/dvloznov/report-ledger/internal/logger"
	"github.com/dvloznov/report-ledger/internal/pos"
	"github.com/dvloznov/report-ledger/internal/render"
)

func newPOSCmd() *cobra.Command {
	var (
		inputs  []string
		date    string
		outDir  string
		xlsxOut bool
		zipOut  bool
		verify  bool
		workers int
	)

	cmd := &cobra.Command{
		Use:   "pos",
		Short: "Convert sales reports into per-store journals and a consolidated table",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := runContext()
			log := logger.FromContext(ctx)

			if date == "" {
				date = defaultJournalDate(time.Now())
			}

			docs, err := readInputs(inputs)
			if err != nil {
				return err
			}
			log.Info().Int("documents", len(docs)).Str("date", date).Msg("converting sales reports")

			b, err := batch.Convert(ctx, docs, workers)
			if err != nil {
				return err
			}

			journals := make(map[string]journal.Journal, len(b.Records))
			for _, store := range b.Stores() {
				rec := b.Records[store]
				if verify {
					if err := pos.Validate(rec); err != nil {
						log.Warn().Err(err).Str("store", store).Msg("record failed verification")
					}
				}
				journals[store] = journal.FromPOS(rec, store, date)
			}

			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("creating output directory: %w", err)
			}

			consolidated := filepath.Join(outDir, "consolidated.csv")
			if err := os.WriteFile(consolidated, []byte(render.ConsolidatedCSV(b)), 0o644); err != nil {
				return fmt.Errorf("writing consolidated table: %w", err)
			}

			if zipOut {
				data, err := render.JournalZip(journals)
				if err != nil {
					return err
				}
				archive := filepath.Join(outDir, "journal_entries.zip")
				if err := os.WriteFile(archive, data, 0o644); err != nil {
					return fmt.Errorf("writing journal archive: %w", err)
				}
			} else {
				for store, j := range journals {
					path := filepath.Join(outDir, store+".csv")
					if err := os.WriteFile(path, []byte(render.JournalCSV(j)), 0o644); err != nil {
						return fmt.Errorf("writing journal for %s: %w", store, err)
					}
				}
			}

			if xlsxOut {
				f, err := render.ConsolidatedXLSX(b)
				if err != nil {
					return err
				}
				defer f.Close()
				if err := f.SaveAs(filepath.Join(outDir, "consolidated.xlsx")); err != nil {
					return fmt.Errorf("writing workbook: %w", err)
				}
			}

			log.Info().
				Str("run_id", b.RunID).
				Int("stores", len(journals)).
				Str("out", outDir).
				Msg("conversion complete")
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&inputs, "in", nil, "report .txt files or directories (required)")
	cmd.Flags().StringVar(&date, "date", "", "journal date M/D/YY (default: last day of previous month)")
	cmd.Flags().StringVar(&outDir, "out", "out", "output directory")
	cmd.Flags().BoolVar(&xlsxOut, "xlsx", false, "also write the consolidated table as a workbook")
	cmd.Flags().BoolVar(&zipOut, "zip", false, "bundle per-store journals into journal_entries.zip")
	cmd.Flags().BoolVar(&verify, "verify", false, "warn when a record's derived totals disagree with its rows")
	cmd.Flags().IntVar(&workers, "workers", batch.DefaultWorkers, "concurrent aggregation workers")
	cmd.MarkFlagRequired("in")

	return cmd
}

// readInputs expands a mix of files and directories into documents.
func readInputs(inputs []string) ([]document.Document, error) {
	var docs []document.Document
	for _, in := range inputs {
		info, err := os.Stat(in)
		if err != nil {
			return nil, fmt.Errorf("readInputs: %w", err)
		}
		var part []document.Document
		if info.IsDir() {
			part, err = document.ReadDir(in)
		} else {
			part, err = document.ReadFiles([]string{in})
		}
		if err != nil {
			return nil, err
		}
		docs = append(docs, part...)
	}
	if len(docs) == 0 {
		return nil, fmt.Errorf("readInputs: no report files found")
	}
	return docs, nil
}
