package render

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/dvloznov/report-ledger/internal/pos"
)

const consolidatedSheet = "Consolidated"

// ConsolidatedXLSX renders the same matrix as ConsolidatedCSV into a
// workbook. Amounts become numeric cells so the sheet stays sortable and
// summable; zero/absent cells carry the same sentinel as the CSV.
func ConsolidatedXLSX(b *pos.Batch) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), consolidatedSheet); err != nil {
		return nil, fmt.Errorf("ConsolidatedXLSX: renaming sheet: %w", err)
	}

	stores := b.Stores()
	for i, store := range stores {
		cell, err := excelize.CoordinatesToCellName(i+2, 1)
		if err != nil {
			return nil, fmt.Errorf("ConsolidatedXLSX: header cell: %w", err)
		}
		if err := f.SetCellStr(consolidatedSheet, cell, store); err != nil {
			return nil, fmt.Errorf("ConsolidatedXLSX: writing header: %w", err)
		}
	}

	for rowIdx, row := range pos.RowOrder() {
		cell, err := excelize.CoordinatesToCellName(1, rowIdx+2)
		if err != nil {
			return nil, fmt.Errorf("ConsolidatedXLSX: row cell: %w", err)
		}
		if err := f.SetCellStr(consolidatedSheet, cell, row); err != nil {
			return nil, fmt.Errorf("ConsolidatedXLSX: writing row name: %w", err)
		}
		for colIdx, store := range stores {
			cell, err := excelize.CoordinatesToCellName(colIdx+2, rowIdx+2)
			if err != nil {
				return nil, fmt.Errorf("ConsolidatedXLSX: value cell: %w", err)
			}
			v := b.Records[store].Get(row)
			if v.IsZero() {
				err = f.SetCellStr(consolidatedSheet, cell, Sentinel)
			} else {
				err = f.SetCellFloat(consolidatedSheet, cell, v.InexactFloat64(), 2, 64)
			}
			if err != nil {
				return nil, fmt.Errorf("ConsolidatedXLSX: writing value: %w", err)
			}
		}
	}

	return f, nil
}
