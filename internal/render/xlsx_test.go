package render

import (
	"testing"

	"github.com/dvloznov/report-ledger/internal/pos"
)

func TestConsolidatedXLSX(t *testing.T) {
	f, err := ConsolidatedXLSX(twoStoreBatch(t))
	if err != nil {
		t.Fatalf("ConsolidatedXLSX: %v", err)
	}
	defer f.Close()

	get := func(cell string) string {
		t.Helper()
		v, err := f.GetCellValue(consolidatedSheet, cell)
		if err != nil {
			t.Fatalf("GetCellValue %s: %v", cell, err)
		}
		return v
	}

	if got := get("B1"); got != "FL008" {
		t.Errorf("B1 = %q, want first store", got)
	}
	if got := get("C1"); got != "FL044" {
		t.Errorf("C1 = %q, want second store", got)
	}
	if got := get("A2"); got != pos.FieldNetSales {
		t.Errorf("A2 = %q, want first schema row", got)
	}
	if got := get("B2"); got != "100.00" {
		t.Errorf("B2 = %q, want net sales amount", got)
	}
	if got := get("C2"); got != Sentinel {
		t.Errorf("C2 = %q, want sentinel for zero", got)
	}
}
