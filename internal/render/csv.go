// Package render formats batches and journals as row output for the
// importing ledger system. Everything here is in-memory; callers decide
// where the bytes go.
package render

import (
	"bytes"
	"encoding/csv"
	"sort"

	"github.com/dvloznov/report-ledger/internal/journal"
	"github.com/dvloznov/report-ledger/internal/money"
	"github.com/dvloznov/report-ledger/internal/pos"
)

// Sentinel replaces zero cells in the consolidated table. Zero and "not
// reported" are indistinguishable there, matching the source reports.
const Sentinel = "N/A"

// Currency is the fixed currency column of journal rows.
const Currency = "USD"

// journalHeader is the import header the ledger system expects verbatim.
// Starred columns are required on its side.
var journalHeader = []string{
	"*JournalNo", "*JournalDate", "*AccountName", "*Debits", "*Credits",
	"Description", "Name", "Currency", "Location", "Class",
}

// ConsolidatedCSV renders the batch as a row-per-category, column-per-store
// comparison table. Stores sort lexically; the corner cell is blank.
func ConsolidatedCSV(b *pos.Batch) string {
	stores := b.Stores()

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	w.Write(append([]string{""}, stores...))
	for _, row := range pos.RowOrder() {
		cells := make([]string, 0, len(stores)+1)
		cells = append(cells, row)
		for _, store := range stores {
			v := b.Records[store].Get(row)
			if v.IsZero() {
				cells = append(cells, Sentinel)
			} else {
				cells = append(cells, money.Format(v))
			}
		}
		w.Write(cells)
	}
	w.Flush()
	return buf.String()
}

// JournalCSV renders one journal in the ledger system's import layout. A
// side that does not apply stays blank, not zero; Location and Class are
// always empty.
func JournalCSV(j journal.Journal) string {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	w.Write(journalHeader)
	for _, l := range j.Lines {
		debit, credit := "", ""
		if l.Debit.IsPositive() {
			debit = money.Format(l.Debit)
		}
		if l.Credit.IsPositive() {
			credit = money.Format(l.Credit)
		}
		w.Write([]string{
			j.No, j.Date, l.Account, debit, credit,
			l.Description, l.Name, Currency, "", "",
		})
	}
	w.Flush()
	return buf.String()
}

// sortedKeys returns map keys in lexical order for deterministic output.
func sortedKeys(journals map[string]journal.Journal) []string {
	keys := make([]string, 0, len(journals))
	for k := range journals {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
