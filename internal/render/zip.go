package render

import (
	"archive/zip"
	"bytes"
	"fmt"

	"github.com/dvloznov/report-ledger/internal/journal"
)

// JournalZip bundles one journal CSV per store into a single archive, named
// <store>.csv. Entries appear in lexical store order so the archive bytes
// are deterministic for a given batch.
func JournalZip(journals map[string]journal.Journal) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for _, store := range sortedKeys(journals) {
		entry, err := zw.Create(store + ".csv")
		if err != nil {
			return nil, fmt.Errorf("JournalZip: creating entry for %s: %w", store, err)
		}
		if _, err := entry.Write([]byte(JournalCSV(journals[store]))); err != nil {
			return nil, fmt.Errorf("JournalZip: writing entry for %s: %w", store, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("JournalZip: closing archive: %w", err)
	}
	return buf.Bytes(), nil
}
