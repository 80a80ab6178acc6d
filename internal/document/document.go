// Package document models one extracted report text plus the best-effort
// store identifier that keys all downstream aggregation. Text acquisition
// itself (PDF parsing, OCR) happens upstream; this package only consumes
// already-extracted plain text.
package document

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Document is one source report as handed to the conversion engine.
type Document struct {
	StoreID  string
	Filename string
	Text     string
}

var (
	contentStoreID  = regexp.MustCompile(`(?i)Store\s+ID:\s*(FL\d+)`)
	filenameStoreID = regexp.MustCompile(`(?i)fl\s*(\d+)`)
	unsafeChars     = regexp.MustCompile(`[^a-zA-Z0-9]`)
)

// New builds a Document, resolving the store identifier from the report text
// first ("Store ID: FL008") and falling back to the filename ("fl008
// payroll.txt"). When neither yields one, the sanitized filename stem is used
// so the document still keys a record instead of being dropped.
func New(filename, text string) Document {
	return Document{
		StoreID:  resolveStoreID(filename, text),
		Filename: filename,
		Text:     text,
	}
}

func resolveStoreID(filename, text string) string {
	if m := contentStoreID.FindStringSubmatch(text); m != nil {
		return strings.ToUpper(m[1])
	}
	if m := filenameStoreID.FindStringSubmatch(filepath.Base(filename)); m != nil {
		num := m[1]
		for len(num) < 3 {
			num = "0" + num
		}
		return "FL" + num
	}
	stem := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	return unsafeChars.ReplaceAllString(stem, "_")
}

// ReadFiles loads the given plain-text report files.
func ReadFiles(paths []string) ([]Document, error) {
	docs := make([]Document, 0, len(paths))
	for _, p := range paths {
		b, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("ReadFiles: reading %s: %w", p, err)
		}
		docs = append(docs, New(filepath.Base(p), string(b)))
	}
	return docs, nil
}

// ReadDir loads every .txt file in dir, sorted by name.
func ReadDir(dir string) ([]Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("ReadDir: reading %s: %w", dir, err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), ".txt") {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	return ReadFiles(paths)
}
