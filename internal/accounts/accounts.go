// Package accounts resolves store/location codes to the bank account that
// settles their payroll. The table is process-wide immutable configuration:
// loaded once at startup, read many times, never mutated.
package accounts

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultAccount is the settlement account substituted for unknown location
// codes. Substituting a financial account silently is a correctness risk, so
// Lookup also reports whether the code was actually known and callers log a
// warning on fallback.
const DefaultAccount = "Fifth Third Checking 4681"

// Table maps lowercase location codes to settlement account names.
type Table struct {
	entries        map[string]string
	defaultAccount string
}

// defaultEntries keys the table both by store code (fl008) and by the
// alternate numeric location scheme used on payroll reports (300 = fl008).
var defaultEntries = map[string]string{
	"fl008": "Fifth Third Checking 4681",
	"fl009": "PNC Bank - Checking 6662",
	"fl010": "PNC Bank - Checking 2691",
	"fl017": "Fifth Third Checking 0844",
	"fl024": "PNC Checking",
	"fl035": "PNC Bank - Checking 3723",
	"fl041": "Fifth Third Checking 3308",
	"fl045": "PNC Bank - Checking 6107",
	"fl046": "PNC Bank - Checking 6115",
	"fl051": "FLORIDA PIZZA 8 LLC (6602) -1",
	"cc":    "PNC Checking",

	"300":  "Fifth Third Checking 4681",
	"400":  "PNC Bank - Checking 6662",
	"500":  "PNC Bank - Checking 2691",
	"525":  "Fifth Third Checking 0844",
	"600":  "PNC Checking",
	"700":  "PNC Bank - Checking 3723",
	"800":  "Fifth Third Checking 3308",
	"900":  "PNC Bank - Checking 6107",
	"1000": "PNC Bank - Checking 6115",
	"1100": "FLORIDA PIZZA 8 LLC (6602) -1",
}

// Default returns the compiled-in mapping.
func Default() *Table {
	return &Table{entries: defaultEntries, defaultAccount: DefaultAccount}
}

// fileFormat is the YAML shape of an override file:
//
//	default: Fifth Third Checking 4681
//	locations:
//	  fl008: Fifth Third Checking 4681
//	  "300": Fifth Third Checking 4681
type fileFormat struct {
	Default   string            `yaml:"default"`
	Locations map[string]string `yaml:"locations"`
}

// Load reads a YAML override file and layers it over the compiled-in
// defaults: listed locations replace or extend the default entries, and an
// explicit default account replaces DefaultAccount.
func Load(path string) (*Table, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("Load: reading %s: %w", path, err)
	}

	var f fileFormat
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("Load: parsing %s: %w", path, err)
	}

	entries := make(map[string]string, len(defaultEntries)+len(f.Locations))
	for k, v := range defaultEntries {
		entries[k] = v
	}
	for k, v := range f.Locations {
		entries[strings.ToLower(k)] = v
	}

	def := DefaultAccount
	if f.Default != "" {
		def = f.Default
	}

	return &Table{entries: entries, defaultAccount: def}, nil
}

// Lookup resolves a location code case-insensitively. Unknown or empty codes
// resolve to the default account with known=false.
func (t *Table) Lookup(code string) (account string, known bool) {
	if code == "" {
		return t.defaultAccount, false
	}
	if acct, ok := t.entries[strings.ToLower(code)]; ok {
		return acct, true
	}
	return t.defaultAccount, false
}

// Codes returns every known location code, for operator display.
func (t *Table) Codes() []string {
	codes := make([]string, 0, len(t.entries))
	for k := range t.entries {
		codes = append(codes, k)
	}
	return codes
}
