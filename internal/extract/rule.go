// Package extract implements the two low-level extraction strategies the
// conversion engine is built on: named-field pattern extraction and bounded
// section/table extraction. Both are pure functions over already-acquired
// report text and degrade to zero values instead of failing — absent fields
// are a normal condition across report vendors.
package extract

import (
	"regexp"

	"github.com/shopspring/decimal"

	"github.com/dvloznov/report-ledger/internal/money"
)

// Rule names one numeric field and the ordered list of patterns that can
// locate it. Multiple patterns (and multiple capture groups within one
// pattern) exist because vendors word the same line differently, e.g.
// "UberEats" vs "UBER EATS". Patterns are compiled once at package init of
// the aggregator that owns them; a Rule is read-only after construction.
type Rule struct {
	Field    string
	Patterns []*regexp.Regexp
}

// NewRule builds a rule from raw pattern strings. Patterns must carry their
// own (?i) flag where case-insensitivity is wanted and must use \s+ between
// words, since text reflow can turn a single space into several or into a
// line break.
func NewRule(field string, patterns ...string) Rule {
	r := Rule{Field: field}
	for _, p := range patterns {
		r.Patterns = append(r.Patterns, regexp.MustCompile(p))
	}
	return r
}

// Extract returns the field value found in text, or zero when no pattern
// matches. The first pattern that matches wins, and within that match the
// first non-empty capture group is taken.
func (r Rule) Extract(text string) decimal.Decimal {
	for _, re := range r.Patterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		for _, group := range m[1:] {
			if group == "" {
				continue
			}
			if d, ok := money.Parse(group); ok {
				return d
			}
		}
	}
	return decimal.Zero
}

// ExtractSum returns the sum of every occurrence of the field in text. The
// first pattern that matches at all is the one summed; alternatives are
// format variants of the same line, not independent fields, so summing
// across patterns would double-count.
//
// Payroll report totals legitimately repeat a code once per department, so a
// single-shot Extract would silently drop all but the first amount.
func (r Rule) ExtractSum(text string) decimal.Decimal {
	for _, re := range r.Patterns {
		matches := re.FindAllStringSubmatch(text, -1)
		if matches == nil {
			continue
		}
		total := decimal.Zero
		for _, m := range matches {
			for _, group := range m[1:] {
				if group == "" {
					continue
				}
				if d, ok := money.Parse(group); ok {
					total = total.Add(d)
				}
				break
			}
		}
		return total
	}
	return decimal.Zero
}
