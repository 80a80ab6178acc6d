// Package money parses and formats the monetary tokens that appear in
// point-of-sale and payroll report text. Report vendors print amounts with a
// comma thousands separator and exactly two decimal digits; negatives show up
// either with a leading minus or wrapped in parentheses.
package money

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Token matches one money-formatted amount inside a line of report text,
// e.g. "1,234.56". It deliberately requires two decimal digits so that unit
// counts ("12") are never mistaken for amounts.
var Token = regexp.MustCompile(`[\d,]+\.\d{2}`)

// Integer matches a bare unit count token, e.g. "12" in "Pizza 12 345.67".
var Integer = regexp.MustCompile(`^\d+$`)

// Parse converts a money token into a decimal value. It strips currency
// symbols and thousands separators and normalizes both negative notations
// ("-123.45" and "(123.45)") to a negative decimal.
//
// Malformed tokens report ok=false; callers treat those as absent values,
// never as errors.
func Parse(token string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(token)
	if s == "" {
		return decimal.Zero, false
	}

	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = strings.TrimSuffix(strings.TrimPrefix(s, "("), ")")
		s = strings.TrimSpace(s)
	}

	s = strings.TrimPrefix(s, "$")
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "-") {
		negative = true
		s = strings.TrimPrefix(s, "-")
	}

	s = strings.ReplaceAll(s, ",", "")

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	if negative {
		d = d.Neg()
	}
	return d, true
}

// Format renders a decimal with exactly two decimal places, the convention
// used across all generated row output.
func Format(d decimal.Decimal) string {
	return d.StringFixed(2)
}
