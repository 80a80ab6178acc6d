// Package journal synthesizes balanced double-entry journals from aggregated
// report records. Synthesis is a pure function of the record: no hidden
// state, and lines are immutable once emitted.
package journal

import "github.com/shopspring/decimal"

// Tolerance is the maximum debit/credit difference a journal may carry and
// still count as balanced, in currency units.
var Tolerance = decimal.NewFromFloat(0.01)

// Line is one debit-or-credit row tied to one ledger account. At most one of
// Debit and Credit is non-zero.
type Line struct {
	Account     string
	Debit       decimal.Decimal
	Credit      decimal.Decimal
	Description string
	Name        string // optional counterparty
}

// Journal is an ordered sequence of lines under one journal number and date.
// Balanced reports whether debits and credits matched within Tolerance at
// synthesis time; an unbalanced journal is still emitted (it signals a
// business-data problem the operator must see, never one to paper over).
type Journal struct {
	No       string
	Date     string
	Lines    []Line
	Balanced bool
}

// TotalDebits sums the debit side of all lines.
func (j Journal) TotalDebits() decimal.Decimal {
	total := decimal.Zero
	for _, l := range j.Lines {
		total = total.Add(l.Debit)
	}
	return total
}

// TotalCredits sums the credit side of all lines.
func (j Journal) TotalCredits() decimal.Decimal {
	total := decimal.Zero
	for _, l := range j.Lines {
		total = total.Add(l.Credit)
	}
	return total
}

// IsBalanced reports whether total debits equal total credits within
// Tolerance.
func (j Journal) IsBalanced() bool {
	diff := j.TotalCredits().Sub(j.TotalDebits()).Abs()
	return diff.LessThanOrEqual(Tolerance)
}

// builder accumulates lines with a shared description, skipping the
// zero-amount rows that addLine-style helpers would otherwise emit.
type builder struct {
	description string
	lines       []Line
}

func (b *builder) debit(account string, amount decimal.Decimal, name string) {
	if !amount.IsPositive() {
		return
	}
	b.lines = append(b.lines, Line{
		Account:     account,
		Debit:       amount,
		Description: b.description,
		Name:        name,
	})
}

func (b *builder) credit(account string, amount decimal.Decimal, name string) {
	if !amount.IsPositive() {
		return
	}
	b.lines = append(b.lines, Line{
		Account:     account,
		Credit:      amount,
		Description: b.description,
		Name:        name,
	})
}
