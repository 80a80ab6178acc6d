package extract

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/dvloznov/report-ledger/internal/money"
)

// Category is one expected row of a sectioned table. Synonyms cover singular
// and plural spellings and vendor renamings of the same row.
type Category struct {
	Name     string
	Synonyms []string
}

func (c Category) names() []string {
	return append([]string{c.Name}, c.Synonyms...)
}

// Table extracts a category → amount mapping from a bounded section of
// report text. The table's column convention is (units, gross): when a row
// carries two or more money tokens, the second one is the value.
type Table struct {
	Section    Section
	Categories []Category
}

// modifierMarker flags sub-item lines that repeat a category name but report
// modifier revenue, not the category gross.
const modifierMarker = "(modifier)"

// Extract locates the table's section and resolves every expected category.
// When the section cannot be found (or its span fails validation) the result
// is empty; when found, categories missing from it are simply absent from
// the returned map. Callers fill zeros for anything not present.
func (t Table) Extract(text string) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal)

	span, ok := t.Section.Locate(text)
	if !ok {
		return out
	}

	lines := strings.Split(span, "\n")
	tokens := strings.Fields(span)

	for _, cat := range t.Categories {
		if v, found := scanLines(lines, cat); found {
			out[cat.Name] = v
			continue
		}
		if v, found := scanTokens(tokens, cat); found {
			out[cat.Name] = v
		}
	}

	return out
}

// scanLines is the primary per-category pass: find a non-modifier line that
// starts with the category name and read its money tokens.
func scanLines(lines []string, cat Category) (decimal.Decimal, bool) {
	for _, line := range lines {
		if strings.Contains(line, modifierMarker) {
			continue
		}
		trimmed := strings.TrimSpace(line)
		if !lineNamesCategory(trimmed, cat) {
			continue
		}

		amounts := money.Token.FindAllString(trimmed, -1)
		switch {
		case len(amounts) >= 2:
			// (units, gross) columns: the second token is the gross value.
			if d, ok := money.Parse(amounts[1]); ok {
				return d, true
			}
		case len(amounts) == 1:
			if d, ok := money.Parse(amounts[0]); ok {
				return d, true
			}
		}
	}
	return decimal.Zero, false
}

// scanTokens is the fallback for text whose line structure was lost in
// reflow. It walks the token stream looking for the category name followed
// by an integer units token and then a money-formatted gross token, and
// accepts the value only when both conditions hold.
func scanTokens(tokens []string, cat Category) (decimal.Decimal, bool) {
	for _, name := range cat.names() {
		words := strings.Fields(name)
		if len(words) == 0 {
			continue
		}
		for i := 0; i+len(words)+1 < len(tokens); i++ {
			if !tokensMatch(tokens[i:i+len(words)], words) {
				continue
			}
			units := tokens[i+len(words)]
			gross := tokens[i+len(words)+1]
			if !money.Integer.MatchString(units) {
				continue
			}
			if !money.Token.MatchString(gross) {
				continue
			}
			if d, ok := money.Parse(gross); ok {
				return d, true
			}
		}
	}
	return decimal.Zero, false
}

func lineNamesCategory(line string, cat Category) bool {
	lower := strings.ToLower(line)
	for _, name := range cat.names() {
		if strings.HasPrefix(lower, strings.ToLower(name)) {
			return true
		}
	}
	return false
}

func tokensMatch(tokens, words []string) bool {
	for i := range words {
		if !strings.EqualFold(tokens[i], words[i]) {
			return false
		}
	}
	return true
}
