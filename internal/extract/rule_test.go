package extract

import (
	"testing"

	"github.com/shopspring/decimal"
)

func mustDec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	return decimal.RequireFromString(s)
}

func TestRuleExtract(t *testing.T) {
	tests := []struct {
		name string
		rule Rule
		text string
		want string
	}{
		{
			name: "simple match",
			rule: NewRule("Net Sales", `(?i)NET\s+SALES\s+\$?\s*([\d,]+\.\d{2})`),
			text: "NET SALES $ 1,234.56",
			want: "1234.56",
		},
		{
			name: "case insensitive",
			rule: NewRule("Net Sales", `(?i)NET\s+SALES\s+\$?\s*([\d,]+\.\d{2})`),
			text: "net sales 99.10",
			want: "99.10",
		},
		{
			name: "whitespace reflowed into newline",
			rule: NewRule("Net Sales", `(?i)NET\s+SALES\s+\$?\s*([\d,]+\.\d{2})`),
			text: "NET\nSALES\n  1,234.56",
			want: "1234.56",
		},
		{
			name: "no match defaults to zero",
			rule: NewRule("Net Sales", `(?i)NET\s+SALES\s+\$?\s*([\d,]+\.\d{2})`),
			text: "GROSS SALES 1,234.56",
			want: "0",
		},
		{
			name: "first non-empty capture group wins",
			rule: NewRule("UberEats",
				`(?i)UberEats\s+\$?\s*([\d,]+\.\d{2})|UBER\s+EATS\s+\$?\s*([\d,]+\.\d{2})`),
			text: "UBER EATS 321.09",
			want: "321.09",
		},
		{
			name: "alternative pattern list",
			rule: NewRule("Amex",
				`(?i)American\s+Express\s+\$?\s*([\d,]+\.\d{2})`,
				`(?i)AMEX\s+\$?\s*([\d,]+\.\d{2})`),
			text: "Amex 55.00",
			want: "55.00",
		},
		{
			name: "first matching pattern wins over later ones",
			rule: NewRule("Amex",
				`(?i)American\s+Express\s+\$?\s*([\d,]+\.\d{2})`,
				`(?i)AMEX\s+\$?\s*([\d,]+\.\d{2})`),
			text: "American Express 10.00\nAMEX 20.00",
			want: "10.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.rule.Extract(tt.text)
			if !got.Equal(mustDec(t, tt.want)) {
				t.Errorf("Extract() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestRuleExtractSum(t *testing.T) {
	rule := NewRule("REG", `(?i)REG\s+Reg\s+[\d.]+\s+([\d,]+\.\d{2})`)

	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "duplicate codes are summed",
			text: "REG Reg 80.0 1,000.00\nREG Reg 40.0 1,000.00",
			want: "2000.00",
		},
		{
			name: "single occurrence",
			text: "REG Reg 80.0 1,234.50",
			want: "1234.50",
		},
		{
			name: "absent code is zero",
			text: "OT OT 5.0 100.00",
			want: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rule.ExtractSum(tt.text)
			if !got.Equal(mustDec(t, tt.want)) {
				t.Errorf("ExtractSum() = %s, want %s", got, tt.want)
			}
		})
	}
}
