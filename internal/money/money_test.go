package money

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		token  string
		want   string
		wantOK bool
	}{
		{name: "plain", token: "123.45", want: "123.45", wantOK: true},
		{name: "thousands separator", token: "1,234.56", want: "1234.56", wantOK: true},
		{name: "multiple separators", token: "12,345,678.90", want: "12345678.90", wantOK: true},
		{name: "dollar prefix", token: "$1,234.56", want: "1234.56", wantOK: true},
		{name: "dollar prefix with space", token: "$ 1,234.56", want: "1234.56", wantOK: true},
		{name: "leading minus", token: "-123.45", want: "-123.45", wantOK: true},
		{name: "parenthesized", token: "(123.45)", want: "-123.45", wantOK: true},
		{name: "parenthesized with dollar", token: "($1,234.56)", want: "-1234.56", wantOK: true},
		{name: "surrounding whitespace", token: "  42.00  ", want: "42.00", wantOK: true},
		{name: "empty", token: "", wantOK: false},
		{name: "garbage", token: "abc", wantOK: false},
		{name: "lone parens", token: "()", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Parse(tt.token)
			if ok != tt.wantOK {
				t.Fatalf("Parse(%q) ok = %v, want %v", tt.token, ok, tt.wantOK)
			}
			if !ok {
				if !got.IsZero() {
					t.Errorf("Parse(%q) = %s on failure, want 0", tt.token, got)
				}
				return
			}
			want := decimal.RequireFromString(tt.want)
			if !got.Equal(want) {
				t.Errorf("Parse(%q) = %s, want %s", tt.token, got, want)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "0.00"},
		{"1234.5", "1234.50"},
		{"-0.1", "-0.10"},
		{"1172.83", "1172.83"},
	}

	for _, tt := range tests {
		if got := Format(decimal.RequireFromString(tt.in)); got != tt.want {
			t.Errorf("Format(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTokenRegexp(t *testing.T) {
	line := "Pizza 142 4,503.25 (modifier) 0.50"
	got := Token.FindAllString(line, -1)
	want := []string{"4,503.25", "0.50"}
	if len(got) != len(want) {
		t.Fatalf("Token matches = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Token match %d = %q, want %q", i, got[i], want[i])
		}
	}
}
