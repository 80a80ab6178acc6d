// Package payroll aggregates Paylocity "Labor Distribution - Detail" report
// text into one structured record per location. A multi-page report may be
// split across several source files; the aggregator concatenates them and
// works off the single "Report Totals" section.
package payroll

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/dvloznov/report-ledger/internal/accounts"
	"github.com/dvloznov/report-ledger/internal/document"
	"github.com/dvloznov/report-ledger/internal/extract"
	"github.com/dvloznov/report-ledger/internal/money"
)

// Earning, tax and deduction codes as they appear on the report. Each group
// is a fixed code → amount mapping on the record.
const (
	EarnReg     = "REG"
	EarnOT      = "OT"
	EarnBonus   = "BONUS"
	EarnCash    = "CASH"
	EarnDBonus  = "DBONU"
	EarnDraw    = "DRAW"
	EarnHoliday = "HOLIDAY"
	EarnRetro   = "RETRO"

	TaxFITW = "FITW"
	TaxMed  = "MED"
	TaxSS   = "SS"
	TaxFL   = "FL"

	EmployerTaxMed   = "MED-R"
	EmployerTaxSS    = "SS-R"
	EmployerTaxFLSUI = "FLSUI"
	EmployerTaxFUTA  = "FUTA"

	DeductMedical        = "MDCL"
	DeductMedicalPretax  = "MDCLP"
	DeductDental         = "DNTL"
	DeductDentalPretax   = "DNTLP"
	DeductVision         = "VISON"
	DeductVisionPretax   = "VISNP"
	DeductMiles          = "MILES"
)

// Record is one location's aggregated payroll report. Derived totals always
// equal the sum of their group's amounts.
type Record struct {
	Location    string
	BankAccount string
	BankKnown   bool

	Company   string
	CheckDate string
	PayPeriod string

	Earnings      map[string]decimal.Decimal
	EmployeeTaxes map[string]decimal.Decimal
	EmployerTaxes map[string]decimal.Decimal
	Deductions    map[string]decimal.Decimal

	TotalEarnings    decimal.Decimal
	TotalEmployeeTax decimal.Decimal
	TotalEmployerTax decimal.Decimal
	TotalDeductions  decimal.Decimal

	NetPay decimal.Decimal
}

// reportTotals bounds the "Report Totals" section, terminated by the vendor
// footer or end-of-text.
var reportTotals = extract.Section{
	Start:  regexp.MustCompile(`(?i)Report\s+Totals`),
	End:    regexp.MustCompile(`(?i)Paylocity\s+Corporation`),
	MinLen: 1,
}

// A code can legitimately appear once per department inside Report Totals,
// so every group rule is summed over all occurrences, not first-match.
var (
	earningRules = []extract.Rule{
		extract.NewRule(EarnReg, `(?i)REG\s+Reg\s+[\d.]+\s+([\d,]+\.\d{2})`),
		extract.NewRule(EarnOT, `(?i)OT\s+OT\s+[\d.]+\s+([\d,]+\.\d{2})`),
		extract.NewRule(EarnBonus, `(?i)BONUS\s+Bonus\s+[\d.]+\s+([\d,]+\.\d{2})`),
		extract.NewRule(EarnCash, `(?i)CASH\s+CASH\s+[\d.]+\s+([\d,]+\.\d{2})`),
		extract.NewRule(EarnDBonus, `(?i)DBONU\s+dbonu\s+[\d.]+\s+([\d,]+\.\d{2})`),
		extract.NewRule(EarnDraw, `(?i)DRAW\s+DRAW\s+[\d.]+\s+([\d,]+\.\d{2})`),
		extract.NewRule(EarnHoliday, `(?i)HOLIDAY\s+Holiday\s+[\d.]+\s+([\d,]+\.\d{2})`),
		extract.NewRule(EarnRetro, `(?i)RETRO\s+Retro\s+[\d.]+\s+([\d,]+\.\d{2})`),
	}

	employeeTaxRules = []extract.Rule{
		extract.NewRule(TaxFITW, `(?i)FITW\s+([\d,]+\.\d{2})`),
		extract.NewRule(TaxMed, `(?i)\bMED\s+([\d,]+\.\d{2})`),
		extract.NewRule(TaxSS, `(?i)\bSS\s+([\d,]+\.\d{2})`),
		extract.NewRule(TaxFL, `(?i)\bFL\s+([\d,]+\.\d{2})`),
	}

	employerTaxRules = []extract.Rule{
		extract.NewRule(EmployerTaxMed, `(?i)MED-R\s+([\d,]+\.\d{2})`),
		extract.NewRule(EmployerTaxSS, `(?i)SS-R\s+([\d,]+\.\d{2})`),
		extract.NewRule(EmployerTaxFLSUI, `(?i)FLSUI\s+([\d,]+\.\d{2})`),
		extract.NewRule(EmployerTaxFUTA, `(?i)FUTA\s+([\d,]+\.\d{2})`),
	}

	deductionRules = []extract.Rule{
		extract.NewRule(DeductMedical, `(?i)MDCL\s+Medical\s+([\d,]+\.\d{2})`),
		extract.NewRule(DeductMedicalPretax, `(?i)MDCLP\s+MDCLP\s+([\d,]+\.\d{2})`),
		extract.NewRule(DeductDental, `(?i)DNTL\s+Dental\s+([\d,]+\.\d{2})`),
		extract.NewRule(DeductDentalPretax, `(?i)DNTLP\s+DNTLP\s+([\d,]+\.\d{2})`),
		extract.NewRule(DeductVision, `(?i)VISON\s+Vision\s+([\d,]+\.\d{2})`),
		extract.NewRule(DeductVisionPretax, `(?i)VISNP\s+VISNP\s+([\d,]+\.\d{2})`),
		extract.NewRule(DeductMiles, `(?i)MILES\s+MILES\s+-?([\d,]+\.\d{2})`),
	}
)

// Header metadata patterns, single-shot over the first document only. These
// are operator-facing metadata, not part of the balancing contract, and each
// defaults to empty when absent.
var (
	companyPattern   = regexp.MustCompile(`(.+?)\s+\(\d+\)`)
	checkDatePattern = regexp.MustCompile(`(?i)Check\s+Date:\s+(\d{2}/\d{2}/\d{4})`)
	payPeriodPattern = regexp.MustCompile(`(?i)Pay\s+Period:\s+([\d/]+\s+to\s+[\d/]+)`)
	netPayPattern    = regexp.MustCompile(`(?i)EE\s+Net\s+([\d,]+\.\d{2})`)
)

// Aggregate combines the given documents into one payroll record. A missing
// Report Totals section yields a zeroed record, not an error — downstream
// presentation tolerates all-zero totals.
func Aggregate(docs []document.Document, table *accounts.Table) *Record {
	rec := &Record{
		Earnings:      make(map[string]decimal.Decimal, len(earningRules)),
		EmployeeTaxes: make(map[string]decimal.Decimal, len(employeeTaxRules)),
		EmployerTaxes: make(map[string]decimal.Decimal, len(employerTaxRules)),
		Deductions:    make(map[string]decimal.Decimal, len(deductionRules)),
	}
	fillZero(rec.Earnings, earningRules)
	fillZero(rec.EmployeeTaxes, employeeTaxRules)
	fillZero(rec.EmployerTaxes, employerTaxRules)
	fillZero(rec.Deductions, deductionRules)

	if len(docs) > 0 {
		first := docs[0]
		rec.Location = first.StoreID
		rec.BankAccount, rec.BankKnown = table.Lookup(rec.Location)

		if m := companyPattern.FindStringSubmatch(first.Text); m != nil {
			rec.Company = strings.TrimSpace(m[1])
		}
		if m := checkDatePattern.FindStringSubmatch(first.Text); m != nil {
			rec.CheckDate = m[1]
		}
		if m := payPeriodPattern.FindStringSubmatch(first.Text); m != nil {
			rec.PayPeriod = m[1]
		}
	}

	texts := make([]string, 0, len(docs))
	for _, d := range docs {
		texts = append(texts, d.Text)
	}
	fullText := strings.Join(texts, "\n\n")

	section, ok := reportTotals.Locate(fullText)
	if !ok {
		return rec
	}

	rec.TotalEarnings = sumGroup(rec.Earnings, earningRules, section)
	rec.TotalEmployeeTax = sumGroup(rec.EmployeeTaxes, employeeTaxRules, section)
	rec.TotalEmployerTax = sumGroup(rec.EmployerTaxes, employerTaxRules, section)
	rec.TotalDeductions = sumGroup(rec.Deductions, deductionRules, section)

	if m := netPayPattern.FindStringSubmatch(section); m != nil {
		if d, parsed := money.Parse(m[1]); parsed {
			rec.NetPay = d
		}
	}

	return rec
}

func fillZero(group map[string]decimal.Decimal, rules []extract.Rule) {
	for _, r := range rules {
		group[r.Field] = decimal.Zero
	}
}

func sumGroup(group map[string]decimal.Decimal, rules []extract.Rule, section string) decimal.Decimal {
	total := decimal.Zero
	for _, r := range rules {
		v := r.ExtractSum(section)
		group[r.Field] = v
		total = total.Add(v)
	}
	return total
}
