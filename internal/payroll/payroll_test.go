package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/dvloznov/report-ledger/internal/accounts"
	"github.com/dvloznov/report-ledger/internal/document"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

const samplePayrollHeader = `Florida Pizza Operations LLC (12345)
Labor Distribution - Detail
Check Date: 08/15/2026
Pay Period: 08/01/2026 to 08/14/2026
`

const samplePayrollTotals = `
Report Totals
REG Reg 80.0 1,000.00
REG Reg 40.0 1,000.00
OT OT 5.5 210.00
BONUS Bonus 1.0 500.00
HOLIDAY Holiday 8.0 120.00
FITW 310.00
MED 46.40
SS 198.40
MED-R 46.40
SS-R 198.40
FLSUI 32.00
FUTA 12.00
MDCL Medical 80.00
MDCLP MDCLP 40.00
MILES MILES -25.50
EE Net 2,115.70
Paylocity Corporation
`

func payrollDocs() []document.Document {
	return []document.Document{
		document.New("fl008 payroll.txt", samplePayrollHeader),
		document.New("page2.txt", samplePayrollTotals),
	}
}

func TestAggregate(t *testing.T) {
	rec := Aggregate(payrollDocs(), accounts.Default())

	// Duplicate-code summation: two REG lines sum, never overwrite.
	assert.True(t, rec.Earnings[EarnReg].Equal(dec("2000.00")), "REG = %s", rec.Earnings[EarnReg])
	assert.True(t, rec.Earnings[EarnOT].Equal(dec("210.00")))
	assert.True(t, rec.Earnings[EarnBonus].Equal(dec("500.00")))
	assert.True(t, rec.Earnings[EarnHoliday].Equal(dec("120.00")))
	assert.True(t, rec.Earnings[EarnDraw].IsZero())

	assert.True(t, rec.EmployeeTaxes[TaxFITW].Equal(dec("310.00")))
	assert.True(t, rec.EmployerTaxes[EmployerTaxMed].Equal(dec("46.40")))
	assert.True(t, rec.EmployerTaxes[EmployerTaxFUTA].Equal(dec("12.00")))

	assert.True(t, rec.Deductions[DeductMedical].Equal(dec("80.00")))
	assert.True(t, rec.Deductions[DeductMedicalPretax].Equal(dec("40.00")))
	// Negative sign on the mileage line is report formatting; the amount is
	// a reimbursement and lands positive.
	assert.True(t, rec.Deductions[DeductMiles].Equal(dec("25.50")))

	assert.True(t, rec.NetPay.Equal(dec("2115.70")), "NetPay = %s", rec.NetPay)
}

func TestAggregateDerivedTotals(t *testing.T) {
	rec := Aggregate(payrollDocs(), accounts.Default())

	sum := func(group map[string]decimal.Decimal) decimal.Decimal {
		total := decimal.Zero
		for _, v := range group {
			total = total.Add(v)
		}
		return total
	}

	assert.True(t, rec.TotalEarnings.Equal(sum(rec.Earnings)),
		"TotalEarnings = %s, group sum = %s", rec.TotalEarnings, sum(rec.Earnings))
	assert.True(t, rec.TotalEmployeeTax.Equal(sum(rec.EmployeeTaxes)))
	assert.True(t, rec.TotalEmployerTax.Equal(sum(rec.EmployerTaxes)))
	assert.True(t, rec.TotalDeductions.Equal(sum(rec.Deductions)))

	assert.True(t, rec.TotalEarnings.Equal(dec("2830.00")))
	assert.True(t, rec.TotalEmployerTax.Equal(dec("288.80")))
}

func TestAggregateMetadata(t *testing.T) {
	rec := Aggregate(payrollDocs(), accounts.Default())

	assert.Equal(t, "FL008", rec.Location)
	assert.Equal(t, "Fifth Third Checking 4681", rec.BankAccount)
	assert.True(t, rec.BankKnown)
	assert.Equal(t, "Florida Pizza Operations LLC", rec.Company)
	assert.Equal(t, "08/15/2026", rec.CheckDate)
	assert.Equal(t, "08/01/2026 to 08/14/2026", rec.PayPeriod)
}

func TestAggregateMissingSection(t *testing.T) {
	docs := []document.Document{
		document.New("fl008.txt", "no totals section in this text"),
	}
	rec := Aggregate(docs, accounts.Default())

	assert.True(t, rec.TotalEarnings.IsZero())
	assert.True(t, rec.TotalDeductions.IsZero())
	assert.True(t, rec.NetPay.IsZero())
	for code, v := range rec.Earnings {
		assert.True(t, v.IsZero(), "earning %s = %s, want 0", code, v)
	}
	// Location metadata still resolves; the section loss only zeroes totals.
	assert.Equal(t, "FL008", rec.Location)
}

func TestAggregateUnknownLocation(t *testing.T) {
	docs := []document.Document{
		document.New("fl999.txt", samplePayrollTotals),
	}
	rec := Aggregate(docs, accounts.Default())

	assert.Equal(t, accounts.DefaultAccount, rec.BankAccount)
	assert.False(t, rec.BankKnown)
}

func TestAggregateNoDocuments(t *testing.T) {
	rec := Aggregate(nil, accounts.Default())

	assert.Empty(t, rec.Location)
	assert.True(t, rec.NetPay.IsZero())
	assert.NotNil(t, rec.Earnings)
}
