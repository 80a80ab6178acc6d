package journal

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dvloznov/report-ledger/internal/pos"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func record(values map[string]string) *pos.Record {
	converted := make(map[string]decimal.Decimal, len(values))
	for k, v := range values {
		converted[k] = dec(v)
	}
	return pos.NewRecord("FL008", converted)
}

func findLine(t *testing.T, j Journal, account string) Line {
	t.Helper()
	for _, l := range j.Lines {
		if l.Account == account {
			return l
		}
	}
	t.Fatalf("no line for account %q in %+v", account, j.Lines)
	return Line{}
}

func hasLine(j Journal, account string) bool {
	for _, l := range j.Lines {
		if l.Account == account {
			return true
		}
	}
	return false
}

func TestFromPOSScenarioMinimal(t *testing.T) {
	// Visa and Mastercard are tender rows: present on the record, excluded
	// from the balance subset, so the whole shortfall lands on Cash
	// Over/Short.
	rec := record(map[string]string{
		pos.FieldNetSales:         "1234.56",
		pos.FieldTaxes:            "61.73",
		pos.FieldVisa:             "500.00",
		pos.FieldMastercard:       "300.00",
		pos.FieldCreditCardsTotal: "800.00",
	})

	j := FromPOS(rec, "FL008", "8/31/26")

	require.Len(t, j.Lines, 3)

	sales := findLine(t, j, "Sales")
	assert.True(t, sales.Debit.Equal(dec("1234.56")))
	assert.True(t, sales.Credit.IsZero())

	tax := findLine(t, j, "State Sales Tax Payable")
	assert.True(t, tax.Credit.Equal(dec("61.73")))

	balancing := findLine(t, j, "Operating Expenses:Cash (Over)/Short")
	assert.True(t, balancing.Credit.Equal(dec("1172.83")),
		"balancing line = %s credit / %s debit", balancing.Credit, balancing.Debit)
	assert.True(t, balancing.Debit.IsZero())

	assert.True(t, j.Balanced)
	assert.True(t, j.TotalDebits().Equal(j.TotalCredits()))
}

func TestFromPOSBalanceLaw(t *testing.T) {
	// A fuller record: every qualifying field set, journal must balance
	// within tolerance after the balancing line.
	rec := record(map[string]string{
		pos.FieldNetSales:        "12345.67",
		pos.FieldTaxes:           "740.74",
		pos.FieldDeliveryFees:    "312.00",
		pos.FieldHouseSales:      "-250.00",
		pos.FieldHousePayments:   "75.00",
		pos.FieldGiftActivations: "40.00",
		pos.FieldThirdPartyTips:  "22.50",
		pos.FieldNonVouchered:    "15.00",
		pos.FieldCustomerCredits: "10.00",
		pos.FieldDiscounts:       "44.00",
		pos.FieldOrderDiscounts:  "31.00",
		pos.FieldComplimentary:   "9.99",
		pos.FieldGiftCard:        "12.00",
		pos.FieldPizza:           "8000.00",
		pos.FieldWings:           "900.00",
		pos.FieldCash:            "2000.00", // tender, excluded from balance
	})

	j := FromPOS(rec, "FL008", "8/31/26")

	assert.True(t, j.IsBalanced(), "debits %s vs credits %s", j.TotalDebits(), j.TotalCredits())
	assert.True(t, j.Balanced)
}

func TestFromPOSHouseAccountSign(t *testing.T) {
	t.Run("negative sales credit receivables", func(t *testing.T) {
		rec := record(map[string]string{pos.FieldHouseSales: "-123.45"})
		j := FromPOS(rec, "FL008", "8/31/26")

		line := findLine(t, j, "Accounts Receivable")
		assert.True(t, line.Credit.Equal(dec("123.45")), "credit = %s", line.Credit)
		assert.True(t, line.Debit.IsZero())
		assert.Equal(t, "Accounts Receivable", line.Name)
	})

	t.Run("positive payments debit receivables", func(t *testing.T) {
		rec := record(map[string]string{pos.FieldHousePayments: "75.00"})
		j := FromPOS(rec, "FL008", "8/31/26")

		line := findLine(t, j, "Accounts Receivable")
		assert.True(t, line.Debit.Equal(dec("75.00")))
		assert.True(t, line.Credit.IsZero())
	})
}

func TestFromPOSZeroFieldsEmitNoLines(t *testing.T) {
	j := FromPOS(record(nil), "FL008", "8/31/26")
	assert.Empty(t, j.Lines)
	assert.True(t, j.Balanced)
}

func TestFromPOSLineOrderAndAccounts(t *testing.T) {
	rec := record(map[string]string{
		pos.FieldNetSales:       "100.00",
		pos.FieldTaxes:          "6.00",
		pos.FieldOrderDiscounts: "5.00",
		pos.FieldPizza:          "90.00",
	})

	j := FromPOS(rec, "FL008", "8/31/26")

	var accounts []string
	for _, l := range j.Lines {
		accounts = append(accounts, l.Account)
	}
	want := []string{
		"Sales",
		"State Sales Tax Payable",
		"Third-Party Delivery Fees",
		"Prepared Food Sales:Sales - Pizza",
		"Operating Expenses:Cash (Over)/Short",
	}
	assert.Equal(t, want, accounts)

	// debits 105.00 vs credits 96.00: the 9.00 shortfall on the credit side
	// lands on Cash Over/Short as a credit.
	balancing := findLine(t, j, "Operating Expenses:Cash (Over)/Short")
	assert.True(t, balancing.Credit.Equal(dec("9.00")), "credit = %s", balancing.Credit)
	assert.True(t, balancing.Debit.IsZero())
	assert.True(t, j.IsBalanced())
}

func TestFromPOSNoBalancingLineWhenWithinTolerance(t *testing.T) {
	rec := record(map[string]string{
		pos.FieldNetSales: "100.00",
		pos.FieldPizza:    "100.00",
	})
	j := FromPOS(rec, "FL008", "8/31/26")
	assert.False(t, hasLine(j, "Operating Expenses:Cash (Over)/Short"))
	assert.True(t, j.Balanced)
}

func TestFromPOSTenderExcludedFromBalance(t *testing.T) {
	// Only tender rows set: no qualifying fields at all, so no lines and no
	// balancing entry despite non-zero data on the record.
	rec := record(map[string]string{
		pos.FieldVisa: "500.00",
		pos.FieldCash: "250.00",
	})
	j := FromPOS(rec, "FL008", "8/31/26")
	assert.Empty(t, j.Lines)
}
