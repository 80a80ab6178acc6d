package journal

import (
	"github.com/shopspring/decimal"

	"github.com/dvloznov/report-ledger/internal/pos"
)

// Ledger account names for point-of-sale journals. These match the chart of
// accounts of the importing ledger system verbatim.
const (
	acctSales          = "Sales"
	acctSalesTax       = "State Sales Tax Payable"
	acctDeliveryIncome = "Delivery Income"
	acctReceivable     = "Accounts Receivable"
	acctGiftCards      = "Gift Cards"
	acctDoorDashDrive  = "Third-Party Delivery Fees:Door Dash Drive"
	acctThirdPartyFees = "Third-Party Delivery Fees"
	acctCashOverShort  = "Operating Expenses:Cash (Over)/Short"

	acctNonVouchered    = "Discounts & Comps:Non-Vouchered"
	acctCustomerCredits = "Discounts & Comps:Customer Credits"
	acctDiscounts       = "Discounts & Comps:Discounts"
	acctComplimentary   = "Discounts & Comps:Complimentary"
)

// categoryAccounts maps each item-category row to its prepared-food-sales
// sub-account, in emission order.
var categoryAccounts = []struct {
	field   string
	account string
}{
	{pos.FieldBeverage, "Prepared Food Sales:Sales - Pop"},
	{pos.FieldCatering, "Prepared Food Sales:Sales - Catering"},
	{pos.FieldDessert, "Prepared Food Sales:Sales - Dessert"},
	{pos.FieldJetsBread, "Prepared Food Sales:Sales - Jet Bread"},
	{pos.FieldPizza, "Prepared Food Sales:Sales - Pizza"},
	{pos.FieldSalad, "Prepared Food Sales:Sales - Salads"},
	{pos.FieldSandwiches, "Prepared Food Sales:Sales - Subs"},
	{pos.FieldSides, "Prepared Food Sales:Sales - Sides"},
	{pos.FieldWings, "Prepared Food Sales:Sales - Wings"},
}

// FromPOS maps a point-of-sale record into journal lines in the fixed rule
// order of the importing ledger, then appends the Cash Over/Short balancing
// line that absorbs POS rounding and untracked tender types.
func FromPOS(rec *pos.Record, journalNo, journalDate string) Journal {
	b := &builder{description: "To record sales"}

	b.debit(acctSales, rec.Get(pos.FieldNetSales), "")
	b.credit(acctSalesTax, rec.Get(pos.FieldTaxes), "")
	b.credit(acctDeliveryIncome, rec.Get(pos.FieldDeliveryFees), "")

	// House Account Sales is stored negative when it represents sales on
	// account; only then does it credit receivables. A positive value on
	// that row would be a payment, which the payments row already covers.
	if houseSales := rec.Get(pos.FieldHouseSales); houseSales.IsNegative() {
		b.credit(acctReceivable, houseSales.Abs(), acctReceivable)
	}
	b.debit(acctReceivable, rec.Get(pos.FieldHousePayments), acctReceivable)

	b.credit(acctGiftCards, rec.Get(pos.FieldGiftActivations), "")
	b.debit(acctDoorDashDrive, rec.Get(pos.FieldThirdPartyTips), "")

	b.debit(acctNonVouchered, rec.Get(pos.FieldNonVouchered), "")
	b.debit(acctCustomerCredits, rec.Get(pos.FieldCustomerCredits), "")
	b.debit(acctDiscounts, rec.Get(pos.FieldDiscounts), "")
	// Order discounts are third-party platform fees by convention, not part
	// of the Discounts & Comps group.
	b.debit(acctThirdPartyFees, rec.Get(pos.FieldOrderDiscounts), "")
	b.debit(acctComplimentary, rec.Get(pos.FieldComplimentary), "")

	// Gift card tender is a redemption against the liability.
	b.debit(acctGiftCards, rec.Get(pos.FieldGiftCard), "")

	for _, ca := range categoryAccounts {
		b.credit(ca.account, rec.Get(ca.field), "")
	}

	// The balance check runs over a fixed subset of fields — tender totals
	// and summary rows are excluded by the ledger's convention. This list
	// must not be "generalized": changing it changes financial output.
	debits := posDebitTotal(rec)
	credits := posCreditTotal(rec)
	diff := credits.Sub(debits)

	if diff.Abs().GreaterThan(Tolerance) {
		if diff.IsPositive() {
			b.debit(acctCashOverShort, diff, "")
		} else {
			b.credit(acctCashOverShort, diff.Abs(), "")
		}
	}

	j := Journal{No: journalNo, Date: journalDate, Lines: b.lines}
	j.Balanced = j.IsBalanced()
	return j
}

// posDebitTotal sums the debit-side balance subset: net sales, house account
// payments, third-party tips, the five discount/comp fields, and gift card
// redemptions.
func posDebitTotal(rec *pos.Record) decimal.Decimal {
	total := decimal.Zero
	for _, f := range []string{
		pos.FieldNetSales,
		pos.FieldHousePayments,
		pos.FieldThirdPartyTips,
		pos.FieldNonVouchered,
		pos.FieldCustomerCredits,
		pos.FieldDiscounts,
		pos.FieldOrderDiscounts,
		pos.FieldComplimentary,
		pos.FieldGiftCard,
	} {
		total = total.Add(rec.Get(f))
	}
	return total
}

// posCreditTotal sums the credit-side balance subset: taxes, delivery fees,
// house account sales (absolute value of the negative), gift card
// activations, and the nine item categories.
func posCreditTotal(rec *pos.Record) decimal.Decimal {
	total := decimal.Zero
	for _, f := range []string{
		pos.FieldTaxes,
		pos.FieldDeliveryFees,
		pos.FieldGiftActivations,
	} {
		total = total.Add(rec.Get(f))
	}
	if houseSales := rec.Get(pos.FieldHouseSales); houseSales.IsNegative() {
		total = total.Add(houseSales.Abs())
	}
	for _, ca := range categoryAccounts {
		total = total.Add(rec.Get(ca.field))
	}
	return total
}
