// Package pos aggregates SpeedLine point-of-sale report text into one
// structured record per store. Every record carries exactly the fixed row
// schema below — absent fields are zero, never missing, and no extra fields
// are ever introduced.
package pos

import "github.com/dvloznov/report-ledger/internal/extract"

// Schema row names. The journal synthesizer and renderers key on these
// exact strings, so they match the source report wording verbatim.
const (
	FieldNetSales        = "Net Sales"
	FieldTaxes           = "Taxes"
	FieldDeliveryFees    = "Delivery Fees"
	FieldHouseSales      = "House Account Sales"
	FieldHousePayments   = "House Account Payments"
	FieldGiftActivations = "Gift Card Activations and Add"
	FieldThirdPartyTips  = "Third-Party Delivery Tips"

	FieldNonVouchered    = "Non Vouchered Customer Credits"
	FieldCustomerCredits = "Customer Credits"
	FieldDiscounts       = "Discounts"
	FieldOrderDiscounts  = "Order Discounts"
	FieldComplimentary   = "Complimentary"

	FieldVisa            = "Visa"
	FieldMastercard      = "Mastercard"
	FieldDiscover        = "Discover"
	FieldAmex            = "Amex"
	FieldCash            = "Cash"
	FieldUberEats        = "UberEats"
	FieldDoorDash        = "Door Dash"
	FieldGrubhub         = "Grubhub"
	FieldEZCater         = "EZ CATER"
	FieldGiftCard        = "Gift Card"
	FieldTextOrderCredit = "Text Order Credit"
	FieldSquare          = "Square"
	FieldOnlineOrdering  = "Online Ordering"
	FieldCheck           = "Check"
	FieldJetBotPrepaid   = "JetBot Prepaid"

	FieldBeverage   = "Beverage"
	FieldCatering   = "Catering"
	FieldDessert    = "Dessert"
	FieldJetsBread  = "Jet's Bread"
	FieldPizza      = "Pizza"
	FieldSalad      = "Salad"
	FieldSandwiches = "Sandwiches"
	FieldSides      = "Sides"
	FieldWings      = "Wings"

	FieldCreditCardsTotal = "Credit Cards Total"
	FieldFBTotal          = "F&B Total"
)

// rowOrder is the fixed, ordered row schema every record reports. The
// consolidated comparison table renders rows in exactly this order.
var rowOrder = []string{
	FieldNetSales, FieldTaxes, FieldDeliveryFees,

	FieldHouseSales, FieldHousePayments,
	FieldGiftActivations,
	FieldThirdPartyTips,

	FieldNonVouchered,
	FieldCustomerCredits,
	FieldDiscounts,
	FieldOrderDiscounts,
	FieldComplimentary,

	FieldVisa, FieldMastercard, FieldDiscover, FieldAmex, FieldCash,
	FieldUberEats, FieldDoorDash, FieldGrubhub, FieldEZCater,
	FieldGiftCard, FieldTextOrderCredit, FieldSquare, FieldOnlineOrdering, FieldCheck, FieldJetBotPrepaid,

	FieldBeverage, FieldCatering, FieldDessert, FieldJetsBread, FieldPizza,
	FieldSalad, FieldSandwiches, FieldSides, FieldWings,

	FieldCreditCardsTotal, FieldFBTotal,
}

// RowOrder returns a copy of the schema row order for downstream rendering.
func RowOrder() []string {
	out := make([]string, len(rowOrder))
	copy(out, rowOrder)
	return out
}

// cardFields are the tender rows summed into Credit Cards Total.
var cardFields = []string{FieldVisa, FieldMastercard, FieldDiscover, FieldAmex}

// categoryFields are the item-category rows summed into F&B Total.
var categoryFields = []string{
	FieldBeverage, FieldCatering, FieldDessert, FieldJetsBread, FieldPizza,
	FieldSalad, FieldSandwiches, FieldSides, FieldWings,
}

// Raw extraction fields that feed a schema row without being one themselves:
// Delivery Charges and Min Charges combine into the Delivery Fees row.
const (
	rawDeliveryCharges = "Delivery Charges"
	rawMinCharges      = "Min Charges"
)

// fieldRules drive the pattern field extractor for everything outside the
// item-category table. Alternative capture groups and alternative patterns
// absorb vendor wording drift (e.g. "UberEats" vs "UBER EATS").
var fieldRules = []extract.Rule{
	extract.NewRule(FieldNetSales, `(?i)NET\s+SALES\s+\$?\s*([\d,]+\.\d{2})`),
	extract.NewRule(FieldTaxes, `(?i)Taxes?\s+\$?\s*([\d,]+\.\d{2})`),
	extract.NewRule(rawDeliveryCharges, `(?i)Delivery\s+Charges\s+\d+\s+\$?\s*([\d,]+\.\d{2})`),
	extract.NewRule(rawMinCharges, `(?i)Min\s+Charges\s+\d+\s+\$?\s*([\d,]+\.\d{2})`),
	extract.NewRule(FieldHousePayments, `(?i)House\s+Account\s+Payments\s+\$?\s*([\d,]+\.\d{2})`),
	extract.NewRule(FieldGiftActivations, `(?i)Gift\s+Card\s+Activations?\s+and\s+Add\s+\$?\s*([\d,]+\.\d{2})`),
	extract.NewRule(FieldThirdPartyTips, `(?i)Third[-\s]Party\s+Delivery\s+Tips\s+\$?\s*([\d,]+\.\d{2})`),

	extract.NewRule(FieldNonVouchered, `(?i)Non[-\s]?Vouchered\s+\d+\s+\$?\s*([\d,]+\.\d{2})`),
	extract.NewRule(FieldCustomerCredits, `(?i)Customer\s+Credits\s+\d+\s+\$?\s*([\d,]+\.\d{2})`),
	extract.NewRule(FieldDiscounts, `(?im)(?:^|\s)Discounts\s+\d+\s+\$?\s*([\d,]+\.\d{2})`),
	extract.NewRule(FieldOrderDiscounts, `(?i)Order\s+Discounts\s+\d+\s+\$?\s*([\d,]+\.\d{2})`),
	extract.NewRule(FieldComplimentary, `(?i)Complimentary\s+\d+\s+\$?\s*([\d,]+\.\d{2})`),

	extract.NewRule(FieldCash, `(?i)\bCash\s+\$?\s*([\d,]+\.\d{2})`),
	extract.NewRule(FieldVisa, `(?i)\bVisa\s+\$?\s*([\d,]+\.\d{2})`),
	extract.NewRule(FieldUberEats, `(?i)UberEats\s+\$?\s*([\d,]+\.\d{2})|UBER\s+EATS\s+\$?\s*([\d,]+\.\d{2})`),
	extract.NewRule(FieldAmex, `(?i)American\s+Express\s+\$?\s*([\d,]+\.\d{2})|AMEX\s+\$?\s*([\d,]+\.\d{2})`),
	extract.NewRule(FieldGrubhub, `(?i)Grub\s?Hub\s+\$?\s*([\d,]+\.\d{2})`),
	extract.NewRule(FieldDoorDash, `(?i)Door\s*Dash\s+\$?\s*([\d,]+\.\d{2})`),
	extract.NewRule(FieldDiscover, `(?i)\bDiscover\s+\$?\s*([\d,]+\.\d{2})`),
	extract.NewRule(FieldMastercard, `(?i)Master\s?Card\s+\$?\s*([\d,]+\.\d{2})`),
	extract.NewRule(FieldTextOrderCredit, `(?i)Text\s+Order\s+Credit\s+\$?\s*([\d,]+\.\d{2})`),
	extract.NewRule(FieldOnlineOrdering, `(?i)Online\s+Ordering\s+\$?\s*([\d,]+\.\d{2})`),
	extract.NewRule(FieldEZCater, `(?i)EZ\s+CATER\s+\$?\s*([\d,]+\.\d{2})`),
	extract.NewRule(FieldGiftCard, `(?i)\bGift\s+\$?\s*([\d,]+\.\d{2})`),
	extract.NewRule(FieldSquare, `(?i)\bSquare\s+\$?\s*([\d,]+\.\d{2})`),
	extract.NewRule(FieldCheck, `(?i)\bCheck\s+\$?\s*([\d,]+\.\d{2})`),
	extract.NewRule(FieldJetBotPrepaid, `(?i)JetBot\s+Prepaid\s+\$?\s*([\d,]+\.\d{2})`),
}
