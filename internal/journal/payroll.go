package journal

import (
	"github.com/shopspring/decimal"

	"github.com/dvloznov/report-ledger/internal/payroll"
)

// Ledger account names for payroll journals.
const (
	acctSalariesWages    = "Payroll Expenses:Salaries & Wages:Salaries & Wages"
	acctMgmtBonuses      = "Payroll Expenses:Salaries & Wages:Management Bonuses"
	acctGuaranteedPay    = "Payroll Expenses:Guaranteed Payments:Guaranteed Payments"
	acctGuaranteedBonus  = "Payroll Expenses:Guaranteed Payments:Guaranteed Payments - Bonus"
	acctPayrollTaxes     = "Payroll Expenses:Payroll Taxes"
	acctMileage          = "Delivery Income:Mileage Reimbursement"
	acctMedicalInsurance = "Insurance:Medical Insurance"
)

// FromPayroll maps a payroll record into journal lines. When net pay or the
// settlement account is missing the journal is still emitted but flagged
// unbalanced — that is a business-data problem surfaced to the operator,
// never corrected by inventing amounts.
func FromPayroll(rec *payroll.Record, journalNo, journalDate string) Journal {
	b := &builder{description: "To record payroll"}

	salaries := sumCodes(rec.Earnings,
		payroll.EarnReg, payroll.EarnOT, payroll.EarnHoliday, payroll.EarnRetro, payroll.EarnCash)
	b.debit(acctSalariesWages, salaries, "")

	b.debit(acctMgmtBonuses, rec.Earnings[payroll.EarnBonus], "")
	b.debit(acctGuaranteedPay, rec.Earnings[payroll.EarnDraw], "")
	b.debit(acctGuaranteedBonus, rec.Earnings[payroll.EarnDBonus], "")

	employerTaxes := sumCodes(rec.EmployerTaxes,
		payroll.EmployerTaxMed, payroll.EmployerTaxSS, payroll.EmployerTaxFLSUI, payroll.EmployerTaxFUTA)
	b.debit(acctPayrollTaxes, employerTaxes, "")

	// Mileage is a reimbursement paid out to drivers, not a withheld
	// liability, so it debits against delivery income.
	b.debit(acctMileage, rec.Deductions[payroll.DeductMiles], "")

	medical := sumCodes(rec.Deductions, payroll.DeductMedical, payroll.DeductMedicalPretax)
	b.credit(acctMedicalInsurance, medical, "")

	if rec.NetPay.IsPositive() && rec.BankAccount != "" {
		b.credit(rec.BankAccount, rec.NetPay, "")
	}

	j := Journal{No: journalNo, Date: journalDate, Lines: b.lines}
	j.Balanced = j.IsBalanced()
	return j
}

func sumCodes(group map[string]decimal.Decimal, codes ...string) decimal.Decimal {
	total := decimal.Zero
	for _, c := range codes {
		total = total.Add(group[c])
	}
	return total
}
