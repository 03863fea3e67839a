package payroll

import "github.com/shopspring/decimal"

// workingDaysPerMonth is the assumed standard used to turn a monthly base
// salary into a per-day rate.
var workingDaysPerMonth = decimal.NewFromInt(22)

// computeNetPay prices the accumulated work-day fractions at the employee's
// daily rate. Two-decimal banker's rounding, consistent with the attendance
// metric derivation.
func computeNetPay(totalWorkDays, baseSalary decimal.Decimal) decimal.Decimal {
	return totalWorkDays.Mul(baseSalary.Div(workingDaysPerMonth)).RoundBank(2)
}
