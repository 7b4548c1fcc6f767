package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/zenithhr/payroll-backend-go/internal/domain/employee"
	"github.com/zenithhr/payroll-backend-go/internal/domain/payroll"
)

var oneHundred = decimal.NewFromInt(100)

// composeEarnings builds the itemized earnings breakdown for the period.
//
// Named monthly allowances are prorated from their full configured amounts
// against the same working/worked days as the basic salary. Overtime pay,
// bonuses, incentives and period-report custom allowances are already
// period-scoped and enter verbatim. Configured custom allowances follow the
// fixed/percentage split: fixed amounts are prorated, percentages apply to
// the prorated basic.
func composeEarnings(comps employee.SalaryComponents, basicProrated decimal.Decimal, req payroll.CalculatePayrollRequest) map[string]decimal.Decimal {
	earnings := make(map[string]decimal.Decimal)

	named := map[string]decimal.Decimal{
		"hra":       comps.HRA,
		"transport": comps.Transport,
		"meal":      comps.Meal,
		"medical":   comps.Medical,
	}
	for name, monthly := range named {
		if monthly.IsPositive() {
			earnings[name] = prorate(monthly, req.WorkingDays, req.DaysWorked)
		}
	}

	if req.OvertimeHours.IsPositive() && comps.OvertimeRate.IsPositive() {
		earnings["overtime_pay"] = req.OvertimeHours.Mul(comps.OvertimeRate)
	}
	if req.Bonuses.IsPositive() {
		earnings["bonus"] = req.Bonuses
	}
	if req.Incentives.IsPositive() {
		earnings["incentives"] = req.Incentives
	}

	for _, c := range req.CustomAllowances {
		earnings[c.Name] = c.Amount
	}

	for _, c := range comps.Custom {
		switch c.Kind {
		case employee.ComponentKindPercentage:
			earnings[c.Name] = basicProrated.Mul(c.Amount).Div(oneHundred)
		default:
			earnings[c.Name] = prorate(c.Amount, req.WorkingDays, req.DaysWorked)
		}
	}

	return earnings
}
