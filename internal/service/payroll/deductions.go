package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/zenithhr/payroll-backend-go/internal/domain/employee"
	"github.com/zenithhr/payroll-backend-go/internal/domain/payroll"
)

var (
	pfRate         = decimal.NewFromFloat(0.12)
	pfCap          = decimal.NewFromInt(1800)
	esiRate        = decimal.NewFromFloat(0.0075)
	esiWageCeiling = decimal.NewFromInt(21000)
)

// composeDeductions builds the itemized deductions breakdown for the period.
//
// PF is capped at the statutory maximum. ESI applies only while the gross is
// at or below the wage ceiling; above it the employee is simply not covered,
// so the item is omitted rather than erroring. TDS and professional tax come
// straight from the tax calculator. The leave deduction derives a fresh
// daily rate from the un-prorated configured basic. Configured custom
// deductions follow the fixed/percentage split with percentages applied to
// gross.
func composeDeductions(cfg employee.DeductionConfig, basicConfigured, gross decimal.Decimal, tax taxBreakdown, req payroll.CalculatePayrollRequest) map[string]decimal.Decimal {
	deductions := make(map[string]decimal.Decimal)

	if cfg.PFEnabled {
		deductions["pf"] = decimal.Min(gross.Mul(pfRate), pfCap)
	}
	if cfg.ESIEnabled && gross.LessThanOrEqual(esiWageCeiling) {
		deductions["esi"] = gross.Mul(esiRate)
	}
	if tax.ProfessionalTax.IsPositive() {
		deductions["professional_tax"] = tax.ProfessionalTax
	}
	if tax.TDS.IsPositive() {
		deductions["tds"] = tax.TDS
	}
	if cfg.InsuranceAmount.IsPositive() {
		deductions["insurance"] = prorate(cfg.InsuranceAmount, req.WorkingDays, req.DaysWorked)
	}
	if cfg.LoanDeduction.IsPositive() {
		deductions["loan"] = cfg.LoanDeduction
	}

	if req.LeaveDays > 0 && req.WorkingDays > 0 {
		dailyRate := basicConfigured.Div(decimal.NewFromInt(int64(req.WorkingDays)))
		deductions["leave_deduction"] = dailyRate.Mul(decimal.NewFromInt(int64(req.LeaveDays)))
	}

	for _, c := range req.CustomDeductions {
		deductions[c.Name] = c.Amount
	}

	for _, c := range cfg.Custom {
		switch c.Kind {
		case employee.ComponentKindPercentage:
			deductions[c.Name] = gross.Mul(c.Amount).Div(oneHundred)
		default:
			deductions[c.Name] = prorate(c.Amount, req.WorkingDays, req.DaysWorked)
		}
	}

	return deductions
}
