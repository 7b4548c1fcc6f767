package payroll

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zenithhr/payroll-backend-go/internal/domain/employee"
	"github.com/zenithhr/payroll-backend-go/internal/domain/payroll"
)

func TestComposeDeductions_PFCapped(t *testing.T) {
	t.Parallel()

	cfg := employee.DeductionConfig{PFEnabled: true}

	// 12% of 30000 is 3600, capped at 1800.
	deductions := composeDeductions(cfg, dec("30000"), dec("30000"), taxBreakdown{}, fullPeriodRequest())
	assertDecimal(t, "1800", deductions["pf"])

	// 12% of 10000 stays under the cap.
	deductions = composeDeductions(cfg, dec("10000"), dec("10000"), taxBreakdown{}, fullPeriodRequest())
	assertDecimal(t, "1200", deductions["pf"])
}

func TestComposeDeductions_ESIWageCeiling(t *testing.T) {
	t.Parallel()

	cfg := employee.DeductionConfig{ESIEnabled: true}

	deductions := composeDeductions(cfg, dec("21000"), dec("21000"), taxBreakdown{}, fullPeriodRequest())
	assertDecimal(t, "157.5", deductions["esi"])

	deductions = composeDeductions(cfg, dec("21001"), dec("21001"), taxBreakdown{}, fullPeriodRequest())
	assert.NotContains(t, deductions, "esi")
}

func TestComposeDeductions_TaxItems(t *testing.T) {
	t.Parallel()

	tax := taxBreakdown{TDS: dec("260"), ProfessionalTax: dec("200")}

	deductions := composeDeductions(employee.DeductionConfig{}, dec("30000"), dec("30000"), tax, fullPeriodRequest())

	assertDecimal(t, "260", deductions["tds"])
	assertDecimal(t, "200", deductions["professional_tax"])
}

func TestComposeDeductions_ZeroTaxItemsOmitted(t *testing.T) {
	t.Parallel()

	deductions := composeDeductions(employee.DeductionConfig{}, dec("8000"), dec("8000"), taxBreakdown{}, fullPeriodRequest())

	assert.NotContains(t, deductions, "tds")
	assert.NotContains(t, deductions, "professional_tax")
}

func TestComposeDeductions_LeaveDeduction(t *testing.T) {
	t.Parallel()

	req := fullPeriodRequest()
	req.LeaveDays = 2

	// Daily rate comes from the configured basic, not the prorated one.
	deductions := composeDeductions(employee.DeductionConfig{}, dec("30000"), dec("28000"), taxBreakdown{}, req)

	assertDecimal(t, "2000", deductions["leave_deduction"])
}

func TestComposeDeductions_InsuranceProratedLoanVerbatim(t *testing.T) {
	t.Parallel()

	cfg := employee.DeductionConfig{
		InsuranceAmount: dec("1000"),
		LoanDeduction:   dec("2500"),
	}
	req := payroll.CalculatePayrollRequest{WorkingDays: 30, DaysWorked: 15}

	deductions := composeDeductions(cfg, dec("30000"), dec("15000"), taxBreakdown{}, req)

	assertDecimal(t, "500", deductions["insurance"])
	assertDecimal(t, "2500", deductions["loan"])
}

func TestComposeDeductions_CustomComponents(t *testing.T) {
	t.Parallel()

	cfg := employee.DeductionConfig{
		Custom: []employee.CustomComponent{
			{Name: "welfare_fund", Amount: dec("300"), Kind: employee.ComponentKindFixed},
			{Name: "union_fee", Amount: dec("1"), Kind: employee.ComponentKindPercentage},
		},
	}
	req := payroll.CalculatePayrollRequest{
		WorkingDays: 30,
		DaysWorked:  15,
		CustomDeductions: []payroll.CustomComponentInput{
			{Name: "canteen", Amount: dec("450"), Type: "fixed"},
		},
	}

	deductions := composeDeductions(cfg, dec("30000"), dec("20000"), taxBreakdown{}, req)

	assertDecimal(t, "150", deductions["welfare_fund"])
	assertDecimal(t, "200", deductions["union_fee"])
	assertDecimal(t, "450", deductions["canteen"])
}
