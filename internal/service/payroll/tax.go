package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/zenithhr/payroll-backend-go/internal/domain/employee"
)

// taxSlab is one progressive income-tax bracket. Tax is charged at rate on
// the income falling inside the bracket only. A zero limit marks the
// unbounded top bracket.
type taxSlab struct {
	limit decimal.Decimal
	rate  decimal.Decimal
}

var (
	oldRegimeSlabs = []taxSlab{
		{limit: decimal.NewFromInt(250000), rate: decimal.Zero},
		{limit: decimal.NewFromInt(500000), rate: decimal.NewFromFloat(0.05)},
		{limit: decimal.NewFromInt(1000000), rate: decimal.NewFromFloat(0.20)},
		{limit: decimal.Zero, rate: decimal.NewFromFloat(0.30)},
	}

	newRegimeSlabs = []taxSlab{
		{limit: decimal.NewFromInt(300000), rate: decimal.Zero},
		{limit: decimal.NewFromInt(600000), rate: decimal.NewFromFloat(0.05)},
		{limit: decimal.NewFromInt(900000), rate: decimal.NewFromFloat(0.10)},
		{limit: decimal.NewFromInt(1200000), rate: decimal.NewFromFloat(0.15)},
		{limit: decimal.NewFromInt(1500000), rate: decimal.NewFromFloat(0.20)},
		{limit: decimal.Zero, rate: decimal.NewFromFloat(0.30)},
	}

	standardDeductionCap = decimal.NewFromInt(50000)
	cessRate             = decimal.NewFromFloat(0.04)
	monthsPerYear        = decimal.NewFromInt(12)

	// Professional tax is a flat monthly levy keyed off period gross.
	ptExemptCeiling = decimal.NewFromInt(10000)
	ptLowerCeiling  = decimal.NewFromInt(15000)
	ptLowerAmount   = decimal.NewFromInt(150)
	ptUpperAmount   = decimal.NewFromInt(200)
)

type taxBreakdown struct {
	TDS             decimal.Decimal
	ProfessionalTax decimal.Decimal
	TotalTax        decimal.Decimal
}

// calculateTax computes the income-tax liability for one pay period. The
// period gross is annualized (x12), taxed through the regime's progressive
// slabs plus the 4% cess, and the result de-annualized back to a period TDS.
// Under the old regime the standard deduction and configured exemptions
// reduce taxable income first; the new regime taxes the full annual amount.
func calculateTax(periodGross decimal.Decimal, prefs employee.TaxPreferences) taxBreakdown {
	annual := periodGross.Mul(monthsPerYear)

	taxable := annual
	slabs := newRegimeSlabs
	if prefs.Regime == employee.TaxRegimeOld {
		slabs = oldRegimeSlabs
		taxable = annual.Sub(decimal.Min(standardDeductionCap, annual))
		for _, exemption := range prefs.Exemptions {
			taxable = taxable.Sub(exemption.Amount)
		}
		if taxable.IsNegative() {
			taxable = decimal.Zero
		}
	}

	annualTax := progressiveTax(taxable, slabs)
	annualTax = annualTax.Add(annualTax.Mul(cessRate))

	tds := annualTax.Div(monthsPerYear)
	pt := professionalTax(periodGross)

	return taxBreakdown{
		TDS:             tds,
		ProfessionalTax: pt,
		TotalTax:        tds.Add(pt),
	}
}

func progressiveTax(taxable decimal.Decimal, slabs []taxSlab) decimal.Decimal {
	tax := decimal.Zero
	lower := decimal.Zero
	for _, slab := range slabs {
		if taxable.LessThanOrEqual(lower) {
			break
		}
		upper := taxable
		if !slab.limit.IsZero() && slab.limit.LessThan(taxable) {
			upper = slab.limit
		}
		tax = tax.Add(upper.Sub(lower).Mul(slab.rate))
		lower = slab.limit
	}
	return tax
}

// professionalTax is flat and period-based; it is never annualized.
func professionalTax(periodGross decimal.Decimal) decimal.Decimal {
	switch {
	case periodGross.LessThanOrEqual(ptExemptCeiling):
		return decimal.Zero
	case periodGross.LessThanOrEqual(ptLowerCeiling):
		return ptLowerAmount
	default:
		return ptUpperAmount
	}
}
