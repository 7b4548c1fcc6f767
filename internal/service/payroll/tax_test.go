package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/zenithhr/payroll-backend-go/internal/domain/employee"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	assert.True(t, actual.Equal(dec(expected)), "expected %s, got %s", expected, actual)
}

func TestCalculateTax_NewRegime(t *testing.T) {
	t.Parallel()

	// 30000/month -> 360000/year. First 300000 free, next 60000 at 5% =
	// 3000, plus 4% cess = 3120, back to 260/month.
	tax := calculateTax(dec("30000"), employee.TaxPreferences{Regime: employee.TaxRegimeNew})

	assertDecimal(t, "260", tax.TDS)
	assertDecimal(t, "200", tax.ProfessionalTax)
	assertDecimal(t, "460", tax.TotalTax)
}

func TestCalculateTax_NewRegime_BelowTaxableThreshold(t *testing.T) {
	t.Parallel()

	tax := calculateTax(dec("20000"), employee.TaxPreferences{Regime: employee.TaxRegimeNew})

	assertDecimal(t, "0", tax.TDS)
	assertDecimal(t, "200", tax.ProfessionalTax)
	assertDecimal(t, "200", tax.TotalTax)
}

func TestCalculateTax_OldRegime_StandardDeduction(t *testing.T) {
	t.Parallel()

	// 50000/month -> 600000/year, minus 50000 standard deduction = 550000.
	// 250000-500000 at 5% = 12500, 500000-550000 at 20% = 10000, total
	// 22500, plus cess = 23400, so 1950/month.
	tax := calculateTax(dec("50000"), employee.TaxPreferences{Regime: employee.TaxRegimeOld})

	assertDecimal(t, "1950", tax.TDS)
	assertDecimal(t, "200", tax.ProfessionalTax)
}

func TestCalculateTax_OldRegime_Exemptions(t *testing.T) {
	t.Parallel()

	prefs := employee.TaxPreferences{
		Regime: employee.TaxRegimeOld,
		Exemptions: []employee.Exemption{
			{Section: "80C", Amount: dec("100000")},
		},
	}

	// 600000 - 50000 - 100000 = 450000 taxable, (450000-250000)*5% =
	// 10000, plus cess = 10400 annual.
	tax := calculateTax(dec("50000"), prefs)

	expected := dec("10400").Div(dec("12"))
	assertDecimal(t, expected.String(), tax.TDS)
}

func TestCalculateTax_OldRegime_ExemptionsClampAtZero(t *testing.T) {
	t.Parallel()

	prefs := employee.TaxPreferences{
		Regime: employee.TaxRegimeOld,
		Exemptions: []employee.Exemption{
			{Section: "80C", Amount: dec("150000")},
			{Section: "80D", Amount: dec("500000")},
		},
	}

	tax := calculateTax(dec("3000"), prefs)

	assertDecimal(t, "0", tax.TDS)
	assertDecimal(t, "0", tax.ProfessionalTax)
	assertDecimal(t, "0", tax.TotalTax)
}

func TestCalculateTax_RegimesDiverge(t *testing.T) {
	t.Parallel()

	gross := dec("100000")
	oldTax := calculateTax(gross, employee.TaxPreferences{Regime: employee.TaxRegimeOld})
	newTax := calculateTax(gross, employee.TaxPreferences{Regime: employee.TaxRegimeNew})

	assert.False(t, oldTax.TDS.Equal(newTax.TDS))
	assert.True(t, oldTax.TDS.IsPositive())
	assert.True(t, newTax.TDS.IsPositive())
}

func TestProfessionalTax_Thresholds(t *testing.T) {
	t.Parallel()

	cases := []struct {
		gross    string
		expected string
	}{
		{"0", "0"},
		{"9999", "0"},
		{"10000", "0"},
		{"10001", "150"},
		{"15000", "150"},
		{"15001", "200"},
		{"30000", "200"},
	}

	for _, tc := range cases {
		assertDecimal(t, tc.expected, professionalTax(dec(tc.gross)))
	}
}

func TestProgressiveTax_SlabBoundaries(t *testing.T) {
	t.Parallel()

	// Exactly at the free-bracket ceiling no tax is due; one unit above is
	// taxed only on the increment.
	assertDecimal(t, "0", progressiveTax(dec("300000"), newRegimeSlabs))
	assertDecimal(t, "0.05", progressiveTax(dec("300001"), newRegimeSlabs))
	assertDecimal(t, "15000", progressiveTax(dec("600000"), newRegimeSlabs))
}

func TestCalculateTax_NewRegime_SecondSlabCeiling(t *testing.T) {
	t.Parallel()

	// 50000/month annualizes to exactly 600000: 300000 * 5% = 15000, plus
	// cess = 15600 annual, 1300/month.
	tax := calculateTax(dec("50000"), employee.TaxPreferences{Regime: employee.TaxRegimeNew})

	assertDecimal(t, "1300", tax.TDS)
}

func TestCalculateTax_Monotonic(t *testing.T) {
	t.Parallel()

	for _, regime := range []employee.TaxRegime{employee.TaxRegimeOld, employee.TaxRegimeNew} {
		prefs := employee.TaxPreferences{Regime: regime}
		prev := decimal.Zero
		for _, gross := range []string{"5000", "20000", "40000", "80000", "160000"} {
			tax := calculateTax(dec(gross), prefs)
			assert.True(t, tax.TotalTax.GreaterThanOrEqual(prev),
				"regime %s gross %s: %s < %s", regime, gross, tax.TotalTax, prev)
			prev = tax.TotalTax
		}
	}
}

func TestProgressiveTax_TopBracket(t *testing.T) {
	t.Parallel()

	// 2000000 through the new regime: 0 + 15000 + 30000 + 45000 + 60000 +
	// 150000 = 300000 before cess.
	tax := progressiveTax(dec("2000000"), newRegimeSlabs)

	assertDecimal(t, "300000", tax)
}
