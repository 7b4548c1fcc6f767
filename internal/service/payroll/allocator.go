package payroll

import "github.com/shopspring/decimal"

// prorate scales a monthly configured amount by the days-worked to
// working-days ratio. A period with zero working days yields zero; it is a
// degenerate period, not an error. All arithmetic stays in decimal so
// rounding happens only at display/persistence time.
func prorate(amount decimal.Decimal, workingDays, daysWorked int) decimal.Decimal {
	if workingDays <= 0 {
		return decimal.Zero
	}
	return amount.
		Mul(decimal.NewFromInt(int64(daysWorked))).
		Div(decimal.NewFromInt(int64(workingDays)))
}

func sumAmounts(amounts map[string]decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, amount := range amounts {
		total = total.Add(amount)
	}
	return total
}
