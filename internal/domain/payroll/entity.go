package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayrollRecord - fully itemized payroll result for one employee and one pay
// period. Financial fields are immutable once the record leaves draft; after
// paid only the payslip URL and notes may be written.
type PayrollRecord struct {
	ID            string
	PayrollNumber string // human-readable, e.g. PAY-202608-EMP001
	EmployeeID    string
	CompanyID     string
	PeriodStart   time.Time
	PeriodEnd     time.Time
	WorkingDays   int
	DaysWorked    int
	OvertimeHours decimal.Decimal
	LeaveDays     int

	BasicSalary     decimal.Decimal            // prorated for the period
	Earnings        map[string]decimal.Decimal // {"hra": 2500, "overtime_pay": 1200}
	GrossSalary     decimal.Decimal            // basic + sum(earnings)
	Deductions      map[string]decimal.Decimal // {"pf": 1800, "tds": 260}
	TotalDeductions decimal.Decimal
	NetSalary       decimal.Decimal // gross - total deductions

	Status           PayrollStatus
	ProcessedBy      *string
	ProcessedAt      *time.Time
	PaymentDate      *time.Time
	PaymentReference *string
	PayslipURL       *string
	Notes            *string
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// Joined fields
	EmployeeName *string
	EmployeeCode *string
	Department   *string
}
