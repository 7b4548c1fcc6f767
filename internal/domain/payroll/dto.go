package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/zenithhr/payroll-backend-go/internal/pkg/validator"
)

// CustomComponentInput is a period-scoped custom allowance or deduction
// supplied with the period report.
type CustomComponentInput struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
	Type   string          `json:"type"` // "fixed" or "percentage"
}

func validateCustomComponents(field string, components []CustomComponentInput, errs validator.ValidationErrors) validator.ValidationErrors {
	for _, c := range components {
		if validator.IsEmpty(c.Name) {
			errs = append(errs, validator.ValidationError{Field: field, Message: "component name is required"})
		}
		if c.Amount.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: field, Message: "component amount must be non-negative"})
		}
		if c.Type != "fixed" && c.Type != "percentage" {
			errs = append(errs, validator.ValidationError{Field: field, Message: "component type must be 'fixed' or 'percentage'"})
		}
	}
	return errs
}

// ========== CALCULATION DTOs ==========

// CalculatePayrollRequest carries the period report for one employee.
type CalculatePayrollRequest struct {
	EmployeeID       string                 `json:"employee_id"`
	PayPeriodStart   string                 `json:"pay_period_start"` // YYYY-MM-DD
	PayPeriodEnd     string                 `json:"pay_period_end"`   // YYYY-MM-DD
	WorkingDays      int                    `json:"working_days"`
	DaysWorked       int                    `json:"days_worked"`
	OvertimeHours    decimal.Decimal        `json:"overtime_hours"`
	LeaveDays        int                    `json:"leave_days"`
	Bonuses          decimal.Decimal        `json:"bonuses"`
	Incentives       decimal.Decimal        `json:"incentives"`
	CustomAllowances []CustomComponentInput `json:"custom_allowances,omitempty"`
	CustomDeductions []CustomComponentInput `json:"custom_deductions,omitempty"`
	Notes            *string                `json:"notes,omitempty"`
}

func (r *CalculatePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}

	start, startOK := validator.IsValidDate(r.PayPeriodStart)
	if !startOK {
		errs = append(errs, validator.ValidationError{Field: "pay_period_start", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	end, endOK := validator.IsValidDate(r.PayPeriodEnd)
	if !endOK {
		errs = append(errs, validator.ValidationError{Field: "pay_period_end", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "pay_period_end", Message: "must not be before pay_period_start"})
	}

	if r.WorkingDays <= 0 {
		errs = append(errs, validator.ValidationError{Field: "working_days", Message: "must be greater than zero"})
	}
	if r.DaysWorked < 0 {
		errs = append(errs, validator.ValidationError{Field: "days_worked", Message: "must be non-negative"})
	}
	if r.WorkingDays > 0 && r.DaysWorked > r.WorkingDays {
		errs = append(errs, validator.ValidationError{Field: "days_worked", Message: "must not exceed working_days"})
	}
	if r.OvertimeHours.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "overtime_hours", Message: "must be non-negative"})
	}
	if r.LeaveDays < 0 {
		errs = append(errs, validator.ValidationError{Field: "leave_days", Message: "must be non-negative"})
	}
	if r.Bonuses.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "bonuses", Message: "must be non-negative"})
	}
	if r.Incentives.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "incentives", Message: "must be non-negative"})
	}

	errs = validateCustomComponents("custom_allowances", r.CustomAllowances, errs)
	errs = validateCustomComponents("custom_deductions", r.CustomDeductions, errs)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// BatchCalculatePayrollRequest runs the calculation for a set of employees
// with a uniform attendance assumption (days_worked = working_days).
type BatchCalculatePayrollRequest struct {
	EmployeeIDs    []string `json:"employee_ids,omitempty"` // empty = all active employees
	PayPeriodStart string   `json:"pay_period_start"`
	PayPeriodEnd   string   `json:"pay_period_end"`
	WorkingDays    int      `json:"working_days"`
}

func (r *BatchCalculatePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	start, startOK := validator.IsValidDate(r.PayPeriodStart)
	if !startOK {
		errs = append(errs, validator.ValidationError{Field: "pay_period_start", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	end, endOK := validator.IsValidDate(r.PayPeriodEnd)
	if !endOK {
		errs = append(errs, validator.ValidationError{Field: "pay_period_end", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "pay_period_end", Message: "must not be before pay_period_start"})
	}
	if r.WorkingDays <= 0 {
		errs = append(errs, validator.ValidationError{Field: "working_days", Message: "must be greater than zero"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========== TRANSITION DTOs ==========

type MarkPaidRequest struct {
	PaymentDate      string `json:"payment_date"` // YYYY-MM-DD
	PaymentReference string `json:"payment_reference"`
}

func (r *MarkPaidRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.PaymentDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "payment_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if validator.IsEmpty(r.PaymentReference) {
		errs = append(errs, validator.ValidationError{Field: "payment_reference", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========== SUMMARY DTOs ==========

type PayrollSummaryRequest struct {
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	Department *string `json:"department,omitempty"`
}

func (r *PayrollSummaryRequest) Validate() error {
	var errs validator.ValidationErrors

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must not be before start_date"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PayrollSummaryResponse struct {
	StartDate       string          `json:"start_date"`
	EndDate         string          `json:"end_date"`
	Department      *string         `json:"department,omitempty"`
	TotalEmployees  int             `json:"total_employees"`
	TotalGross      decimal.Decimal `json:"total_gross"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	TotalNet        decimal.Decimal `json:"total_net"`
	AverageNet      decimal.Decimal `json:"average_net"`
}

// ========== RECORD DTOs ==========

type PayrollRecordResponse struct {
	ID               string                     `json:"id"`
	PayrollNumber    string                     `json:"payroll_number"`
	EmployeeID       string                     `json:"employee_id"`
	EmployeeName     string                     `json:"employee_name,omitempty"`
	EmployeeCode     string                     `json:"employee_code,omitempty"`
	Department       *string                    `json:"department,omitempty"`
	PayPeriodStart   string                     `json:"pay_period_start"`
	PayPeriodEnd     string                     `json:"pay_period_end"`
	WorkingDays      int                        `json:"working_days"`
	DaysWorked       int                        `json:"days_worked"`
	OvertimeHours    decimal.Decimal            `json:"overtime_hours"`
	LeaveDays        int                        `json:"leave_days"`
	BasicSalary      decimal.Decimal            `json:"basic_salary"`
	Earnings         map[string]decimal.Decimal `json:"earnings"`
	GrossSalary      decimal.Decimal            `json:"gross_salary"`
	Deductions       map[string]decimal.Decimal `json:"deductions"`
	TotalDeductions  decimal.Decimal            `json:"total_deductions"`
	NetSalary        decimal.Decimal            `json:"net_salary"`
	Status           string                     `json:"status"`
	ProcessedBy      *string                    `json:"processed_by,omitempty"`
	ProcessedAt      *string                    `json:"processed_at,omitempty"`
	PaymentDate      *string                    `json:"payment_date,omitempty"`
	PaymentReference *string                    `json:"payment_reference,omitempty"`
	PayslipURL       *string                    `json:"payslip_url,omitempty"`
	Notes            *string                    `json:"notes,omitempty"`
}
