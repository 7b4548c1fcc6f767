package payroll

import "errors"

var (
	ErrPayrollRecordNotFound = errors.New("payroll record not found")
	// ErrPayrollRecordExists guards the one-record-per-employee-per-period
	// invariant. It is returned both by the orchestrator's pre-check and by
	// the store when the unique index rejects a concurrent insert.
	ErrPayrollRecordExists      = errors.New("payroll record already exists for this period")
	ErrInvalidStatusTransition  = errors.New("payroll status transition not allowed")
	ErrPayslipNotAvailable      = errors.New("payslip can only be generated for paid records")
	ErrEmployeeHasNoBasicSalary = errors.New("employee has no basic salary configured")
)
