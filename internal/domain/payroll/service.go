package payroll

import "context"

type PayrollService interface {
	// Calculation
	CalculatePayroll(ctx context.Context, req CalculatePayrollRequest) (PayrollRecordResponse, error)
	BatchCalculatePayroll(ctx context.Context, req BatchCalculatePayrollRequest) ([]PayrollRecordResponse, error)

	// Lifecycle
	ProcessPayroll(ctx context.Context, id string) (PayrollRecordResponse, error)
	MarkPayrollAsPaid(ctx context.Context, id string, req MarkPaidRequest) (PayrollRecordResponse, error)
	CancelPayroll(ctx context.Context, id string) (PayrollRecordResponse, error)

	// Queries
	GetPayrollRecord(ctx context.Context, id string) (PayrollRecordResponse, error)
	GetPayrollsByEmployee(ctx context.Context, employeeID string, limit, offset int) ([]PayrollRecordResponse, error)
	GetPayrollSummary(ctx context.Context, req PayrollSummaryRequest) (PayrollSummaryResponse, error)

	// Payslip
	AttachPayslip(ctx context.Context, id string) (PayrollRecordResponse, error)
}
