package payroll

import (
	"context"
	"time"
)

// PayrollRepository defines data access methods for payroll records.
// All methods include companyID to prevent cross-company data access.
//
// The store enforces the uniqueness invariant with a unique index over
// (company_id, employee_id, period_start); CreatePayrollRecord must map that
// rejection to ErrPayrollRecordExists. The Mark* methods are conditional
// updates guarded by the current status so two concurrent transitions cannot
// both succeed; a guard miss surfaces as ErrInvalidStatusTransition.
type PayrollRepository interface {
	CreatePayrollRecord(ctx context.Context, record PayrollRecord) (PayrollRecord, error)
	GetPayrollRecordByID(ctx context.Context, id string, companyID string) (PayrollRecord, error)
	GetPayrollRecordByEmployeePeriodStart(ctx context.Context, employeeID string, periodStart time.Time, companyID string) (PayrollRecord, error)
	ListPayrollRecordsByEmployee(ctx context.Context, employeeID string, companyID string, limit, offset int) ([]PayrollRecord, error)
	ListPayrollRecordsByPeriodRange(ctx context.Context, companyID string, start, end time.Time, department *string) ([]PayrollRecord, error)

	// Status transitions (atomic compare-and-set on status)
	MarkProcessed(ctx context.Context, id string, companyID string, processedBy string) (PayrollRecord, error)
	MarkPaid(ctx context.Context, id string, companyID string, paymentDate time.Time, paymentReference string) (PayrollRecord, error)
	MarkCancelled(ctx context.Context, id string, companyID string) (PayrollRecord, error)

	// Post-paid annotation; the only write allowed after payment.
	UpdatePayslipURL(ctx context.Context, id string, companyID string, url string) error
}
