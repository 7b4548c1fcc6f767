package postgresql

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/zenithhr/payroll-backend-go/internal/domain/payroll"
	"github.com/zenithhr/payroll-backend-go/internal/pkg/database"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

const payrollRecordColumns = `
	pr.id, pr.payroll_number, pr.employee_id, pr.company_id,
	pr.period_start, pr.period_end, pr.working_days, pr.days_worked,
	pr.overtime_hours, pr.leave_days,
	pr.basic_salary, pr.earnings, pr.gross_salary,
	pr.deductions, pr.total_deductions, pr.net_salary,
	pr.status, pr.processed_by, pr.processed_at,
	pr.payment_date, pr.payment_reference, pr.payslip_url, pr.notes,
	pr.created_at, pr.updated_at,
	e.full_name, e.employee_code, e.department
`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPayrollRecord(row rowScanner) (payroll.PayrollRecord, error) {
	var rec payroll.PayrollRecord
	var earningsBytes, deductionsBytes []byte

	err := row.Scan(
		&rec.ID, &rec.PayrollNumber, &rec.EmployeeID, &rec.CompanyID,
		&rec.PeriodStart, &rec.PeriodEnd, &rec.WorkingDays, &rec.DaysWorked,
		&rec.OvertimeHours, &rec.LeaveDays,
		&rec.BasicSalary, &earningsBytes, &rec.GrossSalary,
		&deductionsBytes, &rec.TotalDeductions, &rec.NetSalary,
		&rec.Status, &rec.ProcessedBy, &rec.ProcessedAt,
		&rec.PaymentDate, &rec.PaymentReference, &rec.PayslipURL, &rec.Notes,
		&rec.CreatedAt, &rec.UpdatedAt,
		&rec.EmployeeName, &rec.EmployeeCode, &rec.Department,
	)
	if err != nil {
		return payroll.PayrollRecord{}, err
	}

	_ = json.Unmarshal(earningsBytes, &rec.Earnings)
	_ = json.Unmarshal(deductionsBytes, &rec.Deductions)

	return rec, nil
}

// ========== WRITES ==========

func (r *payrollRepository) CreatePayrollRecord(ctx context.Context, record payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	earningsJSON, _ := json.Marshal(record.Earnings)
	deductionsJSON, _ := json.Marshal(record.Deductions)

	query := `
		INSERT INTO payroll_records (
			id, payroll_number, employee_id, company_id,
			period_start, period_end, working_days, days_worked,
			overtime_hours, leave_days,
			basic_salary, earnings, gross_salary,
			deductions, total_deductions, net_salary,
			status, notes
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		record.ID, record.PayrollNumber, record.EmployeeID, record.CompanyID,
		record.PeriodStart, record.PeriodEnd, record.WorkingDays, record.DaysWorked,
		record.OvertimeHours, record.LeaveDays,
		record.BasicSalary, earningsJSON, record.GrossSalary,
		deductionsJSON, record.TotalDeductions, record.NetSalary,
		record.Status, record.Notes,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "uk_payroll_employee_period") {
			return payroll.PayrollRecord{}, payroll.ErrPayrollRecordExists
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to create payroll record: %w", err)
	}

	return record, nil
}

// ========== READS ==========

func (r *payrollRepository) GetPayrollRecordByID(ctx context.Context, id string, companyID string) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollRecordColumns + `
		FROM payroll_records pr
		JOIN employees e ON pr.employee_id = e.id
		WHERE pr.id = $1 AND pr.company_id = $2
	`

	rec, err := scanPayrollRecord(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to get payroll record: %w", err)
	}

	return rec, nil
}

func (r *payrollRepository) GetPayrollRecordByEmployeePeriodStart(ctx context.Context, employeeID string, periodStart time.Time, companyID string) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollRecordColumns + `
		FROM payroll_records pr
		JOIN employees e ON pr.employee_id = e.id
		WHERE pr.employee_id = $1 AND pr.period_start = $2 AND pr.company_id = $3
	`

	rec, err := scanPayrollRecord(q.QueryRow(ctx, query, employeeID, periodStart, companyID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to get payroll record: %w", err)
	}

	return rec, nil
}

func (r *payrollRepository) ListPayrollRecordsByEmployee(ctx context.Context, employeeID string, companyID string, limit, offset int) ([]payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollRecordColumns + `
		FROM payroll_records pr
		JOIN employees e ON pr.employee_id = e.id
		WHERE pr.employee_id = $1 AND pr.company_id = $2
		ORDER BY pr.period_start DESC
		LIMIT $3 OFFSET $4
	`

	rows, err := q.Query(ctx, query, employeeID, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll records: %w", err)
	}
	defer rows.Close()

	return collectPayrollRecords(rows)
}

func (r *payrollRepository) ListPayrollRecordsByPeriodRange(ctx context.Context, companyID string, start, end time.Time, department *string) ([]payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollRecordColumns + `
		FROM payroll_records pr
		JOIN employees e ON pr.employee_id = e.id
		WHERE pr.company_id = $1 AND pr.period_start >= $2 AND pr.period_start <= $3
	`
	args := []any{companyID, start, end}

	if department != nil && *department != "" {
		query += ` AND e.department = $4`
		args = append(args, *department)
	}
	query += ` ORDER BY pr.period_start, e.employee_code`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll records: %w", err)
	}
	defer rows.Close()

	return collectPayrollRecords(rows)
}

func collectPayrollRecords(rows pgx.Rows) ([]payroll.PayrollRecord, error) {
	var records []payroll.PayrollRecord
	for rows.Next() {
		rec, err := scanPayrollRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read payroll records: %w", err)
	}
	return records, nil
}

// ========== STATUS TRANSITIONS ==========

// The Mark* updates are guarded by the current status so a concurrent
// transition loses cleanly: the guard misses, no row comes back and the
// caller sees ErrInvalidStatusTransition.

func (r *payrollRepository) MarkProcessed(ctx context.Context, id string, companyID string, processedBy string) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_records
		SET status = 'processed', processed_by = $3, processed_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND company_id = $2 AND status = 'draft'
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, id, companyID, processedBy).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollRecord{}, payroll.ErrInvalidStatusTransition
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to mark payroll record processed: %w", err)
	}

	return r.GetPayrollRecordByID(ctx, updatedID, companyID)
}

func (r *payrollRepository) MarkPaid(ctx context.Context, id string, companyID string, paymentDate time.Time, paymentReference string) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_records
		SET status = 'paid', payment_date = $3, payment_reference = $4, updated_at = NOW()
		WHERE id = $1 AND company_id = $2 AND status = 'processed'
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, id, companyID, paymentDate, paymentReference).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollRecord{}, payroll.ErrInvalidStatusTransition
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to mark payroll record paid: %w", err)
	}

	return r.GetPayrollRecordByID(ctx, updatedID, companyID)
}

func (r *payrollRepository) MarkCancelled(ctx context.Context, id string, companyID string) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_records
		SET status = 'cancelled', updated_at = NOW()
		WHERE id = $1 AND company_id = $2 AND status IN ('draft', 'processed')
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, id, companyID).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollRecord{}, payroll.ErrInvalidStatusTransition
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to cancel payroll record: %w", err)
	}

	return r.GetPayrollRecordByID(ctx, updatedID, companyID)
}

func (r *payrollRepository) UpdatePayslipURL(ctx context.Context, id string, companyID string, url string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_records
		SET payslip_url = $3, updated_at = NOW()
		WHERE id = $1 AND company_id = $2 AND status = 'paid'
	`

	tag, err := q.Exec(ctx, query, id, companyID, url)
	if err != nil {
		return fmt.Errorf("failed to update payslip url: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPayrollRecordNotFound
	}

	return nil
}
