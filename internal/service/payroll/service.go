package payroll

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"

	"github.com/zenithhr/payroll-backend-go/internal/domain/employee"
	"github.com/zenithhr/payroll-backend-go/internal/domain/payroll"
	"github.com/zenithhr/payroll-backend-go/internal/pkg/payslip"
	"github.com/zenithhr/payroll-backend-go/internal/pkg/storage"
	"github.com/shopspring/decimal"
)

type PayrollServiceImpl struct {
	payrollRepo  payroll.PayrollRepository
	employeeRepo employee.EmployeeRepository
	fileStorage  storage.FileStorage
	logger       *slog.Logger
}

func NewPayrollService(
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	fileStorage storage.FileStorage,
	logger *slog.Logger,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		payrollRepo:  payrollRepo,
		employeeRepo: employeeRepo,
		fileStorage:  fileStorage,
		logger:       logger,
	}
}

// Helper to get company_id and user_id from JWT context
func getClaimsFromContext(ctx context.Context) (companyID, userID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", "", fmt.Errorf("company_id claim is missing or invalid")
	}

	userID, _ = claims["user_id"].(string)

	return companyID, userID, nil
}

// ========== CALCULATION ==========

func (s *PayrollServiceImpl) CalculatePayroll(ctx context.Context, req payroll.CalculatePayrollRequest) (payroll.PayrollRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID, companyID)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	created, err := s.calculateForEmployee(ctx, companyID, emp, req)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	return mapToRecordResponse(created), nil
}

// calculateForEmployee runs the full pipeline for one employee: proration,
// earnings, tax, deductions, then persistence of a draft record.
func (s *PayrollServiceImpl) calculateForEmployee(ctx context.Context, companyID string, emp employee.Employee, req payroll.CalculatePayrollRequest) (payroll.PayrollRecord, error) {
	periodStart, _ := time.Parse("2006-01-02", req.PayPeriodStart)
	periodEnd, _ := time.Parse("2006-01-02", req.PayPeriodEnd)

	if emp.BasicSalary.IsZero() {
		return payroll.PayrollRecord{}, payroll.ErrEmployeeHasNoBasicSalary
	}

	// Pre-check the uniqueness invariant. The store's unique index closes
	// the race this read-then-write leaves open.
	_, err := s.payrollRepo.GetPayrollRecordByEmployeePeriodStart(ctx, emp.ID, periodStart, companyID)
	if err == nil {
		return payroll.PayrollRecord{}, payroll.ErrPayrollRecordExists
	}
	if !errors.Is(err, payroll.ErrPayrollRecordNotFound) {
		return payroll.PayrollRecord{}, fmt.Errorf("failed to check existing payroll record: %w", err)
	}

	basicProrated := prorate(emp.BasicSalary, req.WorkingDays, req.DaysWorked)
	earnings := composeEarnings(emp.SalaryComponents, basicProrated, req)
	grossSalary := basicProrated.Add(sumAmounts(earnings))

	tax := calculateTax(grossSalary, emp.TaxPreferences)
	deductions := composeDeductions(emp.DeductionConfig, emp.BasicSalary, grossSalary, tax, req)
	totalDeductions := sumAmounts(deductions)
	netSalary := grossSalary.Sub(totalDeductions)

	record := payroll.PayrollRecord{
		ID:              uuid.NewString(),
		PayrollNumber:   payrollNumber(periodStart, emp.EmployeeCode),
		EmployeeID:      emp.ID,
		CompanyID:       companyID,
		PeriodStart:     periodStart,
		PeriodEnd:       periodEnd,
		WorkingDays:     req.WorkingDays,
		DaysWorked:      req.DaysWorked,
		OvertimeHours:   req.OvertimeHours,
		LeaveDays:       req.LeaveDays,
		BasicSalary:     basicProrated,
		Earnings:        earnings,
		GrossSalary:     grossSalary,
		Deductions:      deductions,
		TotalDeductions: totalDeductions,
		NetSalary:       netSalary,
		Status:          payroll.PayrollStatusDraft,
		Notes:           req.Notes,
	}

	created, err := s.payrollRepo.CreatePayrollRecord(ctx, record)
	if err != nil {
		return payroll.PayrollRecord{}, err
	}

	return created, nil
}

func (s *PayrollServiceImpl) BatchCalculatePayroll(ctx context.Context, req payroll.BatchCalculatePayrollRequest) ([]payroll.PayrollRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	var employees []employee.Employee
	if len(req.EmployeeIDs) > 0 {
		for _, id := range req.EmployeeIDs {
			emp, err := s.employeeRepo.GetByID(ctx, id, companyID)
			if err != nil {
				s.logger.Warn("skipping unknown employee in payroll batch",
					"employee_id", id, "error", err)
				continue
			}
			employees = append(employees, emp)
		}
	} else {
		employees, err = s.employeeRepo.GetActiveByCompanyID(ctx, companyID)
		if err != nil {
			return nil, fmt.Errorf("failed to list employees: %w", err)
		}
	}

	results := make([]payroll.PayrollRecordResponse, 0, len(employees))
	for _, emp := range employees {
		calcReq := payroll.CalculatePayrollRequest{
			EmployeeID:     emp.ID,
			PayPeriodStart: req.PayPeriodStart,
			PayPeriodEnd:   req.PayPeriodEnd,
			WorkingDays:    req.WorkingDays,
			// Batch runs assume full attendance for every employee.
			DaysWorked: req.WorkingDays,
		}

		created, err := s.calculateForEmployee(ctx, companyID, emp, calcReq)
		if err != nil {
			s.logger.Warn("skipping employee in payroll batch",
				"employee_id", emp.ID,
				"employee_code", emp.EmployeeCode,
				"error", err)
			continue
		}
		results = append(results, mapToRecordResponse(created))
	}

	return results, nil
}

// ========== LIFECYCLE ==========

func (s *PayrollServiceImpl) ProcessPayroll(ctx context.Context, id string) (payroll.PayrollRecordResponse, error) {
	companyID, userID, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	record, err := s.payrollRepo.GetPayrollRecordByID(ctx, id, companyID)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}
	if !record.Status.CanTransitionTo(payroll.PayrollStatusProcessed) {
		return payroll.PayrollRecordResponse{}, payroll.ErrInvalidStatusTransition
	}

	updated, err := s.payrollRepo.MarkProcessed(ctx, id, companyID, userID)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	return mapToRecordResponse(updated), nil
}

func (s *PayrollServiceImpl) MarkPayrollAsPaid(ctx context.Context, id string, req payroll.MarkPaidRequest) (payroll.PayrollRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	record, err := s.payrollRepo.GetPayrollRecordByID(ctx, id, companyID)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}
	if !record.Status.CanTransitionTo(payroll.PayrollStatusPaid) {
		return payroll.PayrollRecordResponse{}, payroll.ErrInvalidStatusTransition
	}

	paymentDate, _ := time.Parse("2006-01-02", req.PaymentDate)
	updated, err := s.payrollRepo.MarkPaid(ctx, id, companyID, paymentDate, req.PaymentReference)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	return mapToRecordResponse(updated), nil
}

func (s *PayrollServiceImpl) CancelPayroll(ctx context.Context, id string) (payroll.PayrollRecordResponse, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	record, err := s.payrollRepo.GetPayrollRecordByID(ctx, id, companyID)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}
	if !record.Status.CanTransitionTo(payroll.PayrollStatusCancelled) {
		return payroll.PayrollRecordResponse{}, payroll.ErrInvalidStatusTransition
	}

	updated, err := s.payrollRepo.MarkCancelled(ctx, id, companyID)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	return mapToRecordResponse(updated), nil
}

// ========== QUERIES ==========

func (s *PayrollServiceImpl) GetPayrollRecord(ctx context.Context, id string) (payroll.PayrollRecordResponse, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	record, err := s.payrollRepo.GetPayrollRecordByID(ctx, id, companyID)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	return mapToRecordResponse(record), nil
}

func (s *PayrollServiceImpl) GetPayrollsByEmployee(ctx context.Context, employeeID string, limit, offset int) ([]payroll.PayrollRecordResponse, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	records, err := s.payrollRepo.ListPayrollRecordsByEmployee(ctx, employeeID, companyID, limit, offset)
	if err != nil {
		return nil, err
	}

	return mapToRecordResponses(records), nil
}

func (s *PayrollServiceImpl) GetPayrollSummary(ctx context.Context, req payroll.PayrollSummaryRequest) (payroll.PayrollSummaryResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollSummaryResponse{}, err
	}

	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.PayrollSummaryResponse{}, err
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)

	records, err := s.payrollRepo.ListPayrollRecordsByPeriodRange(ctx, companyID, start, end, req.Department)
	if err != nil {
		return payroll.PayrollSummaryResponse{}, err
	}

	summary := payroll.PayrollSummaryResponse{
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		Department:      req.Department,
		TotalGross:      decimal.Zero,
		TotalDeductions: decimal.Zero,
		TotalNet:        decimal.Zero,
		AverageNet:      decimal.Zero,
	}

	seen := make(map[string]struct{})
	for _, r := range records {
		if r.Status == payroll.PayrollStatusCancelled {
			continue
		}
		seen[r.EmployeeID] = struct{}{}
		summary.TotalGross = summary.TotalGross.Add(r.GrossSalary)
		summary.TotalDeductions = summary.TotalDeductions.Add(r.TotalDeductions)
		summary.TotalNet = summary.TotalNet.Add(r.NetSalary)
	}

	summary.TotalEmployees = len(seen)
	if summary.TotalEmployees > 0 {
		summary.AverageNet = summary.TotalNet.Div(decimal.NewFromInt(int64(summary.TotalEmployees)))
	}

	return summary, nil
}

// ========== PAYSLIP ==========

func (s *PayrollServiceImpl) AttachPayslip(ctx context.Context, id string) (payroll.PayrollRecordResponse, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	record, err := s.payrollRepo.GetPayrollRecordByID(ctx, id, companyID)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}
	if record.Status != payroll.PayrollStatusPaid {
		return payroll.PayrollRecordResponse{}, payroll.ErrPayslipNotAvailable
	}

	emp, err := s.employeeRepo.GetByID(ctx, record.EmployeeID, companyID)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	var buf bytes.Buffer
	if err := payslip.Render(&buf, record, emp); err != nil {
		return payroll.PayrollRecordResponse{}, fmt.Errorf("failed to render payslip: %w", err)
	}

	path := fmt.Sprintf("payslips/%s.pdf", record.ID)
	storedPath, err := s.fileStorage.Upload(ctx, &buf, path, "application/pdf")
	if err != nil {
		return payroll.PayrollRecordResponse{}, fmt.Errorf("failed to store payslip: %w", err)
	}

	url, err := s.fileStorage.GetURL(ctx, storedPath, 0)
	if err != nil {
		return payroll.PayrollRecordResponse{}, fmt.Errorf("failed to resolve payslip URL: %w", err)
	}

	if err := s.payrollRepo.UpdatePayslipURL(ctx, record.ID, companyID, url); err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	record.PayslipURL = &url
	return mapToRecordResponse(record), nil
}

// ========== HELPERS ==========

func payrollNumber(periodStart time.Time, employeeCode string) string {
	return fmt.Sprintf("PAY-%s-%s", periodStart.Format("200601"), employeeCode)
}

func mapToRecordResponse(r payroll.PayrollRecord) payroll.PayrollRecordResponse {
	var processedAtStr, paymentDateStr *string
	if r.ProcessedAt != nil {
		str := r.ProcessedAt.Format(time.RFC3339)
		processedAtStr = &str
	}
	if r.PaymentDate != nil {
		str := r.PaymentDate.Format("2006-01-02")
		paymentDateStr = &str
	}

	employeeName := ""
	employeeCode := ""
	if r.EmployeeName != nil {
		employeeName = *r.EmployeeName
	}
	if r.EmployeeCode != nil {
		employeeCode = *r.EmployeeCode
	}

	return payroll.PayrollRecordResponse{
		ID:               r.ID,
		PayrollNumber:    r.PayrollNumber,
		EmployeeID:       r.EmployeeID,
		EmployeeName:     employeeName,
		EmployeeCode:     employeeCode,
		Department:       r.Department,
		PayPeriodStart:   r.PeriodStart.Format("2006-01-02"),
		PayPeriodEnd:     r.PeriodEnd.Format("2006-01-02"),
		WorkingDays:      r.WorkingDays,
		DaysWorked:       r.DaysWorked,
		OvertimeHours:    r.OvertimeHours,
		LeaveDays:        r.LeaveDays,
		BasicSalary:      r.BasicSalary,
		Earnings:         r.Earnings,
		GrossSalary:      r.GrossSalary,
		Deductions:       r.Deductions,
		TotalDeductions:  r.TotalDeductions,
		NetSalary:        r.NetSalary,
		Status:           string(r.Status),
		ProcessedBy:      r.ProcessedBy,
		ProcessedAt:      processedAtStr,
		PaymentDate:      paymentDateStr,
		PaymentReference: r.PaymentReference,
		PayslipURL:       r.PayslipURL,
		Notes:            r.Notes,
	}
}

func mapToRecordResponses(records []payroll.PayrollRecord) []payroll.PayrollRecordResponse {
	result := make([]payroll.PayrollRecordResponse, 0, len(records))
	for _, r := range records {
		result = append(result, mapToRecordResponse(r))
	}
	return result
}
