package payslip

import (
	"fmt"
	"io"
	"sort"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"

	"github.com/zenithhr/payroll-backend-go/internal/domain/employee"
	"github.com/zenithhr/payroll-backend-go/internal/domain/payroll"
)

// Render writes a PDF payslip for a paid payroll record to w.
func Render(w io.Writer, record payroll.PayrollRecord, emp employee.Employee) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Payslip No: %s", record.PayrollNumber))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Employee: %s (%s)", emp.FullName, emp.EmployeeCode))
	pdf.Ln(6)
	if emp.Department != "" {
		pdf.Cell(0, 7, fmt.Sprintf("Department: %s", emp.Department))
		pdf.Ln(6)
	}
	pdf.Cell(0, 7, fmt.Sprintf("Period: %s to %s",
		record.PeriodStart.Format("2006-01-02"), record.PeriodEnd.Format("2006-01-02")))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Days worked: %d of %d", record.DaysWorked, record.WorkingDays))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Earnings")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	writeLine(pdf, "Basic Salary", record.BasicSalary)
	for _, name := range sortedKeys(record.Earnings) {
		writeLine(pdf, name, record.Earnings[name])
	}
	writeLine(pdf, "Gross Salary", record.GrossSalary)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Deductions")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	for _, name := range sortedKeys(record.Deductions) {
		writeLine(pdf, name, record.Deductions[name])
	}
	writeLine(pdf, "Total Deductions", record.TotalDeductions)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	writeLine(pdf, "Net Salary", record.NetSalary)

	if record.PaymentReference != nil {
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "", 10)
		pdf.Cell(0, 6, fmt.Sprintf("Payment reference: %s", *record.PaymentReference))
	}

	return pdf.Output(w)
}

func writeLine(pdf *gofpdf.Fpdf, label string, amount decimal.Decimal) {
	pdf.Cell(120, 7, label)
	pdf.CellFormat(40, 7, amount.StringFixed(2), "", 0, "R", false, 0, "")
	pdf.Ln(7)
}

func sortedKeys(m map[string]decimal.Decimal) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
