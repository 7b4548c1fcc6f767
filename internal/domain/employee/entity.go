package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee is the directory's view of an employee: identity plus the
// compensation configuration the payroll engine consumes. The engine treats
// this as read-only input.
type Employee struct {
	ID               string
	CompanyID        string
	EmployeeCode     string
	FullName         string
	Department       string
	PaymentFrequency PaymentFrequency
	BasicSalary      decimal.Decimal // monthly base amount
	SalaryComponents SalaryComponents
	DeductionConfig  DeductionConfig
	TaxPreferences   TaxPreferences
	EmploymentStatus EmploymentStatus
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        *time.Time
}

type PaymentFrequency string

const (
	PaymentFrequencyMonthly  PaymentFrequency = "monthly"
	PaymentFrequencyBiWeekly PaymentFrequency = "bi-weekly"
	PaymentFrequencyWeekly   PaymentFrequency = "weekly"
)

type EmploymentStatus string

const (
	EmploymentStatusActive     EmploymentStatus = "active"
	EmploymentStatusResigned   EmploymentStatus = "resigned"
	EmploymentStatusTerminated EmploymentStatus = "terminated"
)

// ComponentKind distinguishes flat amounts from percentage rules for custom
// allowances and deductions.
type ComponentKind string

const (
	ComponentKindFixed      ComponentKind = "fixed"
	ComponentKindPercentage ComponentKind = "percentage"
)

// CustomComponent is a named allowance or deduction configured per employee.
// Fixed components carry a monthly amount; percentage components carry a
// percentage (0-100) applied to the relevant base.
type CustomComponent struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
	Kind   ComponentKind   `json:"type"`
}

// SalaryComponents holds the configured monthly allowances. The well-known
// allowances are prorated against the worked period; OvertimeRate is a
// per-hour rate applied to reported overtime.
type SalaryComponents struct {
	HRA          decimal.Decimal   `json:"hra"`
	Transport    decimal.Decimal   `json:"transport"`
	Meal         decimal.Decimal   `json:"meal"`
	Medical      decimal.Decimal   `json:"medical"`
	OvertimeRate decimal.Decimal   `json:"overtime_rate"`
	Custom       []CustomComponent `json:"custom,omitempty"`
}

// DeductionConfig holds the configured statutory flags and recurring
// deduction amounts.
type DeductionConfig struct {
	PFEnabled       bool              `json:"pf"`
	ESIEnabled      bool              `json:"esi"`
	ProfessionalTax bool              `json:"professional_tax"`
	InsuranceAmount decimal.Decimal   `json:"insurance"`
	LoanDeduction   decimal.Decimal   `json:"loan"`
	Custom          []CustomComponent `json:"custom,omitempty"`
}

type TaxRegime string

const (
	TaxRegimeOld TaxRegime = "old"
	TaxRegimeNew TaxRegime = "new"
)

// Exemption is a section-tagged amount deductible from annual taxable income
// under the old regime.
type Exemption struct {
	Section string          `json:"section"`
	Amount  decimal.Decimal `json:"amount"`
}

type TaxPreferences struct {
	Regime     TaxRegime   `json:"tax_regime"`
	Exemptions []Exemption `json:"exemptions,omitempty"`
}
