package payroll

// PayrollStatus enum
type PayrollStatus string

const (
	PayrollStatusDraft     PayrollStatus = "draft"
	PayrollStatusProcessed PayrollStatus = "processed"
	PayrollStatusPaid      PayrollStatus = "paid"
	PayrollStatusCancelled PayrollStatus = "cancelled"
)

// statusTransitions is the single source of truth for the record lifecycle:
// draft -> processed -> paid, with cancellation allowed before payment.
var statusTransitions = map[PayrollStatus][]PayrollStatus{
	PayrollStatusDraft:     {PayrollStatusProcessed, PayrollStatusCancelled},
	PayrollStatusProcessed: {PayrollStatusPaid, PayrollStatusCancelled},
	PayrollStatusPaid:      {},
	PayrollStatusCancelled: {},
}

// IsValid reports whether s is a known status.
func (s PayrollStatus) IsValid() bool {
	_, ok := statusTransitions[s]
	return ok
}

// CanTransitionTo reports whether the lifecycle allows moving from s to next.
func (s PayrollStatus) CanTransitionTo(next PayrollStatus) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transitions are allowed from s.
func (s PayrollStatus) IsTerminal() bool {
	return len(statusTransitions[s]) == 0
}
