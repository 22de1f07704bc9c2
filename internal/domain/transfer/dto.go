package transfer

import (
	"github.com/sawithr/sawit-hr-backend-go/internal/pkg/validator"
)

// CreateTransferRequest submits a transfer. Empty To fields mean "unchanged";
// at least one must differ from the employee's current assignment.
type CreateTransferRequest struct {
	EmployeeID    string `json:"employee_id"`
	ToDivisionID  string `json:"to_division_id"`
	ToPositionID  string `json:"to_position_id"`
	EffectiveDate string `json:"effective_date"`
	Reason        string `json:"reason"`
}

func (r CreateTransferRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "Employee is required"})
	}
	if validator.IsEmpty(r.ToDivisionID) && validator.IsEmpty(r.ToPositionID) {
		errs = append(errs, validator.ValidationError{Field: "to_division_id", Message: "A target division or position is required"})
	}
	if _, ok := validator.IsValidDate(r.EffectiveDate); validator.IsEmpty(r.EffectiveDate) || !ok {
		errs = append(errs, validator.ValidationError{Field: "effective_date", Message: "Effective date is required (YYYY-MM-DD)"})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "Reason is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RejectTransferRequest struct {
	Notes string `json:"notes"`
}

// StatusUpdate is the conditional transition write for a transfer.
// MarkCompleted stamps completed_at alongside the status flip.
type StatusUpdate struct {
	Status        TransferStatus
	ApprovedBy    *string
	Notes         *string
	MarkCompleted bool
}

type TransferFilter struct {
	EmployeeID *string
	Status     *string
	Page       int
	Limit      int
}
