package leave

import (
	"github.com/sawithr/sawit-hr-backend-go/internal/pkg/validator"
)

type CreateLeaveRequestRequest struct {
	EmployeeID string `json:"employee_id"`
	Type       string `json:"type"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Reason     string `json:"reason"`
}

func (r CreateLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "Employee is required"})
	}
	if !IsValidLeaveType(LeaveType(r.Type)) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "Invalid leave type"})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if validator.IsEmpty(r.StartDate) || !startOK {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "Start date is required (YYYY-MM-DD)"})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if validator.IsEmpty(r.EndDate) || !endOK {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "End date is required (YYYY-MM-DD)"})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "End date must not be before start date"})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "Reason is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RejectLeaveRequestRequest struct {
	Reason string `json:"reason"`
}

func (r RejectLeaveRequestRequest) Validate() error {
	if validator.IsEmpty(r.Reason) {
		return validator.ValidationErrors{
			{Field: "reason", Message: "Rejection reason is required"},
		}
	}
	return nil
}

// StatusUpdate is the conditional transition write. Repositories apply it
// only while the row still holds the expected pre-state.
type StatusUpdate struct {
	Status          LeaveRequestStatus
	ApprovedBy      *string
	RejectionReason *string
}

type LeaveRequestFilter struct {
	EmployeeID *string
	Status     *string
	StartDate  *string
	EndDate    *string
	Page       int
	Limit      int
}
