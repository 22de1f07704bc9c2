package employee

import (
	"github.com/shopspring/decimal"

	"github.com/sawithr/sawit-hr-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	EmployeeCode   string `json:"employee_code"`
	FullName       string `json:"full_name"`
	DivisionID     string `json:"division_id"`
	PositionID     string `json:"position_id"`
	EmploymentType string `json:"employment_type"`
	DailyWage      string `json:"daily_wage"`
	JoinDate       string `json:"join_date"`
}

func (r CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmployeeCode(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{Field: "employee_code", Message: "Employee code must match NNNN-NNNN"})
	}
	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "Full name is required"})
	}
	if validator.IsEmpty(r.DivisionID) {
		errs = append(errs, validator.ValidationError{Field: "division_id", Message: "Division is required"})
	}
	if validator.IsEmpty(r.PositionID) {
		errs = append(errs, validator.ValidationError{Field: "position_id", Message: "Position is required"})
	}
	switch EmploymentType(r.EmploymentType) {
	case EmploymentTypePermanent, EmploymentTypeContract, EmploymentTypeCasual:
	default:
		errs = append(errs, validator.ValidationError{Field: "employment_type", Message: "Invalid employment type"})
	}
	if _, err := decimal.NewFromString(r.DailyWage); err != nil {
		errs = append(errs, validator.ValidationError{Field: "daily_wage", Message: "Daily wage must be a decimal number"})
	}
	if _, ok := validator.IsValidDate(r.JoinDate); validator.IsEmpty(r.JoinDate) || !ok {
		errs = append(errs, validator.ValidationError{Field: "join_date", Message: "Join date is required (YYYY-MM-DD)"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// StartProbationRequest enters the probation workflow with an explicit end
// date, persisted rather than derived from the join date.
type StartProbationRequest struct {
	ProbationEndDate string `json:"probation_end_date"`
}

func (r StartProbationRequest) Validate() error {
	if _, ok := validator.IsValidDate(r.ProbationEndDate); validator.IsEmpty(r.ProbationEndDate) || !ok {
		return validator.ValidationErrors{
			{Field: "probation_end_date", Message: "Probation end date is required (YYYY-MM-DD)"},
		}
	}
	return nil
}

type ExtendProbationRequest struct {
	ProbationEndDate string `json:"probation_end_date"`
}

func (r ExtendProbationRequest) Validate() error {
	if _, ok := validator.IsValidDate(r.ProbationEndDate); validator.IsEmpty(r.ProbationEndDate) || !ok {
		return validator.ValidationErrors{
			{Field: "probation_end_date", Message: "Probation end date is required (YYYY-MM-DD)"},
		}
	}
	return nil
}

type ApproveTerminationRequest struct {
	Reason string `json:"reason"`
}

func (r ApproveTerminationRequest) Validate() error {
	if !IsValidTerminationReason(TerminationReason(r.Reason)) {
		return validator.ValidationErrors{
			{Field: "reason", Message: "Invalid termination reason"},
		}
	}
	return nil
}
