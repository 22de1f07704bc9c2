package response

import (
	"errors"
	"net/http"

	"github.com/sawithr/sawit-hr-backend-go/internal/domain/attendance"
	"github.com/sawithr/sawit-hr-backend-go/internal/domain/auth"
	"github.com/sawithr/sawit-hr-backend-go/internal/domain/employee"
	"github.com/sawithr/sawit-hr-backend-go/internal/domain/holiday"
	"github.com/sawithr/sawit-hr-backend-go/internal/domain/leave"
	"github.com/sawithr/sawit-hr-backend-go/internal/domain/master/division"
	"github.com/sawithr/sawit-hr-backend-go/internal/domain/master/position"
	"github.com/sawithr/sawit-hr-backend-go/internal/domain/transfer"
	"github.com/sawithr/sawit-hr-backend-go/internal/domain/user"
	"github.com/sawithr/sawit-hr-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrInvalidWorkflowTransition):
		Conflict(w, "Employee workflow does not permit this transition")

	// Master data errors
	case errors.Is(err, division.ErrDivisionNotFound):
		NotFound(w, "Division not found")
	case errors.Is(err, division.ErrDivisionNameExists):
		Conflict(w, "Division name already exists")
	case errors.Is(err, position.ErrPositionNotFound):
		NotFound(w, "Position not found")
	case errors.Is(err, position.ErrPositionNameExists):
		Conflict(w, "Position name already exists")

	// Holiday domain errors
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, holiday.ErrHolidayDateExists):
		Conflict(w, "A holiday already exists on this date")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed):
		Conflict(w, "Leave request already processed")

	// Transfer domain errors
	case errors.Is(err, transfer.ErrTransferNotFound):
		NotFound(w, "Employee transfer not found")
	case errors.Is(err, transfer.ErrTransferAlreadyProcessed):
		Conflict(w, "Employee transfer already processed")
	case errors.Is(err, transfer.ErrTransferNotApproved):
		Conflict(w, "Employee transfer is not in approved state")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
