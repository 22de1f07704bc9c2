package leave

import (
	"context"
	"fmt"

	"github.com/sawithr/sawit-hr-backend-go/internal/domain/attendance"
	"github.com/sawithr/sawit-hr-backend-go/internal/domain/employee"
	"github.com/sawithr/sawit-hr-backend-go/internal/domain/leave"
	"github.com/sawithr/sawit-hr-backend-go/internal/pkg/database"
	"github.com/sawithr/sawit-hr-backend-go/internal/pkg/validator"
	attendanceservice "github.com/sawithr/sawit-hr-backend-go/internal/service/attendance"
	"github.com/sawithr/sawit-hr-backend-go/internal/service/calendar"
)

// Service runs the leave request workflow: pending on submission, then a
// single conditional transition to approved or rejected. Approval
// materializes leave attendance over the request's working days.
type Service struct {
	db database.TxRunner
	leave.LeaveRequestRepository
	employeeRepository employee.EmployeeRepository
	calendar           *calendar.Service
	attendance         *attendanceservice.Service
}

func NewLeaveService(
	db database.TxRunner,
	leaveRepository leave.LeaveRequestRepository,
	employeeRepository employee.EmployeeRepository,
	calendarService *calendar.Service,
	attendanceService *attendanceservice.Service,
) *Service {
	return &Service{
		db:                     db,
		LeaveRequestRepository: leaveRepository,
		employeeRepository:     employeeRepository,
		calendar:               calendarService,
		attendance:             attendanceService,
	}
}

// Submit validates the request, verifies the employee, computes the
// working-day total against the current holiday set, and persists a pending
// request carrying that total.
func (s *Service) Submit(ctx context.Context, req leave.CreateLeaveRequestRequest) (leave.LeaveRequest, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequest{}, err
	}

	if _, err := s.employeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		return leave.LeaveRequest{}, err
	}

	start, _ := validator.IsValidDate(req.StartDate)
	end, _ := validator.IsValidDate(req.EndDate)

	totalDays, err := s.calendar.CountWorkingDays(ctx, start, end)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to compute leave duration: %w", err)
	}
	if totalDays == 0 {
		return leave.LeaveRequest{}, validator.ValidationErrors{
			{Field: "start_date", Message: "Requested range contains no working days"},
		}
	}

	request := leave.LeaveRequest{
		EmployeeID: req.EmployeeID,
		Type:       leave.LeaveType(req.Type),
		StartDate:  start,
		EndDate:    end,
		TotalDays:  totalDays,
		Reason:     req.Reason,
		Status:     leave.LeaveRequestStatusPending,
	}

	return s.LeaveRequestRepository.Create(ctx, request)
}

// Approve transitions a pending request to approved and materializes one
// leave attendance record per working day, atomically. The persisted
// TotalDays stays authoritative even if holidays changed since submission;
// materialization skips any day that became non-working in the meantime.
func (s *Service) Approve(ctx context.Context, id, approverID string) (leave.LeaveRequest, error) {
	request, err := s.LeaveRequestRepository.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	if request.Status != leave.LeaveRequestStatusPending {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestAlreadyProcessed
	}

	err = s.db.WithinTx(ctx, func(ctx context.Context) error {
		moved, err := s.LeaveRequestRepository.UpdateStatusIf(ctx, id, leave.LeaveRequestStatusPending, leave.StatusUpdate{
			Status:     leave.LeaveRequestStatusApproved,
			ApprovedBy: &approverID,
		})
		if err != nil {
			return err
		}
		if !moved {
			return leave.ErrLeaveRequestAlreadyProcessed
		}

		_, err = s.attendance.MaterializeRange(ctx, request.EmployeeID, request.StartDate, request.EndDate, attendance.StatusLeave, request.Type.Label())
		return err
	})
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	return s.LeaveRequestRepository.GetByID(ctx, id)
}

// Reject transitions a pending request to rejected with the given reason.
// No attendance is touched.
func (s *Service) Reject(ctx context.Context, id, approverID string, req leave.RejectLeaveRequestRequest) (leave.LeaveRequest, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequest{}, err
	}

	request, err := s.LeaveRequestRepository.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	if request.Status != leave.LeaveRequestStatusPending {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestAlreadyProcessed
	}

	moved, err := s.LeaveRequestRepository.UpdateStatusIf(ctx, id, leave.LeaveRequestStatusPending, leave.StatusUpdate{
		Status:          leave.LeaveRequestStatusRejected,
		ApprovedBy:      &approverID,
		RejectionReason: &req.Reason,
	})
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	if !moved {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestAlreadyProcessed
	}

	return s.LeaveRequestRepository.GetByID(ctx, id)
}

// Get returns one leave request.
func (s *Service) Get(ctx context.Context, id string) (leave.LeaveRequest, error) {
	return s.LeaveRequestRepository.GetByID(ctx, id)
}

// List returns leave requests matching the filter plus the total count.
func (s *Service) List(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, int64, error) {
	return s.LeaveRequestRepository.List(ctx, filter)
}
