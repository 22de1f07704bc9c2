package transfer

import (
	"context"
	"log/slog"
	"time"

	"github.com/sawithr/sawit-hr-backend-go/internal/domain/employee"
	"github.com/sawithr/sawit-hr-backend-go/internal/domain/transfer"
	"github.com/sawithr/sawit-hr-backend-go/internal/pkg/database"
	"github.com/sawithr/sawit-hr-backend-go/internal/pkg/validator"
)

// Service runs the employee transfer workflow. The assignment change is
// applied at completion, never at approval, so an approved-but-pending
// transfer leaves the employee record untouched until its effective date.
type Service struct {
	db database.TxRunner
	transfer.TransferRepository
	employeeRepository employee.EmployeeRepository
}

func NewTransferService(
	db database.TxRunner,
	transferRepository transfer.TransferRepository,
	employeeRepository employee.EmployeeRepository,
) *Service {
	return &Service{
		db:                 db,
		TransferRepository: transferRepository,
		employeeRepository: employeeRepository,
	}
}

// Submit snapshots the employee's current assignment into the From fields and
// creates a pending transfer. Empty To fields inherit the current assignment;
// a transfer that changes nothing is rejected outright.
func (s *Service) Submit(ctx context.Context, req transfer.CreateTransferRequest, requestedBy string) (transfer.EmployeeTransfer, error) {
	if err := req.Validate(); err != nil {
		return transfer.EmployeeTransfer{}, err
	}

	emp, err := s.employeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return transfer.EmployeeTransfer{}, err
	}

	toDivisionID := req.ToDivisionID
	if toDivisionID == "" {
		toDivisionID = emp.DivisionID
	}
	toPositionID := req.ToPositionID
	if toPositionID == "" {
		toPositionID = emp.PositionID
	}

	if toDivisionID == emp.DivisionID && toPositionID == emp.PositionID {
		return transfer.EmployeeTransfer{}, validator.ValidationErrors{
			{Field: "to_division_id", Message: "Transfer must change the division or the position"},
		}
	}

	effectiveDate, _ := validator.IsValidDate(req.EffectiveDate)

	t := transfer.EmployeeTransfer{
		EmployeeID:     req.EmployeeID,
		FromDivisionID: emp.DivisionID,
		FromPositionID: emp.PositionID,
		ToDivisionID:   toDivisionID,
		ToPositionID:   toPositionID,
		TransferDate:   time.Now(),
		EffectiveDate:  effectiveDate,
		Reason:         req.Reason,
		Status:         transfer.TransferStatusPending,
		RequestedBy:    requestedBy,
	}

	return s.TransferRepository.Create(ctx, t)
}

// Approve moves a pending transfer to approved. The employee's assignment is
// not touched here.
func (s *Service) Approve(ctx context.Context, id, approverID string) (transfer.EmployeeTransfer, error) {
	t, err := s.TransferRepository.GetByID(ctx, id)
	if err != nil {
		return transfer.EmployeeTransfer{}, err
	}
	if t.Status != transfer.TransferStatusPending {
		return transfer.EmployeeTransfer{}, transfer.ErrTransferAlreadyProcessed
	}

	moved, err := s.TransferRepository.UpdateStatusIf(ctx, id, transfer.TransferStatusPending, transfer.StatusUpdate{
		Status:     transfer.TransferStatusApproved,
		ApprovedBy: &approverID,
	})
	if err != nil {
		return transfer.EmployeeTransfer{}, err
	}
	if !moved {
		return transfer.EmployeeTransfer{}, transfer.ErrTransferAlreadyProcessed
	}

	return s.TransferRepository.GetByID(ctx, id)
}

// Reject moves a pending transfer to rejected, optionally with notes.
func (s *Service) Reject(ctx context.Context, id, approverID string, req transfer.RejectTransferRequest) (transfer.EmployeeTransfer, error) {
	t, err := s.TransferRepository.GetByID(ctx, id)
	if err != nil {
		return transfer.EmployeeTransfer{}, err
	}
	if t.Status != transfer.TransferStatusPending {
		return transfer.EmployeeTransfer{}, transfer.ErrTransferAlreadyProcessed
	}

	update := transfer.StatusUpdate{
		Status:     transfer.TransferStatusRejected,
		ApprovedBy: &approverID,
	}
	if req.Notes != "" {
		update.Notes = &req.Notes
	}

	moved, err := s.TransferRepository.UpdateStatusIf(ctx, id, transfer.TransferStatusPending, update)
	if err != nil {
		return transfer.EmployeeTransfer{}, err
	}
	if !moved {
		return transfer.EmployeeTransfer{}, transfer.ErrTransferAlreadyProcessed
	}

	return s.TransferRepository.GetByID(ctx, id)
}

// Complete applies an approved transfer: the status flip and the assignment
// update commit together or not at all.
func (s *Service) Complete(ctx context.Context, id string) (transfer.EmployeeTransfer, error) {
	t, err := s.TransferRepository.GetByID(ctx, id)
	if err != nil {
		return transfer.EmployeeTransfer{}, err
	}
	if t.Status != transfer.TransferStatusApproved {
		return transfer.EmployeeTransfer{}, transfer.ErrTransferNotApproved
	}

	err = s.db.WithinTx(ctx, func(ctx context.Context) error {
		moved, err := s.TransferRepository.UpdateStatusIf(ctx, id, transfer.TransferStatusApproved, transfer.StatusUpdate{
			Status:        transfer.TransferStatusCompleted,
			MarkCompleted: true,
		})
		if err != nil {
			return err
		}
		if !moved {
			return transfer.ErrTransferAlreadyProcessed
		}

		return s.employeeRepository.UpdateAssignment(ctx, t.EmployeeID, t.ToDivisionID, t.ToPositionID)
	})
	if err != nil {
		return transfer.EmployeeTransfer{}, err
	}

	return s.TransferRepository.GetByID(ctx, id)
}

// AutoCompleteDue completes every approved transfer whose effective date has
// arrived. One failing transfer is logged and skipped; the rest still
// complete. Returns the transfers that completed in this sweep.
func (s *Service) AutoCompleteDue(ctx context.Context, today time.Time) ([]transfer.EmployeeTransfer, error) {
	due, err := s.TransferRepository.ListDue(ctx, today)
	if err != nil {
		return nil, err
	}

	completed := make([]transfer.EmployeeTransfer, 0, len(due))
	for _, t := range due {
		done, err := s.Complete(ctx, t.ID)
		if err != nil {
			slog.Error("failed to auto-complete transfer",
				"transfer_id", t.ID,
				"employee_id", t.EmployeeID,
				"error", err,
			)
			continue
		}
		completed = append(completed, done)
	}

	return completed, nil
}

// Get returns one transfer.
func (s *Service) Get(ctx context.Context, id string) (transfer.EmployeeTransfer, error) {
	return s.TransferRepository.GetByID(ctx, id)
}

// List returns transfers matching the filter plus the total count.
func (s *Service) List(ctx context.Context, filter transfer.TransferFilter) ([]transfer.EmployeeTransfer, int64, error) {
	return s.TransferRepository.List(ctx, filter)
}
