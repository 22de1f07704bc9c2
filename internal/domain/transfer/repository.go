package transfer

import (
	"context"
	"time"
)

type TransferRepository interface {
	Create(ctx context.Context, t EmployeeTransfer) (EmployeeTransfer, error)
	GetByID(ctx context.Context, id string) (EmployeeTransfer, error)
	List(ctx context.Context, filter TransferFilter) ([]EmployeeTransfer, int64, error)
	// ListDue returns approved transfers whose effective date is on or
	// before today.
	ListDue(ctx context.Context, today time.Time) ([]EmployeeTransfer, error)
	// UpdateStatusIf transitions the transfer only if its current status
	// still equals expected. Returns false when a concurrent caller won.
	UpdateStatusIf(ctx context.Context, id string, expected TransferStatus, update StatusUpdate) (bool, error)
}
