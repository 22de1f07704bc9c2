package leave

import "context"

type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	List(ctx context.Context, filter LeaveRequestFilter) ([]LeaveRequest, int64, error)
	// UpdateStatusIf transitions the request only if its current status
	// still equals expected. Returns false when the row was already moved
	// past the expected state by a concurrent caller.
	UpdateStatusIf(ctx context.Context, id string, expected LeaveRequestStatus, update StatusUpdate) (bool, error)
}
