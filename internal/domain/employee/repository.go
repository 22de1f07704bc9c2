package employee

import (
	"context"
	"time"
)

type EmployeeFilter struct {
	DivisionID *string
	Status     *string
	Search     *string
	Page       int
	Limit      int
}

// WorkflowUpdate carries the fields a workflow transition writes. Nil fields
// are left untouched; the Clear flags null out their column.
type WorkflowUpdate struct {
	Status                 *Status
	WorkflowStatus         *WorkflowStatus
	ProbationEndDate       *time.Time
	ClearProbationEndDate  bool
	TerminationReason      *TerminationReason
	ClearTerminationReason bool
}

type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, int64, error)
	ListActiveIDs(ctx context.Context) ([]string, error)
	UpdateAssignment(ctx context.Context, id string, divisionID, positionID string) error
	UpdateWorkflow(ctx context.Context, id string, update WorkflowUpdate) error
}
