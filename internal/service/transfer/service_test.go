package transfer

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sawithr/sawit-hr-backend-go/internal/domain/employee"
	"github.com/sawithr/sawit-hr-backend-go/internal/domain/transfer"
	"github.com/sawithr/sawit-hr-backend-go/internal/pkg/validator"
)

type passthroughTx struct{}

func (passthroughTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeTransferRepository struct {
	transfers map[string]transfer.EmployeeTransfer
	nextID    int
}

func newFakeTransferRepository() *fakeTransferRepository {
	return &fakeTransferRepository{transfers: make(map[string]transfer.EmployeeTransfer)}
}

func (f *fakeTransferRepository) Create(ctx context.Context, t transfer.EmployeeTransfer) (transfer.EmployeeTransfer, error) {
	f.nextID++
	t.ID = fmt.Sprintf("tr-%d", f.nextID)
	f.transfers[t.ID] = t
	return t, nil
}

func (f *fakeTransferRepository) GetByID(ctx context.Context, id string) (transfer.EmployeeTransfer, error) {
	t, ok := f.transfers[id]
	if !ok {
		return transfer.EmployeeTransfer{}, transfer.ErrTransferNotFound
	}
	return t, nil
}

func (f *fakeTransferRepository) List(ctx context.Context, filter transfer.TransferFilter) ([]transfer.EmployeeTransfer, int64, error) {
	var out []transfer.EmployeeTransfer
	for _, t := range f.transfers {
		out = append(out, t)
	}
	return out, int64(len(out)), nil
}

func (f *fakeTransferRepository) ListDue(ctx context.Context, today time.Time) ([]transfer.EmployeeTransfer, error) {
	var out []transfer.EmployeeTransfer
	for _, t := range f.transfers {
		if t.Due(today) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTransferRepository) UpdateStatusIf(ctx context.Context, id string, expected transfer.TransferStatus, update transfer.StatusUpdate) (bool, error) {
	t, ok := f.transfers[id]
	if !ok || t.Status != expected {
		return false, nil
	}
	t.Status = update.Status
	if update.ApprovedBy != nil {
		t.ApprovedBy = update.ApprovedBy
		now := time.Now()
		t.ApprovedAt = &now
	}
	if update.Notes != nil {
		t.Notes = update.Notes
	}
	if update.MarkCompleted {
		now := time.Now()
		t.CompletedAt = &now
	}
	f.transfers[id] = t
	return true, nil
}

type fakeEmployeeRepository struct {
	employees        map[string]employee.Employee
	assignmentErrFor map[string]error
}

func newFakeEmployeeRepository(employees ...employee.Employee) *fakeEmployeeRepository {
	f := &fakeEmployeeRepository{
		employees:        make(map[string]employee.Employee),
		assignmentErrFor: make(map[string]error),
	}
	for _, emp := range employees {
		f.employees[emp.ID] = emp
	}
	return f
}

func (f *fakeEmployeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (f *fakeEmployeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepository) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	return nil, 0, nil
}

func (f *fakeEmployeeRepository) ListActiveIDs(ctx context.Context) ([]string, error) {
	return nil, nil
}

func (f *fakeEmployeeRepository) UpdateAssignment(ctx context.Context, id string, divisionID, positionID string) error {
	if err := f.assignmentErrFor[id]; err != nil {
		return err
	}
	emp, ok := f.employees[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	emp.DivisionID = divisionID
	emp.PositionID = positionID
	f.employees[id] = emp
	return nil
}

func (f *fakeEmployeeRepository) UpdateWorkflow(ctx context.Context, id string, update employee.WorkflowUpdate) error {
	return nil
}

func harvester(id string) employee.Employee {
	return employee.Employee{
		ID:         id,
		FullName:   "Budi Santoso",
		DivisionID: "div-harvest",
		PositionID: "pos-harvester",
		Status:     employee.StatusActive,
	}
}

func TestSubmit_SnapshotsFromAssignment(t *testing.T) {
	ctx := context.Background()
	trRepo := newFakeTransferRepository()
	empRepo := newFakeEmployeeRepository(harvester("emp-1"))
	svc := NewTransferService(passthroughTx{}, trRepo, empRepo)

	created, err := svc.Submit(ctx, transfer.CreateTransferRequest{
		EmployeeID:    "emp-1",
		ToDivisionID:  "div-mill",
		EffectiveDate: "2024-09-01",
		Reason:        "mill expansion",
	}, "user-hr")
	require.NoError(t, err)

	assert.Equal(t, transfer.TransferStatusPending, created.Status)
	assert.Equal(t, "div-harvest", created.FromDivisionID)
	assert.Equal(t, "pos-harvester", created.FromPositionID)
	assert.Equal(t, "div-mill", created.ToDivisionID)
	// Empty target position inherits the current one.
	assert.Equal(t, "pos-harvester", created.ToPositionID)
	assert.Equal(t, transfer.TransferTypeDivision, created.Type())
	assert.Equal(t, "user-hr", created.RequestedBy)
}

func TestSubmit_RejectsNoOpTransfer(t *testing.T) {
	ctx := context.Background()
	svc := NewTransferService(passthroughTx{}, newFakeTransferRepository(), newFakeEmployeeRepository(harvester("emp-1")))

	_, err := svc.Submit(ctx, transfer.CreateTransferRequest{
		EmployeeID:    "emp-1",
		ToDivisionID:  "div-harvest",
		ToPositionID:  "pos-harvester",
		EffectiveDate: "2024-09-01",
		Reason:        "none",
	}, "user-hr")

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
}

func TestApprove_DoesNotTouchAssignment(t *testing.T) {
	ctx := context.Background()
	trRepo := newFakeTransferRepository()
	empRepo := newFakeEmployeeRepository(harvester("emp-1"))
	svc := NewTransferService(passthroughTx{}, trRepo, empRepo)

	created, err := svc.Submit(ctx, transfer.CreateTransferRequest{
		EmployeeID:    "emp-1",
		ToDivisionID:  "div-mill",
		EffectiveDate: "2024-09-01",
		Reason:        "mill expansion",
	}, "user-hr")
	require.NoError(t, err)

	approved, err := svc.Approve(ctx, created.ID, "user-manager")
	require.NoError(t, err)

	assert.Equal(t, transfer.TransferStatusApproved, approved.Status)
	require.NotNil(t, approved.ApprovedBy)
	assert.Equal(t, "user-manager", *approved.ApprovedBy)

	// The move is applied at completion, not approval.
	emp, err := empRepo.GetByID(ctx, "emp-1")
	require.NoError(t, err)
	assert.Equal(t, "div-harvest", emp.DivisionID)
}

func TestComplete_AppliesAssignment(t *testing.T) {
	ctx := context.Background()
	trRepo := newFakeTransferRepository()
	empRepo := newFakeEmployeeRepository(harvester("emp-1"))
	svc := NewTransferService(passthroughTx{}, trRepo, empRepo)

	created, err := svc.Submit(ctx, transfer.CreateTransferRequest{
		EmployeeID:    "emp-1",
		ToDivisionID:  "div-mill",
		ToPositionID:  "pos-operator",
		EffectiveDate: "2024-09-01",
		Reason:        "mill expansion",
	}, "user-hr")
	require.NoError(t, err)

	_, err = svc.Approve(ctx, created.ID, "user-manager")
	require.NoError(t, err)

	completed, err := svc.Complete(ctx, created.ID)
	require.NoError(t, err)

	assert.Equal(t, transfer.TransferStatusCompleted, completed.Status)
	assert.NotNil(t, completed.CompletedAt)
	assert.Equal(t, transfer.TransferTypeBoth, completed.Type())

	emp, err := empRepo.GetByID(ctx, "emp-1")
	require.NoError(t, err)
	assert.Equal(t, "div-mill", emp.DivisionID)
	assert.Equal(t, "pos-operator", emp.PositionID)
}

func TestComplete_RequiresApprovedState(t *testing.T) {
	ctx := context.Background()
	trRepo := newFakeTransferRepository()
	empRepo := newFakeEmployeeRepository(harvester("emp-1"))
	svc := NewTransferService(passthroughTx{}, trRepo, empRepo)

	created, err := svc.Submit(ctx, transfer.CreateTransferRequest{
		EmployeeID:    "emp-1",
		ToDivisionID:  "div-mill",
		EffectiveDate: "2024-09-01",
		Reason:        "mill expansion",
	}, "user-hr")
	require.NoError(t, err)

	_, err = svc.Complete(ctx, created.ID)
	assert.ErrorIs(t, err, transfer.ErrTransferNotApproved)

	_, err = svc.Reject(ctx, created.ID, "user-manager", transfer.RejectTransferRequest{Notes: "headcount frozen"})
	require.NoError(t, err)

	_, err = svc.Complete(ctx, created.ID)
	assert.ErrorIs(t, err, transfer.ErrTransferNotApproved)
}

func TestReject_AlreadyProcessed(t *testing.T) {
	ctx := context.Background()
	trRepo := newFakeTransferRepository()
	empRepo := newFakeEmployeeRepository(harvester("emp-1"))
	svc := NewTransferService(passthroughTx{}, trRepo, empRepo)

	created, err := svc.Submit(ctx, transfer.CreateTransferRequest{
		EmployeeID:    "emp-1",
		ToDivisionID:  "div-mill",
		EffectiveDate: "2024-09-01",
		Reason:        "mill expansion",
	}, "user-hr")
	require.NoError(t, err)

	rejected, err := svc.Reject(ctx, created.ID, "user-manager", transfer.RejectTransferRequest{Notes: "headcount frozen"})
	require.NoError(t, err)
	require.NotNil(t, rejected.Notes)
	assert.Equal(t, "headcount frozen", *rejected.Notes)

	_, err = svc.Approve(ctx, created.ID, "user-manager")
	assert.ErrorIs(t, err, transfer.ErrTransferAlreadyProcessed)
}

func TestAutoCompleteDue_IsolatesFailures(t *testing.T) {
	ctx := context.Background()
	trRepo := newFakeTransferRepository()
	empRepo := newFakeEmployeeRepository(harvester("emp-1"), harvester("emp-2"), harvester("emp-3"))
	empRepo.assignmentErrFor["emp-2"] = errors.New("deadlock detected")
	svc := NewTransferService(passthroughTx{}, trRepo, empRepo)

	today := time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)
	for _, empID := range []string{"emp-1", "emp-2", "emp-3"} {
		created, err := svc.Submit(ctx, transfer.CreateTransferRequest{
			EmployeeID:    empID,
			ToDivisionID:  "div-mill",
			EffectiveDate: "2024-08-31",
			Reason:        "mill expansion",
		}, "user-hr")
		require.NoError(t, err)
		_, err = svc.Approve(ctx, created.ID, "user-manager")
		require.NoError(t, err)
	}

	completed, err := svc.AutoCompleteDue(ctx, today)
	require.NoError(t, err)

	// Two complete despite the failure in the middle of the sweep.
	require.Len(t, completed, 2)
	for _, done := range completed {
		assert.NotEqual(t, "emp-2", done.EmployeeID)
		assert.Equal(t, transfer.TransferStatusCompleted, done.Status)
	}
}

func TestAutoCompleteDue_SkipsFutureEffectiveDates(t *testing.T) {
	ctx := context.Background()
	trRepo := newFakeTransferRepository()
	empRepo := newFakeEmployeeRepository(harvester("emp-1"))
	svc := NewTransferService(passthroughTx{}, trRepo, empRepo)

	created, err := svc.Submit(ctx, transfer.CreateTransferRequest{
		EmployeeID:    "emp-1",
		ToDivisionID:  "div-mill",
		EffectiveDate: "2024-12-01",
		Reason:        "mill expansion",
	}, "user-hr")
	require.NoError(t, err)
	_, err = svc.Approve(ctx, created.ID, "user-manager")
	require.NoError(t, err)

	completed, err := svc.AutoCompleteDue(ctx, time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Empty(t, completed)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, transfer.TransferStatusApproved, got.Status)
}
