package employee

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sawithr/sawit-hr-backend-go/internal/domain/employee"
	"github.com/sawithr/sawit-hr-backend-go/internal/domain/master/division"
	"github.com/sawithr/sawit-hr-backend-go/internal/domain/master/position"
	"github.com/sawithr/sawit-hr-backend-go/internal/pkg/validator"
)

type passthroughTx struct{}

func (passthroughTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeEmployeeRepository struct {
	employees map[string]employee.Employee
	nextID    int
}

func newFakeEmployeeRepository(employees ...employee.Employee) *fakeEmployeeRepository {
	f := &fakeEmployeeRepository{employees: make(map[string]employee.Employee)}
	for _, emp := range employees {
		f.employees[emp.ID] = emp
	}
	return f
}

func (f *fakeEmployeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	for _, existing := range f.employees {
		if existing.EmployeeCode == emp.EmployeeCode {
			return employee.Employee{}, employee.ErrEmployeeCodeExists
		}
	}
	f.nextID++
	emp.ID = fmt.Sprintf("emp-%d", f.nextID)
	f.employees[emp.ID] = emp
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
	var out []employee.Employee
	for _, emp := range f.employees {
		out = append(out, emp)
	}
	return out, int64(len(out)), nil
}

func (f *fakeEmployeeRepository) ListActiveIDs(ctx context.Context) ([]string, error) {
	var ids []string
	for _, emp := range f.employees {
		if emp.Status == employee.StatusActive {
			ids = append(ids, emp.ID)
		}
	}
	return ids, nil
}

func (f *fakeEmployeeRepository) UpdateAssignment(ctx context.Context, id string, divisionID, positionID string) error {
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
	emp, ok := f.employees[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	if update.Status != nil {
		emp.Status = *update.Status
	}
	if update.WorkflowStatus != nil {
		emp.WorkflowStatus = *update.WorkflowStatus
	}
	if update.ProbationEndDate != nil {
		emp.ProbationEndDate = update.ProbationEndDate
	}
	if update.ClearProbationEndDate {
		emp.ProbationEndDate = nil
	}
	if update.TerminationReason != nil {
		emp.TerminationReason = update.TerminationReason
	}
	if update.ClearTerminationReason {
		emp.TerminationReason = nil
	}
	f.employees[id] = emp
	return nil
}

type fakeDivisionRepository struct {
	divisions map[string]division.Division
}

func (f *fakeDivisionRepository) Create(ctx context.Context, d division.Division) (division.Division, error) {
	return d, nil
}

func (f *fakeDivisionRepository) GetByID(ctx context.Context, id string) (division.Division, error) {
	d, ok := f.divisions[id]
	if !ok {
		return division.Division{}, division.ErrDivisionNotFound
	}
	return d, nil
}

func (f *fakeDivisionRepository) GetByName(ctx context.Context, name string) (division.Division, error) {
	return division.Division{}, division.ErrDivisionNotFound
}

func (f *fakeDivisionRepository) List(ctx context.Context) ([]division.Division, error) {
	return nil, nil
}

func (f *fakeDivisionRepository) Update(ctx context.Context, req division.UpdateDivisionRequest) error {
	return nil
}

func (f *fakeDivisionRepository) Delete(ctx context.Context, id string) error {
	return nil
}

type fakePositionRepository struct {
	positions map[string]position.Position
}

func (f *fakePositionRepository) Create(ctx context.Context, p position.Position) (position.Position, error) {
	return p, nil
}

func (f *fakePositionRepository) GetByID(ctx context.Context, id string) (position.Position, error) {
	p, ok := f.positions[id]
	if !ok {
		return position.Position{}, position.ErrPositionNotFound
	}
	return p, nil
}

func (f *fakePositionRepository) GetByName(ctx context.Context, name string) (position.Position, error) {
	return position.Position{}, position.ErrPositionNotFound
}

func (f *fakePositionRepository) List(ctx context.Context) ([]position.Position, error) {
	return nil, nil
}

func (f *fakePositionRepository) Update(ctx context.Context, req position.UpdatePositionRequest) error {
	return nil
}

func (f *fakePositionRepository) Delete(ctx context.Context, id string) error {
	return nil
}

func newTestService(empRepo *fakeEmployeeRepository) *Service {
	divRepo := &fakeDivisionRepository{divisions: map[string]division.Division{
		"div-harvest": {ID: "div-harvest", Name: "Harvesting"},
	}}
	posRepo := &fakePositionRepository{positions: map[string]position.Position{
		"pos-harvester": {ID: "pos-harvester", Name: "Harvester", BaseDailyPay: decimal.NewFromInt(150000)},
	}}
	return NewEmployeeService(passthroughTx{}, empRepo, divRepo, posRepo)
}

func activeEmployee(id string, workflow employee.WorkflowStatus) employee.Employee {
	return employee.Employee{
		ID:             id,
		EmployeeCode:   "2024-0001",
		FullName:       "Budi Santoso",
		DivisionID:     "div-harvest",
		PositionID:     "pos-harvester",
		EmploymentType: employee.EmploymentTypePermanent,
		Status:         employee.StatusActive,
		WorkflowStatus: workflow,
	}
}

func TestCreate_Employee(t *testing.T) {
	ctx := context.Background()
	empRepo := newFakeEmployeeRepository()
	svc := newTestService(empRepo)

	emp, err := svc.Create(ctx, employee.CreateEmployeeRequest{
		EmployeeCode:   "2024-0001",
		FullName:       "Budi Santoso",
		DivisionID:     "div-harvest",
		PositionID:     "pos-harvester",
		EmploymentType: "permanent",
		DailyWage:      "150000",
		JoinDate:       "2024-01-15",
	})
	require.NoError(t, err)

	assert.Equal(t, employee.StatusActive, emp.Status)
	assert.Equal(t, employee.WorkflowNone, emp.WorkflowStatus)
	assert.True(t, emp.DailyWage.Equal(decimal.NewFromInt(150000)))
}

func TestCreate_UnknownDivision(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newFakeEmployeeRepository())

	_, err := svc.Create(ctx, employee.CreateEmployeeRequest{
		EmployeeCode:   "2024-0001",
		FullName:       "Budi Santoso",
		DivisionID:     "div-ghost",
		PositionID:     "pos-harvester",
		EmploymentType: "permanent",
		DailyWage:      "150000",
		JoinDate:       "2024-01-15",
	})
	assert.ErrorIs(t, err, division.ErrDivisionNotFound)
}

func TestCreate_InvalidEmployeeCode(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newFakeEmployeeRepository())

	_, err := svc.Create(ctx, employee.CreateEmployeeRequest{
		EmployeeCode:   "ABC-123",
		FullName:       "Budi Santoso",
		DivisionID:     "div-harvest",
		PositionID:     "pos-harvester",
		EmploymentType: "permanent",
		DailyWage:      "150000",
		JoinDate:       "2024-01-15",
	})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
}

func TestProbation_StartPassCycle(t *testing.T) {
	ctx := context.Background()
	empRepo := newFakeEmployeeRepository(activeEmployee("emp-1", employee.WorkflowNone))
	svc := newTestService(empRepo)

	emp, err := svc.StartProbation(ctx, "emp-1", employee.StartProbationRequest{ProbationEndDate: "2024-04-15"})
	require.NoError(t, err)
	assert.Equal(t, employee.WorkflowProbation, emp.WorkflowStatus)
	require.NotNil(t, emp.ProbationEndDate)
	assert.Equal(t, time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC), *emp.ProbationEndDate)

	emp, err = svc.PassProbation(ctx, "emp-1")
	require.NoError(t, err)
	assert.Equal(t, employee.WorkflowNone, emp.WorkflowStatus)
	assert.Equal(t, employee.StatusActive, emp.Status)
	assert.Nil(t, emp.ProbationEndDate)
}

func TestProbation_ExtendPersistsNewEndDate(t *testing.T) {
	ctx := context.Background()
	empRepo := newFakeEmployeeRepository(activeEmployee("emp-1", employee.WorkflowNone))
	svc := newTestService(empRepo)

	_, err := svc.StartProbation(ctx, "emp-1", employee.StartProbationRequest{ProbationEndDate: "2024-04-15"})
	require.NoError(t, err)

	emp, err := svc.ExtendProbation(ctx, "emp-1", employee.ExtendProbationRequest{ProbationEndDate: "2024-07-15"})
	require.NoError(t, err)

	assert.Equal(t, employee.WorkflowProbation, emp.WorkflowStatus)
	require.NotNil(t, emp.ProbationEndDate)
	assert.Equal(t, time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC), *emp.ProbationEndDate)
}

func TestProbation_FailDeactivates(t *testing.T) {
	ctx := context.Background()
	empRepo := newFakeEmployeeRepository(activeEmployee("emp-1", employee.WorkflowProbation))
	svc := newTestService(empRepo)

	emp, err := svc.FailProbation(ctx, "emp-1")
	require.NoError(t, err)

	assert.Equal(t, employee.WorkflowNone, emp.WorkflowStatus)
	assert.Equal(t, employee.StatusInactive, emp.Status)
}

func TestProbation_GuardsTransitions(t *testing.T) {
	ctx := context.Background()
	empRepo := newFakeEmployeeRepository(
		activeEmployee("emp-1", employee.WorkflowProbation),
		activeEmployee("emp-2", employee.WorkflowNone),
	)
	svc := newTestService(empRepo)

	// Already in probation.
	_, err := svc.StartProbation(ctx, "emp-1", employee.StartProbationRequest{ProbationEndDate: "2024-04-15"})
	assert.ErrorIs(t, err, employee.ErrInvalidWorkflowTransition)

	// Not in probation.
	_, err = svc.PassProbation(ctx, "emp-2")
	assert.ErrorIs(t, err, employee.ErrInvalidWorkflowTransition)
	_, err = svc.ExtendProbation(ctx, "emp-2", employee.ExtendProbationRequest{ProbationEndDate: "2024-07-15"})
	assert.ErrorIs(t, err, employee.ErrInvalidWorkflowTransition)
}

func TestTermination_ApprovePersistsReason(t *testing.T) {
	ctx := context.Background()
	empRepo := newFakeEmployeeRepository(activeEmployee("emp-1", employee.WorkflowNone))
	svc := newTestService(empRepo)

	emp, err := svc.StartTermination(ctx, "emp-1")
	require.NoError(t, err)
	assert.Equal(t, employee.WorkflowTermination, emp.WorkflowStatus)
	assert.Equal(t, employee.StatusActive, emp.Status, "still active until approved")

	emp, err = svc.ApproveTermination(ctx, "emp-1", employee.ApproveTerminationRequest{Reason: "retirement"})
	require.NoError(t, err)

	assert.Equal(t, employee.WorkflowNone, emp.WorkflowStatus)
	assert.Equal(t, employee.StatusInactive, emp.Status)
	require.NotNil(t, emp.TerminationReason)
	assert.Equal(t, employee.TerminationRetirement, *emp.TerminationReason)
}

func TestTermination_RejectClearsReason(t *testing.T) {
	ctx := context.Background()
	reason := employee.TerminationLayoff
	emp := activeEmployee("emp-1", employee.WorkflowTermination)
	emp.TerminationReason = &reason
	empRepo := newFakeEmployeeRepository(emp)
	svc := newTestService(empRepo)

	got, err := svc.RejectTermination(ctx, "emp-1")
	require.NoError(t, err)

	assert.Equal(t, employee.WorkflowNone, got.WorkflowStatus)
	assert.Equal(t, employee.StatusActive, got.Status)
	assert.Nil(t, got.TerminationReason)
}

func TestTermination_InvalidReason(t *testing.T) {
	ctx := context.Background()
	empRepo := newFakeEmployeeRepository(activeEmployee("emp-1", employee.WorkflowTermination))
	svc := newTestService(empRepo)

	_, err := svc.ApproveTermination(ctx, "emp-1", employee.ApproveTerminationRequest{Reason: "vibes"})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
}
