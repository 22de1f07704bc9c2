package employee

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/sawithr/sawit-hr-backend-go/internal/domain/employee"
	"github.com/sawithr/sawit-hr-backend-go/internal/domain/master/division"
	"github.com/sawithr/sawit-hr-backend-go/internal/domain/master/position"
	"github.com/sawithr/sawit-hr-backend-go/internal/pkg/database"
	"github.com/sawithr/sawit-hr-backend-go/internal/pkg/validator"
)

// Service owns employee records and the single-step probation/termination
// workflows. Those workflows mutate status and workflow_status directly;
// there is no pending/approved split.
type Service struct {
	db database.TxRunner
	employee.EmployeeRepository
	divisionRepository division.DivisionRepository
	positionRepository position.PositionRepository
}

func NewEmployeeService(
	db database.TxRunner,
	employeeRepository employee.EmployeeRepository,
	divisionRepository division.DivisionRepository,
	positionRepository position.PositionRepository,
) *Service {
	return &Service{
		db:                 db,
		EmployeeRepository: employeeRepository,
		divisionRepository: divisionRepository,
		positionRepository: positionRepository,
	}
}

func (s *Service) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	if _, err := s.divisionRepository.GetByID(ctx, req.DivisionID); err != nil {
		return employee.Employee{}, err
	}
	if _, err := s.positionRepository.GetByID(ctx, req.PositionID); err != nil {
		return employee.Employee{}, err
	}

	dailyWage, _ := decimal.NewFromString(req.DailyWage)
	joinDate, _ := validator.IsValidDate(req.JoinDate)

	emp := employee.Employee{
		EmployeeCode:   req.EmployeeCode,
		FullName:       req.FullName,
		DivisionID:     req.DivisionID,
		PositionID:     req.PositionID,
		EmploymentType: employee.EmploymentType(req.EmploymentType),
		DailyWage:      dailyWage,
		Status:         employee.StatusActive,
		WorkflowStatus: employee.WorkflowNone,
		JoinDate:       joinDate,
	}

	return s.EmployeeRepository.Create(ctx, emp)
}

func (s *Service) Get(ctx context.Context, id string) (employee.Employee, error) {
	return s.EmployeeRepository.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	return s.EmployeeRepository.List(ctx, filter)
}

// StartProbation enters the probation workflow and persists the given end
// date. The end date is stored, never derived from the join date.
func (s *Service) StartProbation(ctx context.Context, id string, req employee.StartProbationRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}
	endDate, _ := validator.IsValidDate(req.ProbationEndDate)

	workflowStatus := employee.WorkflowProbation
	return s.transition(ctx, id, workflowStatus, employee.WorkflowUpdate{
		WorkflowStatus:   &workflowStatus,
		ProbationEndDate: &endDate,
	})
}

// PassProbation clears the workflow and keeps the employee active.
func (s *Service) PassProbation(ctx context.Context, id string) (employee.Employee, error) {
	return s.leaveWorkflow(ctx, id, employee.WorkflowProbation, employee.StatusActive, employee.WorkflowUpdate{
		ClearProbationEndDate: true,
	})
}

// ExtendProbation keeps the employee in probation with a new end date.
func (s *Service) ExtendProbation(ctx context.Context, id string, req employee.ExtendProbationRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}
	endDate, _ := validator.IsValidDate(req.ProbationEndDate)

	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.Employee{}, err
	}
	if emp.WorkflowStatus != employee.WorkflowProbation {
		return employee.Employee{}, employee.ErrInvalidWorkflowTransition
	}

	if err := s.EmployeeRepository.UpdateWorkflow(ctx, id, employee.WorkflowUpdate{
		ProbationEndDate: &endDate,
	}); err != nil {
		return employee.Employee{}, err
	}
	return s.EmployeeRepository.GetByID(ctx, id)
}

// FailProbation clears the workflow and deactivates the employee.
func (s *Service) FailProbation(ctx context.Context, id string) (employee.Employee, error) {
	return s.leaveWorkflow(ctx, id, employee.WorkflowProbation, employee.StatusInactive, employee.WorkflowUpdate{
		ClearProbationEndDate: true,
	})
}

// StartTermination enters the termination workflow. The employee stays
// active until the termination is approved.
func (s *Service) StartTermination(ctx context.Context, id string) (employee.Employee, error) {
	workflowStatus := employee.WorkflowTermination
	return s.transition(ctx, id, workflowStatus, employee.WorkflowUpdate{
		WorkflowStatus: &workflowStatus,
	})
}

// ApproveTermination deactivates the employee and persists the reason.
func (s *Service) ApproveTermination(ctx context.Context, id string, req employee.ApproveTerminationRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}
	reason := employee.TerminationReason(req.Reason)

	return s.leaveWorkflow(ctx, id, employee.WorkflowTermination, employee.StatusInactive, employee.WorkflowUpdate{
		TerminationReason: &reason,
	})
}

// RejectTermination returns the employee to active and clears any previously
// stored termination reason.
func (s *Service) RejectTermination(ctx context.Context, id string) (employee.Employee, error) {
	return s.leaveWorkflow(ctx, id, employee.WorkflowTermination, employee.StatusActive, employee.WorkflowUpdate{
		ClearTerminationReason: true,
	})
}

// transition enters a workflow, guarded by the allowed-transition table.
func (s *Service) transition(ctx context.Context, id string, to employee.WorkflowStatus, update employee.WorkflowUpdate) (employee.Employee, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.Employee{}, err
	}
	if emp.WorkflowStatus == to || !employee.CanTransitionWorkflow(emp.WorkflowStatus, to) {
		return employee.Employee{}, employee.ErrInvalidWorkflowTransition
	}

	if err := s.EmployeeRepository.UpdateWorkflow(ctx, id, update); err != nil {
		return employee.Employee{}, err
	}
	return s.EmployeeRepository.GetByID(ctx, id)
}

// leaveWorkflow exits the given workflow back to none, setting the
// operational status and any extra fields in one write.
func (s *Service) leaveWorkflow(ctx context.Context, id string, from employee.WorkflowStatus, status employee.Status, update employee.WorkflowUpdate) (employee.Employee, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.Employee{}, err
	}
	if emp.WorkflowStatus != from {
		return employee.Employee{}, employee.ErrInvalidWorkflowTransition
	}

	workflowStatus := employee.WorkflowNone
	update.WorkflowStatus = &workflowStatus
	update.Status = &status

	if err := s.EmployeeRepository.UpdateWorkflow(ctx, id, update); err != nil {
		return employee.Employee{}, err
	}
	return s.EmployeeRepository.GetByID(ctx, id)
}
