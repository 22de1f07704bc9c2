package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID                string
	EmployeeCode      string
	FullName          string
	DivisionID        string
	PositionID        string
	EmploymentType    EmploymentType
	DailyWage         decimal.Decimal
	Status            Status
	WorkflowStatus    WorkflowStatus
	ProbationEndDate  *time.Time
	TerminationReason *TerminationReason
	JoinDate          time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time

	// Relationships (for responses)
	DivisionName *string
	PositionName *string
}

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusOnLeave  Status = "on_leave"
)

type EmploymentType string

const (
	EmploymentTypePermanent EmploymentType = "permanent"
	EmploymentTypeContract  EmploymentType = "contract"
	EmploymentTypeCasual    EmploymentType = "casual"
)

// WorkflowStatus tags which HR process currently governs the employee.
// Exactly one holds at any time; it is mutated only by the workflow
// services, never by generic employee edits.
type WorkflowStatus string

const (
	WorkflowNone        WorkflowStatus = "none"
	WorkflowRecruitment WorkflowStatus = "recruitment"
	WorkflowProbation   WorkflowStatus = "probation"
	WorkflowTermination WorkflowStatus = "termination"
)

type TerminationReason string

const (
	TerminationResignation TerminationReason = "resignation"
	TerminationRetirement  TerminationReason = "retirement"
	TerminationContractEnd TerminationReason = "contract_end"
	TerminationLayoff      TerminationReason = "layoff"
)

func IsValidTerminationReason(r TerminationReason) bool {
	switch r {
	case TerminationResignation, TerminationRetirement, TerminationContractEnd, TerminationLayoff:
		return true
	}
	return false
}

// workflowTransitions is the allowed-transition table for WorkflowStatus.
// A workflow can only be entered from "none"; leaving any workflow returns
// to "none".
var workflowTransitions = map[WorkflowStatus][]WorkflowStatus{
	WorkflowNone:        {WorkflowRecruitment, WorkflowProbation, WorkflowTermination},
	WorkflowRecruitment: {WorkflowNone, WorkflowProbation},
	WorkflowProbation:   {WorkflowNone},
	WorkflowTermination: {WorkflowNone},
}

// CanTransitionWorkflow reports whether moving from one workflow status to
// another is permitted. Staying put is always allowed (probation extension).
func CanTransitionWorkflow(from, to WorkflowStatus) bool {
	if from == to {
		return true
	}
	for _, allowed := range workflowTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
