package leave

import "time"

type LeaveType string

const (
	LeaveTypeAnnual     LeaveType = "annual"
	LeaveTypeSick       LeaveType = "sick"
	LeaveTypeMaternity  LeaveType = "maternity"
	LeaveTypeUnpaid     LeaveType = "unpaid"
	LeaveTypePermission LeaveType = "permission"
)

func IsValidLeaveType(t LeaveType) bool {
	switch t {
	case LeaveTypeAnnual, LeaveTypeSick, LeaveTypeMaternity, LeaveTypeUnpaid, LeaveTypePermission:
		return true
	}
	return false
}

// Label returns the human-readable note stored on materialized attendance.
func (t LeaveType) Label() string {
	switch t {
	case LeaveTypeAnnual:
		return "Cuti Tahunan"
	case LeaveTypeSick:
		return "Cuti Sakit"
	case LeaveTypeMaternity:
		return "Cuti Melahirkan"
	case LeaveTypeUnpaid:
		return "Cuti Tanpa Gaji"
	case LeaveTypePermission:
		return "Izin"
	}
	return string(t)
}

type LeaveRequestStatus string

const (
	LeaveRequestStatusPending   LeaveRequestStatus = "pending"
	LeaveRequestStatusApproved  LeaveRequestStatus = "approved"
	LeaveRequestStatusRejected  LeaveRequestStatus = "rejected"
	LeaveRequestStatusCancelled LeaveRequestStatus = "cancelled"
)

// LeaveRequest entity. TotalDays is the working-day count computed from the
// holiday snapshot at submission time; it is persisted, not recomputed.
type LeaveRequest struct {
	ID         string
	EmployeeID string
	Type       LeaveType

	StartDate time.Time
	EndDate   time.Time
	TotalDays int

	Reason string

	Status          LeaveRequestStatus
	ApprovedBy      *string
	ApprovedAt      *time.Time
	RejectionReason *string

	SubmittedAt time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Relationships (for responses)
	EmployeeName *string
}
