package attendance

import "time"

type Status string

const (
	StatusPresent    Status = "present"
	StatusAbsent     Status = "absent"
	StatusHoliday    Status = "holiday"
	StatusLeave      Status = "cuti"
	StatusSick       Status = "sick"
	StatusPermission Status = "permission"
)

// Attendance is one row per (employee, date). Writes to an already populated
// date are explicit upserts, never duplicate inserts.
type Attendance struct {
	ID                 string
	EmployeeID         string
	Date               time.Time
	Status             Status
	Note               *string
	CheckIn            *time.Time
	CheckOut           *time.Time
	WorkHoursInMinutes *int
	CreatedAt          time.Time
	UpdatedAt          time.Time

	// DTO
	EmployeeName *string
}

// MaterializeAllResult is the outcome of a fan-out write across all active
// employees. When NeedsConfirmation is set nothing was written; the caller
// should re-invoke with the force flag to overwrite the conflicting records.
type MaterializeAllResult struct {
	NeedsConfirmation bool
	ConflictCount     int
	ExistingStatuses  []Status
	Written           int
}
