package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	// Upsert writes rec keyed on (employee_id, date); an existing row for
	// that key is overwritten.
	Upsert(ctx context.Context, rec Attendance) error
	ListByEmployeeRange(ctx context.Context, employeeID string, start, end time.Time) ([]Attendance, error)
	// CountConflicting counts records on date whose status differs from
	// status, and returns the distinct statuses found.
	CountConflicting(ctx context.Context, date time.Time, status Status) (int, []Status, error)
	// DeleteByDateStatus removes records matching (date, status). A nil
	// employeeID means all employees.
	DeleteByDateStatus(ctx context.Context, date time.Time, status Status, employeeID *string) (int64, error)
}
