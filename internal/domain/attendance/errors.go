package attendance

import "errors"

var (
	ErrAttendanceNotFound = errors.New("Attendance record not found")
)
