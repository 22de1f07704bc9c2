package holiday

import "errors"

var (
	ErrHolidayNotFound   = errors.New("Holiday not found")
	ErrHolidayDateExists = errors.New("A holiday already exists on this date")
)
