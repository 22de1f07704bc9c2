package division

import "errors"

var (
	ErrDivisionNotFound   = errors.New("division not found")
	ErrDivisionNameExists = errors.New("division with this name already exists")
)
