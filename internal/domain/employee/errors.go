package employee

import "errors"

var (
	ErrEmployeeNotFound          = errors.New("Employee not found")
	ErrEmployeeCodeExists        = errors.New("Employee code already exists")
	ErrInvalidWorkflowTransition = errors.New("Employee workflow does not permit this transition")
)
