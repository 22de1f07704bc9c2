package transfer

import "errors"

var (
	ErrTransferNotFound         = errors.New("Employee transfer not found")
	ErrTransferAlreadyProcessed = errors.New("Employee transfer already processed")
	ErrTransferNotApproved      = errors.New("Employee transfer is not in approved state")
)
