package transfer

import "time"

type TransferStatus string

const (
	TransferStatusPending   TransferStatus = "pending"
	TransferStatusApproved  TransferStatus = "approved"
	TransferStatusRejected  TransferStatus = "rejected"
	TransferStatusCompleted TransferStatus = "completed"
)

// TransferType classifies which assignment fields a transfer changes.
type TransferType string

const (
	TransferTypeDivision TransferType = "division"
	TransferTypePosition TransferType = "position"
	TransferTypeBoth     TransferType = "both"
)

// EmployeeTransfer moves an employee between division/position assignments.
// From fields are the employee's assignment snapshot at submission time and
// are not re-read later.
type EmployeeTransfer struct {
	ID         string
	EmployeeID string

	FromDivisionID string
	FromPositionID string
	ToDivisionID   string
	ToPositionID   string

	TransferDate  time.Time
	EffectiveDate time.Time
	Reason        string

	Status      TransferStatus
	RequestedBy string
	ApprovedBy  *string
	ApprovedAt  *time.Time
	Notes       *string
	CompletedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time

	// Relationships (for responses)
	EmployeeName *string
}

// Type derives the transfer classification from the from/to snapshots. The
// degenerate no-change case cannot occur past submission validation but must
// not panic; it defaults to position.
func (t EmployeeTransfer) Type() TransferType {
	divisionChanged := t.FromDivisionID != t.ToDivisionID
	positionChanged := t.FromPositionID != t.ToPositionID

	switch {
	case divisionChanged && positionChanged:
		return TransferTypeBoth
	case divisionChanged:
		return TransferTypeDivision
	default:
		return TransferTypePosition
	}
}

// Due reports whether the transfer is eligible for auto-completion.
func (t EmployeeTransfer) Due(today time.Time) bool {
	return t.Status == TransferStatusApproved && !t.EffectiveDate.After(today)
}
