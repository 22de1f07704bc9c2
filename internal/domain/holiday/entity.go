package holiday

import "time"

type Category string

const (
	CategoryNational  Category = "national"
	CategoryReligious Category = "religious"
	CategoryCompany   Category = "company"
)

func IsValidCategory(c Category) bool {
	switch c {
	case CategoryNational, CategoryReligious, CategoryCompany:
		return true
	}
	return false
}

// Holiday is a global non-working date. At most one holiday exists per date.
type Holiday struct {
	ID        string
	Date      time.Time
	Name      string
	Category  Category
	IsPaid    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
