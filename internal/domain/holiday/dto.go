package holiday

import (
	"github.com/sawithr/sawit-hr-backend-go/internal/pkg/validator"
)

type CreateHolidayRequest struct {
	Date     string `json:"date"`
	Name     string `json:"name"`
	Category string `json:"category"`
	IsPaid   bool   `json:"is_paid"`
}

func (r CreateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); validator.IsEmpty(r.Date) || !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "Date is required (YYYY-MM-DD)"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "Name is required"})
	}
	if !IsValidCategory(Category(r.Category)) {
		errs = append(errs, validator.ValidationError{Field: "category", Message: "Invalid holiday category"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
