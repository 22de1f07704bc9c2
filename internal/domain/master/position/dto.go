package position

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sawithr/sawit-hr-backend-go/internal/pkg/validator"
)

// Position is a job role with its wage-scale base rate.
type Position struct {
	ID           string
	Name         string
	BaseDailyPay decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type PositionResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	BaseDailyPay string `json:"base_daily_pay"`
}

type CreatePositionRequest struct {
	Name         string `json:"name"`
	BaseDailyPay string `json:"base_daily_pay"`
}

func (r *CreatePositionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if len(r.Name) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 100 characters",
		})
	}
	if !validator.IsEmpty(r.BaseDailyPay) {
		if _, err := decimal.NewFromString(r.BaseDailyPay); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "base_daily_pay",
				Message: "base_daily_pay must be a decimal number",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdatePositionRequest struct {
	ID           string  `json:"id"`
	Name         *string `json:"name,omitempty"`
	BaseDailyPay *string `json:"base_daily_pay,omitempty"`
}

func (r *UpdatePositionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}
	if r.BaseDailyPay != nil {
		if _, err := decimal.NewFromString(*r.BaseDailyPay); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "base_daily_pay",
				Message: "base_daily_pay must be a decimal number",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
