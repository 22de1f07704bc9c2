package holiday

import (
	"context"
	"errors"

	"github.com/sawithr/sawit-hr-backend-go/internal/domain/attendance"
	"github.com/sawithr/sawit-hr-backend-go/internal/domain/holiday"
	"github.com/sawithr/sawit-hr-backend-go/internal/pkg/database"
	"github.com/sawithr/sawit-hr-backend-go/internal/pkg/validator"
	attendanceservice "github.com/sawithr/sawit-hr-backend-go/internal/service/attendance"
)

// Service manages the holiday set and keeps materialized holiday attendance
// in sync with it. Creating a holiday fans a "holiday" record out to every
// active employee; deleting one retracts those records.
type Service struct {
	db database.TxRunner
	holiday.HolidayRepository
	attendance *attendanceservice.Service
}

func NewHolidayService(
	db database.TxRunner,
	holidayRepository holiday.HolidayRepository,
	attendanceService *attendanceservice.Service,
) *Service {
	return &Service{
		db:                db,
		HolidayRepository: holidayRepository,
		attendance:        attendanceService,
	}
}

// CreateResult pairs the stored holiday with the fan-out outcome. When
// Materialization.NeedsConfirmation is set, nothing was written; the holiday
// row itself is also withheld until the caller confirms.
type CreateResult struct {
	Holiday         holiday.Holiday
	Materialization attendance.MaterializeAllResult
}

// Create stores a holiday and materializes holiday attendance for all active
// employees on that date. Without forceOverwrite, existing records on the
// date with other statuses turn the whole call into a dry run.
func (s *Service) Create(ctx context.Context, req holiday.CreateHolidayRequest, forceOverwrite bool) (CreateResult, error) {
	if err := req.Validate(); err != nil {
		return CreateResult{}, err
	}
	date, _ := validator.IsValidDate(req.Date)

	if _, err := s.HolidayRepository.GetByDate(ctx, date); err == nil {
		return CreateResult{}, holiday.ErrHolidayDateExists
	} else if !errors.Is(err, holiday.ErrHolidayNotFound) {
		return CreateResult{}, err
	}

	var result CreateResult
	err := s.db.WithinTx(ctx, func(ctx context.Context) error {
		mat, err := s.attendance.MaterializeForAllActive(ctx, date, attendance.StatusHoliday, req.Name, forceOverwrite)
		if err != nil {
			return err
		}
		result.Materialization = mat
		if mat.NeedsConfirmation {
			return nil
		}

		created, err := s.HolidayRepository.Create(ctx, holiday.Holiday{
			Date:     date,
			Name:     req.Name,
			Category: holiday.Category(req.Category),
			IsPaid:   req.IsPaid,
		})
		if err != nil {
			return err
		}
		result.Holiday = created
		return nil
	})
	if err != nil {
		return CreateResult{}, err
	}

	return result, nil
}

// Delete removes a holiday and retracts the holiday attendance it
// materialized. Records on the same date with other statuses survive.
func (s *Service) Delete(ctx context.Context, id string) (int64, error) {
	h, err := s.HolidayRepository.GetByID(ctx, id)
	if err != nil {
		return 0, err
	}

	var retracted int64
	err = s.db.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.HolidayRepository.Delete(ctx, id); err != nil {
			return err
		}
		retracted, err = s.attendance.RemoveRange(ctx, nil, h.Date, attendance.StatusHoliday)
		return err
	})
	if err != nil {
		return 0, err
	}

	return retracted, nil
}

// Get returns one holiday.
func (s *Service) Get(ctx context.Context, id string) (holiday.Holiday, error) {
	return s.HolidayRepository.GetByID(ctx, id)
}

// ListRange returns the holidays between start and end inclusive.
func (s *Service) ListRange(ctx context.Context, start, end string) ([]holiday.Holiday, error) {
	startDate, ok := validator.IsValidDate(start)
	if !ok {
		return nil, validator.ValidationErrors{{Field: "start_date", Message: "Start date is required (YYYY-MM-DD)"}}
	}
	endDate, ok := validator.IsValidDate(end)
	if !ok {
		return nil, validator.ValidationErrors{{Field: "end_date", Message: "End date is required (YYYY-MM-DD)"}}
	}
	return s.HolidayRepository.ListRange(ctx, startDate, endDate)
}
