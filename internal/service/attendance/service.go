package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sawithr/sawit-hr-backend-go/internal/domain/attendance"
	"github.com/sawithr/sawit-hr-backend-go/internal/domain/employee"
	"github.com/sawithr/sawit-hr-backend-go/internal/pkg/database"
	"github.com/sawithr/sawit-hr-backend-go/internal/service/calendar"
)

// Service materializes attendance records: it guarantees one record per
// (employee, working day) in a range, without corrupting unrelated records.
type Service struct {
	db database.TxRunner
	attendance.AttendanceRepository
	employee.EmployeeRepository
	calendar *calendar.Service
}

func NewAttendanceService(
	db database.TxRunner,
	attendanceRepository attendance.AttendanceRepository,
	employeeRepository employee.EmployeeRepository,
	calendarService *calendar.Service,
) *Service {
	return &Service{
		db:                   db,
		AttendanceRepository: attendanceRepository,
		EmployeeRepository:   employeeRepository,
		calendar:             calendarService,
	}
}

// MaterializeRange upserts one record per working day in [start, end] for
// the employee. Holidays and the weekly rest day are skipped. Re-running
// with the same arguments is idempotent. Returns the number of days written.
func (s *Service) MaterializeRange(ctx context.Context, employeeID string, start, end time.Time, status attendance.Status, note string) (int, error) {
	cal, err := s.calendar.Snapshot(ctx, start, end)
	if err != nil {
		return 0, err
	}

	days := cal.WorkingDays(start, end)
	for _, day := range days {
		rec := attendance.Attendance{
			ID:         uuid.NewString(),
			EmployeeID: employeeID,
			Date:       day,
			Status:     status,
		}
		if note != "" {
			rec.Note = &note
		}
		if err := s.AttendanceRepository.Upsert(ctx, rec); err != nil {
			return 0, fmt.Errorf("failed to materialize attendance: %w", err)
		}
	}

	return len(days), nil
}

// MaterializeForAllActive fans a single-date write out to every active
// employee. Unless forceOverwrite is set, pre-existing records on that date
// with a different status abort the write and come back as a
// needs-confirmation result so the caller can prompt and re-invoke with the
// override.
func (s *Service) MaterializeForAllActive(ctx context.Context, date time.Time, status attendance.Status, note string, forceOverwrite bool) (attendance.MaterializeAllResult, error) {
	if !forceOverwrite {
		count, statuses, err := s.AttendanceRepository.CountConflicting(ctx, date, status)
		if err != nil {
			return attendance.MaterializeAllResult{}, err
		}
		if count > 0 {
			return attendance.MaterializeAllResult{
				NeedsConfirmation: true,
				ConflictCount:     count,
				ExistingStatuses:  statuses,
			}, nil
		}
	}

	ids, err := s.EmployeeRepository.ListActiveIDs(ctx)
	if err != nil {
		return attendance.MaterializeAllResult{}, err
	}

	err = s.db.WithinTx(ctx, func(ctx context.Context) error {
		for _, id := range ids {
			rec := attendance.Attendance{
				ID:         uuid.NewString(),
				EmployeeID: id,
				Date:       date,
				Status:     status,
			}
			if note != "" {
				rec.Note = &note
			}
			if err := s.AttendanceRepository.Upsert(ctx, rec); err != nil {
				return fmt.Errorf("failed to materialize attendance for employee %s: %w", id, err)
			}
		}
		return nil
	})
	if err != nil {
		return attendance.MaterializeAllResult{}, err
	}

	return attendance.MaterializeAllResult{Written: len(ids)}, nil
}

// RemoveRange retracts records matching (date, status), e.g. the synthetic
// rows a deleted holiday created. Records with other statuses on the same
// date are untouched. A nil employeeID removes across all employees.
func (s *Service) RemoveRange(ctx context.Context, employeeID *string, date time.Time, status attendance.Status) (int64, error) {
	return s.AttendanceRepository.DeleteByDateStatus(ctx, date, status, employeeID)
}

// ListByEmployeeRange returns an employee's records between start and end.
func (s *Service) ListByEmployeeRange(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.Attendance, error) {
	if _, err := s.EmployeeRepository.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}
	return s.AttendanceRepository.ListByEmployeeRange(ctx, employeeID, start, end)
}
