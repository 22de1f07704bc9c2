package calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/sawithr/sawit-hr-backend-go/internal/domain/holiday"
)

const dateLayout = "2006-01-02"

// Service classifies dates as working or non-working. The estate runs a
// single fixed weekly rest day.
type Service struct {
	holiday.HolidayRepository
	restDay time.Weekday
}

func NewService(holidayRepository holiday.HolidayRepository) *Service {
	return &Service{
		HolidayRepository: holidayRepository,
		restDay:           time.Sunday,
	}
}

// Calendar is an immutable holiday snapshot for one computation. Taking the
// snapshot up front keeps a multi-day count stable against concurrent
// holiday edits.
type Calendar struct {
	restDay  time.Weekday
	holidays map[string]holiday.Holiday
}

// Snapshot loads the holidays between start and end inclusive once and
// returns a calendar backed by them.
func (s *Service) Snapshot(ctx context.Context, start, end time.Time) (*Calendar, error) {
	cal := &Calendar{
		restDay:  s.restDay,
		holidays: make(map[string]holiday.Holiday),
	}

	if end.Before(start) {
		return cal, nil
	}

	holidays, err := s.HolidayRepository.ListRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load holiday snapshot: %w", err)
	}
	for _, h := range holidays {
		cal.holidays[h.Date.Format(dateLayout)] = h
	}

	return cal, nil
}

// CountWorkingDays counts working days between start and end inclusive,
// against the current holiday snapshot.
func (s *Service) CountWorkingDays(ctx context.Context, start, end time.Time) (int, error) {
	cal, err := s.Snapshot(ctx, start, end)
	if err != nil {
		return 0, err
	}
	return cal.CountWorkingDays(start, end), nil
}

// IsNonWorkingDay reports whether date falls on the weekly rest day or on a
// recorded holiday.
func (c *Calendar) IsNonWorkingDay(date time.Time) bool {
	if date.Weekday() == c.restDay {
		return true
	}
	_, isHoliday := c.holidays[date.Format(dateLayout)]
	return isHoliday
}

// CountWorkingDays counts the days in [start, end] that are working days.
// start after end yields 0.
func (c *Calendar) CountWorkingDays(start, end time.Time) int {
	return len(c.WorkingDays(start, end))
}

// WorkingDays returns every working day in [start, end] in order.
func (c *Calendar) WorkingDays(start, end time.Time) []time.Time {
	var days []time.Time
	for d := truncateToDay(start); !d.After(truncateToDay(end)); d = d.AddDate(0, 0, 1) {
		if !c.IsNonWorkingDay(d) {
			days = append(days, d)
		}
	}
	return days
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
