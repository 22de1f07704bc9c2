package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sawithr/sawit-hr-backend-go/internal/domain/attendance"
	"github.com/sawithr/sawit-hr-backend-go/internal/domain/employee"
	"github.com/sawithr/sawit-hr-backend-go/internal/domain/holiday"
	"github.com/sawithr/sawit-hr-backend-go/internal/service/calendar"
)

type passthroughTx struct{}

func (passthroughTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeAttendanceRepository struct {
	records map[string]attendance.Attendance // keyed employeeID|date
}

func newFakeAttendanceRepository() *fakeAttendanceRepository {
	return &fakeAttendanceRepository{records: make(map[string]attendance.Attendance)}
}

func recordKey(employeeID string, date time.Time) string {
	return employeeID + "|" + date.Format("2006-01-02")
}

func (f *fakeAttendanceRepository) Upsert(ctx context.Context, rec attendance.Attendance) error {
	key := recordKey(rec.EmployeeID, rec.Date)
	if existing, ok := f.records[key]; ok {
		rec.ID = existing.ID
	}
	f.records[key] = rec
	return nil
}

func (f *fakeAttendanceRepository) ListByEmployeeRange(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, rec := range f.records {
		if rec.EmployeeID == employeeID && !rec.Date.Before(start) && !rec.Date.After(end) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepository) CountConflicting(ctx context.Context, date time.Time, status attendance.Status) (int, []attendance.Status, error) {
	count := 0
	seen := make(map[attendance.Status]bool)
	var statuses []attendance.Status
	for _, rec := range f.records {
		if rec.Date.Equal(date) && rec.Status != status {
			count++
			if !seen[rec.Status] {
				seen[rec.Status] = true
				statuses = append(statuses, rec.Status)
			}
		}
	}
	return count, statuses, nil
}

func (f *fakeAttendanceRepository) DeleteByDateStatus(ctx context.Context, date time.Time, status attendance.Status, employeeID *string) (int64, error) {
	var removed int64
	for key, rec := range f.records {
		if !rec.Date.Equal(date) || rec.Status != status {
			continue
		}
		if employeeID != nil && rec.EmployeeID != *employeeID {
			continue
		}
		delete(f.records, key)
		removed++
	}
	return removed, nil
}

type fakeEmployeeRepository struct {
	activeIDs []string
}

func (f *fakeEmployeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (f *fakeEmployeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	for _, aid := range f.activeIDs {
		if aid == id {
			return employee.Employee{ID: id, Status: employee.StatusActive}, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepository) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	return nil, 0, nil
}

func (f *fakeEmployeeRepository) ListActiveIDs(ctx context.Context) ([]string, error) {
	return f.activeIDs, nil
}

func (f *fakeEmployeeRepository) UpdateAssignment(ctx context.Context, id string, divisionID, positionID string) error {
	return nil
}

func (f *fakeEmployeeRepository) UpdateWorkflow(ctx context.Context, id string, update employee.WorkflowUpdate) error {
	return nil
}

type fakeHolidayRepository struct {
	holidays []holiday.Holiday
}

func (f *fakeHolidayRepository) Create(ctx context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	f.holidays = append(f.holidays, h)
	return h, nil
}

func (f *fakeHolidayRepository) GetByID(ctx context.Context, id string) (holiday.Holiday, error) {
	return holiday.Holiday{}, holiday.ErrHolidayNotFound
}

func (f *fakeHolidayRepository) GetByDate(ctx context.Context, date time.Time) (holiday.Holiday, error) {
	for _, h := range f.holidays {
		if h.Date.Equal(date) {
			return h, nil
		}
	}
	return holiday.Holiday{}, holiday.ErrHolidayNotFound
}

func (f *fakeHolidayRepository) ListRange(ctx context.Context, start, end time.Time) ([]holiday.Holiday, error) {
	var out []holiday.Holiday
	for _, h := range f.holidays {
		if !h.Date.Before(start) && !h.Date.After(end) {
			out = append(out, h)
		}
	}
	return out, nil
}

func (f *fakeHolidayRepository) Delete(ctx context.Context, id string) error {
	return nil
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newTestService(attRepo *fakeAttendanceRepository, empRepo *fakeEmployeeRepository, holRepo *fakeHolidayRepository) *Service {
	return NewAttendanceService(passthroughTx{}, attRepo, empRepo, calendar.NewService(holRepo))
}

func TestMaterializeRange_SkipsNonWorkingDays(t *testing.T) {
	ctx := context.Background()
	attRepo := newFakeAttendanceRepository()
	empRepo := &fakeEmployeeRepository{activeIDs: []string{"emp-1"}}
	holRepo := &fakeHolidayRepository{holidays: []holiday.Holiday{
		{ID: "h1", Date: date(2024, 1, 1), Name: "New Year", Category: holiday.CategoryNational, IsPaid: true},
	}}
	svc := newTestService(attRepo, empRepo, holRepo)

	// Mon Jan 1 (holiday) .. Sun Jan 7 (rest day): Jan 2-6 written.
	written, err := svc.MaterializeRange(ctx, "emp-1", date(2024, 1, 1), date(2024, 1, 7), attendance.StatusLeave, "Cuti Tahunan")
	require.NoError(t, err)
	assert.Equal(t, 5, written)
	assert.Len(t, attRepo.records, 5)

	_, holidayWritten := attRepo.records[recordKey("emp-1", date(2024, 1, 1))]
	assert.False(t, holidayWritten, "holiday must not be materialized")
	_, sundayWritten := attRepo.records[recordKey("emp-1", date(2024, 1, 7))]
	assert.False(t, sundayWritten, "rest day must not be materialized")

	rec, ok := attRepo.records[recordKey("emp-1", date(2024, 1, 2))]
	require.True(t, ok)
	assert.Equal(t, attendance.StatusLeave, rec.Status)
	require.NotNil(t, rec.Note)
	assert.Equal(t, "Cuti Tahunan", *rec.Note)
}

func TestMaterializeRange_Idempotent(t *testing.T) {
	ctx := context.Background()
	attRepo := newFakeAttendanceRepository()
	svc := newTestService(attRepo, &fakeEmployeeRepository{}, &fakeHolidayRepository{})

	start, end := date(2024, 3, 4), date(2024, 3, 8)
	_, err := svc.MaterializeRange(ctx, "emp-1", start, end, attendance.StatusLeave, "")
	require.NoError(t, err)
	written, err := svc.MaterializeRange(ctx, "emp-1", start, end, attendance.StatusLeave, "")
	require.NoError(t, err)

	assert.Equal(t, 5, written)
	assert.Len(t, attRepo.records, 5, "re-running must not duplicate records")
}

func TestMaterializeRange_OverwritesExistingStatus(t *testing.T) {
	ctx := context.Background()
	attRepo := newFakeAttendanceRepository()
	svc := newTestService(attRepo, &fakeEmployeeRepository{}, &fakeHolidayRepository{})

	day := date(2024, 3, 4) // Monday
	require.NoError(t, attRepo.Upsert(ctx, attendance.Attendance{
		ID: "pre", EmployeeID: "emp-1", Date: day, Status: attendance.StatusPresent,
	}))

	_, err := svc.MaterializeRange(ctx, "emp-1", day, day, attendance.StatusLeave, "")
	require.NoError(t, err)

	rec := attRepo.records[recordKey("emp-1", day)]
	assert.Equal(t, attendance.StatusLeave, rec.Status)
	assert.Equal(t, "pre", rec.ID, "upsert keeps the existing row identity")
}

func TestMaterializeForAllActive_CleanDate(t *testing.T) {
	ctx := context.Background()
	attRepo := newFakeAttendanceRepository()
	empRepo := &fakeEmployeeRepository{activeIDs: []string{"emp-1", "emp-2", "emp-3"}}
	svc := newTestService(attRepo, empRepo, &fakeHolidayRepository{})

	res, err := svc.MaterializeForAllActive(ctx, date(2024, 8, 17), attendance.StatusHoliday, "Independence Day", false)
	require.NoError(t, err)

	assert.False(t, res.NeedsConfirmation)
	assert.Equal(t, 3, res.Written)
	assert.Len(t, attRepo.records, 3)
}

func TestMaterializeForAllActive_ConflictNeedsConfirmation(t *testing.T) {
	ctx := context.Background()
	attRepo := newFakeAttendanceRepository()
	empRepo := &fakeEmployeeRepository{activeIDs: []string{"emp-1", "emp-2"}}
	svc := newTestService(attRepo, empRepo, &fakeHolidayRepository{})

	day := date(2024, 8, 17)
	require.NoError(t, attRepo.Upsert(ctx, attendance.Attendance{
		ID: "pre", EmployeeID: "emp-1", Date: day, Status: attendance.StatusPresent,
	}))

	res, err := svc.MaterializeForAllActive(ctx, day, attendance.StatusHoliday, "", false)
	require.NoError(t, err)

	assert.True(t, res.NeedsConfirmation)
	assert.Equal(t, 1, res.ConflictCount)
	assert.Equal(t, []attendance.Status{attendance.StatusPresent}, res.ExistingStatuses)
	assert.Equal(t, 0, res.Written)

	// The dry run writes nothing.
	assert.Len(t, attRepo.records, 1)
	assert.Equal(t, attendance.StatusPresent, attRepo.records[recordKey("emp-1", day)].Status)
}

func TestMaterializeForAllActive_ForceOverwrites(t *testing.T) {
	ctx := context.Background()
	attRepo := newFakeAttendanceRepository()
	empRepo := &fakeEmployeeRepository{activeIDs: []string{"emp-1", "emp-2"}}
	svc := newTestService(attRepo, empRepo, &fakeHolidayRepository{})

	day := date(2024, 8, 17)
	require.NoError(t, attRepo.Upsert(ctx, attendance.Attendance{
		ID: "pre", EmployeeID: "emp-1", Date: day, Status: attendance.StatusPresent,
	}))

	res, err := svc.MaterializeForAllActive(ctx, day, attendance.StatusHoliday, "", true)
	require.NoError(t, err)

	assert.False(t, res.NeedsConfirmation)
	assert.Equal(t, 2, res.Written)
	assert.Equal(t, attendance.StatusHoliday, attRepo.records[recordKey("emp-1", day)].Status)
	assert.Equal(t, attendance.StatusHoliday, attRepo.records[recordKey("emp-2", day)].Status)
}

func TestMaterializeForAllActive_MatchingStatusIsNotConflict(t *testing.T) {
	ctx := context.Background()
	attRepo := newFakeAttendanceRepository()
	empRepo := &fakeEmployeeRepository{activeIDs: []string{"emp-1", "emp-2"}}
	svc := newTestService(attRepo, empRepo, &fakeHolidayRepository{})

	day := date(2024, 8, 17)
	require.NoError(t, attRepo.Upsert(ctx, attendance.Attendance{
		ID: "pre", EmployeeID: "emp-1", Date: day, Status: attendance.StatusHoliday,
	}))

	res, err := svc.MaterializeForAllActive(ctx, day, attendance.StatusHoliday, "", false)
	require.NoError(t, err)

	assert.False(t, res.NeedsConfirmation, "same-status records are idempotent re-application")
	assert.Equal(t, 2, res.Written)
}

func TestRemoveRange_OnlyMatchingStatus(t *testing.T) {
	ctx := context.Background()
	attRepo := newFakeAttendanceRepository()
	svc := newTestService(attRepo, &fakeEmployeeRepository{}, &fakeHolidayRepository{})

	day := date(2024, 8, 17)
	require.NoError(t, attRepo.Upsert(ctx, attendance.Attendance{
		ID: "a", EmployeeID: "emp-1", Date: day, Status: attendance.StatusHoliday,
	}))
	require.NoError(t, attRepo.Upsert(ctx, attendance.Attendance{
		ID: "b", EmployeeID: "emp-2", Date: day, Status: attendance.StatusPresent,
	}))

	removed, err := svc.RemoveRange(ctx, nil, day, attendance.StatusHoliday)
	require.NoError(t, err)

	assert.Equal(t, int64(1), removed)
	_, stillThere := attRepo.records[recordKey("emp-2", day)]
	assert.True(t, stillThere, "records with other statuses survive the retraction")
}
