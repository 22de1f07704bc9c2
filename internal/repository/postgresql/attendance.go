package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/sawithr/sawit-hr-backend-go/internal/domain/attendance"
	"github.com/sawithr/sawit-hr-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

func (r *attendanceRepositoryImpl) Upsert(ctx context.Context, rec attendance.Attendance) error {
	q := GetQuerier(ctx, r.db)

	// The new write always wins on (employee_id, date).
	query := `
		INSERT INTO attendance_records (
			id, employee_id, date, status, note,
			check_in, check_out, work_hours_in_minutes,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5,
			$6, $7, $8,
			NOW(), NOW()
		)
		ON CONFLICT (employee_id, date) DO UPDATE SET
			status = EXCLUDED.status,
			note = EXCLUDED.note,
			check_in = EXCLUDED.check_in,
			check_out = EXCLUDED.check_out,
			work_hours_in_minutes = EXCLUDED.work_hours_in_minutes,
			updated_at = NOW()
	`

	_, err := q.Exec(ctx, query,
		rec.ID, rec.EmployeeID, rec.Date, rec.Status, rec.Note,
		rec.CheckIn, rec.CheckOut, rec.WorkHoursInMinutes,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert attendance for employee %s on %s: %w",
			rec.EmployeeID, rec.Date.Format("2006-01-02"), err)
	}
	return nil
}

func (r *attendanceRepositoryImpl) ListByEmployeeRange(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, status, note,
			   check_in, check_out, work_hours_in_minutes,
			   created_at, updated_at
		FROM attendance_records
		WHERE employee_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var rec attendance.Attendance
		err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.Date, &rec.Status, &rec.Note,
			&rec.CheckIn, &rec.CheckOut, &rec.WorkHoursInMinutes,
			&rec.CreatedAt, &rec.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

func (r *attendanceRepositoryImpl) CountConflicting(ctx context.Context, date time.Time, status attendance.Status) (int, []attendance.Status, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT status, COUNT(*)
		FROM attendance_records
		WHERE date = $1 AND status <> $2
		GROUP BY status
	`

	rows, err := q.Query(ctx, query, date, status)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to count conflicting attendance: %w", err)
	}
	defer rows.Close()

	var total int
	var statuses []attendance.Status
	for rows.Next() {
		var s attendance.Status
		var count int
		if err := rows.Scan(&s, &count); err != nil {
			return 0, nil, err
		}
		total += count
		statuses = append(statuses, s)
	}

	return total, statuses, rows.Err()
}

func (r *attendanceRepositoryImpl) DeleteByDateStatus(ctx context.Context, date time.Time, status attendance.Status, employeeID *string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var query string
	var args []interface{}
	if employeeID != nil {
		query = `DELETE FROM attendance_records WHERE date = $1 AND status = $2 AND employee_id = $3`
		args = []interface{}{date, status, *employeeID}
	} else {
		query = `DELETE FROM attendance_records WHERE date = $1 AND status = $2`
		args = []interface{}{date, status}
	}

	commandTag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to delete attendance records: %w", err)
	}
	return commandTag.RowsAffected(), nil
}
