package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/sawithr/sawit-hr-backend-go/internal/domain/leave"
	"github.com/sawithr/sawit-hr-backend-go/internal/pkg/database"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (
			id, employee_id, type,
			start_date, end_date, total_days,
			reason, status, submitted_at,
			created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2,
			$3, $4, $5,
			$6, $7, NOW(),
			NOW(), NOW()
		) RETURNING id, submitted_at, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		request.EmployeeID, request.Type,
		request.StartDate, request.EndDate, request.TotalDays,
		request.Reason, request.Status,
	).Scan(&request.ID, &request.SubmittedAt, &request.CreatedAt, &request.UpdatedAt)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return request, nil
}

func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT lr.id, lr.employee_id, lr.type,
			   lr.start_date, lr.end_date, lr.total_days,
			   lr.reason, lr.status,
			   lr.approved_by, lr.approved_at, lr.rejection_reason,
			   lr.submitted_at, lr.created_at, lr.updated_at,
			   e.full_name AS employee_name
		FROM leave_requests lr
		JOIN employees e ON lr.employee_id = e.id
		WHERE lr.id = $1
	`

	var req leave.LeaveRequest
	var employeeName string

	err := q.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.EmployeeID, &req.Type,
		&req.StartDate, &req.EndDate, &req.TotalDays,
		&req.Reason, &req.Status,
		&req.ApprovedBy, &req.ApprovedAt, &req.RejectionReason,
		&req.SubmittedAt, &req.CreatedAt, &req.UpdatedAt,
		&employeeName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, err
	}

	req.EmployeeName = &employeeName

	return req, nil
}

func (r *leaveRequestRepositoryImpl) List(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, int64, error) {
	q := GetQuerier(ctx, r.db)

	whereClauses := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("lr.employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("lr.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("lr.start_date >= $%d", argIdx))
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("lr.end_date <= $%d", argIdx))
		args = append(args, *filter.EndDate)
		argIdx++
	}

	whereClause := strings.Join(whereClauses, " AND ")

	countQuery := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM leave_requests lr
		WHERE %s
	`, whereClause)

	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count leave requests: %w", err)
	}

	if filter.Page == 0 {
		filter.Page = 1
	}
	if filter.Limit == 0 {
		filter.Limit = 20
	}
	offset := (filter.Page - 1) * filter.Limit

	query := fmt.Sprintf(`
		SELECT lr.id, lr.employee_id, lr.type,
			   lr.start_date, lr.end_date, lr.total_days,
			   lr.reason, lr.status,
			   lr.approved_by, lr.approved_at, lr.rejection_reason,
			   lr.submitted_at, lr.created_at, lr.updated_at,
			   e.full_name AS employee_name
		FROM leave_requests lr
		JOIN employees e ON lr.employee_id = e.id
		WHERE %s
		ORDER BY lr.submitted_at DESC
		LIMIT $%d OFFSET $%d
	`, whereClause, argIdx, argIdx+1)

	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		var req leave.LeaveRequest
		var employeeName string

		err := rows.Scan(
			&req.ID, &req.EmployeeID, &req.Type,
			&req.StartDate, &req.EndDate, &req.TotalDays,
			&req.Reason, &req.Status,
			&req.ApprovedBy, &req.ApprovedAt, &req.RejectionReason,
			&req.SubmittedAt, &req.CreatedAt, &req.UpdatedAt,
			&employeeName,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan leave request: %w", err)
		}

		req.EmployeeName = &employeeName
		requests = append(requests, req)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}

	return requests, total, nil
}

func (r *leaveRequestRepositoryImpl) UpdateStatusIf(ctx context.Context, id string, expected leave.LeaveRequestStatus, update leave.StatusUpdate) (bool, error) {
	q := GetQuerier(ctx, r.db)

	// Conditional transition: the WHERE clause guards against a concurrent
	// caller having already moved the request past the expected state.
	query := `
		UPDATE leave_requests
		SET status = $1,
			approved_by = COALESCE($2, approved_by),
			approved_at = CASE WHEN $2::text IS NOT NULL THEN NOW() ELSE approved_at END,
			rejection_reason = COALESCE($3, rejection_reason),
			updated_at = NOW()
		WHERE id = $4 AND status = $5
	`

	commandTag, err := q.Exec(ctx, query,
		update.Status, update.ApprovedBy, update.RejectionReason, id, expected,
	)
	if err != nil {
		return false, fmt.Errorf("failed to update status for leave request %s: %w", id, err)
	}

	return commandTag.RowsAffected() == 1, nil
}
