package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/sawithr/sawit-hr-backend-go/internal/domain/transfer"
	"github.com/sawithr/sawit-hr-backend-go/internal/pkg/database"
)

type transferRepositoryImpl struct {
	db *database.DB
}

func NewTransferRepository(db *database.DB) transfer.TransferRepository {
	return &transferRepositoryImpl{db: db}
}

const transferColumns = `
	t.id, t.employee_id,
	t.from_division_id, t.from_position_id, t.to_division_id, t.to_position_id,
	t.transfer_date, t.effective_date, t.reason,
	t.status, t.requested_by, t.approved_by, t.approved_at, t.notes, t.completed_at,
	t.created_at, t.updated_at
`

func scanTransfer(row pgx.Row) (transfer.EmployeeTransfer, error) {
	var tr transfer.EmployeeTransfer
	err := row.Scan(
		&tr.ID, &tr.EmployeeID,
		&tr.FromDivisionID, &tr.FromPositionID, &tr.ToDivisionID, &tr.ToPositionID,
		&tr.TransferDate, &tr.EffectiveDate, &tr.Reason,
		&tr.Status, &tr.RequestedBy, &tr.ApprovedBy, &tr.ApprovedAt, &tr.Notes, &tr.CompletedAt,
		&tr.CreatedAt, &tr.UpdatedAt,
	)
	return tr, err
}

func (r *transferRepositoryImpl) Create(ctx context.Context, t transfer.EmployeeTransfer) (transfer.EmployeeTransfer, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employee_transfers (
			id, employee_id,
			from_division_id, from_position_id, to_division_id, to_position_id,
			transfer_date, effective_date, reason,
			status, requested_by,
			created_at, updated_at
		) VALUES (
			uuidv7(), $1,
			$2, $3, $4, $5,
			$6, $7, $8,
			$9, $10,
			NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		t.EmployeeID,
		t.FromDivisionID, t.FromPositionID, t.ToDivisionID, t.ToPositionID,
		t.TransferDate, t.EffectiveDate, t.Reason,
		t.Status, t.RequestedBy,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return transfer.EmployeeTransfer{}, fmt.Errorf("failed to create employee transfer: %w", err)
	}

	return t, nil
}

func (r *transferRepositoryImpl) GetByID(ctx context.Context, id string) (transfer.EmployeeTransfer, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s, e.full_name AS employee_name
		FROM employee_transfers t
		JOIN employees e ON t.employee_id = e.id
		WHERE t.id = $1
	`, transferColumns)

	var tr transfer.EmployeeTransfer
	var employeeName string

	err := q.QueryRow(ctx, query, id).Scan(
		&tr.ID, &tr.EmployeeID,
		&tr.FromDivisionID, &tr.FromPositionID, &tr.ToDivisionID, &tr.ToPositionID,
		&tr.TransferDate, &tr.EffectiveDate, &tr.Reason,
		&tr.Status, &tr.RequestedBy, &tr.ApprovedBy, &tr.ApprovedAt, &tr.Notes, &tr.CompletedAt,
		&tr.CreatedAt, &tr.UpdatedAt,
		&employeeName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return transfer.EmployeeTransfer{}, transfer.ErrTransferNotFound
		}
		return transfer.EmployeeTransfer{}, err
	}

	tr.EmployeeName = &employeeName

	return tr, nil
}

func (r *transferRepositoryImpl) List(ctx context.Context, filter transfer.TransferFilter) ([]transfer.EmployeeTransfer, int64, error) {
	q := GetQuerier(ctx, r.db)

	whereClauses := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("t.employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("t.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}

	whereClause := strings.Join(whereClauses, " AND ")

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM employee_transfers t WHERE %s`, whereClause)
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count employee transfers: %w", err)
	}

	if filter.Page == 0 {
		filter.Page = 1
	}
	if filter.Limit == 0 {
		filter.Limit = 20
	}
	offset := (filter.Page - 1) * filter.Limit

	query := fmt.Sprintf(`
		SELECT %s, e.full_name AS employee_name
		FROM employee_transfers t
		JOIN employees e ON t.employee_id = e.id
		WHERE %s
		ORDER BY t.transfer_date DESC
		LIMIT $%d OFFSET $%d
	`, transferColumns, whereClause, argIdx, argIdx+1)

	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query employee transfers: %w", err)
	}
	defer rows.Close()

	var transfers []transfer.EmployeeTransfer
	for rows.Next() {
		var tr transfer.EmployeeTransfer
		var employeeName string

		err := rows.Scan(
			&tr.ID, &tr.EmployeeID,
			&tr.FromDivisionID, &tr.FromPositionID, &tr.ToDivisionID, &tr.ToPositionID,
			&tr.TransferDate, &tr.EffectiveDate, &tr.Reason,
			&tr.Status, &tr.RequestedBy, &tr.ApprovedBy, &tr.ApprovedAt, &tr.Notes, &tr.CompletedAt,
			&tr.CreatedAt, &tr.UpdatedAt,
			&employeeName,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan employee transfer: %w", err)
		}

		tr.EmployeeName = &employeeName
		transfers = append(transfers, tr)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}

	return transfers, total, nil
}

func (r *transferRepositoryImpl) ListDue(ctx context.Context, today time.Time) ([]transfer.EmployeeTransfer, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM employee_transfers t
		WHERE t.status = $1 AND t.effective_date <= $2
		ORDER BY t.effective_date
	`, transferColumns)

	rows, err := q.Query(ctx, query, transfer.TransferStatusApproved, today)
	if err != nil {
		return nil, fmt.Errorf("failed to query due transfers: %w", err)
	}
	defer rows.Close()

	var transfers []transfer.EmployeeTransfer
	for rows.Next() {
		tr, err := scanTransfer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan due transfer: %w", err)
		}
		transfers = append(transfers, tr)
	}

	return transfers, rows.Err()
}

func (r *transferRepositoryImpl) UpdateStatusIf(ctx context.Context, id string, expected transfer.TransferStatus, update transfer.StatusUpdate) (bool, error) {
	q := GetQuerier(ctx, r.db)

	updates := []string{"status = $1", "updated_at = NOW()"}
	args := []interface{}{update.Status}
	argIdx := 2

	if update.ApprovedBy != nil {
		updates = append(updates, fmt.Sprintf("approved_by = $%d", argIdx), "approved_at = NOW()")
		args = append(args, *update.ApprovedBy)
		argIdx++
	}
	if update.Notes != nil {
		updates = append(updates, fmt.Sprintf("notes = $%d", argIdx))
		args = append(args, *update.Notes)
		argIdx++
	}
	if update.MarkCompleted {
		updates = append(updates, "completed_at = NOW()")
	}

	query := fmt.Sprintf(`
		UPDATE employee_transfers
		SET %s
		WHERE id = $%d AND status = $%d
	`, strings.Join(updates, ", "), argIdx, argIdx+1)

	args = append(args, id, expected)

	commandTag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to update status for transfer %s: %w", id, err)
	}

	return commandTag.RowsAffected() == 1, nil
}
