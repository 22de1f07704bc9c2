package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/sawithr/sawit-hr-backend-go/internal/domain/master/division"
	"github.com/sawithr/sawit-hr-backend-go/internal/pkg/database"
)

type divisionRepositoryImpl struct {
	db *database.DB
}

func NewDivisionRepository(db *database.DB) division.DivisionRepository {
	return &divisionRepositoryImpl{db: db}
}

func (r *divisionRepositoryImpl) Create(ctx context.Context, d division.Division) (division.Division, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO divisions (id, name, description, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, d.Name, d.Description).Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "divisions_name_key") {
			return division.Division{}, division.ErrDivisionNameExists
		}
		return division.Division{}, fmt.Errorf("failed to create division: %w", err)
	}

	return d, nil
}

func (r *divisionRepositoryImpl) GetByID(ctx context.Context, id string) (division.Division, error) {
	q := GetQuerier(ctx, r.db)

	var d division.Division
	err := q.QueryRow(ctx, `
		SELECT id, name, description, created_at, updated_at
		FROM divisions WHERE id = $1
	`, id).Scan(&d.ID, &d.Name, &d.Description, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return division.Division{}, division.ErrDivisionNotFound
		}
		return division.Division{}, err
	}

	return d, nil
}

func (r *divisionRepositoryImpl) GetByName(ctx context.Context, name string) (division.Division, error) {
	q := GetQuerier(ctx, r.db)

	var d division.Division
	err := q.QueryRow(ctx, `
		SELECT id, name, description, created_at, updated_at
		FROM divisions WHERE name = $1
	`, name).Scan(&d.ID, &d.Name, &d.Description, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return division.Division{}, division.ErrDivisionNotFound
		}
		return division.Division{}, err
	}

	return d, nil
}

func (r *divisionRepositoryImpl) List(ctx context.Context) ([]division.Division, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, name, description, created_at, updated_at
		FROM divisions ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query divisions: %w", err)
	}
	defer rows.Close()

	var divisions []division.Division
	for rows.Next() {
		var d division.Division
		if err := rows.Scan(&d.ID, &d.Name, &d.Description, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, err
		}
		divisions = append(divisions, d)
	}

	return divisions, rows.Err()
}

func (r *divisionRepositoryImpl) Update(ctx context.Context, req division.UpdateDivisionRequest) error {
	q := GetQuerier(ctx, r.db)

	updates := make([]string, 0)
	args := make([]interface{}, 0)
	argIdx := 1

	if req.Name != nil {
		updates = append(updates, fmt.Sprintf("name = $%d", argIdx))
		args = append(args, *req.Name)
		argIdx++
	}
	if req.Description != nil {
		updates = append(updates, fmt.Sprintf("description = $%d", argIdx))
		args = append(args, *req.Description)
		argIdx++
	}

	if len(updates) == 0 {
		return fmt.Errorf("no updatable fields provided for division update")
	}

	updates = append(updates, "updated_at = NOW()")
	args = append(args, req.ID)

	sql := "UPDATE divisions SET " + strings.Join(updates, ", ") + fmt.Sprintf(" WHERE id = $%d RETURNING id", argIdx)

	var updatedID string
	if err := q.QueryRow(ctx, sql, args...).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return division.ErrDivisionNotFound
		}
		return fmt.Errorf("failed to update division %s: %w", req.ID, err)
	}
	return nil
}

func (r *divisionRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM divisions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return division.ErrDivisionNotFound
	}
	return nil
}
