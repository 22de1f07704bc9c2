package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/sawithr/sawit-hr-backend-go/internal/domain/employee"
	"github.com/sawithr/sawit-hr-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	e.id, e.employee_code, e.full_name, e.division_id, e.position_id,
	e.employment_type, e.daily_wage, e.status, e.workflow_status,
	e.probation_end_date, e.termination_reason, e.join_date,
	e.created_at, e.updated_at
`

func (r *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			id, employee_code, full_name, division_id, position_id,
			employment_type, daily_wage, status, workflow_status, join_date,
			created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4,
			$5, $6, $7, $8, $9,
			NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		emp.EmployeeCode, emp.FullName, emp.DivisionID, emp.PositionID,
		emp.EmploymentType, emp.DailyWage, emp.Status, emp.WorkflowStatus, emp.JoinDate,
	).Scan(&emp.ID, &emp.CreatedAt, &emp.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "employees_employee_code_key") {
			return employee.Employee{}, employee.ErrEmployeeCodeExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return emp, nil
}

func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s, d.name AS division_name, p.name AS position_name
		FROM employees e
		JOIN divisions d ON e.division_id = d.id
		JOIN positions p ON e.position_id = p.id
		WHERE e.id = $1
	`, employeeColumns)

	var emp employee.Employee
	var divisionName, positionName string

	err := q.QueryRow(ctx, query, id).Scan(
		&emp.ID, &emp.EmployeeCode, &emp.FullName, &emp.DivisionID, &emp.PositionID,
		&emp.EmploymentType, &emp.DailyWage, &emp.Status, &emp.WorkflowStatus,
		&emp.ProbationEndDate, &emp.TerminationReason, &emp.JoinDate,
		&emp.CreatedAt, &emp.UpdatedAt,
		&divisionName, &positionName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}

	emp.DivisionName = &divisionName
	emp.PositionName = &positionName

	return emp, nil
}

func (r *employeeRepositoryImpl) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, r.db)

	whereClauses := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.DivisionID != nil && *filter.DivisionID != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("e.division_id = $%d", argIdx))
		args = append(args, *filter.DivisionID)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("e.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.Search != nil && *filter.Search != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("(e.full_name ILIKE $%d OR e.employee_code ILIKE $%d)", argIdx, argIdx))
		args = append(args, "%"+*filter.Search+"%")
		argIdx++
	}

	whereClause := strings.Join(whereClauses, " AND ")

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM employees e WHERE %s`, whereClause)
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	if filter.Page == 0 {
		filter.Page = 1
	}
	if filter.Limit == 0 {
		filter.Limit = 20
	}
	offset := (filter.Page - 1) * filter.Limit

	query := fmt.Sprintf(`
		SELECT %s, d.name AS division_name, p.name AS position_name
		FROM employees e
		JOIN divisions d ON e.division_id = d.id
		JOIN positions p ON e.position_id = p.id
		WHERE %s
		ORDER BY e.employee_code
		LIMIT $%d OFFSET $%d
	`, employeeColumns, whereClause, argIdx, argIdx+1)

	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		var divisionName, positionName string

		err := rows.Scan(
			&emp.ID, &emp.EmployeeCode, &emp.FullName, &emp.DivisionID, &emp.PositionID,
			&emp.EmploymentType, &emp.DailyWage, &emp.Status, &emp.WorkflowStatus,
			&emp.ProbationEndDate, &emp.TerminationReason, &emp.JoinDate,
			&emp.CreatedAt, &emp.UpdatedAt,
			&divisionName, &positionName,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan employee: %w", err)
		}

		emp.DivisionName = &divisionName
		emp.PositionName = &positionName
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}

	return employees, total, nil
}

func (r *employeeRepositoryImpl) ListActiveIDs(ctx context.Context) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id FROM employees WHERE status = $1`, employee.StatusActive)
	if err != nil {
		return nil, fmt.Errorf("failed to query active employees: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

func (r *employeeRepositoryImpl) UpdateAssignment(ctx context.Context, id string, divisionID, positionID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET division_id = $1, position_id = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING id
	`
	var updatedID string
	if err := q.QueryRow(ctx, query, divisionID, positionID, id).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to update assignment for employee %s: %w", id, err)
	}
	return nil
}

func (r *employeeRepositoryImpl) UpdateWorkflow(ctx context.Context, id string, update employee.WorkflowUpdate) error {
	q := GetQuerier(ctx, r.db)

	updates := make([]string, 0)
	args := make([]interface{}, 0)
	argIdx := 1

	if update.Status != nil {
		updates = append(updates, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *update.Status)
		argIdx++
	}
	if update.WorkflowStatus != nil {
		updates = append(updates, fmt.Sprintf("workflow_status = $%d", argIdx))
		args = append(args, *update.WorkflowStatus)
		argIdx++
	}
	if update.ProbationEndDate != nil {
		updates = append(updates, fmt.Sprintf("probation_end_date = $%d", argIdx))
		args = append(args, *update.ProbationEndDate)
		argIdx++
	} else if update.ClearProbationEndDate {
		updates = append(updates, "probation_end_date = NULL")
	}
	if update.TerminationReason != nil {
		updates = append(updates, fmt.Sprintf("termination_reason = $%d", argIdx))
		args = append(args, *update.TerminationReason)
		argIdx++
	} else if update.ClearTerminationReason {
		updates = append(updates, "termination_reason = NULL")
	}

	if len(updates) == 0 {
		return fmt.Errorf("no updatable fields provided for employee workflow update")
	}

	updates = append(updates, "updated_at = NOW()")
	args = append(args, id)

	sql := "UPDATE employees SET " + strings.Join(updates, ", ") + fmt.Sprintf(" WHERE id = $%d RETURNING id", argIdx)

	var updatedID string
	if err := q.QueryRow(ctx, sql, args...).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to update workflow for employee %s: %w", id, err)
	}
	return nil
}
