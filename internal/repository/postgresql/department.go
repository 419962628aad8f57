package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/oa-project/office-backend-go/internal/domain/department"
	"github.com/oa-project/office-backend-go/internal/pkg/database"
)

type departmentRepositoryImpl struct {
	db *database.DB
}

func NewDepartmentRepository(db *database.DB) department.DepartmentRepository {
	return &departmentRepositoryImpl{db: db}
}

// Leader/manager names come from joins so a user rename is reflected on the
// next read without touching the departments table.
const departmentSelect = `
	SELECT d.id, d.name, d.introduction, d.leader_id, d.manager_id,
		   d.created_at, d.updated_at,
		   l.username as leader_name,
		   m.username as manager_name
	FROM departments d
	LEFT JOIN users l ON d.leader_id = l.id
	LEFT JOIN users m ON d.manager_id = m.id
`

func scanDepartment(row pgx.Row) (department.Department, error) {
	var d department.Department
	err := row.Scan(
		&d.ID, &d.Name, &d.Introduction, &d.LeaderID, &d.ManagerID,
		&d.CreatedAt, &d.UpdatedAt,
		&d.LeaderName, &d.ManagerName,
	)
	return d, err
}

func (r *departmentRepositoryImpl) Create(ctx context.Context, d department.Department) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO departments (id, name, introduction, leader_id, manager_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query, d.ID, d.Name, d.Introduction, d.LeaderID, d.ManagerID).
		Scan(&d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return department.Department{}, fmt.Errorf("failed to insert department: %w", err)
	}

	return d, nil
}

func (r *departmentRepositoryImpl) GetByID(ctx context.Context, id string) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	d, err := scanDepartment(q.QueryRow(ctx, departmentSelect+` WHERE d.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return department.Department{}, department.ErrDepartmentNotFound
		}
		return department.Department{}, err
	}
	return d, nil
}

func (r *departmentRepositoryImpl) GetByLeaderID(ctx context.Context, leaderID string) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	d, err := scanDepartment(q.QueryRow(ctx, departmentSelect+` WHERE d.leader_id = $1`, leaderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return department.Department{}, department.ErrDepartmentNotFound
		}
		return department.Department{}, err
	}
	return d, nil
}

func (r *departmentRepositoryImpl) List(ctx context.Context) ([]department.Department, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, departmentSelect+` ORDER BY d.created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var departments []department.Department
	for rows.Next() {
		d, err := scanDepartment(rows)
		if err != nil {
			return nil, err
		}
		departments = append(departments, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return departments, nil
}

func (r *departmentRepositoryImpl) UpdateLeader(ctx context.Context, id string, leaderID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE departments SET leader_id = $1, updated_at = NOW() WHERE id = $2`, leaderID, id)
	if err != nil {
		return fmt.Errorf("failed to update department leader: %w", err)
	}
	if tag.RowsAffected() != 1 {
		return department.ErrDepartmentNotFound
	}
	return nil
}
