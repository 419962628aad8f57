package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/oa-project/office-backend-go/internal/domain/attendance"
	"github.com/oa-project/office-backend-go/internal/pkg/database"
)

type attendanceTypeRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceTypeRepository(db *database.DB) attendance.AttendanceTypeRepository {
	return &attendanceTypeRepositoryImpl{db: db}
}

func (r *attendanceTypeRepositoryImpl) Create(ctx context.Context, t attendance.AttendanceType) (attendance.AttendanceType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_types (id, name, created_at)
		VALUES ($1, $2, NOW())
		RETURNING created_at
	`

	if err := q.QueryRow(ctx, query, t.ID, t.Name).Scan(&t.CreatedAt); err != nil {
		return attendance.AttendanceType{}, fmt.Errorf("failed to insert attendance type: %w", err)
	}
	return t, nil
}

func (r *attendanceTypeRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.AttendanceType, error) {
	q := GetQuerier(ctx, r.db)

	var t attendance.AttendanceType
	err := q.QueryRow(ctx, `SELECT id, name, created_at FROM attendance_types WHERE id = $1`, id).
		Scan(&t.ID, &t.Name, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.AttendanceType{}, attendance.ErrTypeNotFound
		}
		return attendance.AttendanceType{}, err
	}
	return t, nil
}

func (r *attendanceTypeRepositoryImpl) List(ctx context.Context) ([]attendance.AttendanceType, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id, name, created_at FROM attendance_types ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []attendance.AttendanceType
	for rows.Next() {
		var t attendance.AttendanceType
		if err := rows.Scan(&t.ID, &t.Name, &t.CreatedAt); err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return types, nil
}
