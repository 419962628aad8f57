package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/oa-project/office-backend-go/internal/domain/attendance"
	"github.com/oa-project/office-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceColumns = `
	a.id, a.title, a.request_content, a.attendance_type_id,
	a.requester_id, a.responser_id, a.status,
	a.start_time, a.end_time, a.approval_time, a.approval_content,
	a.created_at, a.updated_at,
	req.username as requester_name,
	res.username as responser_name,
	t.name as attendance_type_name
`

const attendanceFrom = `
	FROM attendances a
	JOIN users req ON a.requester_id = req.id
	LEFT JOIN users res ON a.responser_id = res.id
	JOIN attendance_types t ON a.attendance_type_id = t.id
`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var a attendance.Attendance
	err := row.Scan(
		&a.ID, &a.Title, &a.RequestContent, &a.AttendanceTypeID,
		&a.RequesterID, &a.ResponserID, &a.Status,
		&a.StartTime, &a.EndTime, &a.ApprovalTime, &a.ApprovalContent,
		&a.CreatedAt, &a.UpdatedAt,
		&a.RequesterName, &a.ResponserName, &a.AttendanceTypeName,
	)
	return a, err
}

func (r *attendanceRepositoryImpl) Create(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (
			id, title, request_content, attendance_type_id,
			requester_id, responser_id, status,
			start_time, end_time, approval_time, approval_content,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4,
			$5, $6, $7,
			$8, $9, $10, $11,
			NOW(), NOW()
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		a.ID, a.Title, a.RequestContent, a.AttendanceTypeID,
		a.RequesterID, a.ResponserID, a.Status,
		a.StartTime, a.EndTime, a.ApprovalTime, a.ApprovalContent,
	).Scan(&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to insert attendance request: %w", err)
	}

	return a, nil
}

func (r *attendanceRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	a, err := scanAttendance(q.QueryRow(ctx, `SELECT `+attendanceColumns+attendanceFrom+` WHERE a.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, err
	}
	return a, nil
}

func (r *attendanceRepositoryImpl) ListAll(ctx context.Context, filter attendance.ListFilter) ([]attendance.Attendance, int64, error) {
	return r.list(ctx, ``, nil, filter)
}

func (r *attendanceRepositoryImpl) ListInvolving(ctx context.Context, userID string, filter attendance.ListFilter) ([]attendance.Attendance, int64, error) {
	return r.list(ctx, `WHERE a.requester_id = $1 OR a.responser_id = $1`, []interface{}{userID}, filter)
}

func (r *attendanceRepositoryImpl) list(ctx context.Context, where string, args []interface{}, filter attendance.ListFilter) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, r.db)

	countQuery := `SELECT COUNT(*) FROM attendances a ` + where
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance requests: %w", err)
	}

	if filter.Page == 0 {
		filter.Page = 1
	}
	if filter.PageSize == 0 {
		filter.PageSize = 10
	}
	offset := (filter.Page - 1) * filter.PageSize

	argIdx := len(args) + 1
	query := fmt.Sprintf(`SELECT %s %s %s ORDER BY a.created_at DESC LIMIT $%d OFFSET $%d`,
		attendanceColumns, attendanceFrom, where, argIdx, argIdx+1)
	args = append(args, filter.PageSize, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query attendance requests: %w", err)
	}
	defer rows.Close()

	var requests []attendance.Attendance
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance row: %w", err)
		}
		requests = append(requests, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}

	return requests, total, nil
}

// Decide flips a pending request to its final status. The status guard in
// the WHERE clause makes the read-modify-write atomic: when two decisions
// race, the second one matches zero rows and loses.
func (r *attendanceRepositoryImpl) Decide(ctx context.Context, id string, decision attendance.Status, remark string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET status = $1, approval_content = $2, approval_time = NOW(), updated_at = NOW()
		WHERE id = $3 AND status = $4
	`

	tag, err := q.Exec(ctx, query, decision, remark, id, attendance.StatusPending)
	if err != nil {
		return fmt.Errorf("failed to decide attendance request %s: %w", id, err)
	}
	if tag.RowsAffected() != 1 {
		// Either the id is unknown or a concurrent decision already won.
		var exists bool
		if err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM attendances WHERE id = $1)`, id).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return attendance.ErrAttendanceNotFound
		}
		return attendance.ErrAlreadyProcessed
	}
	return nil
}
