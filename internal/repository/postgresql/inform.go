package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/oa-project/office-backend-go/internal/domain/inform"
	"github.com/oa-project/office-backend-go/internal/pkg/database"
)

type informRepositoryImpl struct {
	db *database.DB
}

func NewInformRepository(db *database.DB) inform.InformRepository {
	return &informRepositoryImpl{db: db}
}

// Create inserts the announcement row and its department links as one
// transaction, so a failed link insert never leaves an orphaned
// announcement behind.
func (r *informRepositoryImpl) Create(ctx context.Context, i inform.Inform) (inform.Inform, error) {
	err := WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, r.db)

		query := `
			INSERT INTO informs (id, title, content, public, author_id, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
			RETURNING created_at, updated_at
		`

		err := q.QueryRow(txCtx, query, i.ID, i.Title, i.Content, i.Public, i.AuthorID).
			Scan(&i.CreatedAt, &i.UpdatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert announcement: %w", err)
		}

		for _, deptID := range i.DepartmentIDs {
			_, err := q.Exec(txCtx, `INSERT INTO inform_departments (inform_id, department_id) VALUES ($1, $2)`, i.ID, deptID)
			if err != nil {
				return fmt.Errorf("failed to link announcement department: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return inform.Inform{}, err
	}

	return i, nil
}

func (r *informRepositoryImpl) GetByID(ctx context.Context, id string) (inform.Inform, error) {
	q := GetQuerier(ctx, r.db)

	var i inform.Inform
	err := q.QueryRow(ctx, `
		SELECT i.id, i.title, i.content, i.public, i.author_id, i.created_at, i.updated_at,
			   u.username as author_name
		FROM informs i
		JOIN users u ON i.author_id = u.id
		WHERE i.id = $1
	`, id).Scan(&i.ID, &i.Title, &i.Content, &i.Public, &i.AuthorID, &i.CreatedAt, &i.UpdatedAt, &i.AuthorName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return inform.Inform{}, inform.ErrInformNotFound
		}
		return inform.Inform{}, err
	}

	rows, err := q.Query(ctx, `SELECT department_id FROM inform_departments WHERE inform_id = $1`, id)
	if err != nil {
		return inform.Inform{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var deptID string
		if err := rows.Scan(&deptID); err != nil {
			return inform.Inform{}, err
		}
		i.DepartmentIDs = append(i.DepartmentIDs, deptID)
	}
	if err := rows.Err(); err != nil {
		return inform.Inform{}, fmt.Errorf("rows iteration error: %w", err)
	}

	return i, nil
}

func (r *informRepositoryImpl) ListVisible(ctx context.Context, userID string, departmentID *string) ([]inform.Inform, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT DISTINCT i.id, i.title, i.content, i.public, i.author_id, i.created_at, i.updated_at,
			   u.username as author_name,
			   EXISTS (
				   SELECT 1 FROM inform_reads ir
				   WHERE ir.inform_id = i.id AND ir.user_id = $1
			   ) as read_by_me
		FROM informs i
		JOIN users u ON i.author_id = u.id
		LEFT JOIN inform_departments id_link ON i.id = id_link.inform_id
		WHERE i.public = TRUE
		   OR i.author_id = $1
		   OR ($2::text IS NOT NULL AND id_link.department_id = $2)
		ORDER BY i.created_at DESC
	`

	rows, err := q.Query(ctx, query, userID, departmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query announcements: %w", err)
	}
	defer rows.Close()

	var informs []inform.Inform
	for rows.Next() {
		var i inform.Inform
		err := rows.Scan(&i.ID, &i.Title, &i.Content, &i.Public, &i.AuthorID, &i.CreatedAt, &i.UpdatedAt,
			&i.AuthorName, &i.ReadByMe)
		if err != nil {
			return nil, err
		}
		informs = append(informs, i)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return informs, nil
}

func (r *informRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM informs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete announcement: %w", err)
	}
	if tag.RowsAffected() != 1 {
		return inform.ErrInformNotFound
	}
	return nil
}

func (r *informRepositoryImpl) MarkRead(ctx context.Context, informID, userID string) error {
	q := GetQuerier(ctx, r.db)

	// One read record per user per announcement.
	_, err := q.Exec(ctx, `
		INSERT INTO inform_reads (inform_id, user_id, read_time)
		VALUES ($1, $2, NOW())
		ON CONFLICT (inform_id, user_id) DO NOTHING
	`, informID, userID)
	if err != nil {
		return fmt.Errorf("failed to mark announcement read: %w", err)
	}
	return nil
}
