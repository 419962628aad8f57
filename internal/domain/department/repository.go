package department

import "context"

// DepartmentRepository - interface for the departments table
type DepartmentRepository interface {
	Create(ctx context.Context, d Department) (Department, error)
	GetByID(ctx context.Context, id string) (Department, error)
	GetByLeaderID(ctx context.Context, leaderID string) (Department, error)
	List(ctx context.Context) ([]Department, error)
	UpdateLeader(ctx context.Context, id string, leaderID string) error
}
