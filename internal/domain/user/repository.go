package user

import "context"

// UserRepository - interface for the users table
type UserRepository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByIDs(ctx context.Context, ids []string) ([]User, error)
	List(ctx context.Context) ([]User, error)
	ListByDepartment(ctx context.Context, departmentID string) ([]User, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
	UpdatePassword(ctx context.Context, id string, passwordHash string) error
	UpdateLastLogin(ctx context.Context, id string) error
}
