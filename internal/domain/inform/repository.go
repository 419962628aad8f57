package inform

import "context"

// InformRepository - interface for the informs / inform_reads tables
type InformRepository interface {
	Create(ctx context.Context, i Inform) (Inform, error)
	GetByID(ctx context.Context, id string) (Inform, error)
	// ListVisible returns announcements the user may see: public ones,
	// ones scoped to the user's department, and the user's own.
	ListVisible(ctx context.Context, userID string, departmentID *string) ([]Inform, error)
	Delete(ctx context.Context, id string) error
	MarkRead(ctx context.Context, informID, userID string) error
}
