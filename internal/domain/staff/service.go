package staff

import (
	"context"

	"github.com/xuri/excelize/v2"

	"github.com/oa-project/office-backend-go/internal/domain/user"
)

// StaffService covers onboarding and the staff directory views.
type StaffService interface {
	// Add onboards a new staff member into the inviter's department with a
	// disabled account and mails them an activation link.
	Add(ctx context.Context, inviter user.User, req AddStaffRequest) (user.UserResponse, error)
	// Activate consumes an activation token and flips the account from
	// disabled to active.
	Activate(ctx context.Context, token string) (user.UserResponse, error)
	List(ctx context.Context, caller user.User) (StaffListResponse, error)
	// Download builds an xlsx workbook of the selected staff. A department
	// leader only gets rows from their own department.
	Download(ctx context.Context, caller user.User, ids []string) (*excelize.File, error)
	UpdateDepartmentLeader(ctx context.Context, caller user.User, departmentID, newLeaderID string) error
}
