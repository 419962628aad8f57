package attendance

import (
	"context"

	"github.com/oa-project/office-backend-go/internal/domain/user"
)

// AttendanceService owns the leave request lifecycle: approver resolution at
// creation, the single pending -> {approved,rejected} transition, and the
// role-scoped listing views.
type AttendanceService interface {
	Create(ctx context.Context, requester user.User, req CreateAttendanceRequest) (AttendanceResponse, error)
	Decide(ctx context.Context, actor user.User, requestID string, req DecideAttendanceRequest) (AttendanceResponse, error)
	List(ctx context.Context, caller user.User, scope ListScope, filter ListFilter) ([]AttendanceResponse, int64, error)
	ListTypes(ctx context.Context) ([]AttendanceTypeResponse, error)
	// MyApprover resolves who would approve a request filed by the caller
	// right now. Returns nil for the Board leader (auto-approval).
	MyApprover(ctx context.Context, caller user.User) (*user.UserResponse, error)
}
