package attendance

import "context"

// ListScope selects which requests a caller sees. It mirrors the `who`
// query parameter: manager sees everything, every other value collapses to
// the requester-or-responser union for the caller.
type ListScope string

const (
	ScopeRequester ListScope = "requester"
	ScopeResponser ListScope = "responser"
	ScopeLeader    ListScope = "leader"
	ScopeManager   ListScope = "manager"
)

type ListFilter struct {
	Page     int
	PageSize int
}

// AttendanceTypeRepository - interface for the attendance_types table
type AttendanceTypeRepository interface {
	Create(ctx context.Context, t AttendanceType) (AttendanceType, error)
	GetByID(ctx context.Context, id string) (AttendanceType, error)
	List(ctx context.Context) ([]AttendanceType, error)
}

// AttendanceRepository - interface for the attendances table
type AttendanceRepository interface {
	Create(ctx context.Context, a Attendance) (Attendance, error)
	GetByID(ctx context.Context, id string) (Attendance, error)
	// ListAll returns every request system-wide (manager overview).
	ListAll(ctx context.Context, filter ListFilter) ([]Attendance, int64, error)
	// ListInvolving returns requests where userID is requester or responser.
	ListInvolving(ctx context.Context, userID string, filter ListFilter) ([]Attendance, int64, error)
	// Decide performs the one legal transition pending -> {approved,rejected}
	// as a conditional update on status. When the request is no longer
	// pending (a concurrent decision won) it returns ErrAlreadyProcessed.
	Decide(ctx context.Context, id string, decision Status, remark string) error
}
