package attendance

import "time"

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// IsDecision reports whether s is a value an approver may set.
// Pending is the initial state only, never a decision.
func (s Status) IsDecision() bool {
	return s == StatusApproved || s == StatusRejected
}

// AttendanceType catalog entry (annual leave, sick leave, ...).
type AttendanceType struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

// Attendance is a single leave request. ResponserID is resolved once at
// creation time and is immutable for the life of the request; it is nil only
// for auto-approved requests filed by the Board leader.
type Attendance struct {
	ID               string
	Title            string
	RequestContent   string
	AttendanceTypeID string
	RequesterID      string
	ResponserID      *string
	Status           Status
	StartTime        time.Time
	EndTime          time.Time
	ApprovalTime     *time.Time
	ApprovalContent  *string
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// DTO / Join
	RequesterName      *string
	ResponserName      *string
	AttendanceTypeName *string
}
