package department

import "time"

// BoardName is the root of the departmental hierarchy. The Board has no
// manager above it; its leader is the terminal approver.
const BoardName = "Board"

type Department struct {
	ID           string
	Name         string
	Introduction string
	LeaderID     *string
	ManagerID    *string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// DTO / Join - leader/manager display names are resolved at read time,
	// never persisted, so a rename can't leave a stale copy behind.
	LeaderName  *string
	ManagerName *string
}

// IsBoard reports whether d is the root department.
func (d *Department) IsBoard() bool {
	return d.Name == BoardName
}

// IsLedBy checks whether the given user leads this department.
func (d *Department) IsLedBy(userID string) bool {
	return d.LeaderID != nil && *d.LeaderID == userID
}

// IsManagedBy checks whether the given user is this department's manager.
func (d *Department) IsManagedBy(userID string) bool {
	return d.ManagerID != nil && *d.ManagerID == userID
}
