package attendance

import (
	"github.com/oa-project/office-backend-go/internal/domain/attendance"
	"github.com/oa-project/office-backend-go/internal/domain/department"
	"github.com/oa-project/office-backend-go/internal/domain/user"
)

// ResolveApprover maps a requester to the single user who must approve
// their leave. dept is the requester's department, nil when they have none.
//
// Escalation is exactly one hop:
//   - an ordinary member escalates to the department leader,
//   - the leader escalates to the department manager,
//   - the Board leader escalates to nobody: (nil, nil), auto-approve.
//
// A nil, nil return is the only auto-approval signal. Every error return
// blocks request creation; a missing manager on a non-Board department is a
// configuration error, never a silent approval.
func ResolveApprover(u user.User, dept *department.Department) (*string, error) {
	if dept == nil {
		return nil, attendance.ErrNoDepartment
	}

	if dept.IsLedBy(u.ID) {
		if dept.IsBoard() {
			return nil, nil
		}
		if dept.ManagerID == nil {
			return nil, attendance.ErrNoManagerAssigned
		}
		return dept.ManagerID, nil
	}

	if dept.LeaderID == nil {
		return nil, attendance.ErrNoLeaderAssigned
	}
	return dept.LeaderID, nil
}
