package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oa-project/office-backend-go/internal/domain/attendance"
	"github.com/oa-project/office-backend-go/internal/domain/department"
	"github.com/oa-project/office-backend-go/internal/domain/user"
)

func strPtr(s string) *string { return &s }

func TestResolveApprover(t *testing.T) {
	leaderID := "leader-1"
	managerID := "manager-1"

	engineering := &department.Department{
		ID:        "dept-eng",
		Name:      "Engineering",
		LeaderID:  strPtr(leaderID),
		ManagerID: strPtr(managerID),
	}
	board := &department.Department{
		ID:       "dept-board",
		Name:     department.BoardName,
		LeaderID: strPtr("ceo-1"),
	}

	cases := []struct {
		name        string
		user        user.User
		dept        *department.Department
		wantID      *string
		wantErr     error
		autoApprove bool
	}{
		{
			name:   "member escalates to leader",
			user:   user.User{ID: "member-1", DepartmentID: strPtr(engineering.ID)},
			dept:   engineering,
			wantID: strPtr(leaderID),
		},
		{
			name:   "leader escalates to manager",
			user:   user.User{ID: leaderID, DepartmentID: strPtr(engineering.ID)},
			dept:   engineering,
			wantID: strPtr(managerID),
		},
		{
			name:        "board leader auto-approves",
			user:        user.User{ID: "ceo-1", DepartmentID: strPtr(board.ID)},
			dept:        board,
			autoApprove: true,
		},
		{
			name:    "no department",
			user:    user.User{ID: "floating-1"},
			dept:    nil,
			wantErr: attendance.ErrNoDepartment,
		},
		{
			name: "leader of unmanaged department",
			user: user.User{ID: leaderID},
			dept: &department.Department{
				ID:       "dept-orphan",
				Name:     "Orphan",
				LeaderID: strPtr(leaderID),
			},
			wantErr: attendance.ErrNoManagerAssigned,
		},
		{
			name: "member of leaderless department",
			user: user.User{ID: "member-2"},
			dept: &department.Department{
				ID:   "dept-headless",
				Name: "Headless",
			},
			wantErr: attendance.ErrNoLeaderAssigned,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ResolveApprover(tc.user, tc.dept)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, got)
				return
			}

			require.NoError(t, err)
			if tc.autoApprove {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tc.wantID, *got)
		})
	}
}

// A member of the Board department still escalates to the Board leader;
// only the leader themselves auto-approves.
func TestResolveApproverBoardMember(t *testing.T) {
	board := &department.Department{
		ID:       "dept-board",
		Name:     department.BoardName,
		LeaderID: strPtr("ceo-1"),
	}

	got, err := ResolveApprover(user.User{ID: "secretary-1", DepartmentID: strPtr(board.ID)}, board)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "ceo-1", *got)
}
