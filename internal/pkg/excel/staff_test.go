package excel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oa-project/office-backend-go/internal/domain/user"
)

func TestStaffWorkbook(t *testing.T) {
	phone := "13812345678"
	deptName := "Engineering"
	users := []user.User{
		{
			ID:             "user-1",
			Username:       "alice",
			Email:          "alice@corp.test",
			Telephone:      &phone,
			DepartmentName: &deptName,
			Status:         user.StatusActive,
			DateJoined:     time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
		},
		{
			ID:         "user-2",
			Username:   "bob",
			Email:      "bob@corp.test",
			Status:     user.StatusDisabled,
			DateJoined: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
		},
	}

	f, err := StaffWorkbook(users)
	require.NoError(t, err)
	defer f.Close()

	name, err := f.GetCellValue(staffSheet, "B1")
	require.NoError(t, err)
	assert.Equal(t, "Name", name)

	alice, err := f.GetCellValue(staffSheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "alice", alice)

	dept, err := f.GetCellValue(staffSheet, "E2")
	require.NoError(t, err)
	assert.Equal(t, "Engineering", dept)

	status, err := f.GetCellValue(staffSheet, "G3")
	require.NoError(t, err)
	assert.Equal(t, "Disabled", status)

	// missing optional fields render as empty cells, not "nil"
	tel, err := f.GetCellValue(staffSheet, "D3")
	require.NoError(t, err)
	assert.Empty(t, tel)

	joined, err := f.GetCellValue(staffSheet, "H2")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-10 09:00:00", joined)
}
