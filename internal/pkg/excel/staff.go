package excel

import (
	"fmt"

	"github.com/oa-project/office-backend-go/internal/domain/user"
	"github.com/xuri/excelize/v2"
)

const staffSheet = "Staff"

var statusLabels = map[user.Status]string{
	user.StatusActive:   "Active",
	user.StatusDisabled: "Disabled",
	user.StatusLocked:   "Locked",
}

// StaffWorkbook renders the staff roster download. One row per user, join
// dates formatted for humans rather than machines.
func StaffWorkbook(users []user.User) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", staffSheet); err != nil {
		return nil, err
	}

	header := []interface{}{"ID", "Name", "Email", "Telephone", "Department", "Superuser", "Status", "Date Joined"}
	if err := f.SetSheetRow(staffSheet, "A1", &header); err != nil {
		return nil, err
	}

	for i, u := range users {
		telephone := ""
		if u.Telephone != nil {
			telephone = *u.Telephone
		}
		departmentName := ""
		if u.DepartmentName != nil {
			departmentName = *u.DepartmentName
		}

		row := []interface{}{
			u.ID,
			u.Username,
			u.Email,
			telephone,
			departmentName,
			u.Superuser,
			statusLabels[u.Status],
			u.DateJoined.Format("2006-01-02 15:04:05"),
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(staffSheet, cell, &row); err != nil {
			return nil, err
		}
	}

	widths := map[string]float64{
		"A": 36, "B": 14, "C": 30, "D": 16, "E": 16, "F": 10, "G": 10, "H": 20,
	}
	for col, width := range widths {
		if err := f.SetColWidth(staffSheet, col, col, width); err != nil {
			return nil, err
		}
	}

	return f, nil
}
