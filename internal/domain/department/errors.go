package department

import "errors"

var (
	ErrDepartmentNotFound = errors.New("department not found")
	ErrLeaderNotInDept    = errors.New("new leader does not belong to the department")
)
