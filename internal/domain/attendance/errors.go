package attendance

import "errors"

var (
	ErrAttendanceNotFound = errors.New("attendance request not found")
	ErrTypeNotFound       = errors.New("attendance type not found")

	// Approver resolution failures. All three block request creation;
	// none of them silently auto-approves.
	ErrNoDepartment      = errors.New("user has no department, cannot file a request")
	ErrNoManagerAssigned = errors.New("department has no manager assigned")
	ErrNoLeaderAssigned  = errors.New("department has no leader assigned")

	// State machine failures.
	ErrAlreadyProcessed = errors.New("attendance request already processed")
	ErrNotApprover      = errors.New("only the assigned approver may decide this request")
	ErrInvalidDecision  = errors.New("decision must be approved or rejected")
	ErrInvalidTimeRange = errors.New("end time must be after start time")
)
