package response

import (
	"errors"
	"net/http"

	"github.com/oa-project/office-backend-go/internal/domain/attendance"
	"github.com/oa-project/office-backend-go/internal/domain/auth"
	"github.com/oa-project/office-backend-go/internal/domain/department"
	"github.com/oa-project/office-backend-go/internal/domain/inform"
	"github.com/oa-project/office-backend-go/internal/domain/staff"
	"github.com/oa-project/office-backend-go/internal/domain/user"
	"github.com/oa-project/office-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses. Every authentication
// failure collapses to a uniform 401 body; clients never learn whether a
// token was expired, malformed or orphaned.
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrAuthHeaderFormat),
		errors.Is(err, auth.ErrTokenExpired),
		errors.Is(err, auth.ErrTokenInvalid),
		errors.Is(err, auth.ErrAuthUserNotFound),
		errors.Is(err, auth.ErrUserInactive):
		Unauthorized(w, "Authentication required")
	case errors.Is(err, auth.ErrRefreshFailed):
		Unauthorized(w, "Token refresh failed, log in again")
	case errors.Is(err, auth.ErrPasswordMismatch):
		BadRequest(w, "New password and confirmation do not match", nil)
	case errors.Is(err, auth.ErrWrongOldPassword):
		BadRequest(w, "Old password is incorrect", nil)

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrPermissionDenied),
		errors.Is(err, user.ErrSuperuserRequired):
		Forbidden(w, "Not allowed")

	// Department domain errors
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, department.ErrLeaderNotInDept):
		BadRequest(w, "New leader does not belong to the department", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance request not found")
	case errors.Is(err, attendance.ErrTypeNotFound):
		NotFound(w, "Attendance type not found")
	case errors.Is(err, attendance.ErrNoDepartment):
		BadRequest(w, "You must belong to a department to file a request", nil)
	case errors.Is(err, attendance.ErrNoManagerAssigned):
		BadRequest(w, "Your department has no manager assigned", nil)
	case errors.Is(err, attendance.ErrNoLeaderAssigned):
		BadRequest(w, "Your department has no leader assigned", nil)
	case errors.Is(err, attendance.ErrInvalidTimeRange):
		BadRequest(w, "End time must be after start time", nil)
	case errors.Is(err, attendance.ErrInvalidDecision):
		BadRequest(w, "Decision must be approved or rejected", nil)
	case errors.Is(err, attendance.ErrNotApprover):
		Forbidden(w, "Only the assigned approver may decide this request")
	case errors.Is(err, attendance.ErrAlreadyProcessed):
		Conflict(w, "Request has already been processed")

	// Staff domain errors
	case errors.Is(err, staff.ErrOnboardPermission):
		Forbidden(w, "Only a superuser or department leader may add staff")
	case errors.Is(err, staff.ErrDownloadPermission):
		Forbidden(w, "Not allowed to download these staff records")
	case errors.Is(err, staff.ErrActivationInvalid):
		BadRequest(w, "Activation link is invalid or has expired", nil)
	case errors.Is(err, staff.ErrAlreadyActive):
		Conflict(w, "Account is already activated")
	case errors.Is(err, staff.ErrAccountLocked):
		Forbidden(w, "Locked accounts cannot be activated")
	case errors.Is(err, staff.ErrNoStaffSelected):
		BadRequest(w, "No staff selected", nil)

	// Inform domain errors
	case errors.Is(err, inform.ErrInformNotFound):
		NotFound(w, "Announcement not found")
	case errors.Is(err, inform.ErrNotAuthor):
		Forbidden(w, "Only the author may delete an announcement")

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
