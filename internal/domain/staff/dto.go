package staff

import (
	"github.com/oa-project/office-backend-go/internal/domain/user"
	"github.com/oa-project/office-backend-go/internal/pkg/validator"
)

type AddStaffRequest struct {
	Username  string  `json:"username"`
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	Telephone *string `json:"telephone,omitempty"`
}

func (r AddStaffRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{Field: "username", Message: "is required"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "must be at least 8 characters"})
	}
	if r.Telephone != nil && !validator.IsValidPhoneNumber(*r.Telephone) {
		errs = append(errs, validator.ValidationError{Field: "telephone", Message: "must be a valid phone number"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DepartmentGroup is a department's slice of the staff listing: the leader
// first, then members ordered by join date.
type DepartmentGroup struct {
	Leader  []user.UserResponse `json:"leader"`
	Members []user.UserResponse `json:"members"`
}

type StaffListResponse map[string]DepartmentGroup
