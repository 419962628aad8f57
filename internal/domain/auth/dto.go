package auth

import (
	"github.com/oa-project/office-backend-go/internal/domain/user"
	"github.com/oa-project/office-backend-go/internal/pkg/validator"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	var errs validator.ValidationErrors
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RefreshTokenRequest struct {
	Token string `json:"token"`
}

func (r RefreshTokenRequest) Validate() error {
	if validator.IsEmpty(r.Token) {
		return validator.ValidationErrors{{Field: "token", Message: "is required"}}
	}
	return nil
}

type ResetPasswordRequest struct {
	OldPassword     string `json:"old_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

func (r ResetPasswordRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.OldPassword) {
		errs = append(errs, validator.ValidationError{Field: "old_password", Message: "is required"})
	}
	if len(r.NewPassword) < 8 {
		errs = append(errs, validator.ValidationError{Field: "new_password", Message: "must be at least 8 characters"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TokenResponse struct {
	Token     string            `json:"token"`
	ExpiresAt int64             `json:"expires_at"`
	User      user.UserResponse `json:"user"`
}

type RefreshResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
}
