package user

import "time"

type UserResponse struct {
	ID             string     `json:"id"`
	Username       string     `json:"username"`
	Email          string     `json:"email"`
	Telephone      *string    `json:"telephone,omitempty"`
	Status         Status     `json:"status"`
	Superuser      bool       `json:"superuser"`
	DepartmentID   *string    `json:"department_id,omitempty"`
	DepartmentName *string    `json:"department_name,omitempty"`
	DateJoined     time.Time  `json:"date_joined"`
	LastLogin      *time.Time `json:"last_login,omitempty"`
}

func ToResponse(u User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Username:       u.Username,
		Email:          u.Email,
		Telephone:      u.Telephone,
		Status:         u.Status,
		Superuser:      u.Superuser,
		DepartmentID:   u.DepartmentID,
		DepartmentName: u.DepartmentName,
		DateJoined:     u.DateJoined,
		LastLogin:      u.LastLogin,
	}
}
