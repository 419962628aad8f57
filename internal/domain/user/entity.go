package user

import "time"

type Status string

const (
	StatusDisabled Status = "disabled" // created but never activated
	StatusActive   Status = "active"
	StatusLocked   Status = "locked"
)

type User struct {
	ID           string
	Username     string
	Email        string
	Telephone    *string
	PasswordHash string
	Status       Status
	Superuser    bool
	DepartmentID *string
	DateJoined   time.Time
	LastLogin    *time.Time

	// DTO / Join
	DepartmentName *string
}

// CanAuthenticate reports whether the account may hold a session.
// Disabled and locked users are rejected at token validation time.
func (u *User) CanAuthenticate() bool {
	return u.Status == StatusActive
}
