package inform

import "time"

// Inform is an internal announcement. Visibility is either public
// (company-wide) or restricted to a set of departments; the author always
// sees their own announcements.
type Inform struct {
	ID            string
	Title         string
	Content       string
	Public        bool
	AuthorID      string
	DepartmentIDs []string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// DTO / Join
	AuthorName *string
	ReadByMe   bool
}
