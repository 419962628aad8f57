package inform

import "errors"

var (
	ErrInformNotFound = errors.New("announcement not found")
	ErrNotAuthor      = errors.New("only the author may delete an announcement")
)
