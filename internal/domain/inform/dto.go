package inform

import (
	"time"

	"github.com/oa-project/office-backend-go/internal/pkg/validator"
)

type CreateInformRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	// DepartmentIDs lists the departments that may see the announcement.
	// The sentinel value "0" anywhere in the list means company-wide.
	DepartmentIDs []string `json:"department_ids"`
}

func (r CreateInformRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "is required"})
	}
	if validator.IsEmpty(r.Content) {
		errs = append(errs, validator.ValidationError{Field: "content", Message: "is required"})
	}
	if len(r.DepartmentIDs) == 0 {
		errs = append(errs, validator.ValidationError{Field: "department_ids", Message: "is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type InformResponse struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	Public        bool      `json:"public"`
	AuthorID      string    `json:"author_id"`
	AuthorName    *string   `json:"author_name,omitempty"`
	DepartmentIDs []string  `json:"department_ids,omitempty"`
	ReadByMe      bool      `json:"read_by_me"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func ToResponse(i Inform) InformResponse {
	return InformResponse{
		ID:            i.ID,
		Title:         i.Title,
		Content:       i.Content,
		Public:        i.Public,
		AuthorID:      i.AuthorID,
		AuthorName:    i.AuthorName,
		DepartmentIDs: i.DepartmentIDs,
		ReadByMe:      i.ReadByMe,
		CreatedAt:     i.CreatedAt,
		UpdatedAt:     i.UpdatedAt,
	}
}
