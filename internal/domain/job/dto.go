package job

import (
	"github.com/hrms-labs/hrms-backend-go/internal/pkg/validator"
)

type CreatePostingRequest struct {
	Title       string  `json:"title"`
	Department  string  `json:"department"`
	Location    *string `json:"location,omitempty"`
	Description string  `json:"description"`
	Openings    int     `json:"openings"`
}

func (r *CreatePostingRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}

	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department is required",
		})
	}

	if r.Openings < 1 {
		errs = append(errs, validator.ValidationError{
			Field:   "openings",
			Message: "openings must be at least 1",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ApplyRequest struct {
	JobID    string  `json:"-"`
	FullName string  `json:"full_name"`
	Phone    *string `json:"phone,omitempty"`
	Message  string  `json:"message"`
}

func (r *ApplyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PostingResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Department  string  `json:"department"`
	Location    *string `json:"location,omitempty"`
	Description string  `json:"description"`
	Openings    int     `json:"openings"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"created_at"`
}

type ApplicationResponse struct {
	ID        string  `json:"id"`
	JobID     string  `json:"job_id"`
	Email     string  `json:"email"`
	FullName  string  `json:"full_name"`
	Phone     *string `json:"phone,omitempty"`
	Message   string  `json:"message"`
	CreatedAt string  `json:"created_at"`
}
