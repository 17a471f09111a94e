package attendance

import "github.com/hrms-labs/hrms-backend-go/internal/pkg/validator"

type RecordResponse struct {
	ID      string  `json:"id"`
	Email   string  `json:"email"`
	Date    string  `json:"date"` // YYYY-MM-DD
	Status  string  `json:"status"`
	Remarks *string `json:"remarks,omitempty"`
}

type ListFilter struct {
	Email     *string `json:"email,omitempty"`
	StartDate *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate   *string `json:"end_date,omitempty"`   // YYYY-MM-DD
}

func (f *ListFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.StartDate != nil && *f.StartDate != "" {
		if _, valid := validator.IsValidDate(*f.StartDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.EndDate != nil && *f.EndDate != "" {
		if _, valid := validator.IsValidDate(*f.EndDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
