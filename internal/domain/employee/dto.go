package employee

import (
	"github.com/hrms-labs/hrms-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type EmployeeResponse struct {
	ID         string          `json:"id"`
	Email      string          `json:"email"`
	FirstName  string          `json:"first_name"`
	LastName   string          `json:"last_name"`
	Department *string         `json:"department,omitempty"`
	Position   *string         `json:"position,omitempty"`
	Phone      *string         `json:"phone,omitempty"`
	Address    *string         `json:"address,omitempty"`
	Gender     *string         `json:"gender,omitempty"`
	HireDate   *string         `json:"hire_date,omitempty"` // YYYY-MM-DD
	Salary     decimal.Decimal `json:"salary"`
	CreatedAt  string          `json:"created_at"`
	UpdatedAt  string          `json:"updated_at"`
}

// UpdateEmployeeRequest updates profile fields. The salary figure here is the
// base salary shown on the admin screen; it is independent of the
// attendance-derived pay computed by the salary report and the two are never
// reconciled.
type UpdateEmployeeRequest struct {
	ID         string           `json:"-"`
	FirstName  *string          `json:"first_name,omitempty"`
	LastName   *string          `json:"last_name,omitempty"`
	Department *string          `json:"department,omitempty"`
	Position   *string          `json:"position,omitempty"`
	Phone      *string          `json:"phone,omitempty"`
	Address    *string          `json:"address,omitempty"`
	Gender     *string          `json:"gender,omitempty"`
	HireDate   *string          `json:"hire_date,omitempty"` // YYYY-MM-DD
	Salary     *decimal.Decimal `json:"salary,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "employee id is required",
		})
	}

	if r.HireDate != nil && *r.HireDate != "" {
		if _, valid := validator.IsValidDate(*r.HireDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "hire_date",
				Message: "hire_date must be in YYYY-MM-DD format",
			})
		}
	}

	if r.Salary != nil && r.Salary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "salary",
			Message: "salary must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
