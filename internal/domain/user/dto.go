package user

import (
	"github.com/hrms-labs/hrms-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type PendingUserResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

// ApproveUserRequest activates a pending account and, for employees, creates
// the employee profile in the same transaction.
type ApproveUserRequest struct {
	ID         string           `json:"-"`
	Department *string          `json:"department,omitempty"`
	Position   *string          `json:"position,omitempty"`
	Phone      *string          `json:"phone,omitempty"`
	Address    *string          `json:"address,omitempty"`
	Salary     *decimal.Decimal `json:"salary,omitempty"`
}

func (r *ApproveUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "user id is required",
		})
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

type RejectUserRequest struct {
	ID     string `json:"-"`
	Reason string `json:"reason"`
}

func (r *RejectUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "rejection reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
