package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID         string
	UserID     *string
	Email      string
	FirstName  string
	LastName   string
	Department *string
	Position   *string
	Phone      *string
	Address    *string
	Gender     *string
	HireDate   *time.Time
	Salary     decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// FullName joins first and last name, tolerating a missing last name
func (e *Employee) FullName() string {
	if e.LastName == "" {
		return e.FirstName
	}
	return e.FirstName + " " + e.LastName
}
