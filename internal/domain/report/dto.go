package report

import (
	"github.com/hrms-labs/hrms-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// SalaryReportRow is one row of the monthly salary report: identity fields,
// the aggregated counts, the derived pay, and the independently-tracked base
// salary figure.
type SalaryReportRow struct {
	Email              string          `json:"email"`
	FullName           string          `json:"full_name"`
	Matched            bool            `json:"matched"`
	FullDayCount       int             `json:"full_day_count"`
	HalfDayCount       int             `json:"half_day_count"`
	AbsentCount        int             `json:"absent_count"`
	ApprovedLeaveCount int             `json:"approved_leave_count"`
	FullDayPay         decimal.Decimal `json:"full_day_pay"`
	HalfDayPay         decimal.Decimal `json:"half_day_pay"`
	LeavePay           decimal.Decimal `json:"leave_pay"`
	TotalPay           decimal.Decimal `json:"total_pay"`
	BaseSalary         decimal.Decimal `json:"base_salary"`
}

type ReportFilter struct {
	Year  int     `json:"year"`
	Month int     `json:"month"` // 1-12
	Email *string `json:"email,omitempty"`
}

func (f *ReportFilter) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidYear(f.Year) {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 2000 and 2100",
		})
	}

	if !validator.IsValidMonth(f.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ReceiptFile is a rendered salary receipt ready to be served as a download.
type ReceiptFile struct {
	Name        string
	ContentType string
	Content     []byte
}
