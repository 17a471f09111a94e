package report

import "github.com/shopspring/decimal"

// SubjectKey identifies an aggregate bucket. Matched is false for records
// whose email joined no known employee profile; those land in a synthetic
// bucket keyed by the raw email so admin views can surface orphaned data.
type SubjectKey struct {
	Email   string
	Matched bool
}

// PeriodSummary holds per-subject counts for one (year, month) window.
// It is recomputed on demand and never persisted.
type PeriodSummary struct {
	Subject            SubjectKey
	Year               int
	Month              int // 1-12
	FullDayCount       int
	HalfDayCount       int
	AbsentCount        int
	ApprovedLeaveCount int
}

// Rates is the per-unit pay table applied to a PeriodSummary.
type Rates struct {
	FullDay  decimal.Decimal
	HalfDay  decimal.Decimal
	LeaveDay decimal.Decimal
}

// LeavePayCap is the approved-leave-day count above which leave pay for the
// whole period drops to zero.
const LeavePayCap = 30

// DefaultRates returns the fixed rate table: full day 500, half day 250,
// leave day 500.
func DefaultRates() Rates {
	return Rates{
		FullDay:  decimal.NewFromInt(500),
		HalfDay:  decimal.NewFromInt(250),
		LeaveDay: decimal.NewFromInt(500),
	}
}

// PayrollLine is the pay breakdown derived from a PeriodSummary.
type PayrollLine struct {
	FullDayPay decimal.Decimal
	HalfDayPay decimal.Decimal
	LeavePay   decimal.Decimal
	TotalPay   decimal.Decimal
}
