package reconcile

import (
	"github.com/hrms-labs/hrms-backend-go/internal/domain/report"
	"github.com/shopspring/decimal"
)

// Summarize prices one monthly summary. When rates is nil the default rate
// table applies. Leave pay is all-or-nothing: a period with more than
// report.LeavePayCap approved leave days earns no leave pay at all.
func Summarize(s report.PeriodSummary, rates *report.Rates) report.PayrollLine {
	rt := report.DefaultRates()
	if rates != nil {
		rt = *rates
	}

	fullPay := rt.FullDay.Mul(decimal.NewFromInt(int64(s.FullDayCount)))
	halfPay := rt.HalfDay.Mul(decimal.NewFromInt(int64(s.HalfDayCount)))

	leavePay := decimal.Zero
	if s.ApprovedLeaveCount > 0 && s.ApprovedLeaveCount <= report.LeavePayCap {
		leavePay = rt.LeaveDay.Mul(decimal.NewFromInt(int64(s.ApprovedLeaveCount)))
	}

	return report.PayrollLine{
		FullDayPay: fullPay,
		HalfDayPay: halfPay,
		LeavePay:   leavePay,
		TotalPay:   fullPay.Add(halfPay).Add(leavePay),
	}
}
