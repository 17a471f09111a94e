package reconcile

import (
	"testing"
	"time"

	"github.com/hrms-labs/hrms-backend-go/internal/domain/attendance"
	"github.com/hrms-labs/hrms-backend-go/internal/domain/leave"
	"github.com/hrms-labs/hrms-backend-go/internal/domain/report"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize_DefaultRates(t *testing.T) {
	t.Parallel()

	line := Summarize(report.PeriodSummary{
		FullDayCount:       1,
		HalfDayCount:       1,
		AbsentCount:        1,
		ApprovedLeaveCount: 0,
	}, nil)

	assert.Equal(t, "500", line.FullDayPay.String())
	assert.Equal(t, "250", line.HalfDayPay.String())
	assert.Equal(t, "0", line.LeavePay.String())
	assert.Equal(t, "750", line.TotalPay.String())
}

func TestSummarize_LeavePay(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		leaveDays int
		wantLeave string
		wantTotal string
	}{
		{"no leave", 0, "0", "0"},
		{"within cap", 3, "1500", "1500"},
		{"exactly at cap", 30, "15000", "15000"},
		{"over cap forfeits all leave pay", 31, "0", "0"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			line := Summarize(report.PeriodSummary{ApprovedLeaveCount: tc.leaveDays}, nil)
			assert.Equal(t, tc.wantLeave, line.LeavePay.String())
			assert.Equal(t, tc.wantTotal, line.TotalPay.String())
		})
	}
}

func TestSummarize_AbsentDaysEarnNothing(t *testing.T) {
	t.Parallel()

	line := Summarize(report.PeriodSummary{AbsentCount: 20}, nil)
	assert.Equal(t, "0", line.TotalPay.String())
}

func TestSummarize_RateOverride(t *testing.T) {
	t.Parallel()

	rates := &report.Rates{
		FullDay:  decimal.NewFromInt(1000),
		HalfDay:  decimal.NewFromInt(400),
		LeaveDay: decimal.NewFromInt(800),
	}
	line := Summarize(report.PeriodSummary{
		FullDayCount:       2,
		HalfDayCount:       1,
		ApprovedLeaveCount: 2,
	}, rates)

	assert.Equal(t, "2000", line.FullDayPay.String())
	assert.Equal(t, "400", line.HalfDayPay.String())
	assert.Equal(t, "1600", line.LeavePay.String())
	assert.Equal(t, "4000", line.TotalPay.String())
}

func TestSummarize_Deterministic(t *testing.T) {
	t.Parallel()

	s := report.PeriodSummary{FullDayCount: 5, HalfDayCount: 2, ApprovedLeaveCount: 1}
	first := Summarize(s, nil)
	second := Summarize(s, nil)
	assert.True(t, first.TotalPay.Equal(second.TotalPay))
}

// End-to-end through the pure pipeline: normalize, aggregate, summarize.
func TestPipeline_MarchExample(t *testing.T) {
	t.Parallel()

	rows := []map[string]any{
		{"date": "2025-03-03", "email": "john@example.com", "status": "FULL_DAY"},
		{"attendance_date": "2025-03-04", "userEmail": "John@Example.com", "attendance": "PRESENT_HALF_DAY"},
		{"startDate": "2025-03-05", "user": map[string]any{"email": "john@example.com"}, "state": "ABS"},
	}

	records, skipped := NormalizeAttendanceBatch(rows)
	require.Equal(t, 0, skipped)
	require.Len(t, records, 3)
	assert.Equal(t, attendance.StatusFullDay, records[0].Status)
	assert.Equal(t, attendance.StatusHalfDay, records[1].Status)
	assert.Equal(t, attendance.StatusAbsent, records[2].Status)

	leaves, skipped := NormalizeLeaveBatch([]map[string]any{
		{"startDate": "2025-03-10", "endDate": "2025-03-11", "email": "john@example.com", "response": "yes"},
	})
	require.Equal(t, 0, skipped)
	require.Len(t, leaves, 1)
	require.Equal(t, leave.DecisionApproved, leaves[0].Decision)

	summaries := Aggregate(Batch{Records: records, Leaves: leaves}, Period{Year: 2025, Month: time.March}, "john@example.com")
	require.Len(t, summaries, 1)
	assert.Equal(t, 1, summaries[0].FullDayCount)
	assert.Equal(t, 1, summaries[0].HalfDayCount)
	assert.Equal(t, 1, summaries[0].AbsentCount)
	assert.Equal(t, 2, summaries[0].ApprovedLeaveCount)

	line := Summarize(summaries[0], nil)
	assert.Equal(t, "1750", line.TotalPay.String())
}
