package reconcile

import (
	"testing"
	"time"

	"github.com/hrms-labs/hrms-backend-go/internal/domain/attendance"
	"github.com/hrms-labs/hrms-backend-go/internal/domain/employee"
	"github.com/hrms-labs/hrms-backend-go/internal/domain/leave"
	"github.com/hrms-labs/hrms-backend-go/internal/domain/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestAggregate_StatusPartition(t *testing.T) {
	t.Parallel()

	batch := Batch{
		Records: []attendance.Record{
			{Email: "john@example.com", Date: day("2025-03-03"), Status: attendance.StatusFullDay},
			{Email: "john@example.com", Date: day("2025-03-04"), Status: attendance.StatusHalfDay},
			{Email: "john@example.com", Date: day("2025-03-05"), Status: attendance.StatusAbsent},
		},
	}

	got := Aggregate(batch, Period{Year: 2025, Month: time.March}, "john@example.com")
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].FullDayCount)
	assert.Equal(t, 1, got[0].HalfDayCount)
	assert.Equal(t, 1, got[0].AbsentCount)
	assert.Equal(t, 0, got[0].ApprovedLeaveCount)
}

func TestAggregate_UnknownStatusCountsNothing(t *testing.T) {
	t.Parallel()

	batch := Batch{
		Records: []attendance.Record{
			{Email: "john@example.com", Date: day("2025-03-03"), Status: attendance.StatusUnknown},
		},
	}

	got := Aggregate(batch, Period{Year: 2025, Month: time.March}, "john@example.com")
	require.Len(t, got, 1)
	assert.Equal(t, 0, got[0].FullDayCount+got[0].HalfDayCount+got[0].AbsentCount)
}

func TestAggregate_RecordsOutsidePeriodIgnored(t *testing.T) {
	t.Parallel()

	batch := Batch{
		Records: []attendance.Record{
			{Email: "john@example.com", Date: day("2025-02-28"), Status: attendance.StatusFullDay},
			{Email: "john@example.com", Date: day("2025-03-01"), Status: attendance.StatusFullDay},
			{Email: "john@example.com", Date: day("2025-04-01"), Status: attendance.StatusFullDay},
		},
	}

	got := Aggregate(batch, Period{Year: 2025, Month: time.March}, "john@example.com")
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].FullDayCount)
}

func TestAggregate_DuplicateSameDayFirstWins(t *testing.T) {
	t.Parallel()

	batch := Batch{
		Records: []attendance.Record{
			{Email: "john@example.com", Date: day("2025-03-03"), Status: attendance.StatusFullDay},
			{Email: "john@example.com", Date: day("2025-03-03"), Status: attendance.StatusAbsent},
		},
	}

	got := Aggregate(batch, Period{Year: 2025, Month: time.March}, "john@example.com")
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].FullDayCount)
	assert.Equal(t, 0, got[0].AbsentCount)
}

func TestAggregate_ZeroSeedsKnownProfiles(t *testing.T) {
	t.Parallel()

	batch := Batch{
		Profiles: []employee.Employee{
			{Email: "idle@example.com"},
			{Email: "busy@example.com"},
		},
		Records: []attendance.Record{
			{Email: "busy@example.com", Date: day("2025-03-03"), Status: attendance.StatusFullDay},
		},
	}

	got := Aggregate(batch, Period{Year: 2025, Month: time.March}, "")
	require.Len(t, got, 2)

	byEmail := make(map[string]report.PeriodSummary)
	for _, s := range got {
		byEmail[s.Subject.Email] = s
	}
	assert.Equal(t, 0, byEmail["idle@example.com"].FullDayCount)
	assert.True(t, byEmail["idle@example.com"].Subject.Matched)
	assert.Equal(t, 1, byEmail["busy@example.com"].FullDayCount)
}

func TestAggregate_UnmatchedSubjectBucketed(t *testing.T) {
	t.Parallel()

	batch := Batch{
		Profiles: []employee.Employee{{Email: "known@example.com"}},
		Records: []attendance.Record{
			{Email: "stranger@example.com", Date: day("2025-03-03"), Status: attendance.StatusHalfDay},
		},
	}

	got := Aggregate(batch, Period{Year: 2025, Month: time.March}, "")
	require.Len(t, got, 2)

	var stranger *report.PeriodSummary
	for i := range got {
		if got[i].Subject.Email == "stranger@example.com" {
			stranger = &got[i]
		}
	}
	require.NotNil(t, stranger)
	assert.False(t, stranger.Subject.Matched)
	assert.Equal(t, 1, stranger.HalfDayCount)
}

func TestAggregate_IdentityJoinCaseInsensitive(t *testing.T) {
	t.Parallel()

	batch := Batch{
		Profiles: []employee.Employee{{Email: "John@Example.com"}},
		Records: []attendance.Record{
			{Email: "john@example.com", Date: day("2025-03-03"), Status: attendance.StatusFullDay},
		},
	}

	got := Aggregate(batch, Period{Year: 2025, Month: time.March}, "")
	require.Len(t, got, 1)
	assert.True(t, got[0].Subject.Matched)
	assert.Equal(t, 1, got[0].FullDayCount)
}

func TestAggregate_LeaveCounting(t *testing.T) {
	t.Parallel()

	march := Period{Year: 2025, Month: time.March}

	cases := []struct {
		name   string
		lv     leave.Request
		period Period
		want   int
	}{
		{
			name:   "inclusive range inside month",
			lv:     leave.Request{Email: "a@b.com", StartDate: day("2025-03-10"), EndDate: day("2025-03-12"), Decision: leave.DecisionApproved},
			period: march,
			want:   3,
		},
		{
			name:   "single day",
			lv:     leave.Request{Email: "a@b.com", StartDate: day("2025-03-10"), EndDate: day("2025-03-10"), Decision: leave.DecisionApproved},
			period: march,
			want:   1,
		},
		{
			name:   "straddle counts only february portion",
			lv:     leave.Request{Email: "a@b.com", StartDate: day("2025-02-27"), EndDate: day("2025-03-02"), Decision: leave.DecisionApproved},
			period: Period{Year: 2025, Month: time.February},
			want:   2,
		},
		{
			name:   "straddle counts only march portion",
			lv:     leave.Request{Email: "a@b.com", StartDate: day("2025-02-27"), EndDate: day("2025-03-02"), Decision: leave.DecisionApproved},
			period: march,
			want:   2,
		},
		{
			name:   "entirely outside month",
			lv:     leave.Request{Email: "a@b.com", StartDate: day("2025-01-10"), EndDate: day("2025-01-12"), Decision: leave.DecisionApproved},
			period: march,
			want:   0,
		},
		{
			name:   "pending request counts nothing",
			lv:     leave.Request{Email: "a@b.com", StartDate: day("2025-03-10"), EndDate: day("2025-03-12"), Decision: leave.DecisionPending},
			period: march,
			want:   0,
		},
		{
			name:   "rejected request counts nothing",
			lv:     leave.Request{Email: "a@b.com", StartDate: day("2025-03-10"), EndDate: day("2025-03-12"), Decision: leave.DecisionRejected},
			period: march,
			want:   0,
		},
		{
			name:   "inverted range counts nothing",
			lv:     leave.Request{Email: "a@b.com", StartDate: day("2025-03-12"), EndDate: day("2025-03-10"), Decision: leave.DecisionApproved},
			period: march,
			want:   0,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Aggregate(Batch{Leaves: []leave.Request{tc.lv}}, tc.period, "a@b.com")
			require.Len(t, got, 1)
			assert.Equal(t, tc.want, got[0].ApprovedLeaveCount)
		})
	}
}

func TestAggregate_EmptyInputSingleSubject(t *testing.T) {
	t.Parallel()

	got := Aggregate(Batch{}, Period{Year: 2025, Month: time.March}, "ghost@example.com")
	require.Len(t, got, 1)
	assert.Equal(t, report.SubjectKey{Email: "ghost@example.com", Matched: false}, got[0].Subject)
	assert.Zero(t, got[0].FullDayCount)
	assert.Zero(t, got[0].ApprovedLeaveCount)
}

func TestAggregate_EmptyInputRosterView(t *testing.T) {
	t.Parallel()

	got := Aggregate(Batch{}, Period{Year: 2025, Month: time.March}, "")
	assert.Empty(t, got)
}

func TestAggregate_SubjectFilterExcludesOthers(t *testing.T) {
	t.Parallel()

	batch := Batch{
		Records: []attendance.Record{
			{Email: "john@example.com", Date: day("2025-03-03"), Status: attendance.StatusFullDay},
			{Email: "jane@example.com", Date: day("2025-03-03"), Status: attendance.StatusFullDay},
		},
		Leaves: []leave.Request{
			{Email: "jane@example.com", StartDate: day("2025-03-10"), EndDate: day("2025-03-11"), Decision: leave.DecisionApproved},
		},
	}

	got := Aggregate(batch, Period{Year: 2025, Month: time.March}, "John@Example.com")
	require.Len(t, got, 1)
	assert.Equal(t, "john@example.com", got[0].Subject.Email)
	assert.Equal(t, 1, got[0].FullDayCount)
	assert.Equal(t, 0, got[0].ApprovedLeaveCount)
}

func TestPeriod_Boundaries(t *testing.T) {
	t.Parallel()

	feb := Period{Year: 2025, Month: time.February}
	assert.Equal(t, "2025-02-01", feb.FirstDay().Format("2006-01-02"))
	assert.Equal(t, "2025-02-28", feb.LastDay().Format("2006-01-02"))

	leapFeb := Period{Year: 2024, Month: time.February}
	assert.Equal(t, "2024-02-29", leapFeb.LastDay().Format("2006-01-02"))
}
