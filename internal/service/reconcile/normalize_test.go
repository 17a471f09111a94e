package reconcile

import (
	"testing"
	"time"

	"github.com/hrms-labs/hrms-backend-go/internal/domain/attendance"
	"github.com/hrms-labs/hrms-backend-go/internal/domain/leave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeAttendance_FieldResolutionOrder(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		raw      map[string]any
		wantDate string
	}{
		{
			name: "date wins over all other candidates",
			raw: map[string]any{
				"date":            "2025-03-10",
				"attendance_date": "2025-03-11",
				"startDate":       "2025-03-12",
				"email":           "a@b.com",
			},
			wantDate: "2025-03-10",
		},
		{
			name: "attendance_date before attendanceDate",
			raw: map[string]any{
				"attendance_date": "2025-03-11",
				"attendanceDate":  "2025-03-12",
				"email":           "a@b.com",
			},
			wantDate: "2025-03-11",
		},
		{
			name: "camelCase fallback",
			raw: map[string]any{
				"attendanceDate": "2025-03-12",
				"email":          "a@b.com",
			},
			wantDate: "2025-03-12",
		},
		{
			name: "startDate as last resort",
			raw: map[string]any{
				"startDate": "2025-03-13",
				"email":     "a@b.com",
			},
			wantDate: "2025-03-13",
		},
		{
			name: "timestamp truncated to calendar day",
			raw: map[string]any{
				"date":  "2025-03-10T08:30:00Z",
				"email": "a@b.com",
			},
			wantDate: "2025-03-10",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec, err := NormalizeAttendance(tc.raw)
			require.NoError(t, err)
			assert.Equal(t, tc.wantDate, rec.Date.Format("2006-01-02"))
		})
	}
}

func TestNormalizeAttendance_StatusSynonyms(t *testing.T) {
	t.Parallel()

	cases := []struct {
		raw  string
		want attendance.Status
	}{
		{"FULL_DAY", attendance.StatusFullDay},
		{"full_day", attendance.StatusFullDay},
		{"PRESENT_FULL", attendance.StatusFullDay},
		{"PRESENT_FULL_DAY", attendance.StatusFullDay},
		{"HALF_DAY", attendance.StatusHalfDay},
		{"present_half", attendance.StatusHalfDay},
		{"ABSENT", attendance.StatusAbsent},
		{"a", attendance.StatusAbsent},
		{"ABS", attendance.StatusAbsent},
		{"ON_LEAVE", attendance.StatusUnknown},
		{"", attendance.StatusUnknown},
	}

	for _, tc := range cases {
		rec, err := NormalizeAttendance(map[string]any{
			"date":   "2025-03-10",
			"email":  "a@b.com",
			"status": tc.raw,
		})
		require.NoError(t, err)
		assert.Equal(t, tc.want, rec.Status, "status %q", tc.raw)
	}
}

func TestNormalizeAttendance_StatusFieldFallbacks(t *testing.T) {
	t.Parallel()

	rec, err := NormalizeAttendance(map[string]any{
		"date":       "2025-03-10",
		"email":      "a@b.com",
		"attendance": "HALF_DAY",
	})
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusHalfDay, rec.Status)

	rec, err = NormalizeAttendance(map[string]any{
		"date":             "2025-03-10",
		"email":            "a@b.com",
		"state":            "ABSENT",
		"attendanceStatus": "FULL_DAY",
	})
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusAbsent, rec.Status)
}

func TestNormalizeAttendance_IdentityResolution(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		raw  map[string]any
		want string
	}{
		{
			name: "nested user.email wins",
			raw: map[string]any{
				"date":      "2025-03-10",
				"user":      map[string]any{"email": "Nested@Example.com"},
				"userEmail": "flat@example.com",
			},
			want: "nested@example.com",
		},
		{
			name: "userEmail before email",
			raw: map[string]any{
				"date":      "2025-03-10",
				"userEmail": "Flat@Example.com ",
				"email":     "other@example.com",
			},
			want: "flat@example.com",
		},
		{
			name: "string user field as last resort",
			raw: map[string]any{
				"date": "2025-03-10",
				"user": "plain@example.com",
			},
			want: "plain@example.com",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec, err := NormalizeAttendance(tc.raw)
			require.NoError(t, err)
			assert.Equal(t, tc.want, rec.Email)
		})
	}
}

func TestNormalizeAttendance_Failures(t *testing.T) {
	t.Parallel()

	_, err := NormalizeAttendance(map[string]any{"email": "a@b.com", "status": "FULL_DAY"})
	assert.ErrorIs(t, err, ErrNoDate)

	_, err = NormalizeAttendance(map[string]any{"date": "not-a-date", "email": "a@b.com"})
	assert.ErrorIs(t, err, ErrNoDate)

	_, err = NormalizeAttendance(map[string]any{"date": "2025-03-10"})
	assert.ErrorIs(t, err, ErrNoIdentity)
}

func TestNormalizeLeave_DecisionMapping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		raw  string
		want leave.Decision
	}{
		{"yes", leave.DecisionApproved},
		{"Approved", leave.DecisionApproved},
		{"TRUE", leave.DecisionApproved},
		{"no", leave.DecisionRejected},
		{"rejected", leave.DecisionRejected},
		{"maybe", leave.DecisionPending},
		{"", leave.DecisionPending},
	}

	for _, tc := range cases {
		req, err := NormalizeLeave(map[string]any{
			"date":     "2025-03-10",
			"email":    "a@b.com",
			"response": tc.raw,
		})
		require.NoError(t, err)
		assert.Equal(t, tc.want, req.Decision, "decision %q", tc.raw)
	}
}

func TestNormalizeLeave_ResponseWinsOverStatus(t *testing.T) {
	t.Parallel()

	req, err := NormalizeLeave(map[string]any{
		"date":     "2025-03-10",
		"email":    "a@b.com",
		"response": "no",
		"status":   "approved",
	})
	require.NoError(t, err)
	assert.Equal(t, leave.DecisionRejected, req.Decision)
}

func TestNormalizeLeave_SingleDayDefaultsEndDate(t *testing.T) {
	t.Parallel()

	req, err := NormalizeLeave(map[string]any{
		"date":     "2025-03-10",
		"email":    "a@b.com",
		"response": "yes",
	})
	require.NoError(t, err)
	assert.True(t, req.EndDate.Equal(req.StartDate))
}

func TestNormalizeLeave_Range(t *testing.T) {
	t.Parallel()

	req, err := NormalizeLeave(map[string]any{
		"startDate": "2025-02-27",
		"endDate":   "2025-03-02",
		"email":     "a@b.com",
		"response":  "yes",
	})
	require.NoError(t, err)
	assert.Equal(t, "2025-02-27", req.StartDate.Format("2006-01-02"))
	assert.Equal(t, "2025-03-02", req.EndDate.Format("2006-01-02"))
}

func TestNormalizeEmployee(t *testing.T) {
	t.Parallel()

	emp, err := NormalizeEmployee(map[string]any{
		"email":     "Jane.Doe@Example.com",
		"firstName": "Jane",
		"lastName":  "Doe",
		"salary":    50000.0,
		"hireDate":  "2024-06-01",
	})
	require.NoError(t, err)
	assert.Equal(t, "jane.doe@example.com", emp.Email)
	assert.Equal(t, "Jane Doe", emp.FullName())
	assert.Equal(t, "50000", emp.Salary.String())
	require.NotNil(t, emp.HireDate)
	assert.Equal(t, time.June, emp.HireDate.Month())

	_, err = NormalizeEmployee(map[string]any{"firstName": "Ghost"})
	assert.ErrorIs(t, err, ErrNoIdentity)
}

func TestNormalizeBatch_SkipsBadRows(t *testing.T) {
	t.Parallel()

	rows := []map[string]any{
		{"date": "2025-03-10", "email": "a@b.com", "status": "FULL_DAY"},
		{"email": "a@b.com", "status": "FULL_DAY"},
		{"date": "2025-03-11", "email": "a@b.com", "status": "HALF_DAY"},
		{"date": "garbage", "email": "a@b.com"},
	}

	records, skipped := NormalizeAttendanceBatch(rows)
	assert.Len(t, records, 2)
	assert.Equal(t, 2, skipped)
}
