package reconcile

import (
	"time"

	"github.com/hrms-labs/hrms-backend-go/internal/domain/attendance"
	"github.com/hrms-labs/hrms-backend-go/internal/domain/employee"
	"github.com/hrms-labs/hrms-backend-go/internal/domain/leave"
	"github.com/hrms-labs/hrms-backend-go/internal/domain/report"
)

// Period identifies one calendar month.
type Period struct {
	Year  int
	Month time.Month
}

// Contains reports whether t falls inside the period. Dates are compared as
// calendar days, never shifted across time zones.
func (p Period) Contains(t time.Time) bool {
	return t.Year() == p.Year && t.Month() == p.Month
}

// FirstDay returns the first calendar day of the period.
func (p Period) FirstDay() time.Time {
	return time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC)
}

// LastDay returns the last calendar day of the period.
func (p Period) LastDay() time.Time {
	return time.Date(p.Year, p.Month+1, 0, 0, 0, 0, 0, time.UTC)
}

// Batch is the canonical input of one aggregation run.
type Batch struct {
	Records  []attendance.Record
	Leaves   []leave.Request
	Profiles []employee.Employee
}

// Aggregate reduces a batch into per-subject summaries for one month.
//
// Every known profile is seeded with an all-zero summary so roster views
// include subjects with no activity. Records whose subject matches no
// profile are kept in their own unmatched bucket rather than dropped.
//
// When subject is non-empty the result is a single-subject view: exactly
// one summary for that email, all-zero if nothing matched.
//
// A subject may have at most one attendance record per calendar day; when
// duplicates appear in the input the first record wins and later ones are
// ignored. Status counting is mutually exclusive and unknown statuses
// count toward nothing.
func Aggregate(batch Batch, period Period, subject string) []report.PeriodSummary {
	subject = NormalizeEmail(subject)

	known := make(map[string]bool, len(batch.Profiles))
	for _, prof := range batch.Profiles {
		known[NormalizeEmail(prof.Email)] = true
	}

	var order []report.SubjectKey
	summaries := make(map[report.SubjectKey]*report.PeriodSummary)

	get := func(email string) *report.PeriodSummary {
		key := report.SubjectKey{Email: email, Matched: known[email]}
		if s, ok := summaries[key]; ok {
			return s
		}
		s := &report.PeriodSummary{
			Subject: key,
			Year:    period.Year,
			Month:   int(period.Month),
		}
		summaries[key] = s
		order = append(order, key)
		return s
	}

	if subject != "" {
		get(subject)
	} else {
		for _, prof := range batch.Profiles {
			get(NormalizeEmail(prof.Email))
		}
	}

	seen := make(map[string]map[time.Time]bool)
	for _, rec := range batch.Records {
		email := NormalizeEmail(rec.Email)
		if subject != "" && email != subject {
			continue
		}
		if !period.Contains(rec.Date) {
			continue
		}

		day := time.Date(rec.Date.Year(), rec.Date.Month(), rec.Date.Day(), 0, 0, 0, 0, time.UTC)
		if seen[email] == nil {
			seen[email] = make(map[time.Time]bool)
		}
		if seen[email][day] {
			continue
		}
		seen[email][day] = true

		s := get(email)
		switch rec.Status {
		case attendance.StatusFullDay:
			s.FullDayCount++
		case attendance.StatusHalfDay:
			s.HalfDayCount++
		case attendance.StatusAbsent:
			s.AbsentCount++
		}
	}

	for _, lv := range batch.Leaves {
		if lv.Decision != leave.DecisionApproved {
			continue
		}
		email := NormalizeEmail(lv.Email)
		if subject != "" && email != subject {
			continue
		}
		days := clampedLeaveDays(lv, period)
		if days == 0 {
			continue
		}
		get(email).ApprovedLeaveCount += days
	}

	result := make([]report.PeriodSummary, 0, len(order))
	for _, key := range order {
		result = append(result, *summaries[key])
	}
	return result
}

// clampedLeaveDays counts the days of a leave range that fall inside the
// period, inclusive on both ends. A range straddling a month boundary only
// contributes its in-month portion.
func clampedLeaveDays(lv leave.Request, period Period) int {
	if lv.StartDate.IsZero() {
		return 0
	}
	start := lv.StartDate
	end := lv.EndDate
	if end.IsZero() {
		end = start
	}
	if end.Before(start) {
		return 0
	}

	if first := period.FirstDay(); start.Before(first) {
		start = first
	}
	if last := period.LastDay(); end.After(last) {
		end = last
	}
	if end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}
