// Package reconcile canonicalizes the loosely-shaped attendance, leave and
// employee rows that reach the API, aggregates them into per-subject monthly
// summaries, and derives payroll figures from those summaries. Everything in
// this package is a pure function over in-memory data; fetching and
// persistence stay with the callers.
package reconcile

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/hrms-labs/hrms-backend-go/internal/domain/attendance"
	"github.com/hrms-labs/hrms-backend-go/internal/domain/employee"
	"github.com/hrms-labs/hrms-backend-go/internal/domain/leave"
	"github.com/shopspring/decimal"
)

// Normalization failures. Rows carrying these are skipped by batch helpers
// and contribute to no aggregate; they never abort a batch.
var (
	ErrNoDate     = errors.New("no usable date field in record")
	ErrNoIdentity = errors.New("no usable identity field in record")
)

// Candidate field names per logical attribute, in resolution order. The
// order is fixed for compatibility with historical payload shapes; first
// present non-empty value wins.
var (
	attendanceDateFields = []string{"date", "attendance_date", "attendanceDate", "startDate", "start_date"}
	leaveStartFields     = []string{"date", "startDate", "start_date"}
	leaveEndFields       = []string{"endDate", "end_date"}
	statusFields         = []string{"status", "attendance", "state", "attendanceStatus"}
	decisionFields       = []string{"response", "status"}
)

// NormalizeEmail canonicalizes an email for identity joins: trimmed and
// lowercased.
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NormalizeAttendance maps one loosely-typed attendance row into a canonical
// Record. The status may come back as StatusUnknown; only a missing date or
// identity is a failure.
func NormalizeAttendance(raw map[string]any) (attendance.Record, error) {
	date, err := resolveDate(raw, attendanceDateFields)
	if err != nil {
		return attendance.Record{}, err
	}

	email, err := resolveIdentity(raw)
	if err != nil {
		return attendance.Record{}, err
	}

	rec := attendance.Record{
		ID:     resolveID(raw, "id", "attendance_id", "attendanceId"),
		Email:  email,
		Date:   date,
		Status: CanonicalStatus(stringField(raw, statusFields...)),
	}

	if remarks := strings.TrimSpace(stringField(raw, "remarks")); remarks != "" {
		rec.Remarks = &remarks
	}

	return rec, nil
}

// NormalizeLeave maps one loosely-typed leave row into a canonical Request.
// A row with only a single date field becomes a one-day request.
func NormalizeLeave(raw map[string]any) (leave.Request, error) {
	start, err := resolveDate(raw, leaveStartFields)
	if err != nil {
		return leave.Request{}, err
	}

	email, err := resolveIdentity(raw)
	if err != nil {
		return leave.Request{}, err
	}

	end := start
	if v := stringField(raw, leaveEndFields...); v != "" {
		parsed, perr := parseCalendarDate(v)
		if perr == nil {
			end = parsed
		}
	}

	req := leave.Request{
		ID:        resolveID(raw, "id", "leave_id", "leaveId"),
		Email:     email,
		StartDate: start,
		EndDate:   end,
		Reason:    strings.TrimSpace(stringField(raw, "reason")),
		Decision:  CanonicalDecision(stringField(raw, decisionFields...)),
	}

	return req, nil
}

// NormalizeEmployee maps one loosely-typed employee row into a canonical
// profile. Only identity is mandatory.
func NormalizeEmployee(raw map[string]any) (employee.Employee, error) {
	email, err := resolveIdentity(raw)
	if err != nil {
		return employee.Employee{}, err
	}

	emp := employee.Employee{
		ID:        resolveID(raw, "id", "employee_id", "employeeId"),
		Email:     email,
		FirstName: strings.TrimSpace(stringField(raw, "firstName", "first_name")),
		LastName:  strings.TrimSpace(stringField(raw, "lastName", "last_name")),
	}

	if emp.FirstName == "" {
		if full := strings.TrimSpace(stringField(raw, "fullName", "full_name")); full != "" {
			parts := strings.SplitN(full, " ", 2)
			emp.FirstName = parts[0]
			if len(parts) == 2 {
				emp.LastName = parts[1]
			}
		}
	}

	if v, ok := raw["salary"]; ok {
		if sal, serr := decimalValue(v); serr == nil {
			emp.Salary = sal
		}
	}

	if v := stringField(raw, "hireDate", "hire_date"); v != "" {
		if hd, herr := parseCalendarDate(v); herr == nil {
			emp.HireDate = &hd
		}
	}

	for _, key := range []string{"department", "position", "phone", "address", "gender"} {
		if v := strings.TrimSpace(stringField(raw, key)); v != "" {
			val := v
			switch key {
			case "department":
				emp.Department = &val
			case "position":
				emp.Position = &val
			case "phone":
				emp.Phone = &val
			case "address":
				emp.Address = &val
			case "gender":
				emp.Gender = &val
			}
		}
	}

	return emp, nil
}

// NormalizeAttendanceBatch normalizes a batch, dropping failed rows.
// Returns the canonical records and how many rows were skipped.
func NormalizeAttendanceBatch(rows []map[string]any) ([]attendance.Record, int) {
	records := make([]attendance.Record, 0, len(rows))
	skipped := 0
	for _, row := range rows {
		rec, err := NormalizeAttendance(row)
		if err != nil {
			skipped++
			continue
		}
		records = append(records, rec)
	}
	return records, skipped
}

// NormalizeLeaveBatch normalizes a batch, dropping failed rows.
func NormalizeLeaveBatch(rows []map[string]any) ([]leave.Request, int) {
	requests := make([]leave.Request, 0, len(rows))
	skipped := 0
	for _, row := range rows {
		req, err := NormalizeLeave(row)
		if err != nil {
			skipped++
			continue
		}
		requests = append(requests, req)
	}
	return requests, skipped
}

// CanonicalStatus maps a raw attendance status value onto the canonical
// enum, accepting the synonyms seen across historical payloads.
func CanonicalStatus(raw string) attendance.Status {
	s := strings.ToUpper(strings.TrimSpace(raw))
	switch {
	case s == "FULL_DAY" || strings.HasPrefix(s, "PRESENT_FULL"):
		return attendance.StatusFullDay
	case s == "HALF_DAY" || strings.HasPrefix(s, "PRESENT_HALF"):
		return attendance.StatusHalfDay
	case s == "ABSENT" || s == "A" || s == "ABS":
		return attendance.StatusAbsent
	default:
		return attendance.StatusUnknown
	}
}

// CanonicalDecision maps a raw leave decision value onto the canonical enum.
// Anything unrecognized stays pending.
func CanonicalDecision(raw string) leave.Decision {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "yes", "approved", "true":
		return leave.DecisionApproved
	case "no", "rejected":
		return leave.DecisionRejected
	default:
		return leave.DecisionPending
	}
}

// resolveDate finds the first present, non-empty date candidate and parses
// it as a calendar date. A present but unparseable value is still a failure:
// no usable date could be located.
func resolveDate(raw map[string]any, fields []string) (time.Time, error) {
	v := stringField(raw, fields...)
	if v == "" {
		return time.Time{}, ErrNoDate
	}
	t, err := parseCalendarDate(v)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrNoDate, v)
	}
	return t, nil
}

// parseCalendarDate parses YYYY-MM-DD, truncating longer timestamps to their
// first 10 characters. The result is a plain calendar day; it is never
// shifted across time zones.
func parseCalendarDate(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if len(v) > 10 {
		v = v[:10]
	}
	return time.Parse("2006-01-02", v)
}

// resolveIdentity locates the subject email: nested user.email, then
// userEmail, then email, then a string-typed user field.
func resolveIdentity(raw map[string]any) (string, error) {
	if u, ok := raw["user"].(map[string]any); ok {
		if email, ok := u["email"].(string); ok && strings.TrimSpace(email) != "" {
			return NormalizeEmail(email), nil
		}
		if email, ok := u["emailAddress"].(string); ok && strings.TrimSpace(email) != "" {
			return NormalizeEmail(email), nil
		}
	}
	if email := stringField(raw, "userEmail", "email"); email != "" {
		return NormalizeEmail(email), nil
	}
	if email, ok := raw["user"].(string); ok && strings.TrimSpace(email) != "" {
		return NormalizeEmail(email), nil
	}
	return "", ErrNoIdentity
}

// stringField returns the first present, non-empty string value among the
// candidate keys.
func stringField(raw map[string]any, fields ...string) string {
	for _, f := range fields {
		if v, ok := raw[f].(string); ok && strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// resolveID accepts string or numeric identifiers (JSON numbers decode as
// float64).
func resolveID(raw map[string]any, fields ...string) string {
	for _, f := range fields {
		switch v := raw[f].(type) {
		case string:
			if strings.TrimSpace(v) != "" {
				return strings.TrimSpace(v)
			}
		case float64:
			return strconv.FormatInt(int64(v), 10)
		case int:
			return strconv.Itoa(v)
		}
	}
	return ""
}

func decimalValue(v any) (decimal.Decimal, error) {
	switch val := v.(type) {
	case float64:
		return decimal.NewFromFloat(val), nil
	case int:
		return decimal.NewFromInt(int64(val)), nil
	case string:
		return decimal.NewFromString(strings.TrimSpace(val))
	default:
		return decimal.Zero, fmt.Errorf("unsupported salary type %T", v)
	}
}
