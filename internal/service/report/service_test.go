package report

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/hrms-labs/hrms-backend-go/internal/domain/attendance"
	"github.com/hrms-labs/hrms-backend-go/internal/domain/employee"
	"github.com/hrms-labs/hrms-backend-go/internal/domain/leave"
	"github.com/hrms-labs/hrms-backend-go/internal/domain/report"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAttendanceRepo struct {
	records []attendance.Record
	err     error
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	return rec, nil
}

func (f *fakeAttendanceRepo) GetBySubjectAndDate(ctx context.Context, email string, date time.Time) (*attendance.Record, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.Record, error) {
	return f.records, f.err
}

func (f *fakeAttendanceRepo) ListBySubject(ctx context.Context, email string) ([]attendance.Record, error) {
	return f.records, f.err
}

type fakeLeaveRepo struct {
	requests []leave.Request
	err      error
}

func (f *fakeLeaveRepo) Create(ctx context.Context, req leave.Request) (leave.Request, error) {
	return req, nil
}

func (f *fakeLeaveRepo) GetByID(ctx context.Context, id string) (leave.Request, error) {
	return leave.Request{}, leave.ErrLeaveRequestNotFound
}

func (f *fakeLeaveRepo) List(ctx context.Context) ([]leave.Request, error) {
	return f.requests, f.err
}

func (f *fakeLeaveRepo) ListBySubject(ctx context.Context, email string) ([]leave.Request, error) {
	return f.requests, f.err
}

func (f *fakeLeaveRepo) UpdateDecision(ctx context.Context, id string, decision leave.Decision, rejectReason *string, decidedBy string) error {
	return nil
}

type fakeEmployeeRepo struct {
	employees []employee.Employee
	err       error
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	return f.employees, f.err
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, emp employee.Employee) error { return nil }

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string) error { return nil }

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestMonthlySummary_EndToEnd(t *testing.T) {
	t.Parallel()

	svc := NewReportService(
		&fakeAttendanceRepo{records: []attendance.Record{
			{Email: "john@example.com", Date: day("2025-03-03"), Status: attendance.StatusFullDay},
			{Email: "john@example.com", Date: day("2025-03-04"), Status: attendance.StatusHalfDay},
			{Email: "john@example.com", Date: day("2025-03-05"), Status: attendance.StatusAbsent},
		}},
		&fakeLeaveRepo{requests: []leave.Request{
			{Email: "john@example.com", StartDate: day("2025-03-10"), EndDate: day("2025-03-11"), Decision: leave.DecisionApproved},
		}},
		&fakeEmployeeRepo{employees: []employee.Employee{
			{Email: "john@example.com", FirstName: "John", LastName: "Doe", Salary: decimal.NewFromInt(40000)},
		}},
	)

	rows, err := svc.MonthlySummary(context.Background(), report.ReportFilter{Year: 2025, Month: 3})
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, "john@example.com", row.Email)
	assert.Equal(t, "John Doe", row.FullName)
	assert.True(t, row.Matched)
	assert.Equal(t, 1, row.FullDayCount)
	assert.Equal(t, 1, row.HalfDayCount)
	assert.Equal(t, 1, row.AbsentCount)
	assert.Equal(t, 2, row.ApprovedLeaveCount)
	assert.Equal(t, "1750", row.TotalPay.String())
	assert.Equal(t, "40000", row.BaseSalary.String())
}

func TestMonthlySummary_LeaveFetchFailureDegrades(t *testing.T) {
	t.Parallel()

	svc := NewReportService(
		&fakeAttendanceRepo{records: []attendance.Record{
			{Email: "john@example.com", Date: day("2025-03-03"), Status: attendance.StatusFullDay},
		}},
		&fakeLeaveRepo{err: errors.New("leave store down")},
		&fakeEmployeeRepo{employees: []employee.Employee{
			{Email: "john@example.com", FirstName: "John"},
		}},
	)

	rows, err := svc.MonthlySummary(context.Background(), report.ReportFilter{Year: 2025, Month: 3})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 1, rows[0].FullDayCount)
	assert.Equal(t, 0, rows[0].ApprovedLeaveCount)
	assert.Equal(t, "500", rows[0].TotalPay.String())
}

func TestMonthlySummary_SingleSubjectAllZero(t *testing.T) {
	t.Parallel()

	email := "ghost@example.com"
	svc := NewReportService(&fakeAttendanceRepo{}, &fakeLeaveRepo{}, &fakeEmployeeRepo{})

	rows, err := svc.MonthlySummary(context.Background(), report.ReportFilter{Year: 2025, Month: 3, Email: &email})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, email, rows[0].Email)
	assert.False(t, rows[0].Matched)
	assert.Equal(t, "0", rows[0].TotalPay.String())
}

func TestMonthlySummary_UnmatchedSubjectSurfaces(t *testing.T) {
	t.Parallel()

	svc := NewReportService(
		&fakeAttendanceRepo{records: []attendance.Record{
			{Email: "stranger@example.com", Date: day("2025-03-03"), Status: attendance.StatusFullDay},
		}},
		&fakeLeaveRepo{},
		&fakeEmployeeRepo{employees: []employee.Employee{
			{Email: "known@example.com", FirstName: "Known"},
		}},
	)

	rows, err := svc.MonthlySummary(context.Background(), report.ReportFilter{Year: 2025, Month: 3})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	var stranger *report.SalaryReportRow
	for i := range rows {
		if rows[i].Email == "stranger@example.com" {
			stranger = &rows[i]
		}
	}
	require.NotNil(t, stranger)
	assert.False(t, stranger.Matched)
	assert.Equal(t, "500", stranger.TotalPay.String())
}

func TestMonthlySummary_InvalidFilter(t *testing.T) {
	t.Parallel()

	svc := NewReportService(&fakeAttendanceRepo{}, &fakeLeaveRepo{}, &fakeEmployeeRepo{})

	_, err := svc.MonthlySummary(context.Background(), report.ReportFilter{Year: 2025, Month: 13})
	assert.Error(t, err)
}

func TestReceipt(t *testing.T) {
	t.Parallel()

	email := "john@example.com"
	svc := NewReportService(
		&fakeAttendanceRepo{records: []attendance.Record{
			{Email: email, Date: day("2025-03-03"), Status: attendance.StatusFullDay},
		}},
		&fakeLeaveRepo{},
		&fakeEmployeeRepo{employees: []employee.Employee{
			{Email: email, FirstName: "John", LastName: "Doe"},
		}},
	)

	file, err := svc.Receipt(context.Background(), report.ReportFilter{Year: 2025, Month: 3, Email: &email})
	require.NoError(t, err)

	assert.Equal(t, "application/pdf", file.ContentType)
	assert.Regexp(t, regexp.MustCompile(`^SalaryReceipt_John_Doe_3_2025_[0-9a-f]{8}\.pdf$`), file.Name)
	assert.True(t, strings.HasPrefix(string(file.Content), "%PDF"))
	assert.Contains(t, string(file.Content), "(Total pay: 500) Tj")
}

func TestReceipt_RequiresEmail(t *testing.T) {
	t.Parallel()

	svc := NewReportService(&fakeAttendanceRepo{}, &fakeLeaveRepo{}, &fakeEmployeeRepo{})

	_, err := svc.Receipt(context.Background(), report.ReportFilter{Year: 2025, Month: 3})
	assert.Error(t, err)
}

func TestReceipt_NamesNeverCollide(t *testing.T) {
	t.Parallel()

	email := "john@example.com"
	svc := NewReportService(&fakeAttendanceRepo{}, &fakeLeaveRepo{}, &fakeEmployeeRepo{})

	first, err := svc.Receipt(context.Background(), report.ReportFilter{Year: 2025, Month: 3, Email: &email})
	require.NoError(t, err)
	second, err := svc.Receipt(context.Background(), report.ReportFilter{Year: 2025, Month: 3, Email: &email})
	require.NoError(t, err)

	assert.NotEqual(t, first.Name, second.Name)
}
