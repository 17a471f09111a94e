package report

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/hrms-labs/hrms-backend-go/internal/domain/attendance"
	"github.com/hrms-labs/hrms-backend-go/internal/domain/employee"
	"github.com/hrms-labs/hrms-backend-go/internal/domain/leave"
	"github.com/hrms-labs/hrms-backend-go/internal/domain/report"
	"github.com/hrms-labs/hrms-backend-go/internal/pkg/pdf"
	"github.com/hrms-labs/hrms-backend-go/internal/pkg/validator"
	"github.com/hrms-labs/hrms-backend-go/internal/service/reconcile"
)

type ReportServiceImpl struct {
	attendance.AttendanceRepository
	leave.LeaveRepository
	employee.EmployeeRepository
}

func NewReportService(attendanceRepository attendance.AttendanceRepository, leaveRepository leave.LeaveRepository, employeeRepository employee.EmployeeRepository) report.ReportService {
	return &ReportServiceImpl{
		AttendanceRepository: attendanceRepository,
		LeaveRepository:      leaveRepository,
		EmployeeRepository:   employeeRepository,
	}
}

// MonthlySummary implements report.ReportService. Each data source is
// fetched independently; a failed fetch degrades that source to empty
// instead of failing the whole report.
func (s *ReportServiceImpl) MonthlySummary(ctx context.Context, filter report.ReportFilter) ([]report.SalaryReportRow, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	period := reconcile.Period{Year: filter.Year, Month: time.Month(filter.Month)}
	batch := s.fetchBatch(ctx, filter, period)

	subject := ""
	if filter.Email != nil {
		subject = *filter.Email
	}

	summaries := reconcile.Aggregate(batch, period, subject)

	profilesByEmail := make(map[string]employee.Employee, len(batch.Profiles))
	for _, prof := range batch.Profiles {
		profilesByEmail[reconcile.NormalizeEmail(prof.Email)] = prof
	}

	rows := make([]report.SalaryReportRow, 0, len(summaries))
	for _, summary := range summaries {
		line := reconcile.Summarize(summary, nil)

		row := report.SalaryReportRow{
			Email:              summary.Subject.Email,
			Matched:            summary.Subject.Matched,
			FullDayCount:       summary.FullDayCount,
			HalfDayCount:       summary.HalfDayCount,
			AbsentCount:        summary.AbsentCount,
			ApprovedLeaveCount: summary.ApprovedLeaveCount,
			FullDayPay:         line.FullDayPay,
			HalfDayPay:         line.HalfDayPay,
			LeavePay:           line.LeavePay,
			TotalPay:           line.TotalPay,
		}

		if prof, ok := profilesByEmail[summary.Subject.Email]; ok {
			row.FullName = prof.FullName()
			row.BaseSalary = prof.Salary
		}

		rows = append(rows, row)
	}

	return rows, nil
}

// Receipt implements report.ReportService.
func (s *ReportServiceImpl) Receipt(ctx context.Context, filter report.ReportFilter) (report.ReceiptFile, error) {
	if filter.Email == nil || *filter.Email == "" {
		return report.ReceiptFile{}, validator.ValidationErrors{{
			Field:   "email",
			Message: "email is required for a salary receipt",
		}}
	}

	rows, err := s.MonthlySummary(ctx, filter)
	if err != nil {
		return report.ReceiptFile{}, err
	}
	if len(rows) == 0 {
		return report.ReceiptFile{}, fmt.Errorf("no report row for %s", *filter.Email)
	}
	row := rows[0]

	monthName := time.Month(filter.Month).String()

	displayName := row.FullName
	if displayName == "" {
		displayName = row.Email
	}

	lines := []string{
		"Salary Receipt",
		"",
		fmt.Sprintf("Employee: %s", displayName),
		fmt.Sprintf("Email: %s", row.Email),
		fmt.Sprintf("Period: %s %d", monthName, filter.Year),
		"",
		fmt.Sprintf("Full days worked: %d", row.FullDayCount),
		fmt.Sprintf("Half days worked: %d", row.HalfDayCount),
		fmt.Sprintf("Days absent: %d", row.AbsentCount),
		fmt.Sprintf("Approved leave days: %d", row.ApprovedLeaveCount),
		"",
		fmt.Sprintf("Full day pay: %s", row.FullDayPay.String()),
		fmt.Sprintf("Half day pay: %s", row.HalfDayPay.String()),
		fmt.Sprintf("Leave pay: %s", row.LeavePay.String()),
		fmt.Sprintf("Total pay: %s", row.TotalPay.String()),
		"",
		fmt.Sprintf("Generated: %s", time.Now().Format("2006-01-02")),
	}

	return report.ReceiptFile{
		Name:        receiptFileName(displayName, filter.Month, filter.Year),
		ContentType: "application/pdf",
		Content:     pdf.RenderLines(lines),
	}, nil
}

// fetchBatch pulls the three sources for the period, degrading each failed
// fetch to empty with a logged warning.
func (s *ReportServiceImpl) fetchBatch(ctx context.Context, filter report.ReportFilter, period reconcile.Period) reconcile.Batch {
	var batch reconcile.Batch

	startDate := period.FirstDay().Format("2006-01-02")
	endDate := period.LastDay().Format("2006-01-02")
	listFilter := attendance.ListFilter{StartDate: &startDate, EndDate: &endDate, Email: filter.Email}

	records, err := s.AttendanceRepository.List(ctx, listFilter)
	if err != nil {
		slog.Warn("Attendance fetch failed, report degrades to no attendance", "error", err)
	} else {
		batch.Records = records
	}

	// Leave ranges can straddle month boundaries, so all requests are
	// fetched and clamping happens in the aggregator.
	leaves, err := s.LeaveRepository.List(ctx)
	if err != nil {
		slog.Warn("Leave fetch failed, report degrades to attendance only", "error", err)
	} else {
		batch.Leaves = leaves
	}

	profiles, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		slog.Warn("Employee fetch failed, report degrades to unmatched subjects", "error", err)
	} else {
		batch.Profiles = profiles
	}

	return batch
}

var unsafeFileChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// receiptFileName builds a download name with the subject, period and a
// random nonce so concurrent exports never collide.
func receiptFileName(subject string, month, year int) string {
	safe := unsafeFileChars.ReplaceAllString(subject, "_")
	nonce := uuid.NewString()[:8]
	return fmt.Sprintf("SalaryReceipt_%s_%d_%d_%s.pdf", safe, month, year, nonce)
}
