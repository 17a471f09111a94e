package report

import "context"

// ReportService builds salary reports and receipts from attendance, leave
// and employee data.
type ReportService interface {
	// MonthlySummary returns one row per subject for the period. With
	// filter.Email set it returns exactly one row (all-zero when the
	// subject has no matching records).
	MonthlySummary(ctx context.Context, filter ReportFilter) ([]SalaryReportRow, error)

	// Receipt renders the salary receipt document for one subject/period.
	Receipt(ctx context.Context, filter ReportFilter) (ReceiptFile, error)
}
