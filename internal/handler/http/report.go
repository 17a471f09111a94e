package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/hrms-labs/hrms-backend-go/internal/domain/report"
	"github.com/hrms-labs/hrms-backend-go/internal/handler/http/middleware"
	"github.com/hrms-labs/hrms-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	MonthlySummary(w http.ResponseWriter, r *http.Request)
	Receipt(w http.ResponseWriter, r *http.Request)
	MyReceipt(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

// MonthlySummary implements ReportHandler. Reviewer view; with ?email= it
// narrows to a single subject.
func (h *ReportHandlerImpl) MonthlySummary(w http.ResponseWriter, r *http.Request) {
	filter, err := parseReportFilter(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	rows, err := h.reportService.MonthlySummary(r.Context(), filter)
	if err != nil {
		slog.Error("MonthlySummary service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, rows)
}

// Receipt implements ReportHandler. Streams the PDF for any subject.
func (h *ReportHandlerImpl) Receipt(w http.ResponseWriter, r *http.Request) {
	filter, err := parseReportFilter(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	h.serveReceipt(w, r, filter)
}

// MyReceipt implements ReportHandler. Streams the caller's own receipt.
func (h *ReportHandlerImpl) MyReceipt(w http.ResponseWriter, r *http.Request) {
	filter, err := parseReportFilter(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	subjectEmail := middleware.SubjectEmail(r.Context())
	filter.Email = &subjectEmail

	h.serveReceipt(w, r, filter)
}

func (h *ReportHandlerImpl) serveReceipt(w http.ResponseWriter, r *http.Request, filter report.ReportFilter) {
	file, err := h.reportService.Receipt(r.Context(), filter)
	if err != nil {
		slog.Error("Receipt service error", "error", err)
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", file.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Name))
	w.Header().Set("Content-Length", strconv.Itoa(len(file.Content)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(file.Content)
}

func parseReportFilter(r *http.Request) (report.ReportFilter, error) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		return report.ReportFilter{}, fmt.Errorf("year query parameter is required")
	}
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		return report.ReportFilter{}, fmt.Errorf("month query parameter is required")
	}

	filter := report.ReportFilter{Year: year, Month: month}
	if v := r.URL.Query().Get("email"); v != "" {
		filter.Email = &v
	}

	return filter, nil
}
