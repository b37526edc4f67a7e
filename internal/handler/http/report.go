package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/tabacalera-hn/asistencia-backend-go/internal/domain/report"
	"github.com/tabacalera-hn/asistencia-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Daily(w http.ResponseWriter, r *http.Request)
	Period(w http.ResponseWriter, r *http.Request)
	PeriodExport(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{reportService: reportService}
}

// Daily implements ReportHandler. date query param defaults to today.
func (h *reportHandlerImpl) Daily(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")

	daily, err := h.reportService.GetDailyReport(r.Context(), date)
	if err != nil {
		slog.Error("DailyReport service error", "date", date, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, daily)
}

// Period implements ReportHandler.
func (h *reportHandlerImpl) Period(w http.ResponseWriter, r *http.Request) {
	req := periodRequest(r)

	periodReport, err := h.reportService.GetPeriodReport(r.Context(), req)
	if err != nil {
		slog.Error("PeriodReport service error", "start", req.StartDate, "end", req.EndDate, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, periodReport)
}

// PeriodExport implements ReportHandler. Streams the report as XLSX.
func (h *reportHandlerImpl) PeriodExport(w http.ResponseWriter, r *http.Request) {
	req := periodRequest(r)

	file, filename, err := h.reportService.ExportPeriodReport(r.Context(), req)
	if err != nil {
		slog.Error("PeriodExport service error", "start", req.StartDate, "end", req.EndDate, "error", err)
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, filename))
	if _, err := w.Write(file); err != nil {
		slog.Error("PeriodExport write error", "error", err)
	}
}

func periodRequest(r *http.Request) report.PeriodRequest {
	return report.PeriodRequest{
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}
}
