package report

import (
	"context"
)

type ReportService interface {
	// GetDailyReport returns all active employees with their status for
	// the given date. Empty date means today in the business timezone.
	GetDailyReport(ctx context.Context, date string) (DailyReportResponse, error)

	// GetPeriodReport aggregates completed attendance over an inclusive
	// date range into per-class payroll lines plus totals.
	GetPeriodReport(ctx context.Context, req PeriodRequest) (PeriodReportResponse, error)

	// ExportPeriodReport renders the period report as an XLSX workbook.
	// It returns the file bytes and a suggested filename.
	ExportPeriodReport(ctx context.Context, req PeriodRequest) ([]byte, string, error)

	// GetEmployeeStats returns the class-specific summary for one
	// employee and calendar month. Zero year/month means the current
	// month in the business timezone.
	GetEmployeeStats(ctx context.Context, employeeID string, year, month int) (EmployeeStatsResponse, error)
}
