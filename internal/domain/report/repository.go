package report

import (
	"context"
	"time"
)

// ReportRepository reads aggregation inputs. All period queries count
// completed records only (exit_time IS NOT NULL) and omit employees
// with no completed records in range.
type ReportRepository interface {
	// DailyRows lists every active employee left-joined with that
	// date's attendance record.
	DailyRows(ctx context.Context, date time.Time) ([]DailyRecord, error)

	ProductionAggregates(ctx context.Context, startDate, endDate time.Time) ([]ProductionAggregate, error)
	AlDiaAggregates(ctx context.Context, startDate, endDate time.Time) ([]AlDiaAggregate, error)

	ProductionStats(ctx context.Context, employeeID string, year, month int) (ProductionStatsAggregate, error)
	AlDiaStats(ctx context.Context, employeeID string, year, month int) (AlDiaStatsAggregate, error)
}
