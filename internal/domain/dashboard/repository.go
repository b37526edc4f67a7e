package dashboard

import (
	"context"
	"time"
)

type DashboardRepository interface {
	CountActiveEmployees(ctx context.Context) (int, error)
	CountAttendance(ctx context.Context, date time.Time) (int, error)
	CountPendingExits(ctx context.Context, date time.Time) (int, error)

	// WeekSummary aggregates distinct employees and worked hours over
	// the seven days ending on the given date, completed records only.
	WeekSummary(ctx context.Context, endDate time.Time) (WeeklySummary, error)

	RecentActivity(ctx context.Context, date time.Time, limit int) ([]ActivityRecord, error)
}
