package postgresql

import (
	"context"
	"time"

	"github.com/tabacalera-hn/asistencia-backend-go/internal/domain/dashboard"
	"github.com/tabacalera-hn/asistencia-backend-go/internal/pkg/database"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db}
}

// CountActiveEmployees implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) CountActiveEmployees(ctx context.Context) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees WHERE is_active = true`).Scan(&count)
	return count, err
}

// CountAttendance implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) CountAttendance(ctx context.Context, date time.Time) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM attendance WHERE date = $1`, date).Scan(&count)
	return count, err
}

// CountPendingExits implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) CountPendingExits(ctx context.Context, date time.Time) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM attendance WHERE date = $1 AND exit_time IS NULL`, date).Scan(&count)
	return count, err
}

// WeekSummary implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) WeekSummary(ctx context.Context, endDate time.Time) (dashboard.WeeklySummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(DISTINCT employee_id),
			COALESCE(SUM(
				CASE
					WHEN exit_time IS NOT NULL THEN
						EXTRACT(EPOCH FROM (exit_time - entry_time)) / 3600
					ELSE 0
				END
			), 0)
		FROM attendance
		WHERE date BETWEEN $1::date - INTERVAL '7 days' AND $1
	`

	var summary dashboard.WeeklySummary
	err := q.QueryRow(ctx, query, endDate).Scan(&summary.Employees, &summary.TotalHours)
	if err != nil {
		return dashboard.WeeklySummary{}, err
	}
	return summary, nil
}

// RecentActivity implements dashboard.DashboardRepository. Open records
// show as entries, completed ones as exits, newest first.
func (r *dashboardRepositoryImpl) RecentActivity(ctx context.Context, date time.Time, limit int) ([]dashboard.ActivityRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			e.name, a.date, a.entry_time, a.exit_time,
			CASE WHEN a.exit_time IS NULL THEN 'entry' ELSE 'exit' END
		FROM attendance a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.date = $1
		ORDER BY a.entry_time DESC
		LIMIT $2
	`

	rows, err := q.Query(ctx, query, date, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []dashboard.ActivityRecord
	for rows.Next() {
		var rec dashboard.ActivityRecord
		if err := rows.Scan(&rec.EmployeeName, &rec.Date, &rec.EntryTime, &rec.ExitTime, &rec.ActionType); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
