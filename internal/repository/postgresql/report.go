package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/tabacalera-hn/asistencia-backend-go/internal/domain/employee"
	"github.com/tabacalera-hn/asistencia-backend-go/internal/domain/report"
	"github.com/tabacalera-hn/asistencia-backend-go/internal/pkg/database"
)

type reportRepositoryImpl struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepositoryImpl{db: db}
}

// DailyRows implements report.ReportRepository.
func (r *reportRepositoryImpl) DailyRows(ctx context.Context, date time.Time) ([]report.DailyRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			e.id, e.name, e.dni, e.type, e.photo_path,
			a.entry_time, a.exit_time,
			COALESCE(a.hours_extra, 0), COALESCE(a.despalillo, 0),
			COALESCE(a.escogida, 0), COALESCE(a.monado, 0)
		FROM employees e
		LEFT JOIN attendance a ON a.employee_id = e.id AND a.date = $1
		WHERE e.is_active = true
		ORDER BY e.type, e.name
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []report.DailyRecord
	for rows.Next() {
		var rec report.DailyRecord
		if err := rows.Scan(
			&rec.EmployeeID,
			&rec.EmployeeName,
			&rec.DNI,
			&rec.EmployeeType,
			&rec.PhotoPath,
			&rec.EntryTime,
			&rec.ExitTime,
			&rec.OvertimeHours,
			&rec.DespalilloQty,
			&rec.EscogidaQty,
			&rec.MonadoQty,
		); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// ProductionAggregates implements report.ReportRepository. Only completed
// records count; employees without any are omitted entirely.
func (r *reportRepositoryImpl) ProductionAggregates(ctx context.Context, startDate, endDate time.Time) ([]report.ProductionAggregate, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			e.id, e.name, e.dni,
			COUNT(a.id),
			SUM(COALESCE(a.despalillo, 0)),
			SUM(COALESCE(a.escogida, 0)),
			SUM(COALESCE(a.monado, 0)),
			SUM(COALESCE(a.t_despalillo, 0)),
			SUM(COALESCE(a.t_escogida, 0)),
			SUM(COALESCE(a.t_monado, 0)),
			SUM(COALESCE(a.prop_sabado, 0)),
			SUM(COALESCE(a.septimo_dia, 0))
		FROM employees e
		INNER JOIN attendance a ON a.employee_id = e.id
		WHERE e.type = $1
			AND e.is_active = true
			AND a.date BETWEEN $2 AND $3
			AND a.exit_time IS NOT NULL
		GROUP BY e.id, e.name, e.dni
		HAVING COUNT(a.id) > 0
		ORDER BY e.name
	`

	rows, err := q.Query(ctx, query, employee.TypeProduction, startDate, endDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var aggs []report.ProductionAggregate
	for rows.Next() {
		var agg report.ProductionAggregate
		if err := rows.Scan(
			&agg.EmployeeID,
			&agg.EmployeeName,
			&agg.DNI,
			&agg.DaysWorked,
			&agg.TotalDespalillo,
			&agg.TotalEscogida,
			&agg.TotalMonado,
			&agg.TaskDespalillo,
			&agg.TaskEscogida,
			&agg.TaskMonado,
			&agg.SaturdayTotal,
			&agg.SeventhDayTotal,
		); err != nil {
			return nil, err
		}
		aggs = append(aggs, agg)
	}
	return aggs, rows.Err()
}

// AlDiaAggregates implements report.ReportRepository.
func (r *reportRepositoryImpl) AlDiaAggregates(ctx context.Context, startDate, endDate time.Time) ([]report.AlDiaAggregate, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			e.id, e.name, e.dni, e.monthly_salary,
			COUNT(a.id),
			SUM(COALESCE(a.hours_extra, 0)),
			SUM(COALESCE(a.prop_sabado, 0))
		FROM employees e
		INNER JOIN attendance a ON a.employee_id = e.id
		WHERE e.type = $1
			AND e.is_active = true
			AND a.date BETWEEN $2 AND $3
			AND a.exit_time IS NOT NULL
		GROUP BY e.id, e.name, e.dni, e.monthly_salary
		HAVING COUNT(a.id) > 0
		ORDER BY e.name
	`

	rows, err := q.Query(ctx, query, employee.TypeAlDia, startDate, endDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var aggs []report.AlDiaAggregate
	for rows.Next() {
		var agg report.AlDiaAggregate
		if err := rows.Scan(
			&agg.EmployeeID,
			&agg.EmployeeName,
			&agg.DNI,
			&agg.MonthlySalary,
			&agg.DaysWorked,
			&agg.OvertimeHours,
			&agg.SaturdayStored,
		); err != nil {
			return nil, err
		}
		aggs = append(aggs, agg)
	}
	return aggs, rows.Err()
}

// ProductionStats implements report.ReportRepository. Aggregates never
// error on an empty month; zero counts come back as a zero row.
func (r *reportRepositoryImpl) ProductionStats(ctx context.Context, employeeID string, year, month int) (report.ProductionStatsAggregate, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*),
			COALESCE(SUM(despalillo), 0),
			COALESCE(SUM(escogida), 0),
			COALESCE(SUM(monado), 0),
			COALESCE(SUM(t_despalillo), 0),
			COALESCE(SUM(t_escogida), 0),
			COALESCE(SUM(t_monado), 0),
			COALESCE(SUM(septimo_dia), 0)
		FROM attendance
		WHERE employee_id = $1
			AND EXTRACT(YEAR FROM date) = $2
			AND EXTRACT(MONTH FROM date) = $3
			AND exit_time IS NOT NULL
	`

	var agg report.ProductionStatsAggregate
	err := q.QueryRow(ctx, query, employeeID, year, month).Scan(
		&agg.DaysWorked,
		&agg.TotalDespalillo,
		&agg.TotalEscogida,
		&agg.TotalMonado,
		&agg.TaskDespalillo,
		&agg.TaskEscogida,
		&agg.TaskMonado,
		&agg.SeventhDayTotal,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return report.ProductionStatsAggregate{}, nil
	}
	if err != nil {
		return report.ProductionStatsAggregate{}, err
	}
	return agg, nil
}

// AlDiaStats implements report.ReportRepository.
func (r *reportRepositoryImpl) AlDiaStats(ctx context.Context, employeeID string, year, month int) (report.AlDiaStatsAggregate, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*),
			COALESCE(SUM(hours_extra), 0),
			COALESCE(SUM(prop_sabado), 0)
		FROM attendance
		WHERE employee_id = $1
			AND EXTRACT(YEAR FROM date) = $2
			AND EXTRACT(MONTH FROM date) = $3
			AND exit_time IS NOT NULL
	`

	var agg report.AlDiaStatsAggregate
	err := q.QueryRow(ctx, query, employeeID, year, month).Scan(
		&agg.DaysWorked,
		&agg.OvertimeHours,
		&agg.SaturdayStored,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return report.AlDiaStatsAggregate{}, nil
	}
	if err != nil {
		return report.AlDiaStatsAggregate{}, err
	}
	return agg, nil
}
