package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/tabacalera-hn/asistencia-backend-go/internal/domain/attendance"
	"github.com/tabacalera-hn/asistencia-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceColumns = `id, employee_id, date, entry_time, exit_time,
	hours_extra, despalillo, escogida, monado,
	t_despalillo, t_escogida, t_monado, prop_sabado, septimo_dia, he_dinero,
	created_at, updated_at`

func scanAttendance(row database.Row, rec *attendance.Record) error {
	return row.Scan(
		&rec.ID,
		&rec.EmployeeID,
		&rec.Date,
		&rec.EntryTime,
		&rec.ExitTime,
		&rec.HoursExtra,
		&rec.Despalillo,
		&rec.Escogida,
		&rec.Monado,
		&rec.TaskDespalillo,
		&rec.TaskEscogida,
		&rec.TaskMonado,
		&rec.PropSabado,
		&rec.SeptimoDia,
		&rec.HoursExtraPay,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
}

// Create implements attendance.AttendanceRepository. The unique index on
// (employee_id, date) turns a concurrent duplicate entry into a 23505,
// which the service layer converts to a domain conflict.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance (
			id, employee_id, date, entry_time, exit_time,
			hours_extra, despalillo, escogida, monado,
			t_despalillo, t_escogida, t_monado, prop_sabado, septimo_dia, he_dinero,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, NULL, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, NOW(), NOW())
		RETURNING ` + attendanceColumns

	id := rec.ID
	if id == "" {
		id = uuid.NewString()
	}

	var created attendance.Record
	err := scanAttendance(q.QueryRow(ctx, query, id, rec.EmployeeID, rec.Date, rec.EntryTime), &created)
	if err != nil {
		return attendance.Record{}, err
	}

	return created, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendance WHERE employee_id = $1 AND date = $2`

	var rec attendance.Record
	err := scanAttendance(q.QueryRow(ctx, query, employeeID, date), &rec)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// CloseEntry implements attendance.AttendanceRepository. The exit_time
// IS NULL guard makes the write exactly-once: a second close attempt
// matches no rows no matter how the requests interleave.
func (r *attendanceRepositoryImpl) CloseEntry(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance
		SET exit_time = $1,
			hours_extra = $2, despalillo = $3, escogida = $4, monado = $5,
			t_despalillo = $6, t_escogida = $7, t_monado = $8,
			prop_sabado = $9, septimo_dia = $10, he_dinero = $11,
			updated_at = NOW()
		WHERE employee_id = $12 AND date = $13 AND exit_time IS NULL
		RETURNING ` + attendanceColumns

	var closed attendance.Record
	err := scanAttendance(q.QueryRow(ctx, query,
		rec.ExitTime,
		rec.HoursExtra, rec.Despalillo, rec.Escogida, rec.Monado,
		rec.TaskDespalillo, rec.TaskEscogida, rec.TaskMonado,
		rec.PropSabado, rec.SeptimoDia, rec.HoursExtraPay,
		rec.EmployeeID, rec.Date,
	), &closed)
	if errors.Is(err, pgx.ErrNoRows) {
		return attendance.Record{}, attendance.ErrRecordNotFound
	}
	if err != nil {
		return attendance.Record{}, err
	}

	return closed, nil
}

// ListByDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByDate(ctx context.Context, date time.Time) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.employee_id, a.date, a.entry_time, a.exit_time,
			a.hours_extra, a.despalillo, a.escogida, a.monado,
			a.t_despalillo, a.t_escogida, a.t_monado, a.prop_sabado, a.septimo_dia, a.he_dinero,
			a.created_at, a.updated_at,
			e.name, e.dni, e.type
		FROM attendance a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.date = $1
		ORDER BY a.entry_time DESC
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		if err := rows.Scan(
			&rec.ID,
			&rec.EmployeeID,
			&rec.Date,
			&rec.EntryTime,
			&rec.ExitTime,
			&rec.HoursExtra,
			&rec.Despalillo,
			&rec.Escogida,
			&rec.Monado,
			&rec.TaskDespalillo,
			&rec.TaskEscogida,
			&rec.TaskMonado,
			&rec.PropSabado,
			&rec.SeptimoDia,
			&rec.HoursExtraPay,
			&rec.CreatedAt,
			&rec.UpdatedAt,
			&rec.EmployeeName,
			&rec.EmployeeDNI,
			&rec.EmployeeType,
		); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
