package postgresql

import (
	"context"
	"fmt"

	"github.com/tabacalera-hn/asistencia-backend-go/internal/domain/maintenance"
	"github.com/tabacalera-hn/asistencia-backend-go/internal/pkg/database"
)

type maintenanceRepositoryImpl struct {
	db *database.DB
}

func NewMaintenanceRepository(db *database.DB) maintenance.MaintenanceRepository {
	return &maintenanceRepositoryImpl{db: db}
}

// WipeOperationalData implements maintenance.MaintenanceRepository.
// Attendance goes first so the employee delete never hits the FK.
func (r *maintenanceRepositoryImpl) WipeOperationalData(ctx context.Context) (int, int, error) {
	var attendanceDeleted, employeesDeleted int

	err := WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, r.db)

		tag, err := q.Exec(txCtx, `DELETE FROM attendance`)
		if err != nil {
			return fmt.Errorf("delete attendance: %w", err)
		}
		attendanceDeleted = int(tag.RowsAffected())

		tag, err = q.Exec(txCtx, `DELETE FROM employees`)
		if err != nil {
			return fmt.Errorf("delete employees: %w", err)
		}
		employeesDeleted = int(tag.RowsAffected())

		return nil
	})
	if err != nil {
		return 0, 0, err
	}

	return attendanceDeleted, employeesDeleted, nil
}

// Counts implements maintenance.MaintenanceRepository.
func (r *maintenanceRepositoryImpl) Counts(ctx context.Context) (maintenance.TableCounts, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM employees),
			(SELECT COUNT(*) FROM attendance)
	`

	var counts maintenance.TableCounts
	if err := q.QueryRow(ctx, query).Scan(&counts.Users, &counts.Employees, &counts.Attendance); err != nil {
		return maintenance.TableCounts{}, err
	}
	return counts, nil
}
