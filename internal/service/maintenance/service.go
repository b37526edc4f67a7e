package maintenance

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tabacalera-hn/asistencia-backend-go/internal/domain/maintenance"
)

type MaintenanceServiceImpl struct {
	maintenance.MaintenanceRepository
}

func NewMaintenanceService(maintenanceRepository maintenance.MaintenanceRepository) maintenance.MaintenanceService {
	return &MaintenanceServiceImpl{
		MaintenanceRepository: maintenanceRepository,
	}
}

// ResetDatabase implements maintenance.MaintenanceService. Destroys all
// attendance and employee data; user accounts survive. Admin only, and
// the router enforces that.
func (s *MaintenanceServiceImpl) ResetDatabase(ctx context.Context) (maintenance.ResetResponse, error) {
	attendanceDeleted, employeesDeleted, err := s.MaintenanceRepository.WipeOperationalData(ctx)
	if err != nil {
		return maintenance.ResetResponse{}, fmt.Errorf("failed to wipe operational data: %w", err)
	}

	counts, err := s.MaintenanceRepository.Counts(ctx)
	if err != nil {
		return maintenance.ResetResponse{}, fmt.Errorf("failed to count remaining rows: %w", err)
	}

	slog.Warn("database reset executed",
		"attendance_deleted", attendanceDeleted,
		"employees_deleted", employeesDeleted,
		"users_kept", counts.Users,
	)

	return maintenance.ResetResponse{
		AttendanceDeleted: attendanceDeleted,
		EmployeesDeleted:  employeesDeleted,
		UsersKept:         counts.Users,
		Message:           "attendance and employees removed, users kept",
	}, nil
}

// GetCounts implements maintenance.MaintenanceService.
func (s *MaintenanceServiceImpl) GetCounts(ctx context.Context) (maintenance.TableCounts, error) {
	counts, err := s.MaintenanceRepository.Counts(ctx)
	if err != nil {
		return maintenance.TableCounts{}, fmt.Errorf("failed to count rows: %w", err)
	}
	return counts, nil
}
