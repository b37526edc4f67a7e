package employee

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/tabacalera-hn/asistencia-backend-go/internal/domain/employee"
	"github.com/tabacalera-hn/asistencia-backend-go/internal/pkg/qr"
	"github.com/tabacalera-hn/asistencia-backend-go/internal/pkg/storage"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
	storage storage.FileStorage
}

func NewEmployeeService(employeeRepository employee.EmployeeRepository, fileStorage storage.FileStorage) employee.EmployeeService {
	return &EmployeeServiceImpl{
		EmployeeRepository: employeeRepository,
		storage:            fileStorage,
	}
}

// CreateEmployee implements employee.EmployeeService. The badge payload
// embeds the id, so the id is generated here rather than in the
// repository.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	exists, err := s.EmployeeRepository.DNIExists(ctx, req.DNI, "")
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check dni: %w", err)
	}
	if exists {
		return employee.EmployeeResponse{}, employee.ErrDNIExists
	}

	id := uuid.NewString()

	created, err := s.EmployeeRepository.Create(ctx, employee.Employee{
		ID:            id,
		Name:          req.Name,
		DNI:           req.DNI,
		Type:          employee.Type(req.Type),
		MonthlySalary: req.MonthlySalary,
		QRCode:        qr.Encode(id),
	})
	if err != nil {
		if isUniqueViolation(err) {
			return employee.EmployeeResponse{}, employee.ErrDNIExists
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	if req.Photo != nil {
		if photoPath := s.uploadPhoto(ctx, created.ID, req.Photo, req.PhotoFilename); photoPath != nil {
			created.PhotoPath = photoPath
			if err := s.EmployeeRepository.Update(ctx, created); err != nil {
				slog.Warn("failed to attach photo to employee", "employee_id", created.ID, "error", err)
				created.PhotoPath = nil
			}
		}
	}

	return s.toResponse(created), nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	e, err := s.EmployeeRepository.GetActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return s.toResponse(e), nil
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.EmployeeRepository.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, s.toResponse(e))
	}
	return responses, nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	e, err := s.EmployeeRepository.GetActiveByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	if req.DNI != e.DNI {
		exists, err := s.EmployeeRepository.DNIExists(ctx, req.DNI, e.ID)
		if err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("failed to check dni: %w", err)
		}
		if exists {
			return employee.EmployeeResponse{}, employee.ErrDNIExists
		}
	}

	e.Name = req.Name
	e.DNI = req.DNI
	e.Type = employee.Type(req.Type)
	e.MonthlySalary = req.MonthlySalary

	if req.RemovePhoto && e.PhotoPath != nil {
		if err := s.storage.Delete(ctx, *e.PhotoPath); err != nil {
			slog.Warn("failed to delete employee photo", "employee_id", e.ID, "error", err)
		}
		e.PhotoPath = nil
	}
	if req.Photo != nil {
		if photoPath := s.uploadPhoto(ctx, e.ID, req.Photo, req.PhotoFilename); photoPath != nil {
			e.PhotoPath = photoPath
		}
	}

	if err := s.EmployeeRepository.Update(ctx, e); err != nil {
		if isUniqueViolation(err) {
			return employee.EmployeeResponse{}, employee.ErrDNIExists
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return s.toResponse(e), nil
}

// DeleteEmployee implements employee.EmployeeService. Attendance history
// stays untouched so past payroll periods remain reproducible.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	if _, err := s.EmployeeRepository.GetActiveByID(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to get employee: %w", err)
	}

	if err := s.EmployeeRepository.Deactivate(ctx, id); err != nil {
		return fmt.Errorf("failed to deactivate employee: %w", err)
	}
	return nil
}

// GetEmployeeQR implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployeeQR(ctx context.Context, id string) (string, error) {
	e, err := s.EmployeeRepository.GetActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", employee.ErrQRNotFound
		}
		return "", fmt.Errorf("failed to get employee: %w", err)
	}
	if e.QRCode == "" {
		return "", employee.ErrQRNotFound
	}
	return e.QRCode, nil
}

// uploadPhoto stores the photo and returns its path, or nil on failure.
// A broken photo never fails the employee operation itself.
func (s *EmployeeServiceImpl) uploadPhoto(ctx context.Context, employeeID string, file io.Reader, filename string) *string {
	storagePath := fmt.Sprintf("photos/%s%s", employeeID, path.Ext(filename))

	stored, err := s.storage.Upload(ctx, file, storagePath)
	if err != nil {
		slog.Warn("failed to upload employee photo", "employee_id", employeeID, "error", err)
		return nil
	}
	return &stored
}

func (s *EmployeeServiceImpl) toResponse(e employee.Employee) employee.EmployeeResponse {
	var photoURL *string
	if e.PhotoPath != nil {
		u := s.storage.URL(*e.PhotoPath)
		photoURL = &u
	}

	return employee.EmployeeResponse{
		ID:            e.ID,
		Name:          e.Name,
		DNI:           e.DNI,
		Type:          string(e.Type),
		MonthlySalary: e.MonthlySalary,
		PhotoURL:      photoURL,
		QRCode:        e.QRCode,
		IsActive:      e.IsActive,
		CreatedAt:     e.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
