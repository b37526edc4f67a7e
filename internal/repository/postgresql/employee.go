package postgresql

import (
	"context"

	"github.com/google/uuid"

	"github.com/tabacalera-hn/asistencia-backend-go/internal/domain/employee"
	"github.com/tabacalera-hn/asistencia-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `id, name, dni, type, monthly_salary, photo_path, qr_code, is_active, created_at, updated_at`

func scanEmployee(row database.Row, e *employee.Employee) error {
	return row.Scan(
		&e.ID,
		&e.Name,
		&e.DNI,
		&e.Type,
		&e.MonthlySalary,
		&e.PhotoPath,
		&e.QRCode,
		&e.IsActive,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (id, name, dni, type, monthly_salary, photo_path, qr_code, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, true, NOW(), NOW())
		RETURNING ` + employeeColumns

	id := e.ID
	if id == "" {
		id = uuid.NewString()
	}

	var created employee.Employee
	err := scanEmployee(q.QueryRow(ctx, query, id, e.Name, e.DNI, e.Type, e.MonthlySalary, e.PhotoPath, e.QRCode), &created)
	if err != nil {
		return employee.Employee{}, err
	}

	return created, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`

	var e employee.Employee
	if err := scanEmployee(q.QueryRow(ctx, query, id), &e); err != nil {
		return employee.Employee{}, err
	}
	return e, nil
}

// GetActiveByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetActiveByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1 AND is_active = true`

	var e employee.Employee
	if err := scanEmployee(q.QueryRow(ctx, query, id), &e); err != nil {
		return employee.Employee{}, err
	}
	return e, nil
}

// DNIExists implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) DNIExists(ctx context.Context, dni string, excludeID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS(
			SELECT 1 FROM employees
			WHERE dni = $1 AND is_active = true AND id <> $2
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, dni, excludeID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// ListActive implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ListActive(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE is_active = true ORDER BY type, name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var e employee.Employee
		if err := scanEmployee(rows, &e); err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, e employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET name = $1, dni = $2, type = $3, monthly_salary = $4, photo_path = $5, updated_at = NOW()
		WHERE id = $6
	`

	_, err := q.Exec(ctx, query, e.Name, e.DNI, e.Type, e.MonthlySalary, e.PhotoPath, e.ID)
	return err
}

// Deactivate implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Deactivate(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET is_active = false, updated_at = NOW()
		WHERE id = $1
	`

	_, err := q.Exec(ctx, query, id)
	return err
}
