package employee

import (
	"context"
)

// EmployeeService defines business logic for employee management.
type EmployeeService interface {
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)

	ListEmployees(ctx context.Context) ([]EmployeeResponse, error)

	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// DeleteEmployee soft-deletes an employee; attendance history stays.
	DeleteEmployee(ctx context.Context, id string) error

	// GetEmployeeQR returns the badge payload for an active employee.
	GetEmployeeQR(ctx context.Context, id string) (string, error)
}
