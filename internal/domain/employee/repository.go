package employee

import (
	"context"
)

// EmployeeRepository defines data access methods for employees.
type EmployeeRepository interface {
	Create(ctx context.Context, e Employee) (Employee, error)

	// GetByID retrieves an employee regardless of active flag.
	GetByID(ctx context.Context, id string) (Employee, error)

	// GetActiveByID retrieves an employee only if still active.
	// Deactivated employees must not appear anywhere in the flow.
	GetActiveByID(ctx context.Context, id string) (Employee, error)

	// DNIExists reports whether an active employee other than excludeID
	// already carries the given DNI.
	DNIExists(ctx context.Context, dni string, excludeID string) (bool, error)

	// ListActive retrieves all active employees ordered by name.
	ListActive(ctx context.Context) ([]Employee, error)

	Update(ctx context.Context, e Employee) error

	// Deactivate soft-deletes an employee.
	Deactivate(ctx context.Context, id string) error
}
