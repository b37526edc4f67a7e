package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
// The table carries a unique constraint on (employee_id, date); it is the
// correctness mechanism for concurrent entry attempts, and Create surfaces
// its violation so the service can convert it to a domain conflict.
type AttendanceRepository interface {
	// Create inserts a new record for (employee, date).
	Create(ctx context.Context, r Record) (Record, error)

	// GetByEmployeeAndDate retrieves the day's record, or nil if none.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Record, error)

	// CloseEntry writes exit time, raw inputs and computed fields in one
	// statement, guarded by "exit_time IS NULL". Returns ErrRecordNotFound
	// when no open record matched, so the caller can re-read and decide
	// between "no entry" and "already completed".
	CloseEntry(ctx context.Context, r Record) (Record, error)

	// ListByDate retrieves the day's records joined with employee info,
	// newest entry first.
	ListByDate(ctx context.Context, date time.Time) ([]Record, error)
}
