package maintenance

import "context"

type MaintenanceRepository interface {
	// WipeOperationalData deletes all attendance records and employees
	// inside one transaction, leaving users untouched. Returns the
	// number of attendance rows and employee rows removed.
	WipeOperationalData(ctx context.Context) (attendance int, employees int, err error)

	Counts(ctx context.Context) (TableCounts, error)
}
