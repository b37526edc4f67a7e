package maintenance

import "context"

// MaintenanceService exposes admin-only database housekeeping.
type MaintenanceService interface {
	ResetDatabase(ctx context.Context) (ResetResponse, error)
	GetCounts(ctx context.Context) (TableCounts, error)
}
