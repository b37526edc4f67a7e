package attendance

import (
	"context"
)

// AttendanceService drives the per-day attendance lifecycle:
// none -> entry_open -> completed, never backwards.
type AttendanceService interface {
	// RecordEntry clocks an active employee in for today.
	RecordEntry(ctx context.Context, req EntryRequest) (RecordResponse, error)

	// RecordExit clocks the employee out and writes the day's computed
	// pay fields. Allowed only while an entry is open.
	RecordExit(ctx context.Context, req ExitRequest) (RecordResponse, error)

	// RecordScan resolves a badge payload and dispatches to entry or
	// exit (with zero quantities) based on today's state.
	RecordScan(ctx context.Context, req ScanRequest) (ScanResponse, error)

	// GetToday lists today's records joined with employee info.
	GetToday(ctx context.Context) ([]RecordResponse, error)
}
