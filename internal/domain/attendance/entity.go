package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// State is the per-(employee, date) lifecycle position.
type State string

const (
	// StateNone means no record exists for the day yet.
	StateNone State = "none"
	// StateEntryOpen means the employee clocked in and has not left.
	StateEntryOpen State = "entry_open"
	// StateCompleted means entry and exit are both recorded. Terminal.
	StateCompleted State = "completed"
)

type Record struct {
	ID         string
	EmployeeID string
	Date       time.Time
	EntryTime  *time.Time
	ExitTime   *time.Time

	// Raw inputs captured at exit
	HoursExtra decimal.Decimal
	Despalillo decimal.Decimal
	Escogida   decimal.Decimal
	Monado     decimal.Decimal

	// Computed at exit, never recomputed afterwards
	TaskDespalillo decimal.Decimal
	TaskEscogida   decimal.Decimal
	TaskMonado     decimal.Decimal
	PropSabado     decimal.Decimal
	SeptimoDia     decimal.Decimal
	HoursExtraPay  decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined employee info
	EmployeeName *string
	EmployeeDNI  *string
	EmployeeType *string
}

// State derives the lifecycle position from the record's time fields.
func (r *Record) State() State {
	switch {
	case r.ExitTime != nil:
		return StateCompleted
	case r.EntryTime != nil:
		return StateEntryOpen
	default:
		return StateNone
	}
}
