package attendance

import (
	"github.com/shopspring/decimal"

	"github.com/tabacalera-hn/asistencia-backend-go/internal/pkg/validator"
)

// Quantity is a decimal that tolerates sloppy kiosk input: numbers, quoted
// numbers, null, or garbage all decode, with anything unusable becoming 0.
// Negative values are clamped later by the payroll calculator.
type Quantity struct {
	decimal.Decimal
}

func (q *Quantity) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		q.Decimal = decimal.Zero
		return nil
	}
	q.Decimal = d
	return nil
}

type EntryRequest struct {
	EmployeeID string `json:"employee_id"`
}

func (r *EntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ExitRequest struct {
	EmployeeID string   `json:"employee_id"`
	HoursExtra Quantity `json:"hours_extra"`
	Despalillo Quantity `json:"despalillo"`
	Escogida   Quantity `json:"escogida"`
	Monado     Quantity `json:"monado"`
}

func (r *ExitRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ScanRequest struct {
	QR string `json:"qr"`
}

func (r *ScanRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.QR) {
		errs = append(errs, validator.ValidationError{
			Field:   "qr",
			Message: "qr payload is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RecordResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	EntryTime  *string `json:"entry_time"`
	ExitTime   *string `json:"exit_time"`
	Status     string  `json:"status"`

	HoursExtra decimal.Decimal `json:"hours_extra"`
	Despalillo decimal.Decimal `json:"despalillo"`
	Escogida   decimal.Decimal `json:"escogida"`
	Monado     decimal.Decimal `json:"monado"`

	TaskDespalillo decimal.Decimal `json:"t_despalillo"`
	TaskEscogida   decimal.Decimal `json:"t_escogida"`
	TaskMonado     decimal.Decimal `json:"t_monado"`
	PropSabado     decimal.Decimal `json:"prop_sabado"`
	SeptimoDia     decimal.Decimal `json:"septimo_dia"`
	HoursExtraPay  decimal.Decimal `json:"he_dinero"`

	EmployeeName *string `json:"employee_name,omitempty"`
	EmployeeDNI  *string `json:"employee_dni,omitempty"`
	EmployeeType *string `json:"employee_type,omitempty"`
}

// ScanAction tells the kiosk what a scan turned into.
type ScanAction string

const (
	ScanActionEntry ScanAction = "entry"
	ScanActionExit  ScanAction = "exit"
)

type ScanResponse struct {
	Action ScanAction     `json:"action"`
	Record RecordResponse `json:"record"`
}
