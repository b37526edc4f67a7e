package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tabacalera-hn/asistencia-backend-go/internal/pkg/validator"
)

// Daily attendance status per employee.
const (
	StatusWorking   = "working"
	StatusCompleted = "completed"
	StatusAbsent    = "absent"
)

// DailyRecord is the raw LEFT JOIN row behind the daily report: every
// active employee, with attendance fields nil/zero when the employee has
// no record for the date.
type DailyRecord struct {
	EmployeeID    string
	EmployeeName  string
	DNI           string
	EmployeeType  string
	PhotoPath     *string
	EntryTime     *time.Time
	ExitTime      *time.Time
	OvertimeHours decimal.Decimal
	DespalilloQty decimal.Decimal
	EscogidaQty   decimal.Decimal
	MonadoQty     decimal.Decimal
}

// DailyRow is one employee's line in the daily report. Employees with no
// record for the date still appear, with nil times and StatusAbsent.
type DailyRow struct {
	EmployeeID    string          `json:"employee_id"`
	EmployeeName  string          `json:"employee_name"`
	DNI           string          `json:"dni"`
	EmployeeType  string          `json:"employee_type"`
	PhotoURL      *string         `json:"photo_url"`
	EntryTime     *string         `json:"entry_time"`
	ExitTime      *string         `json:"exit_time"`
	OvertimeHours decimal.Decimal `json:"hours_extra"`
	DespalilloQty decimal.Decimal `json:"despalillo"`
	EscogidaQty   decimal.Decimal `json:"escogida"`
	MonadoQty     decimal.Decimal `json:"monado"`
	Status        string          `json:"status"`
}

type DailyReportResponse struct {
	Date    string     `json:"date"`
	Count   int        `json:"count"`
	Records []DailyRow `json:"records"`
}

type PeriodRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (r PeriodRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start date is required"})
	} else if !validator.IsValidDate(r.StartDate) {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start date must be in YYYY-MM-DD format"})
	}

	if validator.IsEmpty(r.EndDate) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end date is required"})
	} else if !validator.IsValidDate(r.EndDate) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end date must be in YYYY-MM-DD format"})
	}

	if len(errs) > 0 {
		return errs
	}

	if r.StartDate > r.EndDate {
		return ErrInvalidDateRange
	}
	return nil
}

// ProductionAggregate is the raw SQL GROUP BY row for a piece-rate
// employee: sums of stored quantities and computed fields over the
// period, completed records only.
type ProductionAggregate struct {
	EmployeeID      string
	EmployeeName    string
	DNI             string
	DaysWorked      int
	TotalDespalillo decimal.Decimal
	TotalEscogida   decimal.Decimal
	TotalMonado     decimal.Decimal
	TaskDespalillo  decimal.Decimal
	TaskEscogida    decimal.Decimal
	TaskMonado      decimal.Decimal
	SaturdayTotal   decimal.Decimal
	SeventhDayTotal decimal.Decimal
}

// AlDiaAggregate is the raw GROUP BY row for a salaried employee.
// SaturdayStored sums per-record saturday allowances, which stay zero
// unless populated by hand; the period rules derive the rest.
type AlDiaAggregate struct {
	EmployeeID     string
	EmployeeName   string
	DNI            string
	MonthlySalary  decimal.Decimal
	DaysWorked     int
	OvertimeHours  decimal.Decimal
	SaturdayStored decimal.Decimal
}

// ProductionLine is a fully derived payroll line for one piece-rate
// employee over the requested period.
type ProductionLine struct {
	EmployeeID      string          `json:"employee_id"`
	EmployeeName    string          `json:"employee_name"`
	DNI             string          `json:"dni"`
	DaysWorked      int             `json:"days_worked"`
	TotalDespalillo decimal.Decimal `json:"total_despalillo"`
	TotalEscogida   decimal.Decimal `json:"total_escogida"`
	TotalMonado     decimal.Decimal `json:"total_monado"`
	TaskDespalillo  decimal.Decimal `json:"t_despalillo"`
	TaskEscogida    decimal.Decimal `json:"t_escogida"`
	TaskMonado      decimal.Decimal `json:"t_monado"`
	Saturday        decimal.Decimal `json:"prop_sabado"`
	SeventhDay      decimal.Decimal `json:"septimo_dia"`
	NetPay          decimal.Decimal `json:"neto_pagar"`
}

// AlDiaLine is a fully derived payroll line for one salaried employee.
type AlDiaLine struct {
	EmployeeID    string          `json:"employee_id"`
	EmployeeName  string          `json:"employee_name"`
	DNI           string          `json:"dni"`
	MonthlySalary decimal.Decimal `json:"monthly_salary"`
	DaysWorked    int             `json:"days_worked"`
	DailyRate     decimal.Decimal `json:"salario_diario"`
	OvertimeHours decimal.Decimal `json:"horas_extras"`
	OvertimePay   decimal.Decimal `json:"he_dinero"`
	Saturday      decimal.Decimal `json:"prop_sabado"`
	SeventhDay    decimal.Decimal `json:"septimo_dia"`
	NetPay        decimal.Decimal `json:"neto_pagar"`
}

type PeriodSummary struct {
	TotalEmployees    int             `json:"total_employees"`
	ProductionCount   int             `json:"total_production_employees"`
	AlDiaCount        int             `json:"total_aldia_employees"`
	TotalPayroll      decimal.Decimal `json:"total_payroll"`
	ProductionPayroll decimal.Decimal `json:"total_production_payroll"`
	AlDiaPayroll      decimal.Decimal `json:"total_aldia_payroll"`
	PeriodStart       string          `json:"start_date"`
	PeriodEnd         string          `json:"end_date"`
}

type PeriodReportResponse struct {
	Production []ProductionLine `json:"production"`
	AlDia      []AlDiaLine      `json:"al_dia"`
	Summary    PeriodSummary    `json:"summary"`
}

// ProductionStatsAggregate mirrors ProductionAggregate restricted to one
// employee and one calendar month.
type ProductionStatsAggregate struct {
	DaysWorked      int
	TotalDespalillo decimal.Decimal
	TotalEscogida   decimal.Decimal
	TotalMonado     decimal.Decimal
	TaskDespalillo  decimal.Decimal
	TaskEscogida    decimal.Decimal
	TaskMonado      decimal.Decimal
	SeventhDayTotal decimal.Decimal
}

type AlDiaStatsAggregate struct {
	DaysWorked     int
	OvertimeHours  decimal.Decimal
	SaturdayStored decimal.Decimal
}

// EmployeeStatsResponse is the class-specific monthly summary for a
// single employee. Fields not applicable to the class stay nil.
type EmployeeStatsResponse struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	EmployeeType string `json:"employee_type"`
	Year         int    `json:"year"`
	Month        int    `json:"month"`
	DaysWorked   int    `json:"days_worked"`

	TotalDespalillo *decimal.Decimal `json:"total_despalillo,omitempty"`
	TotalEscogida   *decimal.Decimal `json:"total_escogida,omitempty"`
	TotalMonado     *decimal.Decimal `json:"total_monado,omitempty"`
	TaskDespalillo  *decimal.Decimal `json:"t_despalillo,omitempty"`
	TaskEscogida    *decimal.Decimal `json:"t_escogida,omitempty"`
	TaskMonado      *decimal.Decimal `json:"t_monado,omitempty"`

	DailyRate     *decimal.Decimal `json:"salario_diario,omitempty"`
	OvertimeHours *decimal.Decimal `json:"horas_extras,omitempty"`
	OvertimePay   *decimal.Decimal `json:"he_dinero,omitempty"`

	Saturday   decimal.Decimal `json:"prop_sabado"`
	SeventhDay decimal.Decimal `json:"septimo_dia"`
	NetPay     decimal.Decimal `json:"neto_pagar"`
}
