package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/tabacalera-hn/asistencia-backend-go/internal/domain/employee"
)

// Piece rates and payroll factors in Lempiras. The saturday and seventh
// day factors are the legal 1/11 and 2/11 proportions truncated to six
// places, matching the payroll ledgers this system replaces.
var (
	RateDespalillo = decimal.NewFromInt(80)
	RateEscogida   = decimal.NewFromInt(70)
	RateMonado     = decimal.NewFromInt(1)

	SaturdayFactor   = decimal.RequireFromString("0.090909")
	SeventhDayFactor = decimal.RequireFromString("0.181818")
	OvertimeFactor   = decimal.RequireFromString("1.25")

	daysPerMonth = decimal.NewFromInt(30)
	hoursPerDay  = decimal.NewFromInt(8)
)

// DayInput carries the raw quantities captured at clock-out. Fields that
// do not apply to the employee's class are ignored.
type DayInput struct {
	DespalilloQty decimal.Decimal
	EscogidaQty   decimal.Decimal
	MonadoQty     decimal.Decimal
	OvertimeHours decimal.Decimal
}

// DayResult holds the computed pay fields stored on a completed
// attendance record, already rounded to two decimal places.
type DayResult struct {
	TaskDespalillo decimal.Decimal
	TaskEscogida   decimal.Decimal
	TaskMonado     decimal.Decimal
	Saturday       decimal.Decimal
	SeventhDay     decimal.Decimal
	OvertimePay    decimal.Decimal
}

type Calculator struct {
}

func NewCalculator() *Calculator {
	return &Calculator{}
}

// CalculateDay computes the stored pay fields for one completed day.
// Missing or negative quantities count as zero; an unknown employee
// class is the only error.
func (c *Calculator) CalculateDay(empType employee.Type, monthlySalary decimal.Decimal, in DayInput) (DayResult, error) {
	switch empType {
	case employee.TypeProduction:
		return c.productionDay(in), nil
	case employee.TypeAlDia:
		return c.alDiaDay(monthlySalary, in), nil
	default:
		return DayResult{}, employee.ErrUnknownType
	}
}

func (c *Calculator) productionDay(in DayInput) DayResult {
	tDespalillo := clamp(in.DespalilloQty).Mul(RateDespalillo)
	tEscogida := clamp(in.EscogidaQty).Mul(RateEscogida)
	tMonado := clamp(in.MonadoQty).Mul(RateMonado)

	subtotal := tDespalillo.Add(tEscogida).Add(tMonado)

	return DayResult{
		TaskDespalillo: round2(tDespalillo),
		TaskEscogida:   round2(tEscogida),
		TaskMonado:     round2(tMonado),
		Saturday:       round2(subtotal.Mul(SaturdayFactor)),
		SeventhDay:     round2(subtotal.Mul(SeventhDayFactor)),
		OvertimePay:    decimal.Zero,
	}
}

// alDiaDay computes overtime only. Saturday and seventh day pay for
// salaried employees depend on attendance over the whole period, so
// they stay zero on the record and are derived at report time.
func (c *Calculator) alDiaDay(monthlySalary decimal.Decimal, in DayInput) DayResult {
	overtime := HourlyRate(monthlySalary).Mul(OvertimeFactor).Mul(clamp(in.OvertimeHours))

	return DayResult{
		TaskDespalillo: decimal.Zero,
		TaskEscogida:   decimal.Zero,
		TaskMonado:     decimal.Zero,
		Saturday:       decimal.Zero,
		SeventhDay:     decimal.Zero,
		OvertimePay:    round2(overtime),
	}
}

// DailyRate is the salaried employee's pay for one worked day,
// monthly salary over thirty days.
func DailyRate(monthlySalary decimal.Decimal) decimal.Decimal {
	return clamp(monthlySalary).Div(daysPerMonth)
}

// HourlyRate divides the daily rate over the eight hour workday.
func HourlyRate(monthlySalary decimal.Decimal) decimal.Decimal {
	return DailyRate(monthlySalary).Div(hoursPerDay)
}

// OvertimePay values extra hours at the hourly rate plus a quarter.
func OvertimePay(monthlySalary, hours decimal.Decimal) decimal.Decimal {
	return HourlyRate(monthlySalary).Mul(OvertimeFactor).Mul(clamp(hours))
}

// Round2 rounds a monetary amount to two places, half away from zero.
// Applied once, at the point a value is stored or returned.
func Round2(v decimal.Decimal) decimal.Decimal {
	return v.Round(2)
}

func round2(v decimal.Decimal) decimal.Decimal {
	return v.Round(2)
}

func clamp(v decimal.Decimal) decimal.Decimal {
	if v.IsNegative() {
		return decimal.Zero
	}
	return v
}
