package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tabacalera-hn/asistencia-backend-go/internal/domain/employee"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCalculator_ProductionDay(t *testing.T) {
	calc := NewCalculator()

	tests := []struct {
		name           string
		input          DayInput
		wantDespalillo string
		wantEscogida   string
		wantMonado     string
		wantSaturday   string
		wantSeventh    string
	}{
		{
			name: "standard quantities",
			input: DayInput{
				DespalilloQty: d("2"),
				EscogidaQty:   d("3"),
				MonadoQty:     d("10"),
			},
			wantDespalillo: "160",
			wantEscogida:   "210",
			wantMonado:     "10",
			wantSaturday:   "34.55",
			wantSeventh:    "69.09",
		},
		{
			name: "despalillo only",
			input: DayInput{
				DespalilloQty: d("5"),
			},
			wantDespalillo: "400",
			wantEscogida:   "0",
			wantMonado:     "0",
			wantSaturday:   "36.36",
			wantSeventh:    "72.73",
		},
		{
			name:           "all zero quantities",
			input:          DayInput{},
			wantDespalillo: "0",
			wantEscogida:   "0",
			wantMonado:     "0",
			wantSaturday:   "0",
			wantSeventh:    "0",
		},
		{
			name: "negative quantities coerced to zero",
			input: DayInput{
				DespalilloQty: d("-3"),
				EscogidaQty:   d("2"),
			},
			wantDespalillo: "0",
			wantEscogida:   "140",
			wantMonado:     "0",
			wantSaturday:   "12.73",
			wantSeventh:    "25.45",
		},
		{
			name: "fractional quantities",
			input: DayInput{
				DespalilloQty: d("1.5"),
			},
			wantDespalillo: "120",
			wantEscogida:   "0",
			wantMonado:     "0",
			wantSaturday:   "10.91",
			wantSeventh:    "21.82",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := calc.CalculateDay(employee.TypeProduction, decimal.Zero, tt.input)
			require.NoError(t, err)

			assert.True(t, got.TaskDespalillo.Equal(d(tt.wantDespalillo)), "t_despalillo = %s", got.TaskDespalillo)
			assert.True(t, got.TaskEscogida.Equal(d(tt.wantEscogida)), "t_escogida = %s", got.TaskEscogida)
			assert.True(t, got.TaskMonado.Equal(d(tt.wantMonado)), "t_monado = %s", got.TaskMonado)
			assert.True(t, got.Saturday.Equal(d(tt.wantSaturday)), "prop_sabado = %s", got.Saturday)
			assert.True(t, got.SeventhDay.Equal(d(tt.wantSeventh)), "septimo_dia = %s", got.SeventhDay)
			assert.True(t, got.OvertimePay.IsZero(), "production day never pays overtime")
		})
	}
}

func TestCalculator_AlDiaDay(t *testing.T) {
	calc := NewCalculator()

	tests := []struct {
		name         string
		salary       string
		hours        string
		wantOvertime string
	}{
		{name: "four extra hours at 9000", salary: "9000", hours: "4", wantOvertime: "187.5"},
		{name: "no extra hours", salary: "9000", hours: "0", wantOvertime: "0"},
		{name: "negative hours coerced", salary: "9000", hours: "-2", wantOvertime: "0"},
		{name: "fractional hours", salary: "12000", hours: "1.5", wantOvertime: "93.75"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := calc.CalculateDay(employee.TypeAlDia, d(tt.salary), DayInput{OvertimeHours: d(tt.hours)})
			require.NoError(t, err)

			assert.True(t, got.OvertimePay.Equal(d(tt.wantOvertime)), "he_dinero = %s", got.OvertimePay)
			assert.True(t, got.TaskDespalillo.IsZero())
			assert.True(t, got.Saturday.IsZero(), "saturday pay is a period derivation, not per record")
			assert.True(t, got.SeventhDay.IsZero(), "seventh day pay is a period derivation, not per record")
		})
	}
}

func TestCalculator_UnknownType(t *testing.T) {
	calc := NewCalculator()

	_, err := calc.CalculateDay(employee.Type("Temporal"), decimal.Zero, DayInput{})
	assert.ErrorIs(t, err, employee.ErrUnknownType)
}

func TestRates(t *testing.T) {
	salary := d("9000")

	assert.True(t, DailyRate(salary).Equal(d("300")))
	assert.True(t, HourlyRate(salary).Equal(d("37.5")))
	assert.True(t, OvertimePay(salary, d("4")).Equal(d("187.5")))
	assert.True(t, DailyRate(d("-500")).IsZero(), "negative salary treated as zero")
}

// A single completed production day with despalillo=5 contributes
// exactly 509.09 to a one day period: 400 + 36.36 + 72.73.
func TestCalculator_ProductionDayNetContribution(t *testing.T) {
	calc := NewCalculator()

	got, err := calc.CalculateDay(employee.TypeProduction, decimal.Zero, DayInput{DespalilloQty: d("5")})
	require.NoError(t, err)

	net := got.TaskDespalillo.Add(got.TaskEscogida).Add(got.TaskMonado).
		Add(got.Saturday).Add(got.SeventhDay)
	assert.True(t, net.Equal(d("509.09")), "net contribution = %s", net)
}
