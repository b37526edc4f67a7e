package report

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/tabacalera-hn/asistencia-backend-go/internal/domain/employee"
	"github.com/tabacalera-hn/asistencia-backend-go/internal/domain/report"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestBuildProductionLine(t *testing.T) {
	agg := report.ProductionAggregate{
		EmployeeID:      "e1",
		EmployeeName:    "Maria Lopez",
		DNI:             "0801199901234",
		DaysWorked:      1,
		TotalDespalillo: d("5"),
		TaskDespalillo:  d("400"),
		SaturdayTotal:   d("36.36"),
		SeventhDayTotal: d("72.73"),
	}

	line := BuildProductionLine(agg)

	assert.Equal(t, 1, line.DaysWorked)
	assert.True(t, line.TaskDespalillo.Equal(d("400")))
	assert.True(t, line.Saturday.Equal(d("36.36")))
	assert.True(t, line.SeventhDay.Equal(d("72.73")))
	assert.True(t, line.NetPay.Equal(d("509.09")), "net = %s", line.NetPay)
}

func TestBuildProductionLine_SumsStoredFields(t *testing.T) {
	// Three days of 380 subtotal each: stored per-day values are summed
	// as-is, never recomputed from quantities.
	agg := report.ProductionAggregate{
		DaysWorked:      3,
		TaskDespalillo:  d("480"),
		TaskEscogida:    d("630"),
		TaskMonado:      d("30"),
		SaturdayTotal:   d("103.65"), // 3 * 34.55
		SeventhDayTotal: d("207.27"), // 3 * 69.09
	}

	line := BuildProductionLine(agg)

	assert.True(t, line.NetPay.Equal(d("1450.92")), "net = %s", line.NetPay)
}

func TestBuildAlDiaLine_SeventhDayThreshold(t *testing.T) {
	tests := []struct {
		name        string
		daysWorked  int
		wantSeventh string
		wantNet     string
	}{
		{name: "four days, no seventh", daysWorked: 4, wantSeventh: "0", wantNet: "1200"},
		{name: "five days earns seventh", daysWorked: 5, wantSeventh: "300", wantNet: "1800"},
		{name: "six days, still one seventh", daysWorked: 6, wantSeventh: "300", wantNet: "2100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := BuildAlDiaLine(report.AlDiaAggregate{
				MonthlySalary: d("9000"),
				DaysWorked:    tt.daysWorked,
			})

			assert.True(t, line.DailyRate.Equal(d("300")))
			assert.True(t, line.SeventhDay.Equal(d(tt.wantSeventh)), "septimo = %s", line.SeventhDay)
			assert.True(t, line.NetPay.Equal(d(tt.wantNet)), "net = %s", line.NetPay)
		})
	}
}

func TestBuildAlDiaLine_Overtime(t *testing.T) {
	line := BuildAlDiaLine(report.AlDiaAggregate{
		MonthlySalary: d("9000"),
		DaysWorked:    5,
		OvertimeHours: d("4"),
	})

	// 5*300 + 187.50 overtime + 300 seventh day
	assert.True(t, line.OvertimePay.Equal(d("187.5")), "he_dinero = %s", line.OvertimePay)
	assert.True(t, line.NetPay.Equal(d("1987.5")), "net = %s", line.NetPay)
}

func TestBuildAlDiaLine_RoundsOnceAtOutput(t *testing.T) {
	// 10000/30 is periodic; the unrounded rate flows through the math
	// and only the final figures get rounded.
	line := BuildAlDiaLine(report.AlDiaAggregate{
		MonthlySalary: d("10000"),
		DaysWorked:    5,
	})

	assert.True(t, line.DailyRate.Equal(d("333.33")))
	assert.True(t, line.NetPay.Equal(d("2000")), "net = %s", line.NetPay)
}

func TestBuildAlDiaStats_MatchesPeriodRules(t *testing.T) {
	emp := employee.Employee{
		ID:            "e2",
		Name:          "Juan Perez",
		Type:          employee.TypeAlDia,
		MonthlySalary: d("9000"),
	}

	stats := BuildAlDiaStats(emp, 2026, 8, report.AlDiaStatsAggregate{
		DaysWorked:    5,
		OvertimeHours: d("4"),
	})

	line := BuildAlDiaLine(report.AlDiaAggregate{
		MonthlySalary: d("9000"),
		DaysWorked:    5,
		OvertimeHours: d("4"),
	})

	assert.True(t, stats.NetPay.Equal(line.NetPay), "stats %s vs report %s", stats.NetPay, line.NetPay)
	assert.True(t, stats.SeventhDay.Equal(line.SeventhDay))
	assert.True(t, stats.Saturday.IsZero(), "no stored saturday allowances means zero")
}

func TestBuildProductionStats(t *testing.T) {
	emp := employee.Employee{
		ID:   "e3",
		Name: "Rosa Diaz",
		Type: employee.TypeProduction,
	}

	stats := BuildProductionStats(emp, 2026, 8, report.ProductionStatsAggregate{
		DaysWorked:      1,
		TaskDespalillo:  d("160"),
		TaskEscogida:    d("210"),
		TaskMonado:      d("10"),
		SeventhDayTotal: d("69.09"),
	})

	// saturday derived from the monthly subtotal: 380 * 0.090909
	assert.True(t, stats.Saturday.Equal(d("34.55")), "sabado = %s", stats.Saturday)
	assert.True(t, stats.NetPay.Equal(d("483.64")), "net = %s", stats.NetPay)
}

func TestDailyStatus(t *testing.T) {
	assert.Equal(t, report.StatusAbsent, dailyStatus(report.DailyRecord{}))
}
