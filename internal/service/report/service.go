package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/tabacalera-hn/asistencia-backend-go/internal/domain/employee"
	"github.com/tabacalera-hn/asistencia-backend-go/internal/domain/report"
	"github.com/tabacalera-hn/asistencia-backend-go/internal/pkg/clock"
	"github.com/tabacalera-hn/asistencia-backend-go/internal/service/payroll"
)

type ReportServiceImpl struct {
	report.ReportRepository
	employee.EmployeeRepository
	clock clock.Clock
}

func NewReportService(
	reportRepository report.ReportRepository,
	employeeRepository employee.EmployeeRepository,
	businessClock clock.Clock,
) report.ReportService {
	return &ReportServiceImpl{
		ReportRepository:   reportRepository,
		EmployeeRepository: employeeRepository,
		clock:              businessClock,
	}
}

// GetDailyReport implements report.ReportService.
func (s *ReportServiceImpl) GetDailyReport(ctx context.Context, date string) (report.DailyReportResponse, error) {
	reportDate := clock.CivilDate(s.clock.Now())
	if date != "" {
		parsed, err := time.ParseInLocation("2006-01-02", date, time.UTC)
		if err != nil {
			return report.DailyReportResponse{}, report.ErrInvalidDateRange
		}
		reportDate = parsed
	}

	records, err := s.ReportRepository.DailyRows(ctx, reportDate)
	if err != nil {
		return report.DailyReportResponse{}, fmt.Errorf("failed to query daily rows: %w", err)
	}

	rows := make([]report.DailyRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, report.DailyRow{
			EmployeeID:    rec.EmployeeID,
			EmployeeName:  rec.EmployeeName,
			DNI:           rec.DNI,
			EmployeeType:  rec.EmployeeType,
			PhotoURL:      rec.PhotoPath,
			EntryTime:     s.formatTime(rec.EntryTime),
			ExitTime:      s.formatTime(rec.ExitTime),
			OvertimeHours: rec.OvertimeHours,
			DespalilloQty: rec.DespalilloQty,
			EscogidaQty:   rec.EscogidaQty,
			MonadoQty:     rec.MonadoQty,
			Status:        dailyStatus(rec),
		})
	}

	return report.DailyReportResponse{
		Date:    clock.DateString(reportDate),
		Count:   len(rows),
		Records: rows,
	}, nil
}

// GetPeriodReport implements report.ReportService.
func (s *ReportServiceImpl) GetPeriodReport(ctx context.Context, req report.PeriodRequest) (report.PeriodReportResponse, error) {
	if err := req.Validate(); err != nil {
		return report.PeriodReportResponse{}, err
	}

	startDate, _ := time.ParseInLocation("2006-01-02", req.StartDate, time.UTC)
	endDate, _ := time.ParseInLocation("2006-01-02", req.EndDate, time.UTC)

	productionAggs, err := s.ReportRepository.ProductionAggregates(ctx, startDate, endDate)
	if err != nil {
		return report.PeriodReportResponse{}, fmt.Errorf("failed to aggregate production payroll: %w", err)
	}
	alDiaAggs, err := s.ReportRepository.AlDiaAggregates(ctx, startDate, endDate)
	if err != nil {
		return report.PeriodReportResponse{}, fmt.Errorf("failed to aggregate al dia payroll: %w", err)
	}

	production := make([]report.ProductionLine, 0, len(productionAggs))
	productionTotal := decimal.Zero
	for _, agg := range productionAggs {
		line := BuildProductionLine(agg)
		productionTotal = productionTotal.Add(line.NetPay)
		production = append(production, line)
	}

	alDia := make([]report.AlDiaLine, 0, len(alDiaAggs))
	alDiaTotal := decimal.Zero
	for _, agg := range alDiaAggs {
		line := BuildAlDiaLine(agg)
		alDiaTotal = alDiaTotal.Add(line.NetPay)
		alDia = append(alDia, line)
	}

	return report.PeriodReportResponse{
		Production: production,
		AlDia:      alDia,
		Summary: report.PeriodSummary{
			TotalEmployees:    len(production) + len(alDia),
			ProductionCount:   len(production),
			AlDiaCount:        len(alDia),
			TotalPayroll:      payroll.Round2(productionTotal.Add(alDiaTotal)),
			ProductionPayroll: payroll.Round2(productionTotal),
			AlDiaPayroll:      payroll.Round2(alDiaTotal),
			PeriodStart:       req.StartDate,
			PeriodEnd:         req.EndDate,
		},
	}, nil
}

// GetEmployeeStats implements report.ReportService.
func (s *ReportServiceImpl) GetEmployeeStats(ctx context.Context, employeeID string, year, month int) (report.EmployeeStatsResponse, error) {
	emp, err := s.EmployeeRepository.GetActiveByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return report.EmployeeStatsResponse{}, employee.ErrEmployeeNotFound
		}
		return report.EmployeeStatsResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	if year == 0 || month == 0 {
		now := s.clock.Now()
		year, month = now.Year(), int(now.Month())
	}

	switch emp.Type {
	case employee.TypeProduction:
		agg, err := s.ReportRepository.ProductionStats(ctx, emp.ID, year, month)
		if err != nil {
			return report.EmployeeStatsResponse{}, fmt.Errorf("failed to aggregate production stats: %w", err)
		}
		return BuildProductionStats(emp, year, month, agg), nil
	case employee.TypeAlDia:
		agg, err := s.ReportRepository.AlDiaStats(ctx, emp.ID, year, month)
		if err != nil {
			return report.EmployeeStatsResponse{}, fmt.Errorf("failed to aggregate al dia stats: %w", err)
		}
		return BuildAlDiaStats(emp, year, month, agg), nil
	default:
		return report.EmployeeStatsResponse{}, employee.ErrUnknownType
	}
}

// BuildProductionLine derives one piece-rate payroll line from its raw
// aggregate. Net pay is the sum of the stored per-day computed fields;
// rounding happens once, here.
func BuildProductionLine(agg report.ProductionAggregate) report.ProductionLine {
	net := agg.TaskDespalillo.Add(agg.TaskEscogida).Add(agg.TaskMonado).
		Add(agg.SaturdayTotal).Add(agg.SeventhDayTotal)

	return report.ProductionLine{
		EmployeeID:      agg.EmployeeID,
		EmployeeName:    agg.EmployeeName,
		DNI:             agg.DNI,
		DaysWorked:      agg.DaysWorked,
		TotalDespalillo: agg.TotalDespalillo,
		TotalEscogida:   agg.TotalEscogida,
		TotalMonado:     agg.TotalMonado,
		TaskDespalillo:  payroll.Round2(agg.TaskDespalillo),
		TaskEscogida:    payroll.Round2(agg.TaskEscogida),
		TaskMonado:      payroll.Round2(agg.TaskMonado),
		Saturday:        payroll.Round2(agg.SaturdayTotal),
		SeventhDay:      payroll.Round2(agg.SeventhDayTotal),
		NetPay:          payroll.Round2(net),
	}
}

// BuildAlDiaLine derives one salaried payroll line. Saturday pay is
// whatever the records carry (normally zero); seventh day pay is one
// daily rate once the period shows five or more worked days.
func BuildAlDiaLine(agg report.AlDiaAggregate) report.AlDiaLine {
	dailyRate := payroll.DailyRate(agg.MonthlySalary)
	overtime := payroll.OvertimePay(agg.MonthlySalary, agg.OvertimeHours)

	seventhDay := decimal.Zero
	if agg.DaysWorked >= 5 {
		seventhDay = dailyRate
	}

	days := decimal.NewFromInt(int64(agg.DaysWorked))
	net := days.Mul(dailyRate).Add(overtime).Add(agg.SaturdayStored).Add(seventhDay)

	return report.AlDiaLine{
		EmployeeID:    agg.EmployeeID,
		EmployeeName:  agg.EmployeeName,
		DNI:           agg.DNI,
		MonthlySalary: agg.MonthlySalary,
		DaysWorked:    agg.DaysWorked,
		DailyRate:     payroll.Round2(dailyRate),
		OvertimeHours: agg.OvertimeHours,
		OvertimePay:   payroll.Round2(overtime),
		Saturday:      payroll.Round2(agg.SaturdayStored),
		SeventhDay:    payroll.Round2(seventhDay),
		NetPay:        payroll.Round2(net),
	}
}

// BuildProductionStats applies the production period rules to a single
// employee's month.
func BuildProductionStats(emp employee.Employee, year, month int, agg report.ProductionStatsAggregate) report.EmployeeStatsResponse {
	subtotal := agg.TaskDespalillo.Add(agg.TaskEscogida).Add(agg.TaskMonado)
	saturday := subtotal.Mul(payroll.SaturdayFactor)
	net := subtotal.Add(saturday).Add(agg.SeventhDayTotal)

	return report.EmployeeStatsResponse{
		EmployeeID:      emp.ID,
		EmployeeName:    emp.Name,
		EmployeeType:    string(emp.Type),
		Year:            year,
		Month:           month,
		DaysWorked:      agg.DaysWorked,
		TotalDespalillo: ptr(agg.TotalDespalillo),
		TotalEscogida:   ptr(agg.TotalEscogida),
		TotalMonado:     ptr(agg.TotalMonado),
		TaskDespalillo:  ptr(payroll.Round2(agg.TaskDespalillo)),
		TaskEscogida:    ptr(payroll.Round2(agg.TaskEscogida)),
		TaskMonado:      ptr(payroll.Round2(agg.TaskMonado)),
		Saturday:        payroll.Round2(saturday),
		SeventhDay:      payroll.Round2(agg.SeventhDayTotal),
		NetPay:          payroll.Round2(net),
	}
}

// BuildAlDiaStats applies the salaried period rules to one month. The
// seventh day eligibility and saturday sourcing follow the same rules
// as the period report, so the two surfaces can never disagree.
func BuildAlDiaStats(emp employee.Employee, year, month int, agg report.AlDiaStatsAggregate) report.EmployeeStatsResponse {
	dailyRate := payroll.DailyRate(emp.MonthlySalary)
	overtime := payroll.OvertimePay(emp.MonthlySalary, agg.OvertimeHours)

	seventhDay := decimal.Zero
	if agg.DaysWorked >= 5 {
		seventhDay = dailyRate
	}

	days := decimal.NewFromInt(int64(agg.DaysWorked))
	net := days.Mul(dailyRate).Add(overtime).Add(agg.SaturdayStored).Add(seventhDay)

	return report.EmployeeStatsResponse{
		EmployeeID:    emp.ID,
		EmployeeName:  emp.Name,
		EmployeeType:  string(emp.Type),
		Year:          year,
		Month:         month,
		DaysWorked:    agg.DaysWorked,
		DailyRate:     ptr(payroll.Round2(dailyRate)),
		OvertimeHours: ptr(agg.OvertimeHours),
		OvertimePay:   ptr(payroll.Round2(overtime)),
		Saturday:      payroll.Round2(agg.SaturdayStored),
		SeventhDay:    payroll.Round2(seventhDay),
		NetPay:        payroll.Round2(net),
	}
}

func dailyStatus(rec report.DailyRecord) string {
	switch {
	case rec.EntryTime != nil && rec.ExitTime == nil:
		return report.StatusWorking
	case rec.EntryTime != nil && rec.ExitTime != nil:
		return report.StatusCompleted
	default:
		return report.StatusAbsent
	}
}

func (s *ReportServiceImpl) formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := clock.TimeOfDay(t.In(s.clock.Location()))
	return &formatted
}

func ptr(d decimal.Decimal) *decimal.Decimal {
	return &d
}
