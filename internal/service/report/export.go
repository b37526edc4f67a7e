package report

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/tabacalera-hn/asistencia-backend-go/internal/domain/report"
)

const (
	sheetProduction = "Produccion"
	sheetAlDia      = "Al Dia"
	sheetSummary    = "Resumen"
)

// ExportPeriodReport implements report.ReportService. It renders the
// same derived lines the JSON report returns, one sheet per pay class
// plus a summary sheet.
func (s *ReportServiceImpl) ExportPeriodReport(ctx context.Context, req report.PeriodRequest) ([]byte, string, error) {
	periodReport, err := s.GetPeriodReport(ctx, req)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := writeProductionSheet(f, periodReport.Production); err != nil {
		return nil, "", fmt.Errorf("%w: %v", report.ErrExportFailed, err)
	}
	if err := writeAlDiaSheet(f, periodReport.AlDia); err != nil {
		return nil, "", fmt.Errorf("%w: %v", report.ErrExportFailed, err)
	}
	if err := writeSummarySheet(f, periodReport.Summary); err != nil {
		return nil, "", fmt.Errorf("%w: %v", report.ErrExportFailed, err)
	}

	// Drop the default sheet so the workbook opens on production.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, "", fmt.Errorf("%w: %v", report.ErrExportFailed, err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", report.ErrExportFailed, err)
	}

	filename := fmt.Sprintf("planilla_%s_a_%s.xlsx", req.StartDate, req.EndDate)
	return buf.Bytes(), filename, nil
}

func writeProductionSheet(f *excelize.File, lines []report.ProductionLine) error {
	if _, err := f.NewSheet(sheetProduction); err != nil {
		return err
	}

	headers := []interface{}{
		"Empleado", "DNI", "Dias", "Despalillo", "Escogida", "Monado",
		"L. Despalillo", "L. Escogida", "L. Monado", "Prop. Sabado", "Septimo Dia", "Neto a Pagar",
	}
	if err := f.SetSheetRow(sheetProduction, "A1", &headers); err != nil {
		return err
	}

	for i, line := range lines {
		row := []interface{}{
			line.EmployeeName,
			line.DNI,
			line.DaysWorked,
			line.TotalDespalillo.InexactFloat64(),
			line.TotalEscogida.InexactFloat64(),
			line.TotalMonado.InexactFloat64(),
			line.TaskDespalillo.InexactFloat64(),
			line.TaskEscogida.InexactFloat64(),
			line.TaskMonado.InexactFloat64(),
			line.Saturday.InexactFloat64(),
			line.SeventhDay.InexactFloat64(),
			line.NetPay.InexactFloat64(),
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheetProduction, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func writeAlDiaSheet(f *excelize.File, lines []report.AlDiaLine) error {
	if _, err := f.NewSheet(sheetAlDia); err != nil {
		return err
	}

	headers := []interface{}{
		"Empleado", "DNI", "Salario Mensual", "Dias", "Salario Diario",
		"Horas Extras", "HE Dinero", "Prop. Sabado", "Septimo Dia", "Neto a Pagar",
	}
	if err := f.SetSheetRow(sheetAlDia, "A1", &headers); err != nil {
		return err
	}

	for i, line := range lines {
		row := []interface{}{
			line.EmployeeName,
			line.DNI,
			line.MonthlySalary.InexactFloat64(),
			line.DaysWorked,
			line.DailyRate.InexactFloat64(),
			line.OvertimeHours.InexactFloat64(),
			line.OvertimePay.InexactFloat64(),
			line.Saturday.InexactFloat64(),
			line.SeventhDay.InexactFloat64(),
			line.NetPay.InexactFloat64(),
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheetAlDia, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func writeSummarySheet(f *excelize.File, summary report.PeriodSummary) error {
	if _, err := f.NewSheet(sheetSummary); err != nil {
		return err
	}

	rows := [][]interface{}{
		{"Periodo", fmt.Sprintf("%s a %s", summary.PeriodStart, summary.PeriodEnd)},
		{"Total empleados", summary.TotalEmployees},
		{"Empleados produccion", summary.ProductionCount},
		{"Empleados al dia", summary.AlDiaCount},
		{"Planilla produccion", summary.ProductionPayroll.InexactFloat64()},
		{"Planilla al dia", summary.AlDiaPayroll.InexactFloat64()},
		{"Planilla total", summary.TotalPayroll.InexactFloat64()},
	}

	for i := range rows {
		cell := fmt.Sprintf("A%d", i+1)
		if err := f.SetSheetRow(sheetSummary, cell, &rows[i]); err != nil {
			return err
		}
	}
	return nil
}
