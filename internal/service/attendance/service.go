package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/tabacalera-hn/asistencia-backend-go/internal/domain/attendance"
	"github.com/tabacalera-hn/asistencia-backend-go/internal/domain/employee"
	"github.com/tabacalera-hn/asistencia-backend-go/internal/pkg/clock"
	"github.com/tabacalera-hn/asistencia-backend-go/internal/pkg/qr"
	"github.com/tabacalera-hn/asistencia-backend-go/internal/pkg/scancache"
	"github.com/tabacalera-hn/asistencia-backend-go/internal/service/payroll"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
	calculator *payroll.Calculator
	clock      clock.Clock
	scans      *scancache.Cache
}

func NewAttendanceService(
	attendanceRepository attendance.AttendanceRepository,
	employeeRepository employee.EmployeeRepository,
	calculator *payroll.Calculator,
	businessClock clock.Clock,
	scans *scancache.Cache,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepository,
		EmployeeRepository:   employeeRepository,
		calculator:           calculator,
		clock:                businessClock,
		scans:                scans,
	}
}

// RecordEntry implements attendance.AttendanceService. The happy path is
// a plain insert; a concurrent duplicate hits the (employee_id, date)
// unique constraint and gets re-read into the right conflict error.
func (s *AttendanceServiceImpl) RecordEntry(ctx context.Context, req attendance.EntryRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	emp, err := s.activeEmployee(ctx, req.EmployeeID)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	// One reading of the business clock for the whole request, so the
	// date and the entry timestamp can never straddle midnight.
	now := s.clock.Now()
	date := clock.CivilDate(now)

	existing, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, emp.ID, date)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to get attendance record: %w", err)
	}
	if existing != nil {
		return attendance.RecordResponse{}, stateConflict(existing.State())
	}

	created, err := s.AttendanceRepository.Create(ctx, attendance.Record{
		EmployeeID: emp.ID,
		Date:       date,
		EntryTime:  &now,
	})
	if err != nil {
		if isUniqueViolation(err) {
			// Lost the race. Re-read and report the actual state.
			current, readErr := s.AttendanceRepository.GetByEmployeeAndDate(ctx, emp.ID, date)
			if readErr == nil && current != nil {
				return attendance.RecordResponse{}, stateConflict(current.State())
			}
			return attendance.RecordResponse{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.RecordResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return s.toResponse(created, &emp), nil
}

// RecordExit implements attendance.AttendanceService. Pay fields are
// computed here, once, and written together with the exit time under
// the exit_time IS NULL guard.
func (s *AttendanceServiceImpl) RecordExit(ctx context.Context, req attendance.ExitRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	emp, err := s.activeEmployee(ctx, req.EmployeeID)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	now := s.clock.Now()
	date := clock.CivilDate(now)

	result, err := s.calculator.CalculateDay(emp.Type, emp.MonthlySalary, payroll.DayInput{
		DespalilloQty: req.Despalillo.Decimal,
		EscogidaQty:   req.Escogida.Decimal,
		MonadoQty:     req.Monado.Decimal,
		OvertimeHours: req.HoursExtra.Decimal,
	})
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	closed, err := s.AttendanceRepository.CloseEntry(ctx, attendance.Record{
		EmployeeID:     emp.ID,
		Date:           date,
		ExitTime:       &now,
		HoursExtra:     req.HoursExtra.Decimal,
		Despalillo:     req.Despalillo.Decimal,
		Escogida:       req.Escogida.Decimal,
		Monado:         req.Monado.Decimal,
		TaskDespalillo: result.TaskDespalillo,
		TaskEscogida:   result.TaskEscogida,
		TaskMonado:     result.TaskMonado,
		PropSabado:     result.Saturday,
		SeptimoDia:     result.SeventhDay,
		HoursExtraPay:  result.OvertimePay,
	})
	if err != nil {
		if errors.Is(err, attendance.ErrRecordNotFound) {
			// No open row matched. Distinguish "never clocked in" from
			// "someone closed it first".
			current, readErr := s.AttendanceRepository.GetByEmployeeAndDate(ctx, emp.ID, date)
			if readErr == nil && current != nil && current.State() == attendance.StateCompleted {
				return attendance.RecordResponse{}, attendance.ErrAlreadyCompletedToday
			}
			return attendance.RecordResponse{}, attendance.ErrNoOpenEntry
		}
		return attendance.RecordResponse{}, fmt.Errorf("failed to close attendance record: %w", err)
	}

	return s.toResponse(closed, &emp), nil
}

// RecordScan implements attendance.AttendanceService. The dedup cache
// only swallows accidental double reads of the same badge; the database
// constraint stays the authority on what a scan may do.
func (s *AttendanceServiceImpl) RecordScan(ctx context.Context, req attendance.ScanRequest) (attendance.ScanResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.ScanResponse{}, err
	}

	employeeID, err := qr.Parse(req.QR)
	if err != nil {
		return attendance.ScanResponse{}, err
	}

	emp, err := s.activeEmployee(ctx, employeeID)
	if err != nil {
		return attendance.ScanResponse{}, err
	}

	now := s.clock.Now()
	date := clock.CivilDate(now)

	scanKey := emp.ID + "|" + clock.DateString(date)
	if s.scans.Seen(scanKey) {
		return attendance.ScanResponse{}, attendance.ErrDuplicateScan
	}

	current, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, emp.ID, date)
	if err != nil {
		s.scans.Forget(scanKey)
		return attendance.ScanResponse{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	var (
		action attendance.ScanAction
		record attendance.RecordResponse
	)

	switch state := recordState(current); state {
	case attendance.StateNone:
		action = attendance.ScanActionEntry
		record, err = s.RecordEntry(ctx, attendance.EntryRequest{EmployeeID: emp.ID})
	case attendance.StateEntryOpen:
		// Scan exits carry no quantities; the office corrects them later
		// through the explicit exit endpoint if needed.
		action = attendance.ScanActionExit
		record, err = s.RecordExit(ctx, attendance.ExitRequest{EmployeeID: emp.ID})
	default:
		err = attendance.ErrAlreadyCompletedToday
	}

	if err != nil {
		// Let an immediate retry through once the underlying problem is
		// resolved.
		s.scans.Forget(scanKey)
		return attendance.ScanResponse{}, err
	}

	return attendance.ScanResponse{Action: action, Record: record}, nil
}

// GetToday implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetToday(ctx context.Context) ([]attendance.RecordResponse, error) {
	date := clock.CivilDate(s.clock.Now())

	records, err := s.AttendanceRepository.ListByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}

	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, s.toResponse(rec, nil))
	}
	return responses, nil
}

func (s *AttendanceServiceImpl) activeEmployee(ctx context.Context, id string) (employee.Employee, error) {
	emp, err := s.EmployeeRepository.GetActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return emp, nil
}

func (s *AttendanceServiceImpl) toResponse(rec attendance.Record, emp *employee.Employee) attendance.RecordResponse {
	resp := attendance.RecordResponse{
		ID:             rec.ID,
		EmployeeID:     rec.EmployeeID,
		Date:           clock.DateString(rec.Date),
		EntryTime:      s.formatTime(rec.EntryTime),
		ExitTime:       s.formatTime(rec.ExitTime),
		Status:         string(rec.State()),
		HoursExtra:     rec.HoursExtra,
		Despalillo:     rec.Despalillo,
		Escogida:       rec.Escogida,
		Monado:         rec.Monado,
		TaskDespalillo: rec.TaskDespalillo,
		TaskEscogida:   rec.TaskEscogida,
		TaskMonado:     rec.TaskMonado,
		PropSabado:     rec.PropSabado,
		SeptimoDia:     rec.SeptimoDia,
		HoursExtraPay:  rec.HoursExtraPay,
		EmployeeName:   rec.EmployeeName,
		EmployeeDNI:    rec.EmployeeDNI,
		EmployeeType:   rec.EmployeeType,
	}

	if emp != nil {
		name, dni, empType := emp.Name, emp.DNI, string(emp.Type)
		resp.EmployeeName = &name
		resp.EmployeeDNI = &dni
		resp.EmployeeType = &empType
	}

	return resp
}

func (s *AttendanceServiceImpl) formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := clock.TimeOfDay(t.In(s.clock.Location()))
	return &formatted
}

func recordState(rec *attendance.Record) attendance.State {
	if rec == nil {
		return attendance.StateNone
	}
	return rec.State()
}

func stateConflict(state attendance.State) error {
	if state == attendance.StateCompleted {
		return attendance.ErrAlreadyCompletedToday
	}
	return attendance.ErrAlreadyCheckedIn
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
