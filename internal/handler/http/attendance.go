package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/tabacalera-hn/asistencia-backend-go/internal/domain/attendance"
	"github.com/tabacalera-hn/asistencia-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	Entry(w http.ResponseWriter, r *http.Request)
	Exit(w http.ResponseWriter, r *http.Request)
	Scan(w http.ResponseWriter, r *http.Request)
	Today(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService}
}

// Entry implements AttendanceHandler.
func (h *attendanceHandlerImpl) Entry(w http.ResponseWriter, r *http.Request) {
	var req attendance.EntryRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Entry decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	record, err := h.attendanceService.RecordEntry(r.Context(), req)
	if err != nil {
		slog.Warn("Entry rejected", "employee_id", req.EmployeeID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Entry recorded", record)
}

// Exit implements AttendanceHandler.
func (h *attendanceHandlerImpl) Exit(w http.ResponseWriter, r *http.Request) {
	var req attendance.ExitRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Exit decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	record, err := h.attendanceService.RecordExit(r.Context(), req)
	if err != nil {
		slog.Warn("Exit rejected", "employee_id", req.EmployeeID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Exit recorded", record)
}

// Scan implements AttendanceHandler.
func (h *attendanceHandlerImpl) Scan(w http.ResponseWriter, r *http.Request) {
	var req attendance.ScanRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Scan decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.RecordScan(r.Context(), req)
	if err != nil {
		slog.Warn("Scan rejected", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Scan processed", result)
}

// Today implements AttendanceHandler.
func (h *attendanceHandlerImpl) Today(w http.ResponseWriter, r *http.Request) {
	records, err := h.attendanceService.GetToday(r.Context())
	if err != nil {
		slog.Error("Today service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}
