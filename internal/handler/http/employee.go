package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/tabacalera-hn/asistencia-backend-go/internal/domain/employee"
	"github.com/tabacalera-hn/asistencia-backend-go/internal/domain/report"
	"github.com/tabacalera-hn/asistencia-backend-go/internal/handler/http/response"
)

const maxPhotoMemory = 10 << 20 // 10 MiB

type EmployeeHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	GetQR(w http.ResponseWriter, r *http.Request)
	Stats(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.EmployeeService
	reportService   report.ReportService
}

func NewEmployeeHandler(employeeService employee.EmployeeService, reportService report.ReportService) EmployeeHandler {
	return &employeeHandlerImpl{
		employeeService: employeeService,
		reportService:   reportService,
	}
}

// List implements EmployeeHandler.
func (h *employeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	employees, err := h.employeeService.ListEmployees(r.Context())
	if err != nil {
		slog.Error("ListEmployees service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, employees)
}

// Get implements EmployeeHandler.
func (h *employeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	e, err := h.employeeService.GetEmployee(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, e)
}

// Create implements EmployeeHandler. Accepts JSON, or multipart form
// data when the registration carries a photo.
func (h *employeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest

	if isMultipart(r) {
		if err := h.decodeMultipart(r, &req); err != nil {
			response.BadRequest(w, "Invalid form data", nil)
			return
		}
	} else if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateEmployee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.employeeService.CreateEmployee(r.Context(), req)
	if err != nil {
		slog.Error("CreateEmployee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee created", created)
}

// Update implements EmployeeHandler.
func (h *employeeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req employee.UpdateEmployeeRequest

	if isMultipart(r) {
		var create employee.CreateEmployeeRequest
		if err := h.decodeMultipart(r, &create); err != nil {
			response.BadRequest(w, "Invalid form data", nil)
			return
		}
		req = employee.UpdateEmployeeRequest{
			Name:          create.Name,
			DNI:           create.DNI,
			Type:          create.Type,
			MonthlySalary: create.MonthlySalary,
			Photo:         create.Photo,
			PhotoFilename: create.PhotoFilename,
			RemovePhoto:   r.FormValue("remove_photo") == "true",
		}
	} else if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateEmployee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, err := h.employeeService.UpdateEmployee(r.Context(), req)
	if err != nil {
		slog.Error("UpdateEmployee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee updated", updated)
}

// Delete implements EmployeeHandler.
func (h *employeeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.employeeService.DeleteEmployee(r.Context(), id); err != nil {
		slog.Error("DeleteEmployee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee deleted", nil)
}

// GetQR implements EmployeeHandler.
func (h *employeeHandlerImpl) GetQR(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	payload, err := h.employeeService.GetEmployeeQR(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]string{"qr_code": payload})
}

// Stats implements EmployeeHandler. Optional year/month query params
// default to the current month.
func (h *employeeHandlerImpl) Stats(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	year, _ := strconv.Atoi(r.URL.Query().Get("year"))
	month, _ := strconv.Atoi(r.URL.Query().Get("month"))

	stats, err := h.reportService.GetEmployeeStats(r.Context(), id, year, month)
	if err != nil {
		slog.Error("EmployeeStats service error", "employee_id", id, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}

func isMultipart(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data")
}

func (h *employeeHandlerImpl) decodeMultipart(r *http.Request, req *employee.CreateEmployeeRequest) error {
	if err := r.ParseMultipartForm(maxPhotoMemory); err != nil {
		return err
	}

	req.Name = r.FormValue("name")
	req.DNI = r.FormValue("dni")
	req.Type = r.FormValue("type")

	if salary := r.FormValue("monthly_salary"); salary != "" {
		parsed, err := decimal.NewFromString(salary)
		if err == nil {
			req.MonthlySalary = parsed
		}
	}

	if file, header, err := r.FormFile("photo"); err == nil {
		req.Photo = file
		req.PhotoFilename = header.Filename
	}

	return nil
}
