package response

import (
	"errors"
	"net/http"

	"github.com/tabacalera-hn/asistencia-backend-go/internal/domain/attendance"
	"github.com/tabacalera-hn/asistencia-backend-go/internal/domain/auth"
	"github.com/tabacalera-hn/asistencia-backend-go/internal/domain/employee"
	"github.com/tabacalera-hn/asistencia-backend-go/internal/domain/report"
	"github.com/tabacalera-hn/asistencia-backend-go/internal/domain/user"
	"github.com/tabacalera-hn/asistencia-backend-go/internal/pkg/qr"
	"github.com/tabacalera-hn/asistencia-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrWrongPassword):
		Unauthorized(w, "Current password is incorrect")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUsernameExists):
		Conflict(w, "Username already exists")
	case errors.Is(err, user.ErrInvalidRole):
		BadRequest(w, "Role must be scanner or viewer", nil)
	case errors.Is(err, user.ErrAdminRequired):
		Forbidden(w, "Admin access required")
	case errors.Is(err, user.ErrScannerRoleRequired):
		Forbidden(w, "Scanner or admin access required")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrDNIExists):
		Conflict(w, "An employee with this DNI already exists")
	case errors.Is(err, employee.ErrQRNotFound):
		NotFound(w, "Employee QR code not found")
	case errors.Is(err, employee.ErrUnknownType):
		BadRequest(w, "Unknown employee type", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Employee already has an open entry for today")
	case errors.Is(err, attendance.ErrAlreadyCompletedToday):
		Conflict(w, "Employee already completed attendance today")
	case errors.Is(err, attendance.ErrNoOpenEntry):
		Conflict(w, "No open entry for today")
	case errors.Is(err, attendance.ErrDuplicateScan):
		Conflict(w, "Badge was scanned moments ago")
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, qr.ErrInvalidPayload):
		BadRequest(w, "Invalid QR payload", nil)

	// Report domain errors
	case errors.Is(err, report.ErrInvalidDateRange):
		BadRequest(w, "Invalid date range", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
