package http

import (
	"log/slog"
	"net/http"

	"github.com/tabacalera-hn/asistencia-backend-go/internal/domain/maintenance"
	"github.com/tabacalera-hn/asistencia-backend-go/internal/handler/http/response"
)

type MaintenanceHandler interface {
	Reset(w http.ResponseWriter, r *http.Request)
	Counts(w http.ResponseWriter, r *http.Request)
}

type maintenanceHandlerImpl struct {
	maintenanceService maintenance.MaintenanceService
}

func NewMaintenanceHandler(maintenanceService maintenance.MaintenanceService) MaintenanceHandler {
	return &maintenanceHandlerImpl{maintenanceService: maintenanceService}
}

// Reset implements MaintenanceHandler.
func (h *maintenanceHandlerImpl) Reset(w http.ResponseWriter, r *http.Request) {
	result, err := h.maintenanceService.ResetDatabase(r.Context())
	if err != nil {
		slog.Error("ResetDatabase service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Database reset complete", result)
}

// Counts implements MaintenanceHandler.
func (h *maintenanceHandlerImpl) Counts(w http.ResponseWriter, r *http.Request) {
	counts, err := h.maintenanceService.GetCounts(r.Context())
	if err != nil {
		slog.Error("Counts service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, counts)
}
