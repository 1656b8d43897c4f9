package list_employees

import (
	"net/http"

	"github.com/m04kA/PGS-BookingService/internal/api/handlers"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/employees
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListEmployees(r.Context())
	if err != nil {
		h.logger.Error("GET /employees - Failed to list employees: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
