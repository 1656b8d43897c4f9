package create_employee

import (
	"errors"
	"net/http"

	"github.com/m04kA/PGS-BookingService/internal/api/handlers"
	"github.com/m04kA/PGS-BookingService/internal/service/catalog"
	"github.com/m04kA/PGS-BookingService/internal/service/catalog/models"
)

const msgInvalidRequestBody = "некорректное тело запроса"

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

// Handle POST /api/v1/employees
// Маршрут закрыт middleware.AdminOnly
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateEmployeeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /employees - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateEmployee(r.Context(), &req)
	if err != nil {
		if errors.Is(err, catalog.ErrInvalidInput) {
			h.logger.Warn("POST /employees - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())
			return
		}
		h.logger.Error("POST /employees - Failed to create employee: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /employees - Employee created: employee_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
