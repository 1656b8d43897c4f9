package create_slot

import (
	"errors"
	"net/http"

	"github.com/m04kA/PGS-BookingService/internal/api/handlers"
	"github.com/m04kA/PGS-BookingService/internal/service/slots"
	"github.com/m04kA/PGS-BookingService/internal/service/slots/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgSlotExists         = "слот на эту дату и время уже опубликован"
)

type Handler struct {
	service SlotsService
	logger  Logger
}

func NewHandler(service SlotsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/available-dates
// Маршрут закрыт middleware.AdminOnly
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /available-dates - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, slots.ErrSlotExists):
			h.logger.Warn("POST /available-dates - Slot exists: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondConflict(w, msgSlotExists)

		case errors.Is(err, slots.ErrInvalidInput):
			h.logger.Warn("POST /available-dates - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /available-dates - Failed to create slot: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /available-dates - Slot published: slot_id=%d, date=%s, time=%s", result.ID, req.Date, result.Time)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
