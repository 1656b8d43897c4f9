package list_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/PGS-BookingService/internal/api/handlers"
	"github.com/m04kA/PGS-BookingService/internal/service/slots"
	"github.com/m04kA/PGS-BookingService/internal/service/slots/models"
)

const msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"

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

// Handle GET /api/v1/available-dates?date=YYYY-MM-DD&booked=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListSlotsRequest{
		BookedOnly: r.URL.Query().Get("booked") == "true",
	}
	if date := r.URL.Query().Get("date"); date != "" {
		req.Date = &date
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		if errors.Is(err, slots.ErrInvalidInput) {
			h.logger.Warn("GET /available-dates - Invalid date filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		h.logger.Error("GET /available-dates - Failed to list slots: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
