package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/PGS-BookingService/internal/api/handlers"
	"github.com/m04kA/PGS-BookingService/internal/api/middleware"
	createBooking "github.com/m04kA/PGS-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateTime    = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgSlotOccupied       = "выбранное время уже занято"
	msgInsufficientGap    = "выбранное время пересекается с текущей записью, выберите время позже"
	msgServiceNotFound    = "услуга не найдена"
	msgEmployeeNotFound   = "сотрудник не найден"
	msgInvalidDate        = "некорректная дата записи"
	msgInvalidTimeSlot    = "некорректное время записи"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "требуется авторизация")
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotOccupied):
			h.logger.Warn("POST /bookings - Slot occupied: user_id=%d, date=%s, time=%s", userID, req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgSlotOccupied)

		case errors.Is(err, createBooking.ErrInsufficientGap):
			h.logger.Warn("POST /bookings - Insufficient gap: user_id=%d, date=%s, time=%s", userID, req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgInsufficientGap)

		case errors.Is(err, createBooking.ErrServiceNotFound):
			h.logger.Warn("POST /bookings - Service not found: service_id=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createBooking.ErrEmployeeNotFound):
			h.logger.Warn("POST /bookings - Employee not found: employee_id=%d", req.EmployeeID)
			handlers.RespondNotFound(w, msgEmployeeNotFound)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid booking date: user_id=%d, date=%s", userID, req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createBooking.ErrInvalidTimeSlot):
			h.logger.Warn("POST /bookings - Invalid time slot: user_id=%d, time=%s", userID, req.StartTime)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, user_id=%d", result.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
