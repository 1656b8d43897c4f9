package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/PGS-BookingService/internal/domain"
	employeeRepo "github.com/m04kA/PGS-BookingService/internal/infra/storage/employee"
	serviceRepo "github.com/m04kA/PGS-BookingService/internal/infra/storage/service"
	slotRepo "github.com/m04kA/PGS-BookingService/internal/infra/storage/slot"
)

// UseCase use case создания бронирования
//
// Разрешение конфликтов выполняется в одной сериализуемой транзакции:
// проверка пересечений, проверка минимального интервала, материализация
// слота и вставка бронирования коммитятся атомарно. Уникальный индекс
// (date, time) на слотах страхует от гонки на вставке
type UseCase struct {
	slotRepo     SlotRepository
	bookingRepo  BookingRepository
	serviceRepo  ServiceRepository
	employeeRepo EmployeeRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo SlotRepository,
	bookingRepo BookingRepository,
	serviceRepo ServiceRepository,
	employeeRepo EmployeeRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:     slotRepo,
		bookingRepo:  bookingRepo,
		serviceRepo:  serviceRepo,
		employeeRepo: employeeRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, date=%s, time=%s, service=%d, employee=%d",
		req.UserID, req.Date.Format(domain.DateFormat), req.StartTime, req.ServiceID, req.EmployeeID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Валидация даты
	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateBooking: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, err
	}

	// 3. Получаем услугу; длительность услуги определяет окно конфликта
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	duration := service.DurationMinutes
	if duration <= 0 {
		duration = domain.DefaultServiceDurationMinutes
	}

	// 4. Проверяем существование сотрудника
	if _, err := uc.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, employeeRepo.ErrEmployeeNotFound) {
			uc.logger.Warn("CreateBooking: employee id=%d not found", req.EmployeeID)
			return nil, ErrEmployeeNotFound
		}
		uc.logger.Error("CreateBooking: failed to get employee id=%d: %v", req.EmployeeID, err)
		return nil, fmt.Errorf("%w: failed to get employee: %v", ErrInternal, err)
	}

	// 5. Окно услуги не должно пересекать границу суток
	endTime, err := req.StartTime.AddMinutes(duration)
	if err != nil {
		uc.logger.Warn("CreateBooking: time window %s + %dm crosses midnight", req.StartTime, duration)
		return nil, ErrInvalidTimeSlot
	}

	var result *domain.Booking

	// 6. Проверки конфликтов и записи выполняются в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Занятые слоты на дату (с блокировкой строк)
		bookedSlots, err := uc.slotRepo.FindByDate(txCtx, req.Date, true)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get booked slots: %v", err)
			return fmt.Errorf("%w: failed to get booked slots: %v", ErrInternal, err)
		}

		// 6.2. Проверка пересечения: запрошенное время внутри чужого окна
		if conflict := findOccupied(req.StartTime, duration, bookedSlots); conflict != nil {
			uc.logger.Warn("CreateBooking: time %s falls into booked slot id=%d (%s)",
				req.StartTime, conflict.ID, conflict.Time)
			return ErrSlotOccupied
		}

		// 6.3. Проверка минимального интервала; выполняется строго после 6.2
		if conflict := findInsufficientGap(req.StartTime, duration, bookedSlots); conflict != nil {
			uc.logger.Warn("CreateBooking: insufficient gap between %s and booked slot id=%d (%s)",
				req.StartTime, conflict.ID, conflict.Time)
			return ErrInsufficientGap
		}

		// 6.4. Материализация слота: переиспользуем существующую запись
		// либо создаем новую сразу занятой
		slotID, err := uc.materializeSlot(txCtx, req)
		if err != nil {
			return err
		}

		// 6.5. Создаем бронирование, ссылающееся на занятый слот
		booking := &domain.Booking{
			UserID:     req.UserID,
			SlotID:     slotID,
			ServiceID:  req.ServiceID,
			EmployeeID: req.EmployeeID,
			DogBreed:   req.DogBreed,
			DogWeight:  req.DogWeight,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d (slot id=%d)", result.ID, result.SlotID)

	return &Response{
		ID:              result.ID,
		UserID:          result.UserID,
		SlotID:          result.SlotID,
		ServiceID:       result.ServiceID,
		EmployeeID:      result.EmployeeID,
		Date:            req.Date,
		StartTime:       req.StartTime,
		EndTime:         endTime,
		ServiceType:     service.ServiceType,
		ServicePrice:    service.Price,
		DurationMinutes: duration,
		DogBreed:        result.DogBreed,
		DogWeight:       result.DogWeight,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}

// materializeSlot находит слот (date, time) и помечает его занятым,
// либо создает новый занятый слот, если записи ещё нет
func (uc *UseCase) materializeSlot(ctx context.Context, req *Request) (int64, error) {
	existing, err := uc.slotRepo.FindByDateTime(ctx, req.Date, req.StartTime)
	if err != nil && !errors.Is(err, slotRepo.ErrSlotNotFound) {
		uc.logger.Error("CreateBooking: failed to find slot: %v", err)
		return 0, fmt.Errorf("%w: failed to find slot: %v", ErrInternal, err)
	}

	if existing != nil {
		// Слот существует и свободен (занятый отсеяла бы проверка пересечения)
		if err := uc.slotRepo.MarkBooked(ctx, existing.ID, req.UserID); err != nil {
			uc.logger.Error("CreateBooking: failed to mark slot id=%d booked: %v", existing.ID, err)
			return 0, fmt.Errorf("%w: failed to mark slot booked: %v", ErrInternal, err)
		}
		uc.logger.Info("CreateBooking: reused existing slot id=%d", existing.ID)
		return existing.ID, nil
	}

	newSlot := &domain.AvailableSlot{
		Date:     req.Date,
		Time:     req.StartTime,
		IsBooked: true,
		UserID:   &req.UserID,
	}

	created, err := uc.slotRepo.Create(ctx, newSlot)
	if err != nil {
		// Конкурентный запрос успел создать слот первым
		if errors.Is(err, slotRepo.ErrDuplicateSlot) {
			uc.logger.Warn("CreateBooking: concurrent request claimed slot %s %s",
				req.Date.Format(domain.DateFormat), req.StartTime)
			return 0, ErrSlotOccupied
		}
		uc.logger.Error("CreateBooking: failed to create slot: %v", err)
		return 0, fmt.Errorf("%w: failed to create slot: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: created new slot id=%d", created.ID)
	return created.ID, nil
}
