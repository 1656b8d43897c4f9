package slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/PGS-BookingService/internal/domain"
	slotRepo "github.com/m04kA/PGS-BookingService/internal/infra/storage/slot"
	"github.com/m04kA/PGS-BookingService/internal/service/slots/models"
	"github.com/m04kA/PGS-BookingService/pkg/types"
)

// Service сервис управления слотами расписания
type Service struct {
	slotRepo SlotRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса слотов
func NewService(slotRepo SlotRepository, logger Logger) *Service {
	return &Service{
		slotRepo: slotRepo,
		logger:   logger,
	}
}

// Create публикует новый свободный слот расписания
// Пара (дата, время) уникальна: повторная публикация возвращает ErrSlotExists
func (s *Service) Create(ctx context.Context, req *models.CreateSlotRequest) (*models.SlotResponse, error) {
	date, slotTime, err := parseDateTime(req.Date, req.Time)
	if err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.slotRepo.Create(ctx, &domain.AvailableSlot{
		Date: date,
		Time: slotTime,
	})
	if err != nil {
		if errors.Is(err, slotRepo.ErrDuplicateSlot) {
			s.logger.Warn("Create: slot %s %s already exists", req.Date, req.Time)
			return nil, ErrSlotExists
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: published slot id=%d date=%s time=%s", created.ID, req.Date, created.Time)
	return models.FromDomainSlot(created), nil
}

// List получает слоты расписания с фильтрацией по дате и занятости
func (s *Service) List(ctx context.Context, req *models.ListSlotsRequest) (*models.SlotListResponse, error) {
	filter := domain.SlotsFilter{BookedOnly: req.BookedOnly}
	if req.Date != nil {
		date, err := time.Parse(domain.DateFormat, *req.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: date must be in format %s", ErrInvalidInput, domain.DateFormat)
		}
		filter.Date = &date
	}

	slots, err := s.slotRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSlotList(slots), nil
}

// parseDateTime валидирует и разбирает дату и время слота
func parseDateTime(rawDate, rawTime string) (time.Time, types.TimeString, error) {
	if rawDate == "" {
		return time.Time{}, "", fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if rawTime == "" {
		return time.Time{}, "", fmt.Errorf("%w: time is required", ErrInvalidInput)
	}

	date, err := time.Parse(domain.DateFormat, rawDate)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("%w: date must be in format %s", ErrInvalidInput, domain.DateFormat)
	}

	slotTime, err := types.NewTimeStringFromString(rawTime)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("%w: time must be in format %s", ErrInvalidInput, domain.TimeFormat)
	}

	return date, slotTime, nil
}
