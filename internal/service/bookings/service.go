package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/PGS-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/PGS-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/PGS-BookingService/internal/service/bookings/models"
)

// Service сервис просмотра бронирований
type Service struct {
	bookingRepo BookingRepository
	slotRepo    SlotRepository
	serviceRepo ServiceRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, slotRepo SlotRepository, serviceRepo ServiceRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		slotRepo:    slotRepo,
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по идентификатору
// Доступ разрешен владельцу бронирования и администраторам
func (s *Service) GetByID(ctx context.Context, bookingID, userID int64, isAdmin bool) (*models.BookingResponse, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if booking.UserID != userID && !isAdmin {
		s.logger.Warn("GetByID: user id=%d denied access to booking id=%d", userID, bookingID)
		return nil, ErrAccessDenied
	}

	return s.enrich(ctx, booking)
}

// List получает бронирования пользователя
// Администратор видит бронирования всех пользователей
func (s *Service) List(ctx context.Context, userID int64, isAdmin bool) (*models.BookingListResponse, error) {
	filter := domain.BookingsFilter{}
	if !isAdmin {
		filter.UserID = &userID
	}

	list, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error for user id=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	resp := &models.BookingListResponse{
		Bookings: make([]models.BookingResponse, 0, len(list)),
	}
	for _, b := range list {
		enriched, err := s.enrich(ctx, b)
		if err != nil {
			return nil, err
		}
		resp.Bookings = append(resp.Bookings, *enriched)
	}

	s.logger.Info("List: fetched %d bookings for user id=%d (admin=%t)", len(resp.Bookings), userID, isAdmin)
	return resp, nil
}

// enrich дополняет бронирование данными слота и услуги
// Ссылки защищены внешними ключами, поэтому отсутствие связанной записи - внутренняя ошибка
func (s *Service) enrich(ctx context.Context, b *domain.Booking) (*models.BookingResponse, error) {
	slot, err := s.slotRepo.GetByID(ctx, b.SlotID)
	if err != nil {
		s.logger.Error("enrich: failed to load slot id=%d for booking id=%d: %v", b.SlotID, b.ID, err)
		return nil, fmt.Errorf("%w: enrich - load slot: %v", ErrInternal, err)
	}

	service, err := s.serviceRepo.GetByID(ctx, b.ServiceID)
	if err != nil {
		s.logger.Error("enrich: failed to load service id=%d for booking id=%d: %v", b.ServiceID, b.ID, err)
		return nil, fmt.Errorf("%w: enrich - load service: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(b, slot, service), nil
}
