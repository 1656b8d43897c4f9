package domain

import (
	"time"

	"github.com/m04kA/PGS-BookingService/pkg/types"
)

// AvailableSlot дискретный слот (дата, время), доступный для бронирования
// Создается лениво при первом запросе на дату/время либо заранее администратором
// На пару (date, time) существует не более одной записи (уникальный индекс в БД)
type AvailableSlot struct {
	ID       int64
	Date     time.Time        // дата без времени
	Time     types.TimeString // время начала слота
	IsBooked bool
	UserID   *int64 // пользователь, занявший слот (nil, пока слот свободен)

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsFree возвращает true, если слот не занят
func (s *AvailableSlot) IsFree() bool {
	return !s.IsBooked
}

// Claim помечает слот занятым указанным пользователем
func (s *AvailableSlot) Claim(userID int64) {
	s.IsBooked = true
	s.UserID = &userID
}

// SlotsFilter фильтр для выборки слотов
type SlotsFilter struct {
	Date       *time.Time // конкретная дата (nil - все даты)
	BookedOnly bool       // только занятые слоты
}
