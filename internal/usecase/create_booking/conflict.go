package create_booking

import (
	"github.com/m04kA/PGS-BookingService/internal/domain"
	"github.com/m04kA/PGS-BookingService/pkg/types"
)

// findOccupied ищет занятый слот, в окно которого попадает запрошенное время:
// slot.Time <= startTime < slot.Time + duration
// Проверка детерминирована: на неизменных данных вердикт всегда одинаков
func findOccupied(startTime types.TimeString, durationMinutes int, slots []*domain.AvailableSlot) *domain.AvailableSlot {
	for _, s := range slots {
		if !s.IsBooked {
			continue
		}

		slotEnd, err := s.Time.AddMinutes(durationMinutes)
		if err != nil {
			// Окно слота пересекает границу суток; трактуем конец как конец дня
			slotEnd = types.EndOfDay
		}

		if !startTime.IsBefore(s.Time) && startTime.IsBefore(slotEnd) {
			return s
		}
	}
	return nil
}

// findInsufficientGap ищет занятый слот, окно которого ещё не истекло
// к началу запрошенного: slot.Time + duration > startTime
// Вызывается строго после findOccupied: пересекающиеся слоты уже отсеяны,
// поэтому здесь срабатывают только слоты позже запрошенного времени
func findInsufficientGap(startTime types.TimeString, durationMinutes int, slots []*domain.AvailableSlot) *domain.AvailableSlot {
	for _, s := range slots {
		if !s.IsBooked {
			continue
		}

		slotEnd, err := s.Time.AddMinutes(durationMinutes)
		if err != nil {
			slotEnd = types.EndOfDay
		}

		if slotEnd.IsAfter(startTime) {
			return s
		}
	}
	return nil
}
