package models

import (
	"time"

	"github.com/m04kA/PGS-BookingService/internal/domain"
)

// CreateSlotRequest запрос на публикацию свободного слота расписания
type CreateSlotRequest struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

// ListSlotsRequest фильтры списка слотов
type ListSlotsRequest struct {
	Date       *string
	BookedOnly bool
}

// SlotResponse слот расписания в ответе API
type SlotResponse struct {
	ID        int64     `json:"id"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	IsBooked  bool      `json:"isBooked"`
	UserID    *int64    `json:"userId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SlotListResponse список слотов расписания
type SlotListResponse struct {
	Slots []SlotResponse `json:"availableDates"`
}

// FromDomainSlot конвертирует доменный слот в ответ API
func FromDomainSlot(s *domain.AvailableSlot) *SlotResponse {
	return &SlotResponse{
		ID:        s.ID,
		Date:      s.Date.Format(domain.DateFormat),
		Time:      s.Time.String(),
		IsBooked:  s.IsBooked,
		UserID:    s.UserID,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// FromDomainSlotList конвертирует список доменных слотов
func FromDomainSlotList(slots []*domain.AvailableSlot) *SlotListResponse {
	resp := &SlotListResponse{
		Slots: make([]SlotResponse, 0, len(slots)),
	}
	for _, s := range slots {
		resp.Slots = append(resp.Slots, *FromDomainSlot(s))
	}
	return resp
}
