package create_booking

import "errors"

var (
	// ErrSlotOccupied возвращается, когда запрошенное время попадает
	// в окно уже занятого слота либо слот на это время уже занят
	ErrSlotOccupied = errors.New("create_booking: slot is already booked")

	// ErrInsufficientGap возвращается, когда с момента начала предыдущего
	// занятого слота ещё не прошла длительность услуги
	ErrInsufficientGap = errors.New("create_booking: insufficient gap before requested time")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrEmployeeNotFound возвращается, когда сотрудник не найден
	ErrEmployeeNotFound = errors.New("create_booking: employee not found")

	// ErrInvalidDate возвращается при некорректной дате бронирования
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrInvalidTimeSlot возвращается, когда окно услуги выходит за пределы суток
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
