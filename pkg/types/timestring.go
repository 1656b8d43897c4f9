package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// Форматы времени, поддерживаемые TimeString
const (
	timeFormatFull  = "15:04:05" // канонический формат хранения
	timeFormatShort = "15:04"
)

var (
	// ErrInvalidTimeFormat возвращается при некорректном формате времени
	ErrInvalidTimeFormat = errors.New("types: invalid time string format")

	// ErrTimeOutOfRange возвращается, когда результат арифметики выходит за пределы суток
	ErrTimeOutOfRange = errors.New("types: time out of range")
)

// TimeString время суток в строковом представлении "HH:MM:SS"
// Используется для хранения времени слотов без привязки к дате и часовому поясу
type TimeString string

// EndOfDay верхняя граница суток; допустима только в сравнениях,
// в базу такое значение не пишется
const EndOfDay TimeString = "24:00:00"

// NewTimeString создает TimeString из time.Time (берёт только время суток)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeFormatFull))
}

// NewTimeStringFromString парсит строку "HH:MM:SS" или "HH:MM" в TimeString
// Результат всегда нормализуется к формату "HH:MM:SS"
func NewTimeStringFromString(s string) (TimeString, error) {
	if t, err := time.Parse(timeFormatFull, s); err == nil {
		return NewTimeString(t), nil
	}
	if t, err := time.Parse(timeFormatShort, s); err == nil {
		return NewTimeString(t), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
}

// String возвращает строковое представление "HH:MM:SS"
func (ts TimeString) String() string {
	return string(ts)
}

// IsZero возвращает true, если время не задано
func (ts TimeString) IsZero() bool {
	return ts == ""
}

// Validate проверяет корректность формата
func (ts TimeString) Validate() error {
	_, err := ts.seconds()
	return err
}

// seconds возвращает количество секунд с начала суток
func (ts TimeString) seconds() (int, error) {
	if ts == EndOfDay {
		return 24 * 3600, nil
	}
	t, err := time.Parse(timeFormatFull, string(ts))
	if err != nil {
		t, err = time.Parse(timeFormatShort, string(ts))
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, string(ts))
		}
	}
	return t.Hour()*3600 + t.Minute()*60 + t.Second(), nil
}

// IsBefore возвращает true, если ts строго раньше other
// Некорректные значения считаются равными нулю секунд
func (ts TimeString) IsBefore(other TimeString) bool {
	a, _ := ts.seconds()
	b, _ := other.seconds()
	return a < b
}

// IsAfter возвращает true, если ts строго позже other
func (ts TimeString) IsAfter(other TimeString) bool {
	a, _ := ts.seconds()
	b, _ := other.seconds()
	return a > b
}

// AddMinutes возвращает время, сдвинутое на minutes минут вперёд
// Возвращает ErrTimeOutOfRange, если результат пересекает границу суток
func (ts TimeString) AddMinutes(minutes int) (TimeString, error) {
	sec, err := ts.seconds()
	if err != nil {
		return "", err
	}

	sec += minutes * 60
	if sec < 0 || sec > 24*3600 {
		return "", fmt.Errorf("%w: %s + %d minutes", ErrTimeOutOfRange, string(ts), minutes)
	}

	// 24:00:00 допустимо только как верхняя граница сравнения
	h := sec / 3600
	m := (sec % 3600) / 60
	s := sec % 60
	return TimeString(fmt.Sprintf("%02d:%02d:%02d", h, m, s)), nil
}

// Value реализует driver.Valuer для записи в колонку TIME
func (ts TimeString) Value() (driver.Value, error) {
	if ts.IsZero() {
		return nil, nil
	}
	if err := ts.Validate(); err != nil {
		return nil, err
	}
	return string(ts), nil
}

// Scan реализует sql.Scanner для чтения из колонки TIME
func (ts *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*ts = ""
		return nil
	case string:
		parsed, err := NewTimeStringFromString(v)
		if err != nil {
			return err
		}
		*ts = parsed
		return nil
	case []byte:
		parsed, err := NewTimeStringFromString(string(v))
		if err != nil {
			return err
		}
		*ts = parsed
		return nil
	case time.Time:
		*ts = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: unsupported source type %T", ErrInvalidTimeFormat, src)
	}
}
