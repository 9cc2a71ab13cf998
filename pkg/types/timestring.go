package types

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidTimeString возвращается при некорректном формате времени
var ErrInvalidTimeString = errors.New("types: invalid time string format, expected HH:MM")

// TimeString время в пределах суток в формате "HH:MM".
// Используется для времени слотов вместо time.Time, чтобы не тащить дату и зону.
type TimeString string

// NewTimeString создает TimeString из time.Time (секунды отбрасываются)
func NewTimeString(t time.Time) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute()))
}

// NewTimeStringFromString парсит и валидирует строку "HH:MM"
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	// Нормализуем "7:05" -> "07:05"
	h, m, _ := ts.parts()
	return TimeString(fmt.Sprintf("%02d:%02d", h, m)), nil
}

func (t TimeString) parts() (hour, min int, err error) {
	if _, err := fmt.Sscanf(string(t), "%d:%d", &hour, &min); err != nil {
		return 0, 0, ErrInvalidTimeString
	}
	if hour < 0 || hour > 23 || min < 0 || min > 59 {
		return 0, 0, ErrInvalidTimeString
	}
	return hour, min, nil
}

// Validate проверяет формат и диапазон
func (t TimeString) Validate() error {
	if len(t) < 3 || len(t) > 5 {
		return ErrInvalidTimeString
	}
	_, _, err := t.parts()
	return err
}

// IsZero возвращает true для пустого значения
func (t TimeString) IsZero() bool {
	return t == ""
}

// Minutes возвращает число минут с начала суток
func (t TimeString) Minutes() (int, error) {
	h, m, err := t.parts()
	if err != nil {
		return 0, err
	}
	return h*60 + m, nil
}

// AddMinutes возвращает время через delta минут (в пределах суток, по модулю 24ч)
func (t TimeString) AddMinutes(delta int) (TimeString, error) {
	total, err := t.Minutes()
	if err != nil {
		return "", err
	}
	total = (total + delta) % (24 * 60)
	if total < 0 {
		total += 24 * 60
	}
	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	a, err1 := t.Minutes()
	b, err2 := other.Minutes()
	if err1 != nil || err2 != nil {
		return false
	}
	return a < b
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	a, err1 := t.Minutes()
	b, err2 := other.Minutes()
	if err1 != nil || err2 != nil {
		return false
	}
	return a > b
}

// String возвращает строковое представление "HH:MM"
func (t TimeString) String() string {
	return string(t)
}

// HMS возвращает представление "HH:MM:SS" для SQL Server (cast to time в процедуре)
func (t TimeString) HMS() string {
	return string(t) + ":00"
}
