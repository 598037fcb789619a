package types

import (
	"errors"
	"fmt"
	"time"
)

const (
	// TimeLayout формат времени внутри дня, используемый Data Layer ("HH:MM:SS")
	TimeLayout = "15:04:05"

	// TimeLayoutShort сокращённый формат без секунд ("HH:MM")
	TimeLayoutShort = "15:04"
)

// ErrInvalidTimeString возвращается при некорректном формате строки времени
var ErrInvalidTimeString = errors.New("types: invalid time string format")

// TimeString время внутри дня в формате "HH:MM:SS"
// Используется для рабочих часов полей, слотов доступности и смен менеджеров
type TimeString string

// NewTimeString создает TimeString из time.Time (берёт только часы/минуты/секунды)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(TimeLayout))
}

// NewTimeStringFromString парсит строку "HH:MM:SS" или "HH:MM" в TimeString
func NewTimeStringFromString(s string) (TimeString, error) {
	if t, err := time.Parse(TimeLayout, s); err == nil {
		return NewTimeString(t), nil
	}
	if t, err := time.Parse(TimeLayoutShort, s); err == nil {
		return NewTimeString(t), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
}

// Validate проверяет корректность формата
func (ts TimeString) Validate() error {
	if _, err := time.Parse(TimeLayout, string(ts)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(ts))
	}
	return nil
}

// IsZero проверяет, что значение не задано
func (ts TimeString) IsZero() bool {
	return ts == ""
}

// String возвращает строковое представление "HH:MM:SS"
func (ts TimeString) String() string {
	return string(ts)
}

// AddMinutes возвращает новое TimeString со смещением на minutes минут вперёд
// Смещение за полночь не поддерживается - возвращается ошибка
func (ts TimeString) AddMinutes(minutes int) (TimeString, error) {
	t, err := time.Parse(TimeLayout, string(ts))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, string(ts))
	}

	shifted := t.Add(time.Duration(minutes) * time.Minute)
	if shifted.Day() != t.Day() {
		return "", fmt.Errorf("%w: %q + %d minutes crosses midnight", ErrInvalidTimeString, string(ts), minutes)
	}

	return NewTimeString(shifted), nil
}

// IsBefore проверяет, что ts строго раньше other
// Лексикографическое сравнение корректно для формата с ведущими нулями
func (ts TimeString) IsBefore(other TimeString) bool {
	return string(ts) < string(other)
}

// IsAfter проверяет, что ts строго позже other
func (ts TimeString) IsAfter(other TimeString) bool {
	return string(ts) > string(other)
}

// At привязывает время внутри дня к конкретной дате
func (ts TimeString) At(date time.Time) (time.Time, error) {
	t, err := time.Parse(TimeLayout, string(ts))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(ts))
	}
	return time.Date(date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), t.Second(), 0, date.Location()), nil
}
