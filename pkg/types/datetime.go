package types

import (
	"errors"
	"fmt"
	"time"
)

const (
	// DateTimeLayout основной формат временных меток Data Layer ("YYYY-MM-DD HH:MM:SS")
	DateTimeLayout = "2006-01-02 15:04:05"

	// DateLayout формат даты ("YYYY-MM-DD")
	DateLayout = "2006-01-02"
)

// ErrInvalidDateTime возвращается, когда строка не распознана ни одним из форматов
var ErrInvalidDateTime = errors.New("types: invalid datetime format")

// ParseDateTime парсит временную метку в формате "YYYY-MM-DD HH:MM:SS" или ISO-8601
// Все входящие метки нормализуются к единому внутреннему представлению (time.Time)
// до любой арифметики
func ParseDateTime(s string) (time.Time, error) {
	if t, err := time.Parse(DateTimeLayout, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	// ISO-8601 без зоны ("2025-11-20T10:00:00")
	if t, err := time.Parse("2006-01-02T15:04:05", s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateTime, s)
}

// FormatDateTime форматирует метку в "YYYY-MM-DD HH:MM:SS" для Data Layer
func FormatDateTime(t time.Time) string {
	return t.Format(DateTimeLayout)
}

// ParseDate парсит дату "YYYY-MM-DD"
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateTime, s)
	}
	return t, nil
}

// FormatDate форматирует дату в "YYYY-MM-DD"
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
