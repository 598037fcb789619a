package domain

import (
	"time"

	"github.com/m04kA/SFB-ReservationBroker/pkg/types"
)

// Field спортивное поле
type Field struct {
	ID   int64
	Name string
}

// OperatingHours регулярные рабочие часы поля на день недели
// DayOfWeek: 0=воскресенье .. 6=суббота
type OperatingHours struct {
	FieldID   int64
	DayOfWeek int
	StartTime types.TimeString
	EndTime   types.TimeString
}

// DateException исключение рабочих часов на конкретную дату
// Если OverridesRegular=true и OpenTime/CloseTime не заданы - поле закрыто весь день
// Если заданы - на эту дату действует особый график вместо регулярного
type DateException struct {
	FieldID         int64
	Date            time.Time
	OverridesRegular bool
	OpenTime        *types.TimeString
	CloseTime       *types.TimeString
	Reason          *string
}

// IsClosure возвращает true, если исключение полностью закрывает поле на дату
func (e *DateException) IsClosure() bool {
	return e.OverridesRegular && (e.OpenTime == nil || e.CloseTime == nil)
}

// HoursForDay возвращает регулярные рабочие часы для дня недели
// Если расписание на этот день отсутствует, возвращает nil
func HoursForDay(hours []OperatingHours, date time.Time) *OperatingHours {
	dow := int(date.Weekday())
	for i := range hours {
		if hours[i].DayOfWeek == dow {
			return &hours[i]
		}
	}
	return nil
}
