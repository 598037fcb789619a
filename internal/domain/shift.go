package domain

import (
	"time"

	"github.com/m04kA/SFB-ReservationBroker/pkg/types"
)

// ManagerShift смена менеджера поля
// Определяет окно, в котором field_manager уполномочен управлять резервациями поля
// DayOfWeek: ISO, 1=понедельник .. 7=воскресенье
type ManagerShift struct {
	ID        int64
	ManagerID int64
	FieldID   int64
	DayOfWeek int
	StartTime types.TimeString
	EndTime   types.TimeString
	Active    bool
}

// Covers проверяет, покрывает ли смена момент времени t
// Смена покрывает t, если она активна, день недели совпадает (ISO)
// и время начала резервации попадает в [StartTime, EndTime]
func (s *ManagerShift) Covers(t time.Time) bool {
	if !s.Active {
		return false
	}
	if s.DayOfWeek != ISODayOfWeek(t) {
		return false
	}
	tod := types.NewTimeString(t)
	return !tod.IsBefore(s.StartTime) && !tod.IsAfter(s.EndTime)
}

// ISODayOfWeek возвращает ISO день недели (1=понедельник .. 7=воскресенье)
func ISODayOfWeek(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return ShiftDaySunday
	}
	return wd
}
