package domain

import "github.com/m04kA/SFB-ReservationBroker/pkg/types"

// AvailabilitySlot слот доступности поля длительностью 30 минут
// Недоступный слот несёт человекочитаемую причину
type AvailabilitySlot struct {
	Start     types.TimeString
	End       types.TimeString
	Available bool
	Reason    *string
}

// ReservedSlot занятый интервал дня, как его отдаёт Data Layer
type ReservedSlot struct {
	ReservationID int64
	StartTime     types.TimeString
	EndTime       types.TimeString
	Status        ReservationStatus
}

// TimesOverlap проверяет пересечение двух полуоткрытых интервалов времени дня
// Интервалы, соприкасающиеся границами, не пересекаются
func TimesOverlap(start1, end1, start2, end2 types.TimeString) bool {
	return start1.IsBefore(end2) && end1.IsAfter(start2)
}
