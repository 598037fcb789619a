package domain

import "time"

// Conflict пересекающаяся резервация, обнаруженная детектором конфликтов
type Conflict struct {
	ID            int64
	FieldID       int64
	StartDatetime time.Time
	EndDatetime   time.Time
	ActivityType  ActivityType
	Priority      int
	Status        ReservationStatus
	Notes         *string
}

// IntervalsOverlap проверяет пересечение двух полуоткрытых интервалов [start, end)
// Соприкасающиеся границами интервалы не конфликтуют
func IntervalsOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}
