package get_availability

import (
	"fmt"
	"time"

	"github.com/m04kA/SFB-ReservationBroker/internal/domain"
	"github.com/m04kA/SFB-ReservationBroker/pkg/ptr"
	"github.com/m04kA/SFB-ReservationBroker/pkg/types"
)

// resolveWindow определяет эффективное окно работы поля на дату.
// Исключение с overrides_regular имеет приоритет над регулярным расписанием.
// Возвращает (nil, nil), если поле в этот день закрыто
func resolveWindow(date time.Time, hours []domain.OperatingHours, exception *domain.DateException) (open, close *types.TimeString) {
	if exception != nil && exception.OverridesRegular {
		// Переопределение без особого графика означает полное закрытие
		if exception.IsClosure() {
			return nil, nil
		}
		return exception.OpenTime, exception.CloseTime
	}

	schedule := domain.HoursForDay(hours, date)
	if schedule == nil {
		return nil, nil
	}
	return &schedule.StartTime, &schedule.EndTime
}

// buildSlots генерирует 30-минутные слоты от открытия до закрытия.
// Слот недоступен, если он пересекается с любой существующей резервацией
// (независимо от статуса) или до его начала осталось меньше часа
func buildSlots(date time.Time, open, close types.TimeString, reserved []domain.ReservedSlot, now time.Time) []domain.AvailabilitySlot {
	slots := make([]domain.AvailabilitySlot, 0)

	current := open
	for current.IsBefore(close) {
		slotEnd, err := current.AddMinutes(domain.SlotDurationMinutes)
		if err != nil {
			// Окно упёрлось в полночь
			break
		}

		conflict := findReservedConflict(current, slotEnd, reserved)

		canReserve := false
		if slotStart, err := current.At(date); err == nil {
			canReserve = slotStart.Sub(now) >= time.Duration(domain.MinAdvanceHours)*time.Hour
		}

		slot := domain.AvailabilitySlot{
			Start:     current,
			End:       slotEnd,
			Available: conflict == nil && canReserve,
		}
		if conflict != nil {
			slot.Reason = ptr.Ptr(fmt.Sprintf("Занято резервацией ID %d (статус: %s)", conflict.ReservationID, conflict.Status))
		} else if !canReserve {
			slot.Reason = ptr.Ptr(fmt.Sprintf("Недостаточное время до начала (минимум %d час)", domain.MinAdvanceHours))
		}

		slots = append(slots, slot)
		current = slotEnd
	}

	return slots
}

// findReservedConflict возвращает первую резервацию, пересекающуюся со слотом
func findReservedConflict(start, end types.TimeString, reserved []domain.ReservedSlot) *domain.ReservedSlot {
	for i := range reserved {
		if domain.TimesOverlap(start, end, reserved[i].StartTime, reserved[i].EndTime) {
			return &reserved[i]
		}
	}
	return nil
}
