package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SFB-ReservationBroker/pkg/types"
)

func TestIntervalsOverlap(t *testing.T) {
	base := time.Date(2026, 9, 10, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		aStart time.Time
		aEnd   time.Time
		bStart time.Time
		bEnd   time.Time
		want   bool
	}{
		{"full overlap", base, base.Add(2 * time.Hour), base, base.Add(2 * time.Hour), true},
		{"partial overlap", base, base.Add(2 * time.Hour), base.Add(time.Hour), base.Add(3 * time.Hour), true},
		{"contained", base, base.Add(3 * time.Hour), base.Add(time.Hour), base.Add(2 * time.Hour), true},
		// Соприкасающиеся границами интервалы не конфликтуют
		{"touching endpoints", base, base.Add(time.Hour), base.Add(time.Hour), base.Add(2 * time.Hour), false},
		{"disjoint", base, base.Add(time.Hour), base.Add(2 * time.Hour), base.Add(3 * time.Hour), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IntervalsOverlap(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
			// Тест симметричен
			assert.Equal(t, tt.want, IntervalsOverlap(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}

func TestTimesOverlap(t *testing.T) {
	assert.True(t, TimesOverlap("10:00:00", "11:00:00", "10:30:00", "11:30:00"))
	assert.False(t, TimesOverlap("10:00:00", "11:00:00", "11:00:00", "12:00:00"))
	assert.False(t, TimesOverlap("10:00:00", "10:30:00", "11:00:00", "11:30:00"))
}

func TestReservationStatusTransitionsHelpers(t *testing.T) {
	pending := &Reservation{Status: StatusPending}
	approved := &Reservation{Status: StatusApproved}
	rejected := &Reservation{Status: StatusRejected}
	cancelled := &Reservation{Status: StatusCancelled}

	assert.True(t, pending.IsPending())
	assert.True(t, pending.CanBeCancelled())
	assert.True(t, approved.CanBeCancelled())
	assert.False(t, rejected.CanBeCancelled())
	assert.False(t, cancelled.CanBeCancelled())
	assert.True(t, rejected.IsTerminal())
	assert.True(t, cancelled.IsTerminal())
	assert.False(t, approved.IsTerminal())
}

func TestManagerShiftCovers(t *testing.T) {
	// Вторник, 14:30
	at := time.Date(2026, 9, 8, 14, 30, 0, 0, time.UTC)

	shift := ManagerShift{
		DayOfWeek: 2, // ISO вторник
		StartTime: types.TimeString("09:00:00"),
		EndTime:   types.TimeString("18:00:00"),
		Active:    true,
	}
	assert.True(t, shift.Covers(at))

	inactive := shift
	inactive.Active = false
	assert.False(t, inactive.Covers(at))

	wrongDay := shift
	wrongDay.DayOfWeek = 3
	assert.False(t, wrongDay.Covers(at))

	outsideHours := shift
	outsideHours.EndTime = types.TimeString("14:00:00")
	assert.False(t, outsideHours.Covers(at))
}

func TestISODayOfWeek(t *testing.T) {
	// Понедельник = 1 ... воскресенье = 7
	assert.Equal(t, 1, ISODayOfWeek(time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 7, ISODayOfWeek(time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC)))
}

func TestDateExceptionIsClosure(t *testing.T) {
	open := types.TimeString("08:00:00")
	close := types.TimeString("20:00:00")

	closure := DateException{OverridesRegular: true}
	assert.True(t, closure.IsClosure())

	special := DateException{OverridesRegular: true, OpenTime: &open, CloseTime: &close}
	assert.False(t, special.IsClosure())

	regular := DateException{OverridesRegular: false}
	assert.False(t, regular.IsClosure())
}

func TestHoursForDay(t *testing.T) {
	hours := []OperatingHours{
		{DayOfWeek: 0, StartTime: "08:00:00", EndTime: "20:00:00"}, // воскресенье
		{DayOfWeek: 2, StartTime: "09:00:00", EndTime: "21:00:00"}, // вторник
	}

	// Вторник
	got := HoursForDay(hours, time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC))
	assert.NotNil(t, got)
	assert.Equal(t, types.TimeString("09:00:00"), got.StartTime)

	// Среда - расписания нет
	assert.Nil(t, HoursForDay(hours, time.Date(2026, 9, 9, 0, 0, 0, 0, time.UTC)))
}
