package get_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SFB-ReservationBroker/internal/domain"
	"github.com/m04kA/SFB-ReservationBroker/internal/integrations/datalayer"
	"github.com/m04kA/SFB-ReservationBroker/pkg/types"
)

type fakeFieldProvider struct {
	field *domain.Field
	err   error
}

func (f *fakeFieldProvider) GetField(ctx context.Context, id int64) (*domain.Field, error) {
	return f.field, f.err
}

type fakeSchedule struct {
	hours    []domain.OperatingHours
	hoursErr error

	exception    *domain.DateException
	exceptionErr error

	reserved    []domain.ReservedSlot
	reservedErr error
}

func (f *fakeSchedule) ListOperatingHours(ctx context.Context, fieldID int64) ([]domain.OperatingHours, error) {
	return f.hours, f.hoursErr
}

func (f *fakeSchedule) GetExceptionForDate(ctx context.Context, fieldID int64, date time.Time) (*domain.DateException, error) {
	if f.exceptionErr != nil {
		return nil, f.exceptionErr
	}
	if f.exception == nil {
		return nil, datalayer.ErrNotFound
	}
	return f.exception, nil
}

func (f *fakeSchedule) GetReservedSlots(ctx context.Context, fieldID int64, date time.Time) ([]domain.ReservedSlot, error) {
	return f.reserved, f.reservedErr
}

type fixedTime struct{ t time.Time }

func (f *fixedTime) Now() time.Time { return f.t }

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// Четверг
var requestDate = time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

// Расписание четверга: 08:00-20:00
func thursdayHours() []domain.OperatingHours {
	return []domain.OperatingHours{
		{FieldID: 7, DayOfWeek: 4, StartTime: "08:00:00", EndTime: "20:00:00"},
	}
}

func newTestUseCase(fields *fakeFieldProvider, schedule *fakeSchedule, now time.Time) *UseCase {
	uc := NewUseCase(fields, schedule, nopLogger{})
	uc.timeProvider = &fixedTime{t: now}
	return uc
}

func TestExecuteGeneratesSlots(t *testing.T) {
	uc := newTestUseCase(
		&fakeFieldProvider{field: &domain.Field{ID: 7, Name: "Главное поле"}},
		&fakeSchedule{hours: thursdayHours()},
		requestDate.Add(-24*time.Hour),
	)

	resp, err := uc.Execute(context.Background(), &Request{FieldID: 7, Date: requestDate})
	require.NoError(t, err)

	// 08:00-20:00 = 12 часов = 24 слота по 30 минут
	require.Len(t, resp.Slots, 24)
	assert.Equal(t, types.TimeString("08:00:00"), resp.Slots[0].Start)
	assert.Equal(t, types.TimeString("08:30:00"), resp.Slots[0].End)
	assert.Equal(t, types.TimeString("20:00:00"), resp.Slots[23].End)
	assert.Equal(t, 4, resp.DayOfWeek)

	for _, slot := range resp.Slots {
		assert.True(t, slot.Available)
		assert.Nil(t, slot.Reason)
	}
}

func TestExecuteMarksReservedSlots(t *testing.T) {
	uc := newTestUseCase(
		&fakeFieldProvider{field: &domain.Field{ID: 7}},
		&fakeSchedule{
			hours: thursdayHours(),
			reserved: []domain.ReservedSlot{
				{ReservationID: 42, StartTime: "10:00:00", EndTime: "11:00:00", Status: domain.StatusPending},
			},
		},
		requestDate.Add(-24*time.Hour),
	)

	resp, err := uc.Execute(context.Background(), &Request{FieldID: 7, Date: requestDate})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.ReservedCount)

	bySlotStart := map[types.TimeString]domain.AvailabilitySlot{}
	for _, slot := range resp.Slots {
		bySlotStart[slot.Start] = slot
	}

	// Pending резервация блокирует слоты так же, как approved
	for _, start := range []types.TimeString{"10:00:00", "10:30:00"} {
		slot := bySlotStart[start]
		assert.False(t, slot.Available)
		require.NotNil(t, slot.Reason)
		assert.Contains(t, *slot.Reason, "Занято резервацией ID 42")
	}

	// Соседние слоты не затронуты
	assert.True(t, bySlotStart["09:30:00"].Available)
	assert.True(t, bySlotStart["11:00:00"].Available)
}

func TestExecuteMarksSlotsWithinAdvanceWindow(t *testing.T) {
	// Сейчас 09:30 дня запроса: слоты до 10:30 недоступны
	uc := newTestUseCase(
		&fakeFieldProvider{field: &domain.Field{ID: 7}},
		&fakeSchedule{hours: thursdayHours()},
		time.Date(2026, 9, 10, 9, 30, 0, 0, time.UTC),
	)

	resp, err := uc.Execute(context.Background(), &Request{FieldID: 7, Date: requestDate})
	require.NoError(t, err)

	bySlotStart := map[types.TimeString]domain.AvailabilitySlot{}
	for _, slot := range resp.Slots {
		bySlotStart[slot.Start] = slot
	}

	assert.False(t, bySlotStart["10:00:00"].Available)
	require.NotNil(t, bySlotStart["10:00:00"].Reason)
	assert.Contains(t, *bySlotStart["10:00:00"].Reason, "Недостаточное время")

	// Ровно час до начала - уже можно
	assert.True(t, bySlotStart["10:30:00"].Available)
}

func TestExecuteClosureDayHasNoSlots(t *testing.T) {
	reason := "Ремонт покрытия"
	uc := newTestUseCase(
		&fakeFieldProvider{field: &domain.Field{ID: 7}},
		&fakeSchedule{
			hours:     thursdayHours(),
			exception: &domain.DateException{FieldID: 7, Date: requestDate, OverridesRegular: true, Reason: &reason},
		},
		requestDate.Add(-24*time.Hour),
	)

	resp, err := uc.Execute(context.Background(), &Request{FieldID: 7, Date: requestDate})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
	require.NotNil(t, resp.Exception)
}

func TestExecuteExceptionOverridesHours(t *testing.T) {
	open := types.TimeString("10:00:00")
	closeAt := types.TimeString("12:00:00")
	uc := newTestUseCase(
		&fakeFieldProvider{field: &domain.Field{ID: 7}},
		&fakeSchedule{
			hours:     thursdayHours(),
			exception: &domain.DateException{FieldID: 7, Date: requestDate, OverridesRegular: true, OpenTime: &open, CloseTime: &closeAt},
		},
		requestDate.Add(-24*time.Hour),
	)

	resp, err := uc.Execute(context.Background(), &Request{FieldID: 7, Date: requestDate})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 4)
	assert.Equal(t, types.TimeString("10:00:00"), resp.Slots[0].Start)
	assert.Equal(t, types.TimeString("12:00:00"), resp.Slots[3].End)
}

func TestExecuteNoScheduleForDay(t *testing.T) {
	// Расписание только на пятницу, запрошен четверг
	uc := newTestUseCase(
		&fakeFieldProvider{field: &domain.Field{ID: 7}},
		&fakeSchedule{hours: []domain.OperatingHours{
			{FieldID: 7, DayOfWeek: 5, StartTime: "08:00:00", EndTime: "20:00:00"},
		}},
		requestDate.Add(-24*time.Hour),
	)

	resp, err := uc.Execute(context.Background(), &Request{FieldID: 7, Date: requestDate})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecutePastDate(t *testing.T) {
	uc := newTestUseCase(
		&fakeFieldProvider{field: &domain.Field{ID: 7}},
		&fakeSchedule{hours: thursdayHours()},
		requestDate.Add(48*time.Hour),
	)

	_, err := uc.Execute(context.Background(), &Request{FieldID: 7, Date: requestDate})
	assert.ErrorIs(t, err, ErrPastDate)
}

func TestExecuteFieldNotFound(t *testing.T) {
	uc := newTestUseCase(
		&fakeFieldProvider{err: datalayer.ErrNotFound},
		&fakeSchedule{},
		requestDate.Add(-24*time.Hour),
	)

	_, err := uc.Execute(context.Background(), &Request{FieldID: 7, Date: requestDate})
	assert.ErrorIs(t, err, ErrFieldNotFound)
}

func TestExecuteReservedSlotsFailureIsFatal(t *testing.T) {
	uc := newTestUseCase(
		&fakeFieldProvider{field: &domain.Field{ID: 7}},
		&fakeSchedule{hours: thursdayHours(), reservedErr: errors.New("connection refused")},
		requestDate.Add(-24*time.Hour),
	)

	_, err := uc.Execute(context.Background(), &Request{FieldID: 7, Date: requestDate})
	assert.ErrorIs(t, err, ErrInternal)
}
