package get_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SFB-ReservationBroker/internal/domain"
	"github.com/m04kA/SFB-ReservationBroker/internal/integrations/datalayer"
	"github.com/m04kA/SFB-ReservationBroker/pkg/types"
)

// UseCase use case расчёта доступности поля на дату
type UseCase struct {
	fields       FieldProvider
	schedule     ScheduleProvider
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(fields FieldProvider, schedule ScheduleProvider, logger Logger) *UseCase {
	return &UseCase{
		fields:       fields,
		schedule:     schedule,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute рассчитывает 30-минутные слоты доступности поля на дату
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: field=%d, date=%s", req.FieldID, types.FormatDate(req.Date))

	if req.FieldID <= 0 {
		return nil, fmt.Errorf("%w: fieldID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	now := uc.timeProvider.Now()

	// 1. Прошедшие даты не обслуживаются
	if req.Date.Format(domain.DateFormat) < now.Format(domain.DateFormat) {
		uc.logger.Warn("GetAvailability: past date requested: %s", types.FormatDate(req.Date))
		return nil, ErrPastDate
	}

	// 2. Существование поля
	field, err := uc.fields.GetField(ctx, req.FieldID)
	if err != nil {
		if errors.Is(err, datalayer.ErrNotFound) {
			uc.logger.Warn("GetAvailability: field id=%d not found", req.FieldID)
			return nil, ErrFieldNotFound
		}
		uc.logger.Error("GetAvailability: failed to get field id=%d: %v", req.FieldID, err)
		return nil, fmt.Errorf("%w: failed to get field: %v", ErrInternal, err)
	}

	// 3. Регулярное расписание
	hours, err := uc.schedule.ListOperatingHours(ctx, req.FieldID)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to list operating hours for field id=%d: %v", req.FieldID, err)
		return nil, fmt.Errorf("%w: failed to list operating hours: %v", ErrInternal, err)
	}

	// 4. Исключение на дату. Его отсутствие - нормальная ситуация
	exception, err := uc.schedule.GetExceptionForDate(ctx, req.FieldID, req.Date)
	if err != nil {
		if !errors.Is(err, datalayer.ErrNotFound) {
			uc.logger.Error("GetAvailability: failed to get exception for field id=%d: %v", req.FieldID, err)
			return nil, fmt.Errorf("%w: failed to get date exception: %v", ErrInternal, err)
		}
		exception = nil
	}

	// 5. Занятые интервалы дня
	reserved, err := uc.schedule.GetReservedSlots(ctx, req.FieldID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get reserved slots for field id=%d: %v", req.FieldID, err)
		return nil, fmt.Errorf("%w: failed to get reserved slots: %v", ErrInternal, err)
	}

	// 6. Генерация слотов
	open, close := resolveWindow(req.Date, hours, exception)
	var slots []domain.AvailabilitySlot
	if open == nil || close == nil {
		// Закрытый день: слотов нет
		if exception != nil && exception.Reason != nil {
			uc.logger.Info("GetAvailability: field id=%d closed on %s: %s",
				req.FieldID, types.FormatDate(req.Date), *exception.Reason)
		}
		slots = []domain.AvailabilitySlot{}
	} else {
		slots = buildSlots(req.Date, *open, *close, reserved, now)
	}

	uc.logger.Info("GetAvailability: field=%d, date=%s: %d slots, %d reserved intervals",
		req.FieldID, types.FormatDate(req.Date), len(slots), len(reserved))

	return &Response{
		Field:         field,
		Date:          req.Date,
		DayOfWeek:     int(req.Date.Weekday()),
		Slots:         slots,
		ReservedCount: len(reserved),
		Exception:     exception,
	}, nil
}
