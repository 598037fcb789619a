package authz

import (
	"context"
	"fmt"

	"github.com/m04kA/SFB-ReservationBroker/internal/domain"
	"github.com/m04kA/SFB-ReservationBroker/internal/rules"
)

// Service вычисляет авторизацию действий над резервациями по
// декларативной таблице (роль, действие) -> области из internal/rules
//
// Области:
//   - any: без дополнительных проверок (super_admin)
//   - shift: требуется активная смена менеджера, покрывающая поле
//     и время начала резервации
//   - own: действующее лицо должно быть заявителем резервации
type Service struct {
	shifts ShiftProvider
	logger Logger
}

// NewService создает сервис авторизации
func NewService(shifts ShiftProvider, logger Logger) *Service {
	return &Service{
		shifts: shifts,
		logger: logger,
	}
}

// Authorize проверяет, уполномочен ли actor выполнить action над reservation
// Возвращает ErrNotAuthorized, если ни одна из областей роли не подошла
func (s *Service) Authorize(ctx context.Context, actor *domain.User, action rules.Action, reservation *domain.Reservation) error {
	scopes := rules.AllowedScopes(action, actor.RoleID)
	if len(scopes) == 0 {
		s.logger.Warn("Authorize: action=%s denied for user=%d role=%d: role has no scopes",
			action, actor.ID, actor.RoleID)
		return ErrNotAuthorized
	}

	for _, scope := range scopes {
		ok, err := s.scopeSatisfied(ctx, scope, actor, reservation)
		if err != nil {
			return err
		}
		if ok {
			return nil
		}
	}

	s.logger.Warn("Authorize: action=%s denied for user=%d role=%d reservation=%d: no scope satisfied",
		action, actor.ID, actor.RoleID, reservation.ID)
	return ErrNotAuthorized
}

func (s *Service) scopeSatisfied(ctx context.Context, scope rules.Scope, actor *domain.User, reservation *domain.Reservation) (bool, error) {
	switch scope {
	case rules.ScopeAny:
		return true, nil

	case rules.ScopeOwn:
		return reservation.ApplicantID == actor.ID, nil

	case rules.ScopeShift:
		return s.hasCoveringShift(ctx, actor.ID, reservation)

	default:
		return false, nil
	}
}

// hasCoveringShift проверяет наличие активной смены менеджера,
// покрывающей поле и время начала резервации
func (s *Service) hasCoveringShift(ctx context.Context, managerID int64, reservation *domain.Reservation) (bool, error) {
	dayOfWeek := domain.ISODayOfWeek(reservation.StartDatetime)

	shifts, err := s.shifts.ListManagerShifts(ctx, managerID, reservation.FieldID, dayOfWeek)
	if err != nil {
		s.logger.Error("hasCoveringShift: failed to list shifts for manager=%d field=%d: %v",
			managerID, reservation.FieldID, err)
		return false, fmt.Errorf("%w: list manager shifts: %v", ErrInternal, err)
	}

	for i := range shifts {
		if shifts[i].Covers(reservation.StartDatetime) {
			return true, nil
		}
	}

	return false, nil
}
