package cancel_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SFB-ReservationBroker/internal/domain"
	"github.com/m04kA/SFB-ReservationBroker/internal/integrations/datalayer"
	"github.com/m04kA/SFB-ReservationBroker/internal/rules"
	"github.com/m04kA/SFB-ReservationBroker/internal/service/authz"
	"github.com/m04kA/SFB-ReservationBroker/internal/service/identity"
	"github.com/m04kA/SFB-ReservationBroker/pkg/ptr"
	"github.com/m04kA/SFB-ReservationBroker/pkg/types"
)

// UseCase use case отмены резервации.
// Отмена доступна заявителю, менеджеру поля с покрывающей сменой
// и super_admin; допустима из статусов pending и approved
type UseCase struct {
	reservations ReservationProvider
	writer       StatusWriter
	users        UserResolver
	authorizer   Authorizer
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservations ReservationProvider,
	writer StatusWriter,
	users UserResolver,
	authorizer Authorizer,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservations: reservations,
		writer:       writer,
		users:        users,
		authorizer:   authorizer,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute отменяет резервацию с обязательной причиной
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CancelReservation: reservation=%d, actor=%d", req.ReservationID, req.ActorID)

	if req.ReservationID <= 0 || req.ActorID <= 0 {
		return nil, fmt.Errorf("%w: reservationID and actorID must be positive", ErrInvalidInput)
	}
	if req.Reason == "" {
		return nil, fmt.Errorf("%w: cancellation reason is required", ErrInvalidInput)
	}

	// 1. Резервация существует и отменяема
	reservation, err := uc.reservations.GetReservation(ctx, req.ReservationID)
	if err != nil {
		if errors.Is(err, datalayer.ErrNotFound) {
			uc.logger.Warn("CancelReservation: reservation id=%d not found", req.ReservationID)
			return nil, ErrReservationNotFound
		}
		uc.logger.Error("CancelReservation: failed to get reservation id=%d: %v", req.ReservationID, err)
		return nil, fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
	}

	if !reservation.CanBeCancelled() {
		uc.logger.Warn("CancelReservation: reservation id=%d has status %s", reservation.ID, reservation.Status)
		return nil, ErrNotCancellable
	}

	// 2. Действующее лицо существует
	actor, err := uc.users.ResolveUser(ctx, req.ActorID)
	if err != nil {
		if errors.Is(err, identity.ErrUserNotFound) {
			uc.logger.Warn("CancelReservation: actor id=%d not found", req.ActorID)
			return nil, ErrActorNotFound
		}
		uc.logger.Error("CancelReservation: failed to resolve actor id=%d: %v", req.ActorID, err)
		return nil, fmt.Errorf("%w: failed to resolve actor: %v", ErrInternal, err)
	}

	// 3. Полномочия: заявитель, менеджер со сменой или super_admin
	if err := uc.authorizer.Authorize(ctx, actor, rules.ActionCancel, reservation); err != nil {
		if errors.Is(err, authz.ErrNotAuthorized) {
			return nil, ErrNotAuthorized
		}
		uc.logger.Error("CancelReservation: authorization check failed: %v", err)
		return nil, fmt.Errorf("%w: authorization check: %v", ErrInternal, err)
	}

	// 4. Запись перехода -> cancelled
	now := uc.timeProvider.Now()
	updated, err := uc.writer.PatchReservationStatus(ctx, reservation.ID, datalayer.PatchStatusData{
		Status:             string(domain.StatusCancelled),
		CancelledBy:        &req.ActorID,
		CancelledAt:        ptr.Ptr(types.FormatDateTime(now)),
		CancellationReason: &req.Reason,
	})
	if err != nil {
		uc.logger.Error("CancelReservation: failed to persist cancellation for id=%d: %v", reservation.ID, err)
		return nil, fmt.Errorf("%w: failed to persist cancellation: %v", ErrInternal, err)
	}

	uc.logger.Info("CancelReservation: cancelled reservation id=%d", updated.ID)

	return &Response{Reservation: updated}, nil
}
