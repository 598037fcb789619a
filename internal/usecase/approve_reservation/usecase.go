package approve_reservation

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

// UseCase use case одобрения резервации с вытеснением конфликтующих
// резерваций худшего приоритета для championship-матчей
type UseCase struct {
	reservations ReservationProvider
	mutator      ReservationMutator
	conflicts    ConflictDetector
	users        UserResolver
	authorizer   Authorizer
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservations ReservationProvider,
	mutator ReservationMutator,
	conflicts ConflictDetector,
	users UserResolver,
	authorizer Authorizer,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservations: reservations,
		mutator:      mutator,
		conflicts:    conflicts,
		users:        users,
		authorizer:   authorizer,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute одобряет резервацию в статусе pending.
// Для match_championship перед записью одобрения выполняется вытеснение:
// конфликтующие резервации строго худшего приоритета переносятся в свободные
// окна или отменяются. Вытеснение - best effort: его сбои не препятствуют
// одобрению основной резервации
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ApproveReservation: reservation=%d, approver=%d", req.ReservationID, req.ApproverID)

	if req.ReservationID <= 0 || req.ApproverID <= 0 {
		return nil, fmt.Errorf("%w: reservationID and approverID must be positive", ErrInvalidInput)
	}

	// 1. Резервация существует и ожидает решения
	reservation, err := uc.reservations.GetReservation(ctx, req.ReservationID)
	if err != nil {
		if errors.Is(err, datalayer.ErrNotFound) {
			uc.logger.Warn("ApproveReservation: reservation id=%d not found", req.ReservationID)
			return nil, ErrReservationNotFound
		}
		uc.logger.Error("ApproveReservation: failed to get reservation id=%d: %v", req.ReservationID, err)
		return nil, fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
	}

	if !reservation.IsPending() {
		uc.logger.Warn("ApproveReservation: reservation id=%d has status %s", reservation.ID, reservation.Status)
		return nil, ErrNotPending
	}

	// 2. Утверждающий существует
	approver, err := uc.users.ResolveUser(ctx, req.ApproverID)
	if err != nil {
		if errors.Is(err, identity.ErrUserNotFound) {
			uc.logger.Warn("ApproveReservation: approver id=%d not found", req.ApproverID)
			return nil, ErrApproverNotFound
		}
		uc.logger.Error("ApproveReservation: failed to resolve approver id=%d: %v", req.ApproverID, err)
		return nil, fmt.Errorf("%w: failed to resolve approver: %v", ErrInternal, err)
	}

	// 3. Полномочия: super_admin или менеджер с покрывающей сменой
	if err := uc.authorizer.Authorize(ctx, approver, rules.ActionApprove, reservation); err != nil {
		if errors.Is(err, authz.ErrNotAuthorized) {
			return nil, ErrNotAuthorized
		}
		uc.logger.Error("ApproveReservation: authorization check failed: %v", err)
		return nil, fmt.Errorf("%w: authorization check: %v", ErrInternal, err)
	}

	now := uc.timeProvider.Now()

	// 4. Вытеснение для championship - до записи одобрения
	var displaced []DisplacedReservation
	if reservation.ActivityType == domain.ActivityMatchChampionship {
		d := &displacer{
			conflicts: uc.conflicts,
			mutator:   uc.mutator,
			logger:    uc.logger,
		}
		displaced = d.run(ctx, reservation, req.ApproverID, now)
	}

	// 5. Запись перехода pending -> approved
	patch := datalayer.PatchStatusData{
		Status:     string(domain.StatusApproved),
		ApprovedBy: &req.ApproverID,
		ApprovedAt: ptr.Ptr(types.FormatDateTime(now)),
	}
	if req.Note != nil {
		patch.Notes = req.Note
	}

	updated, err := uc.mutator.PatchReservationStatus(ctx, reservation.ID, patch)
	if err != nil {
		uc.logger.Error("ApproveReservation: failed to persist approval for id=%d: %v", reservation.ID, err)
		return nil, fmt.Errorf("%w: failed to persist approval: %v", ErrInternal, err)
	}

	uc.logger.Info("ApproveReservation: approved reservation id=%d, displaced=%d", updated.ID, len(displaced))

	return &Response{
		Reservation: updated,
		Displaced:   displaced,
	}, nil
}
