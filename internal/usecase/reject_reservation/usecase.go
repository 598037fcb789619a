package reject_reservation

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

// UseCase use case отклонения резервации
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

// Execute отклоняет резервацию в статусе pending с обязательной причиной
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RejectReservation: reservation=%d, approver=%d", req.ReservationID, req.ApproverID)

	if req.ReservationID <= 0 || req.ApproverID <= 0 {
		return nil, fmt.Errorf("%w: reservationID and approverID must be positive", ErrInvalidInput)
	}
	if req.Reason == "" {
		return nil, fmt.Errorf("%w: rejection reason is required", ErrInvalidInput)
	}

	// 1. Резервация существует и ожидает решения
	reservation, err := uc.reservations.GetReservation(ctx, req.ReservationID)
	if err != nil {
		if errors.Is(err, datalayer.ErrNotFound) {
			uc.logger.Warn("RejectReservation: reservation id=%d not found", req.ReservationID)
			return nil, ErrReservationNotFound
		}
		uc.logger.Error("RejectReservation: failed to get reservation id=%d: %v", req.ReservationID, err)
		return nil, fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
	}

	if !reservation.IsPending() {
		uc.logger.Warn("RejectReservation: reservation id=%d has status %s", reservation.ID, reservation.Status)
		return nil, ErrNotPending
	}

	// 2. Отклоняющий существует
	approver, err := uc.users.ResolveUser(ctx, req.ApproverID)
	if err != nil {
		if errors.Is(err, identity.ErrUserNotFound) {
			uc.logger.Warn("RejectReservation: approver id=%d not found", req.ApproverID)
			return nil, ErrApproverNotFound
		}
		uc.logger.Error("RejectReservation: failed to resolve approver id=%d: %v", req.ApproverID, err)
		return nil, fmt.Errorf("%w: failed to resolve approver: %v", ErrInternal, err)
	}

	// 3. Полномочия: super_admin или менеджер с покрывающей сменой
	if err := uc.authorizer.Authorize(ctx, approver, rules.ActionReject, reservation); err != nil {
		if errors.Is(err, authz.ErrNotAuthorized) {
			return nil, ErrNotAuthorized
		}
		uc.logger.Error("RejectReservation: authorization check failed: %v", err)
		return nil, fmt.Errorf("%w: authorization check: %v", ErrInternal, err)
	}

	// 4. Запись перехода pending -> rejected
	now := uc.timeProvider.Now()
	updated, err := uc.writer.PatchReservationStatus(ctx, reservation.ID, datalayer.PatchStatusData{
		Status:          string(domain.StatusRejected),
		RejectedBy:      &req.ApproverID,
		RejectedAt:      ptr.Ptr(types.FormatDateTime(now)),
		RejectionReason: &req.Reason,
	})
	if err != nil {
		uc.logger.Error("RejectReservation: failed to persist rejection for id=%d: %v", reservation.ID, err)
		return nil, fmt.Errorf("%w: failed to persist rejection: %v", ErrInternal, err)
	}

	uc.logger.Info("RejectReservation: rejected reservation id=%d", updated.ID)

	return &Response{Reservation: updated}, nil
}
