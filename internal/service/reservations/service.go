package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SFB-ReservationBroker/internal/domain"
	"github.com/m04kA/SFB-ReservationBroker/internal/integrations/datalayer"
	"github.com/m04kA/SFB-ReservationBroker/internal/service/reservations/models"
)

// Service сервис чтения резерваций
// Чистый pass-through к Data Layer без бизнес-логики
type Service struct {
	provider ReservationProvider
	logger   Logger
}

// NewService создает сервис чтения резерваций
func NewService(provider ReservationProvider, logger Logger) *Service {
	return &Service{
		provider: provider,
		logger:   logger,
	}
}

// GetByID получает резервацию по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	reservation, err := s.provider.GetReservation(ctx, id)
	if err != nil {
		if errors.Is(err, datalayer.ErrNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: data layer error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return models.FromDomainReservation(reservation), nil
}

// List получает резервации по фильтру
func (s *Service) List(ctx context.Context, filter domain.ReservationsFilter) (*models.ReservationListResponse, error) {
	list, err := s.provider.ListReservations(ctx, filter)
	if err != nil {
		s.logger.Error("List: data layer error: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d reservations", len(list))
	return models.FromDomainReservationList(list), nil
}
