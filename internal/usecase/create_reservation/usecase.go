package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SFB-ReservationBroker/internal/domain"
	"github.com/m04kA/SFB-ReservationBroker/internal/integrations/datalayer"
	"github.com/m04kA/SFB-ReservationBroker/internal/rules"
	"github.com/m04kA/SFB-ReservationBroker/internal/service/identity"
	"github.com/m04kA/SFB-ReservationBroker/pkg/types"
)

// UseCase use case создания резервации с полным конвейером валидаций
type UseCase struct {
	validator    *rules.Validator
	fields       FieldProvider
	users        UserResolver
	conflicts    ConflictDetector
	writer       ReservationWriter
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	validator *rules.Validator,
	fields FieldProvider,
	users UserResolver,
	conflicts ConflictDetector,
	writer ReservationWriter,
	logger Logger,
) *UseCase {
	return &UseCase{
		validator:    validator,
		fields:       fields,
		users:        users,
		conflicts:    conflicts,
		writer:       writer,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет конвейер создания резервации в фиксированном порядке.
// Нарушения чистых бизнес-правил (шаг 2) агрегируются и возвращаются вместе;
// проверки внешнего состояния (шаги 3-7) выполняются только после их прохождения.
// До шага 9 записей в Data Layer не происходит
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: field=%d, applicant=%d, activity=%s, start=%s, end=%s",
		req.FieldID, req.ApplicantID, req.ActivityType,
		types.FormatDateTime(req.StartDatetime), types.FormatDateTime(req.EndDatetime))

	// 1. Валидация формы входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: invalid input: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Бизнес-правила: длительность, горизонт, блокировка даты (агрегированно)
	if verrs := checkBusinessRules(uc.validator, req, now); verrs != nil {
		uc.logger.Warn("CreateReservation: business rules failed: %v", verrs)
		return nil, verrs
	}

	// 3. Существование поля
	if _, err := uc.fields.GetField(ctx, req.FieldID); err != nil {
		if errors.Is(err, datalayer.ErrNotFound) {
			uc.logger.Warn("CreateReservation: field id=%d not found", req.FieldID)
			return nil, ErrFieldNotFound
		}
		uc.logger.Error("CreateReservation: failed to get field id=%d: %v", req.FieldID, err)
		return nil, fmt.Errorf("%w: failed to get field: %v", ErrInternal, err)
	}

	// 4. Существование каждого участника
	for _, p := range req.Participants {
		if _, err := uc.users.ResolveUser(ctx, p.ParticipantID); err != nil {
			if errors.Is(err, identity.ErrUserNotFound) {
				uc.logger.Warn("CreateReservation: participant id=%d not found", p.ParticipantID)
				return nil, fmt.Errorf("%w: participant id=%d", ErrParticipantNotFound, p.ParticipantID)
			}
			uc.logger.Error("CreateReservation: failed to resolve participant id=%d: %v", p.ParticipantID, err)
			return nil, fmt.Errorf("%w: failed to resolve participant: %v", ErrInternal, err)
		}
	}

	// 5. Существование заявителя
	applicant, err := uc.users.ResolveUser(ctx, req.ApplicantID)
	if err != nil {
		if errors.Is(err, identity.ErrUserNotFound) {
			uc.logger.Warn("CreateReservation: applicant id=%d not found", req.ApplicantID)
			return nil, ErrApplicantNotFound
		}
		uc.logger.Error("CreateReservation: failed to resolve applicant id=%d: %v", req.ApplicantID, err)
		return nil, fmt.Errorf("%w: failed to resolve applicant: %v", ErrInternal, err)
	}

	// 6. Матрица роль×активность
	if err := uc.validator.ValidateActivityForRole(req.ActivityType, applicant.RoleID, req.Participants); err != nil {
		uc.logger.Warn("CreateReservation: activity not allowed: applicant=%d role=%d activity=%s: %v",
			req.ApplicantID, applicant.RoleID, req.ActivityType, err)
		return nil, &ValidationErrors{Violations: []error{err}}
	}

	// 7. Страховочная проверка: менеджер поля не может быть заявителем
	// Дублирует шаг 6 намеренно
	if applicant.IsFieldManager() {
		uc.logger.Warn("CreateReservation: field manager id=%d attempted to book", req.ApplicantID)
		return nil, &ValidationErrors{Violations: []error{rules.ErrFieldManagerCannotBook}}
	}

	// 8. Детекция конфликтов по запрошенному окну
	conflicts, err := uc.conflicts.Check(ctx, req.FieldID, req.StartDatetime, req.EndDatetime, nil)
	if err != nil {
		uc.logger.Error("CreateReservation: conflict check failed: %v", err)
		return nil, fmt.Errorf("%w: conflict check: %v", ErrInternal, err)
	}
	if len(conflicts) > 0 {
		uc.logger.Warn("CreateReservation: %d conflicts detected for field=%d", len(conflicts), req.FieldID)
		return nil, &ConflictError{Conflicts: conflicts}
	}

	// 9. Приоритет и начальный статус
	priority := uc.validator.CalculatePriority(req.ActivityType, applicant.RoleName)
	status := uc.validator.InitialStatus(req.ActivityType)

	// 10. Запись резервации в Data Layer
	created, err := uc.writer.CreateReservation(ctx, datalayer.CreateReservationData{
		FieldID:       req.FieldID,
		ApplicantID:   req.ApplicantID,
		ActivityType:  string(req.ActivityType),
		StartDatetime: types.FormatDateTime(req.StartDatetime),
		EndDatetime:   types.FormatDateTime(req.EndDatetime),
		Priority:      priority,
		Status:        string(status),
		Notes:         req.Notes,
	})
	if err != nil {
		// Конфликт на стороне Data Layer: собственная проверка ядра его не увидела
		// (две конкурентные заявки прошли детектор до первой записи)
		if errors.Is(err, datalayer.ErrConflict) {
			uc.logger.Warn("CreateReservation: data layer rejected write as duplicate: %v", err)
			return nil, ErrDuplicateBooking
		}
		uc.logger.Error("CreateReservation: failed to persist reservation: %v", err)
		return nil, fmt.Errorf("%w: failed to persist reservation: %v", ErrInternal, err)
	}

	// 11. Привязка участников - best effort: сбой привязки логируется,
	// но резервацию не откатывает (задокументированный частичный успех)
	for _, p := range req.Participants {
		data := datalayer.ParticipantData{
			ParticipantID:   p.ParticipantID,
			ParticipantType: string(p.ParticipantType),
			TeamID:          p.TeamID,
		}
		if err := uc.writer.CreateParticipant(ctx, created.ID, data); err != nil {
			uc.logger.Error("CreateReservation: failed to attach participant id=%d to reservation id=%d: %v",
				p.ParticipantID, created.ID, err)
		}
	}

	uc.logger.Info("CreateReservation: created reservation id=%d, priority=%d, status=%s",
		created.ID, priority, created.Status)

	return &Response{
		Reservation: created,
		Priority:    priority,
	}, nil
}

// Conflicts извлекает набор конфликтов из ошибки, если она конфликтного типа
func Conflicts(err error) []domain.Conflict {
	var cerr *ConflictError
	if errors.As(err, &cerr) {
		return cerr.Conflicts
	}
	return nil
}
