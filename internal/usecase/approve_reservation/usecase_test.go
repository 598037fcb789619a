package approve_reservation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SFB-ReservationBroker/internal/domain"
	"github.com/m04kA/SFB-ReservationBroker/internal/integrations/datalayer"
	"github.com/m04kA/SFB-ReservationBroker/internal/rules"
	"github.com/m04kA/SFB-ReservationBroker/internal/service/authz"
	"github.com/m04kA/SFB-ReservationBroker/internal/service/identity"
)

type fakeReservationProvider struct {
	reservation *domain.Reservation
	err         error
}

func (f *fakeReservationProvider) GetReservation(ctx context.Context, id int64) (*domain.Reservation, error) {
	return f.reservation, f.err
}

type patchCall struct {
	id   int64
	data datalayer.PatchStatusData
}

type updateCall struct {
	id   int64
	data datalayer.UpdateReservationData
}

type fakeMutator struct {
	patches []patchCall
	updates []updateCall
}

func (f *fakeMutator) UpdateReservation(ctx context.Context, id int64, data datalayer.UpdateReservationData) (*domain.Reservation, error) {
	f.updates = append(f.updates, updateCall{id: id, data: data})
	return &domain.Reservation{ID: id}, nil
}

func (f *fakeMutator) PatchReservationStatus(ctx context.Context, id int64, data datalayer.PatchStatusData) (*domain.Reservation, error) {
	f.patches = append(f.patches, patchCall{id: id, data: data})
	return &domain.Reservation{ID: id, Status: domain.ReservationStatus(data.Status)}, nil
}

// checkFn скриптуемый детектор: вызовы различаются по excludeID
type fakeConflictDetector struct {
	checkFn func(fieldID int64, start, end time.Time, excludeID *int64) ([]domain.Conflict, error)
}

func (f *fakeConflictDetector) Check(ctx context.Context, fieldID int64, start, end time.Time, excludeID *int64) ([]domain.Conflict, error) {
	return f.checkFn(fieldID, start, end, excludeID)
}

type fakeUserResolver struct {
	users map[int64]*domain.User
}

func (f *fakeUserResolver) ResolveUser(ctx context.Context, userID int64) (*domain.User, error) {
	user, ok := f.users[userID]
	if !ok {
		return nil, identity.ErrUserNotFound
	}
	return user, nil
}

type fakeAuthorizer struct {
	err       error
	gotAction rules.Action
}

func (f *fakeAuthorizer) Authorize(ctx context.Context, actor *domain.User, action rules.Action, reservation *domain.Reservation) error {
	f.gotAction = action
	return f.err
}

type fixedTime struct{ t time.Time }

func (f *fixedTime) Now() time.Time { return f.t }

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

var (
	testNow    = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	matchStart = time.Date(2026, 9, 10, 10, 0, 0, 0, time.UTC)
	matchEnd   = matchStart.Add(2 * time.Hour)
	admin      = &domain.User{ID: 1, RoleID: domain.RoleSuperAdmin, RoleName: domain.RoleNameSuperAdmin, Active: true}
)

func pendingChampionship() *domain.Reservation {
	return &domain.Reservation{
		ID:            10,
		FieldID:       7,
		ApplicantID:   100,
		ActivityType:  domain.ActivityMatchChampionship,
		StartDatetime: matchStart,
		EndDatetime:   matchEnd,
		Priority:      1,
		Status:        domain.StatusPending,
	}
}

func noConflicts() *fakeConflictDetector {
	return &fakeConflictDetector{checkFn: func(fieldID int64, start, end time.Time, excludeID *int64) ([]domain.Conflict, error) {
		return []domain.Conflict{}, nil
	}}
}

func newTestUseCase(provider *fakeReservationProvider, mutator *fakeMutator, detector *fakeConflictDetector, authorizer *fakeAuthorizer) *UseCase {
	uc := NewUseCase(provider, mutator, detector,
		&fakeUserResolver{users: map[int64]*domain.User{1: admin}},
		authorizer, nopLogger{})
	uc.timeProvider = &fixedTime{t: testNow}
	return uc
}

func TestExecuteApprovesPendingReservation(t *testing.T) {
	reservation := pendingChampionship()
	reservation.ActivityType = domain.ActivityMatchFriendly
	reservation.Priority = 2

	mutator := &fakeMutator{}
	uc := newTestUseCase(&fakeReservationProvider{reservation: reservation}, mutator, noConflicts(), &fakeAuthorizer{})

	resp, err := uc.Execute(context.Background(), &Request{ReservationID: 10, ApproverID: 1})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, resp.Reservation.Status)
	assert.Empty(t, resp.Displaced)

	require.Len(t, mutator.patches, 1)
	patch := mutator.patches[0]
	assert.Equal(t, int64(10), patch.id)
	assert.Equal(t, string(domain.StatusApproved), patch.data.Status)
	assert.Equal(t, int64(1), *patch.data.ApprovedBy)
	assert.Equal(t, "2026-09-01 12:00:00", *patch.data.ApprovedAt)
}

func TestExecuteReservationNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeReservationProvider{err: datalayer.ErrNotFound}, &fakeMutator{}, noConflicts(), &fakeAuthorizer{})

	_, err := uc.Execute(context.Background(), &Request{ReservationID: 10, ApproverID: 1})
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestExecuteNotPending(t *testing.T) {
	reservation := pendingChampionship()
	reservation.Status = domain.StatusApproved
	uc := newTestUseCase(&fakeReservationProvider{reservation: reservation}, &fakeMutator{}, noConflicts(), &fakeAuthorizer{})

	_, err := uc.Execute(context.Background(), &Request{ReservationID: 10, ApproverID: 1})
	assert.ErrorIs(t, err, ErrNotPending)
}

func TestExecuteApproverNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeReservationProvider{reservation: pendingChampionship()}, &fakeMutator{}, noConflicts(), &fakeAuthorizer{})

	_, err := uc.Execute(context.Background(), &Request{ReservationID: 10, ApproverID: 99})
	assert.ErrorIs(t, err, ErrApproverNotFound)
}

func TestExecuteNotAuthorized(t *testing.T) {
	mutator := &fakeMutator{}
	uc := newTestUseCase(&fakeReservationProvider{reservation: pendingChampionship()}, mutator, noConflicts(), &fakeAuthorizer{err: authz.ErrNotAuthorized})

	_, err := uc.Execute(context.Background(), &Request{ReservationID: 10, ApproverID: 1})
	assert.ErrorIs(t, err, ErrNotAuthorized)
	assert.Empty(t, mutator.patches)
}

func TestExecuteDisplacementRelocates(t *testing.T) {
	notes := "weekly practice"
	candidate := domain.Conflict{
		ID:            20,
		FieldID:       7,
		StartDatetime: matchStart.Add(30 * time.Minute),
		EndDatetime:   matchStart.Add(90 * time.Minute),
		ActivityType:  domain.ActivityPracticeGroup,
		Priority:      3,
		Status:        domain.StatusApproved,
		Notes:         &notes,
	}

	detector := &fakeConflictDetector{checkFn: func(fieldID int64, start, end time.Time, excludeID *int64) ([]domain.Conflict, error) {
		if excludeID != nil && *excludeID == 10 {
			return []domain.Conflict{candidate}, nil
		}
		// Любое пробное окно свободно
		return []domain.Conflict{}, nil
	}}

	mutator := &fakeMutator{}
	uc := newTestUseCase(&fakeReservationProvider{reservation: pendingChampionship()}, mutator, detector, &fakeAuthorizer{})

	resp, err := uc.Execute(context.Background(), &Request{ReservationID: 10, ApproverID: 1})
	require.NoError(t, err)

	require.Len(t, resp.Displaced, 1)
	assert.Equal(t, int64(20), resp.Displaced[0].ReservationID)
	assert.Equal(t, OutcomeRelocated, resp.Displaced[0].Outcome)

	// Первое пробное окно - от собственного конца кандидата, той же длительности
	require.Len(t, mutator.updates, 1)
	update := mutator.updates[0]
	assert.Equal(t, int64(20), update.id)
	assert.Equal(t, "2026-09-10 11:30:00", *update.data.StartDatetime)
	assert.Equal(t, "2026-09-10 12:30:00", *update.data.EndDatetime)
	assert.Equal(t, "weekly practice [Displaced by championship ID 10]", *update.data.Notes)

	// Одобрение основной резервации записано после вытеснения
	require.Len(t, mutator.patches, 1)
	assert.Equal(t, int64(10), mutator.patches[0].id)
}

func TestExecuteDisplacementCancelsWhenNoSlot(t *testing.T) {
	candidate := domain.Conflict{
		ID:            20,
		FieldID:       7,
		StartDatetime: matchStart,
		EndDatetime:   matchStart.Add(time.Hour),
		ActivityType:  domain.ActivityPracticeGroup,
		Priority:      4,
		Status:        domain.StatusApproved,
	}

	blocker := domain.Conflict{ID: 30, Priority: 1, Status: domain.StatusApproved}
	detector := &fakeConflictDetector{checkFn: func(fieldID int64, start, end time.Time, excludeID *int64) ([]domain.Conflict, error) {
		if excludeID != nil && *excludeID == 10 {
			return []domain.Conflict{candidate}, nil
		}
		// Горизонт полностью занят
		return []domain.Conflict{blocker}, nil
	}}

	mutator := &fakeMutator{}
	uc := newTestUseCase(&fakeReservationProvider{reservation: pendingChampionship()}, mutator, detector, &fakeAuthorizer{})

	resp, err := uc.Execute(context.Background(), &Request{ReservationID: 10, ApproverID: 1})
	require.NoError(t, err)

	require.Len(t, resp.Displaced, 1)
	assert.Equal(t, OutcomeCancelled, resp.Displaced[0].Outcome)
	assert.Nil(t, resp.Displaced[0].NewStart)

	// Первый patch - отмена кандидата, второй - одобрение основной
	require.Len(t, mutator.patches, 2)
	cancel := mutator.patches[0]
	assert.Equal(t, int64(20), cancel.id)
	assert.Equal(t, string(domain.StatusCancelled), cancel.data.Status)
	assert.Equal(t, "displaced, no slot available", *cancel.data.CancellationReason)
	assert.Equal(t, int64(1), *cancel.data.CancelledBy)
}

func TestExecuteDisplacementSkipsEqualOrBetterPriority(t *testing.T) {
	equal := domain.Conflict{ID: 20, Priority: 1, StartDatetime: matchStart, EndDatetime: matchEnd, Status: domain.StatusApproved}
	detector := &fakeConflictDetector{checkFn: func(fieldID int64, start, end time.Time, excludeID *int64) ([]domain.Conflict, error) {
		if excludeID != nil && *excludeID == 10 {
			return []domain.Conflict{equal}, nil
		}
		return []domain.Conflict{}, nil
	}}

	mutator := &fakeMutator{}
	uc := newTestUseCase(&fakeReservationProvider{reservation: pendingChampionship()}, mutator, detector, &fakeAuthorizer{})

	resp, err := uc.Execute(context.Background(), &Request{ReservationID: 10, ApproverID: 1})
	require.NoError(t, err)
	assert.Empty(t, resp.Displaced)
	assert.Empty(t, mutator.updates)
	require.Len(t, mutator.patches, 1)
	assert.Equal(t, int64(10), mutator.patches[0].id)
}

func TestExecuteDisplacementClaimedWindowNotReused(t *testing.T) {
	// Два кандидата одинаковой длительности с одним и тем же концом:
	// первый занимает первое свободное окно, второй обязан уйти дальше
	candidateA := domain.Conflict{ID: 20, FieldID: 7, StartDatetime: matchStart, EndDatetime: matchStart.Add(time.Hour), Priority: 3, Status: domain.StatusApproved}
	candidateB := domain.Conflict{ID: 21, FieldID: 7, StartDatetime: matchStart, EndDatetime: matchStart.Add(time.Hour), Priority: 4, Status: domain.StatusApproved}

	detector := &fakeConflictDetector{checkFn: func(fieldID int64, start, end time.Time, excludeID *int64) ([]domain.Conflict, error) {
		if excludeID != nil && *excludeID == 10 {
			return []domain.Conflict{candidateA, candidateB}, nil
		}
		return []domain.Conflict{}, nil
	}}

	mutator := &fakeMutator{}
	uc := newTestUseCase(&fakeReservationProvider{reservation: pendingChampionship()}, mutator, detector, &fakeAuthorizer{})

	resp, err := uc.Execute(context.Background(), &Request{ReservationID: 10, ApproverID: 1})
	require.NoError(t, err)
	require.Len(t, resp.Displaced, 2)

	require.Len(t, mutator.updates, 2)
	assert.Equal(t, "2026-09-10 11:00:00", *mutator.updates[0].data.StartDatetime)
	// Окно первого кандидата занято локально: второй переносится за него
	assert.Equal(t, "2026-09-10 12:00:00", *mutator.updates[1].data.StartDatetime)
}

func TestExecuteDisplacementCheckFailureDoesNotBlockApproval(t *testing.T) {
	detector := &fakeConflictDetector{checkFn: func(fieldID int64, start, end time.Time, excludeID *int64) ([]domain.Conflict, error) {
		return nil, errors.New("upstream down")
	}}

	mutator := &fakeMutator{}
	uc := newTestUseCase(&fakeReservationProvider{reservation: pendingChampionship()}, mutator, detector, &fakeAuthorizer{})

	resp, err := uc.Execute(context.Background(), &Request{ReservationID: 10, ApproverID: 1})
	require.NoError(t, err)
	assert.Empty(t, resp.Displaced)
	require.Len(t, mutator.patches, 1)
	assert.Equal(t, string(domain.StatusApproved), mutator.patches[0].data.Status)
}
